package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/danieljhkim/conftidy/internal/renamer"
)

var (
	// Color functions - fatih/color disables these automatically when
	// output is not a TTY, so the report stays byte-stable in pipes.
	successColor = color.New(color.FgGreen)
	dimColor     = color.New(color.FgHiBlack)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// printResult writes the per-file report and the summary line.
func printResult(w io.Writer, result *renamer.Result) {
	for _, a := range result.Actions {
		if result.DryRun {
			_, _ = dimColor.Fprintf(w, "[DRY-RUN] %s -> %s\n", a.OldName, a.NewName)
		} else {
			fmt.Fprintf(w, "Renamed: %s -> %s\n", a.OldName, a.NewName)
		}
	}

	summary := "Done."
	if result.DryRun {
		summary = "Dry-run complete."
	}
	_, _ = successColor.Fprintf(w, "%s Renamed: %d; Unchanged: %d.\n", summary, result.Renamed, result.Unchanged)
}

// FormatError formats an error for display on stderr.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
