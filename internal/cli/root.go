package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/conftidy/internal/fsops"
	"github.com/danieljhkim/conftidy/internal/renamer"
)

var (
	// Global flags
	recursive  bool
	dryRun     bool
	verbose    bool
	jsonOutput bool
)

// rootCmd is the root command for conftidy.
var rootCmd = &cobra.Command{
	Use:     "conftidy [path]",
	Version: "dev",
	Short:   "Strip @domain suffixes from .conf filenames",
	Long: `conftidy renames .conf files by removing the '@domain' portion of the
filename stem: 'mail@example.com.conf' becomes 'mail.conf'. When the target
name is already taken, a numeric suffix is appended ('mail-1.conf').

Only the given directory is processed unless --recursive is passed. Use
--dry-run to preview the renames without touching the filesystem.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(os.Stderr)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		eng := renamer.New(fsops.NewRealFS())
		result, err := eng.Run(&renamer.Request{
			Root:      root,
			Recursive: recursive,
			DryRun:    dryRun,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		printResult(cmd.OutOrStdout(), result)
		return nil
	},
}

// SetVersion sets the CLI version reported by --version and the version
// subcommand.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recurse into subdirectories")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without renaming files")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the conftidy CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
