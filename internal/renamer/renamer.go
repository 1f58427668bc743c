// Package renamer implements the rename pass over a directory tree.
//
// The Renamer orchestrates candidate discovery, name transformation,
// collision resolution, and execution. It is the main API surface called by
// the CLI.
package renamer

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/danieljhkim/conftidy/internal/fsops"
	"github.com/danieljhkim/conftidy/internal/naming"
	"github.com/danieljhkim/conftidy/internal/scan"
)

// Renamer strips @domain suffixes from .conf filenames.
type Renamer struct {
	fs fsops.FS
}

// New creates a Renamer over the given filesystem.
func New(fs fsops.FS) *Renamer {
	return &Renamer{fs: fs}
}

// Run performs one rename pass. The candidate list is snapshotted before any
// rename, so earlier renames never invalidate later iteration. A failed
// rename aborts the pass; the partial Result is discarded.
func (r *Renamer) Run(req *Request) (*Result, error) {
	info, err := r.fs.Stat(req.Root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: '%s' is not a directory", ErrInvalidRoot, req.Root)
	}

	candidates, err := scan.Candidates(req.Root, req.Recursive)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", req.Root, err)
	}
	logrus.Debugf("found %d candidate files under %s", len(candidates), req.Root)

	resolver := naming.NewResolver(r.fs)
	result := &Result{DryRun: req.DryRun}

	for _, path := range candidates {
		base := filepath.Base(path)
		stem, ext := naming.SplitBase(base)

		target, changed := naming.TargetStem(stem)
		if !changed {
			logrus.Debugf("unchanged: %s", base)
			result.Unchanged++
			continue
		}
		if target == "" {
			// A leading '@' would leave only the extension as the name.
			logrus.Warnf("skipping %s: stripping '@' leaves an empty name", base)
			result.Unchanged++
			continue
		}

		dir := filepath.Dir(path)
		final, err := resolver.Resolve(dir, target, ext)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve target name for %s: %w", path, err)
		}

		if !req.DryRun {
			if err := r.fs.Rename(path, filepath.Join(dir, final)); err != nil {
				return nil, fmt.Errorf("%w: %s -> %s: %v", ErrRenameFailed, base, final, err)
			}
		}

		result.Actions = append(result.Actions, Action{Dir: dir, OldName: base, NewName: final})
		result.Renamed++
	}

	return result, nil
}
