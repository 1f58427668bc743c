// Package scan discovers rename candidates.
//
// Discovery snapshots the full candidate list before any rename happens, so
// in-place renames never invalidate the iteration. Results are sorted
// lexicographically by path for a deterministic processing order and
// reproducible dry-run previews.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
)

// Ext is the extension candidates must carry. The match is case-sensitive.
const Ext = ".conf"

// Candidates returns the .conf files under root, sorted lexicographically.
// Only regular files qualify; a symlink is included when it resolves to a
// regular file (the rename then moves the link itself), while symlinks to
// directories or special files are excluded. Without recursive, only root's
// direct entries are considered.
func Candidates(root string, recursive bool) ([]string, error) {
	if recursive {
		return walk(root)
	}
	return list(root)
}

func list(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if isCandidate(path, entry.Type()) {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

func walk(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isCandidate(path, d.Type()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// isCandidate reports whether path names a .conf regular file, given the
// entry's Lstat-style mode.
func isCandidate(path string, mode fs.FileMode) bool {
	if filepath.Ext(path) != Ext {
		return false
	}
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		logrus.Debugf("excluding %s: %v", path, err)
		return false
	}
	return info.Mode().IsRegular()
}
