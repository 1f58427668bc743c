// Package fsops provides filesystem operations behind a small interface.
//
// All filesystem mutations in conftidy go through the FS interface, which
// keeps the rename engine testable against a mock without touching the disk.
package fsops

import "os"

// FS provides an abstraction for the filesystem operations conftidy performs.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// Exists checks if a path exists. Symlinks are not followed, so a
	// dangling symlink still counts as existing.
	Exists(path string) (bool, error)

	// Rename moves a file from oldpath to newpath.
	Rename(oldpath, newpath string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Stat returns file info, following symlinks.
func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Exists checks if a path exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Rename moves a file from oldpath to newpath.
func (fs *RealFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
