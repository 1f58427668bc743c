package renamer

import "errors"

var (
	// ErrInvalidRoot indicates the supplied path is missing or not a directory.
	ErrInvalidRoot = errors.New("invalid root")

	// ErrRenameFailed indicates a filesystem-level failure during a rename.
	ErrRenameFailed = errors.New("rename failed")
)
