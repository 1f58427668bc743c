package naming

import (
	"path/filepath"
	"strings"
)

// TargetStem returns the portion of stem before the first '@' and whether
// the stem changed. Everything after the first '@', including any further
// '@' characters, is discarded. Stems without an '@' are returned unchanged.
func TargetStem(stem string) (string, bool) {
	pre, _, found := strings.Cut(stem, "@")
	if !found {
		return stem, false
	}
	return pre, true
}

// SplitBase splits a basename into its stem and extension.
func SplitBase(base string) (stem, ext string) {
	ext = filepath.Ext(base)
	stem = strings.TrimSuffix(base, ext)
	return stem, ext
}
