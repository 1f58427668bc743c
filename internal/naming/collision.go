package naming

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/conftidy/internal/fsops"
)

// Resolver picks collision-free target names within a directory. It also
// tracks names claimed earlier in the same run, so that a dry run resolves
// to the same final names a real run would produce even though nothing on
// disk changes between candidates.
type Resolver struct {
	fs      fsops.FS
	claimed map[string]bool // absolute target path → claimed by an earlier candidate
}

// NewResolver creates a ready-to-use resolver.
func NewResolver(fs fsops.FS) *Resolver {
	return &Resolver{
		fs:      fs,
		claimed: make(map[string]bool),
	}
}

// Resolve returns the final basename for a rename into dir: "stem.ext" when
// free, otherwise "stem-1.ext", "stem-2.ext", ... — the lowest variant that
// neither exists in dir nor has been claimed during this run. The returned
// name is recorded as claimed.
func (r *Resolver) Resolve(dir, stem, ext string) (string, error) {
	candidate := stem + ext
	for i := 1; ; i++ {
		taken, err := r.taken(filepath.Join(dir, candidate))
		if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", candidate, err)
		}
		if !taken {
			break
		}
		candidate = fmt.Sprintf("%s-%d%s", stem, i, ext)
	}
	r.claimed[filepath.Join(dir, candidate)] = true
	return candidate, nil
}

func (r *Resolver) taken(path string) (bool, error) {
	if r.claimed[path] {
		return true, nil
	}
	return r.fs.Exists(path)
}
