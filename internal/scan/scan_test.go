package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeFile creates an empty file at the given path.
func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

func TestCandidates_TopLevelOnly(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	writeFile(t, filepath.Join(dir, "b@y.conf"))
	writeFile(t, filepath.Join(dir, "a@x.conf"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(sub, "c@z.conf"))

	got, err := Candidates(dir, false)
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a@x.conf"),
		filepath.Join(dir, "b@y.conf"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestCandidates_Recursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	writeFile(t, filepath.Join(dir, "a@x.conf"))
	writeFile(t, filepath.Join(sub, "c@z.conf"))

	got, err := Candidates(dir, true)
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a@x.conf"),
		filepath.Join(sub, "c@z.conf"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestCandidates_ExtensionMatchIsCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a@x.CONF"))
	writeFile(t, filepath.Join(dir, "b@y.conf"))

	got, err := Candidates(dir, false)
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}

	want := []string{filepath.Join(dir, "b@y.conf")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestCandidates_ExcludesDirectoriesAndDirSymlinks(t *testing.T) {
	dir := t.TempDir()

	// A directory whose name matches the pattern must not be a candidate,
	// nor a symlink pointing at a directory.
	confDir := filepath.Join(dir, "dir.conf")
	if err := os.MkdirAll(confDir, 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.Symlink(confDir, filepath.Join(dir, "dirlink.conf")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	writeFile(t, filepath.Join(dir, "real@x.conf"))

	got, err := Candidates(dir, false)
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}

	want := []string{filepath.Join(dir, "real@x.conf")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestCandidates_IncludesSymlinkToRegularFile(t *testing.T) {
	dir := t.TempDir()

	target := filepath.Join(dir, "target.txt")
	writeFile(t, target)
	if err := os.Symlink(target, filepath.Join(dir, "link@x.conf")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got, err := Candidates(dir, false)
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}

	want := []string{filepath.Join(dir, "link@x.conf")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestCandidates_ExcludesDanglingSymlink(t *testing.T) {
	dir := t.TempDir()

	if err := os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "dangling@x.conf")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got, err := Candidates(dir, false)
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Candidates = %v, want none", got)
	}
}
