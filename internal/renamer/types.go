package renamer

// Request describes a single rename pass.
type Request struct {
	// Root is the directory to process.
	Root string

	// Recursive processes files in subdirectories as well.
	Recursive bool

	// DryRun computes and reports renames without touching the filesystem.
	DryRun bool
}

// Action is one planned or performed rename. Renames stay within the file's
// own parent directory.
type Action struct {
	// Dir is the parent directory of the file.
	Dir string `json:"dir"`

	// OldName is the basename before the rename.
	OldName string `json:"old_name"`

	// NewName is the collision-resolved basename after the rename.
	NewName string `json:"new_name"`
}

// Result summarizes a rename pass. Counters live here rather than in
// process-wide state.
type Result struct {
	// DryRun reports whether the pass left the filesystem untouched.
	DryRun bool `json:"dry_run"`

	// Actions lists the renames in processing order. In dry-run mode these
	// were planned, not performed.
	Actions []Action `json:"actions"`

	// Renamed is the number of renames performed (or planned in dry-run).
	Renamed int `json:"renamed"`

	// Unchanged is the number of candidates left untouched.
	Unchanged int `json:"unchanged"`
}
