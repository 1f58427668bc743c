// Package naming computes target filenames for conftidy.
//
// The transformer strips the @domain suffix from a filename stem; the
// resolver picks a collision-free final name within the target directory.
package naming
