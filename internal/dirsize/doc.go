// Package dirsize computes the aggregate size of the immediate children of a directory.
//
// Each top-level subdirectory is walked depth-first and synchronously, summing
// the sizes reported by the filesystem (directory inodes included) up to a
// maximum depth. Entries that cannot be read contribute nothing and are
// reported as partial failures instead of aborting the walk.
package dirsize
