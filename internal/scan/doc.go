// Package scan implements the parallel bounded-fan-out directory walker
// that computes on-disk space usage for a file, directory, or subtree.
//
// It probes per-entry allocation size, honors filesystem-boundary rules
// (mount points, APFS firmlinks, hard-link aliases, symbolic links),
// and returns a deterministically-ordered, cycle-free size tree together
// with the wall-clock cost of the traversal.
package scan
