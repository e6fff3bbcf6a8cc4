//go:build !linux && !darwin

package scan

import "os"

// allocatedSize has no portable equivalent outside POSIX hosts exposing
// per-file allocation attributes; falls back to logical size rounded up
// to a 4KiB block.
func allocatedSize(path string) (uint64, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}

	const blockSize = 4096

	size := clampNonNegative(info.Size())
	blocks := (size + blockSize - 1) / blockSize

	return uint64(blocks * blockSize), true
}

// sameInode is unsupported outside POSIX hosts; always false.
func sameInode(string, string) bool { return false }

// deviceOf is unsupported outside POSIX hosts; always unavailable.
func deviceOf(string) (uint64, bool) { return 0, false }

// fsType is unsupported outside POSIX hosts; always empty.
func fsType(string) string { return "" }

// readable falls back to a try-open check, since permission bits aren't
// queryable uniformly off POSIX.
func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}

	_ = f.Close()

	return true
}
