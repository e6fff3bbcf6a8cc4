package scan

import "os"

// isSymlink reports whether path is a symbolic link. Any failure is
// reported as false.
func isSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeSymlink != 0
}

// probeInfo implements the `info(path)` operation: lstat the path; if it
// is a symlink, return the link-target string length without following;
// otherwise honor allocated-size mode. An lstat or readlink failure returns
// {0, false}; a failed allocated-size query returns size 0 with isDir
// still taken from lstat.
func probeInfo(path string, useAllocatedSize bool) (size uint64, isDir bool) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, false
	}

	if info.Mode()&os.ModeSymlink != 0 {
		target, err := os.Readlink(path)
		if err != nil {
			return 0, false
		}

		return uint64(len(target)), false
	}

	if useAllocatedSize {
		if blocks, ok := allocatedSize(path); ok {
			return blocks, info.IsDir()
		}

		return 0, info.IsDir()
	}

	size = uint64(clampNonNegative(info.Size()))

	return size, info.IsDir()
}

// selfSize implements the `self_size(path)` operation: the stat-equivalent
// logical size field of the directory entry itself, used to seed a
// directory node's self-size contribution. Failure returns 0.
func selfSize(path string) uint64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}

	return uint64(clampNonNegative(info.Size()))
}

// symlinkTargetLen implements the leaf-sizing rule for a symlink: the
// length in bytes of its target string, never the target's size.
func symlinkTargetLen(path string) (uint64, bool) {
	target, err := os.Readlink(path)
	if err != nil {
		return 0, false
	}

	return uint64(len(target)), true
}

func clampNonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}

	return n
}
