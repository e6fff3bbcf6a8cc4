//go:build linux || darwin

package scan

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// allocatedSize returns the kernel's per-file allocation attribute:
// syscall.Stat_t.Blocks is always counted in 512-byte units regardless of
// the filesystem's own block size. Failure returns (0, false).
func allocatedSize(path string) (uint64, bool) {
	var st syscall.Stat_t
	if err := syscall.Lstat(path, &st); err != nil {
		return 0, false
	}

	return uint64(st.Blocks) * 512, true //nolint:mnd // 512-byte blocks is a POSIX stat(2) constant, not a tunable
}

// sameInode lstats both paths and reports true iff both succeed and their
// inode and device numbers match; used for hard-link alias detection.
func sameInode(a, b string) bool {
	var sa, sb syscall.Stat_t
	if err := syscall.Lstat(a, &sa); err != nil {
		return false
	}

	if err := syscall.Lstat(b, &sb); err != nil {
		return false
	}

	return sa.Ino == sb.Ino && sa.Dev == sb.Dev
}

// deviceOf implements `device_of(path)`.
func deviceOf(path string) (uint64, bool) {
	var st syscall.Stat_t
	if err := syscall.Lstat(path, &st); err != nil {
		return 0, false
	}

	return uint64(st.Dev), true //nolint:unconvert // Dev's width varies by GOARCH
}

// fsType implements `fs_type(path)`: the filesystem type name containing
// path, empty on failure.
func fsType(path string) string {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return ""
	}

	return fsTypeName(st)
}

// readable reports whether path is readable by the current process via a
// permission-bit check — side-effect-free, holding no extra file
// descriptor open during high-fanout traversal.
func readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
