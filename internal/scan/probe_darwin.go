//go:build darwin

package scan

import "golang.org/x/sys/unix"

// fsTypeName extracts the filesystem type name from a darwin statfs
// result, whose Fstypename field is already a human-readable C string
// ("apfs", "hfs", "msdos", ...), unlike Linux's numeric magic number.
func fsTypeName(st unix.Statfs_t) string {
	n := 0

	for n < len(st.Fstypename) && st.Fstypename[n] != 0 {
		n++
	}

	b := make([]byte, n)
	for i := range b {
		b[i] = byte(st.Fstypename[i])
	}

	return string(b)
}
