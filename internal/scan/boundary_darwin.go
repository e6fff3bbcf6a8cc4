//go:build darwin

package scan

import "golang.org/x/sys/unix"

// platformMounts enumerates the kernel's mount table via getfsstat(2),
// the native macOS call (exposed by golang.org/x/sys/unix as
// Getfsstat) — the only call that correctly reflects APFS
// firmlink-adjacent mounts. Two-pass: first call sizes the buffer,
// second fills it.
func platformMounts() []string {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil || n <= 0 {
		return nil
	}

	buf := make([]unix.Statfs_t, n)

	n, err = unix.Getfsstat(buf, unix.MNT_NOWAIT)
	if err != nil {
		return nil
	}

	mounts := make([]string, 0, n)

	for _, st := range buf[:n] {
		mounts = append(mounts, cString(st.Mntonname[:]))
	}

	return mounts
}

func cString(b []int8) string {
	n := 0

	for n < len(b) && b[n] != 0 {
		n++
	}

	out := make([]byte, n)
	for i := range out {
		out[i] = byte(b[i])
	}

	return string(out)
}
