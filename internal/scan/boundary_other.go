//go:build !linux && !darwin

package scan

// platformMounts has no implementation outside POSIX hosts exposing a
// mount-table enumeration call; reporting zero mounts means the
// mount/device skip rules never fire, leaving only the firmlink-coverage,
// entry-path-descent and dedup rules in effect.
func platformMounts() []string { return nil }
