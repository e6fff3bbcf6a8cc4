//go:build linux

package scan

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// fsMagicNames maps the handful of statfs(2) f_type magic numbers (see
// linux/magic.h) relevant to boundary detection; anything else is
// reported as a hex tag so callers still get a stable, comparable value.
var fsMagicNames = map[int64]string{
	0xEF53:     "ext4",
	0x58465342: "xfs",
	0x9123683E: "btrfs",
	0x01021994: "tmpfs",
	0x6969:     "nfs",
	0x65735546: "fuse",
	0x794C7630: "overlayfs",
	0x53464846: "smb",
}

// fsTypeName extracts the filesystem type name from a linux statfs
// result.
func fsTypeName(st unix.Statfs_t) string {
	if name, ok := fsMagicNames[int64(st.Type)]; ok {
		return name
	}

	return fmt.Sprintf("%#x", st.Type)
}
