//go:build linux

package scan

import "github.com/moby/sys/mountinfo"

// platformMounts enumerates /proc/self/mountinfo via
// github.com/moby/sys/mountinfo. Linux has no firmlink concept, so this
// only ever feeds the mount-point/device rules of the skip policy, never
// the firmlink-coverage rule.
func platformMounts() []string {
	infos, err := mountinfo.GetMounts(nil)
	if err != nil {
		return nil
	}

	mounts := make([]string, 0, len(infos))
	for _, m := range infos {
		mounts = append(mounts, m.Mountpoint)
	}

	return mounts
}
