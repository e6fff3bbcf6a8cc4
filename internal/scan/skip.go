package scan

import (
	"path/filepath"
	"strings"
)

// skip decides whether traversal should refuse to descend into path: it
// checks firmlink coverage, then mount-boundary membership, then
// secondary-mount/device rules, each evaluated in order against the
// recorded entry path.
func skip(path string, ctx *scanContext) bool {
	if ctx.oracle.CoveredByFirmlink(path) {
		ctx.log.WithField("path", path).Debug("skip: covered by firmlink")

		return true
	}

	ctx.recordEntryPathOnce(path)

	entry := ctx.entryPath

	if ctx.oracle.IsMount(path) {
		beneath := path != entry && strings.HasPrefix(path, entry+string(filepath.Separator))
		if beneath {
			ctx.log.WithField("path", path).Debug("skip: mount strictly beneath entry path")
		}

		return beneath
	}

	if ctx.oracle.IsSubOfAnyMount(path) {
		pathDev, pathOK := ctx.oracle.DeviceOf(path)
		entryDev, entryOK := ctx.oracle.DeviceOf(entry)

		if pathOK && entryOK && pathDev == entryDev {
			return false
		}

		if strings.HasPrefix(path, entry+string(filepath.Separator)) && ctx.oracle.IsMount(entry) {
			return false
		}

		ctx.log.WithField("path", path).Debug("skip: secondary mount outside entry device")

		return true
	}

	return false
}
