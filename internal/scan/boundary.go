package scan

import (
	"path/filepath"
	"strings"
)

// defaultFirmlinkMap is the illustrative default split-volume layout:
// installed path -> relative path beneath a data root.
var defaultFirmlinkMap = map[string]string{
	"/AppleInternal":                     "AppleInternal",
	"/Applications":                      "Applications",
	"/Library":                           "Library",
	"/System/Library/Caches":             "System/Library/Caches",
	"/System/Library/Assets":             "System/Library/Assets",
	"/System/Library/PreinstalledAssets": "System/Library/PreinstalledAssets",
	"/System/Library/AssetsV2":           "System/Library/AssetsV2",
	"/System/Library/PreinstalledAssetsV2": "System/Library/PreinstalledAssetsV2",
	"/System/Library/CoreServices/CoreTypes.bundle/Contents/Library": "System/Library/CoreServices/CoreTypes.bundle/Contents/Library",
	"/System/Library/Speech": "System/Library/Speech",
	"/Users":                 "Users",
	"/Volumes":               "Volumes",
	"/cores":                 "cores",
	"/opt":                   "opt",
	"/private":               "private",
	"/usr/local":             "usr/local",
	"/usr/libexec/cups":      "usr/libexec/cups",
	"/usr/share/snmp":        "usr/share/snmp",
}

// defaultDataRoots is the illustrative data-volume mount point of the
// target layout.
var defaultDataRoots = []string{"/System/Volumes/Data"}

// boundaryOracle answers the three orthogonal filesystem-boundary
// predicates (mount membership, firmlink coverage, root-child aliasing),
// computed once from process-wide state established at scan start and
// thereafter read-only.
type boundaryOracle struct {
	mounts    []string // mount-table order, excludes "/"
	firmlinks map[string]string
	dataRoots []string
}

// newBoundaryOracle enumerates the platform mount table and installs the
// firmlink map / data-root list (overridable via Config).
func newBoundaryOracle(cfg Config) *boundaryOracle {
	firmlinks := cfg.FirmlinkMap
	if firmlinks == nil {
		firmlinks = defaultFirmlinkMap
	}

	dataRoots := cfg.DataRoots
	if dataRoots == nil {
		dataRoots = defaultDataRoots
	}

	mounts := platformMounts()
	filtered := make([]string, 0, len(mounts))

	for _, m := range mounts {
		m = filepath.Clean(m)
		if m == "/" {
			continue
		}

		filtered = append(filtered, m)
	}

	return &boundaryOracle{mounts: filtered, firmlinks: firmlinks, dataRoots: dataRoots}
}

// IsMount reports whether path is itself a mount-table root.
func (o *boundaryOracle) IsMount(path string) bool {
	path = filepath.Clean(path)
	for _, m := range o.mounts {
		if m == path {
			return true
		}
	}

	return false
}

// IsSubOfAnyMount reports whether path lies strictly beneath some
// non-root mount point.
func (o *boundaryOracle) IsSubOfAnyMount(path string) bool {
	path = filepath.Clean(path)
	for _, m := range o.mounts {
		if strings.HasPrefix(path, m+string(filepath.Separator)) {
			return true
		}
	}

	return false
}

// CoveredByFirmlink reports whether path lies under a data root and, once
// the data-root prefix is stripped, equals or descends into one of the
// firmlink values.
func (o *boundaryOracle) CoveredByFirmlink(path string) bool {
	path = filepath.Clean(path)

	for _, root := range o.dataRoots {
		root = filepath.Clean(root)
		if path != root && !strings.HasPrefix(path, root+string(filepath.Separator)) {
			continue
		}

		rel := strings.TrimPrefix(path, root)
		rel = strings.TrimPrefix(rel, string(filepath.Separator))

		for _, target := range o.firmlinks {
			if rel == target || strings.HasPrefix(rel, target+string(filepath.Separator)) {
				return true
			}
		}
	}

	return false
}

// AliasesRootChild reports whether a top-level path "/<basename>"
// resolves to the same inode as path, detecting the firmlink mirror of a
// top-level directory onto the data volume.
func (o *boundaryOracle) AliasesRootChild(path string) bool {
	path = filepath.Clean(path)

	candidate := "/" + basename(path)
	if candidate == path {
		return false
	}

	return sameInode(path, candidate)
}

// DeviceOf returns the device id containing path.
func (o *boundaryOracle) DeviceOf(path string) (uint64, bool) {
	return deviceOf(path)
}
