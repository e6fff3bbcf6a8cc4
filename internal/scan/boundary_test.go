package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestOracle() *boundaryOracle {
	return &boundaryOracle{
		mounts:    []string{"/mnt/data", "/Volumes/Backup"},
		firmlinks: map[string]string{"/Applications": "Applications", "/Users": "Users"},
		dataRoots: []string{"/System/Volumes/Data"},
	}
}

func TestIsMount(t *testing.T) {
	o := newTestOracle()

	assert.True(t, o.IsMount("/mnt/data"))
	assert.False(t, o.IsMount("/mnt/data/sub"))
	assert.False(t, o.IsMount("/"))
}

func TestIsSubOfAnyMount(t *testing.T) {
	o := newTestOracle()

	assert.True(t, o.IsSubOfAnyMount("/mnt/data/sub/dir"))
	assert.False(t, o.IsSubOfAnyMount("/mnt/data"))
	assert.False(t, o.IsSubOfAnyMount("/etc"))
}

func TestCoveredByFirmlink(t *testing.T) {
	o := newTestOracle()

	assert.True(t, o.CoveredByFirmlink("/System/Volumes/Data/Applications"))
	assert.True(t, o.CoveredByFirmlink("/System/Volumes/Data/Applications/Foo.app"))
	assert.False(t, o.CoveredByFirmlink("/System/Volumes/Data/cores"))
	assert.False(t, o.CoveredByFirmlink("/etc"))
}

func TestNewBoundaryOracleExcludesRootMount(t *testing.T) {
	o := newBoundaryOracle(Config{})

	for _, m := range o.mounts {
		assert.NotEqual(t, "/", m)
	}
}

func TestNewBoundaryOracleHonorsConfigOverrides(t *testing.T) {
	custom := map[string]string{"/custom": "custom"}
	roots := []string{"/custom-data"}

	o := newBoundaryOracle(Config{FirmlinkMap: custom, DataRoots: roots})

	assert.Equal(t, custom, o.firmlinks)
	assert.Equal(t, roots, o.dataRoots)
}
