//go:build linux || darwin

package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeInfoRegularFileLogicalSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	writeFile(t, path, 123)

	size, isDir := probeInfo(path, false)

	assert.EqualValues(t, 123, size)
	assert.False(t, isDir)
}

func TestProbeInfoSymlinkSizedByTargetLength(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink("/etc/passwd", link))

	size, isDir := probeInfo(link, true)

	assert.EqualValues(t, len("/etc/passwd"), size)
	assert.False(t, isDir)
}

func TestProbeInfoMissingPathReturnsZero(t *testing.T) {
	size, isDir := probeInfo(filepath.Join(t.TempDir(), "missing"), true)

	assert.EqualValues(t, 0, size)
	assert.False(t, isDir)
}

func TestIsSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink("/etc/passwd", link))

	plain := filepath.Join(dir, "plain")
	writeFile(t, plain, 1)

	assert.True(t, isSymlink(link))
	assert.False(t, isSymlink(plain))
	assert.False(t, isSymlink(filepath.Join(dir, "missing")))
}

func TestSymlinkTargetLen(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink("/etc/passwd", link))

	n, ok := symlinkTargetLen(link)

	require.True(t, ok)
	assert.EqualValues(t, len("/etc/passwd"), n)
}

func TestSameInodeMatchesIdenticalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	writeFile(t, path, 1)

	assert.True(t, sameInode(path, path))
}

func TestSameInodeDiffersForDistinctFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	writeFile(t, a, 1)
	writeFile(t, b, 1)

	assert.False(t, sameInode(a, b))
}

func TestReadableReflectsPermissionBits(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o000))

	defer os.Chmod(locked, 0o755) //nolint:errcheck // best-effort cleanup for t.TempDir removal

	assert.False(t, readable(locked))
	assert.True(t, readable(dir))
}

func TestClampNonNegative(t *testing.T) {
	assert.EqualValues(t, 0, clampNonNegative(-5))
	assert.EqualValues(t, 5, clampNonNegative(5))
}
