package binding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRootNodeAccessorsAndRelease(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), make([]byte, 42), 0o644))

	resultHandle := Scan([]byte(dir), false, false, false)
	defer ReleaseResult(resultHandle)

	elapsed, ok := ElapsedMillis(resultHandle)
	require.True(t, ok)
	assert.GreaterOrEqual(t, elapsed, int64(0))

	rootHandle, ok := RootNode(resultHandle)
	require.True(t, ok)
	defer ReleaseNode(rootHandle)

	isDir, ok := IsDirectory(rootHandle)
	require.True(t, ok)
	assert.True(t, isDir)

	size, ok := Size(rootHandle)
	require.True(t, ok)
	assert.EqualValues(t, 42, size)

	count, ok := ChildrenCount(rootHandle)
	require.True(t, ok)
	require.Equal(t, 1, count)

	childHandle, ok := Child(rootHandle, 0)
	require.True(t, ok)
	defer ReleaseNode(childHandle)

	path, ok := Path(childHandle)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "a"), path)
}

func TestChildOutOfRangeReportsMissing(t *testing.T) {
	dir := t.TempDir()

	resultHandle := Scan([]byte(dir), false, false, false)
	defer ReleaseResult(resultHandle)

	rootHandle, ok := RootNode(resultHandle)
	require.True(t, ok)
	defer ReleaseNode(rootHandle)

	_, ok = Child(rootHandle, 0)
	assert.False(t, ok)
}

func TestReleasedResultHandleIsInvalid(t *testing.T) {
	dir := t.TempDir()

	resultHandle := Scan([]byte(dir), false, false, false)
	ReleaseResult(resultHandle)

	_, ok := RootNode(resultHandle)
	assert.False(t, ok)
}
