package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirBuilderFinalizeOrdering(t *testing.T) {
	b := newDirBuilder("/tmp/ut/tie")
	b.attach(newFileLeaf("/tmp/ut/tie/b", 5, kindFile))
	b.attach(newFileLeaf("/tmp/ut/tie/a", 5, kindFile))

	node := b.finalize(false, false)

	require.Equal(t, 2, node.ChildrenCount())
	assert.EqualValues(t, 10, node.Size())
	assert.Equal(t, "/tmp/ut/tie/a", node.Child(0).Path())
	assert.Equal(t, "/tmp/ut/tie/b", node.Child(1).Path())
}

func TestDirBuilderFinalizeSizeDescending(t *testing.T) {
	b := newDirBuilder("/tmp/ut/d")
	b.attach(newFileLeaf("/tmp/ut/d/f1", 10, kindFile))
	b.attach(newFileLeaf("/tmp/ut/d/f2", 30, kindFile))

	node := b.finalize(false, false)

	require.Equal(t, 2, node.ChildrenCount())
	assert.EqualValues(t, 40, node.Size())
	assert.Equal(t, "/tmp/ut/d/f2", node.Child(0).Path())
	assert.Equal(t, "/tmp/ut/d/f1", node.Child(1).Path())
}

func TestDirBuilderAttachIgnoresNil(t *testing.T) {
	b := newDirBuilder("/tmp/ut")
	b.attach(nil)
	b.attach(newFileLeaf("/tmp/ut/a", 3, kindFile))

	node := b.finalize(false, false)

	assert.Equal(t, 1, node.ChildrenCount())
	assert.EqualValues(t, 3, node.Size())
}

func TestDirBuilderFinalizeRootOnlyPrunesChildrenButKeepsSize(t *testing.T) {
	b := newDirBuilder("/tmp/ut")
	b.attach(newFileLeaf("/tmp/ut/a", 7, kindFile))
	b.attach(newFileLeaf("/tmp/ut/b", 3, kindFile))

	node := b.finalize(true, true)

	assert.Equal(t, 0, node.ChildrenCount())
	assert.EqualValues(t, 10, node.Size())
}

func TestDirBuilderFinalizeRootOnlyDoesNotAffectNonRoot(t *testing.T) {
	b := newDirBuilder("/tmp/ut/sub")
	b.attach(newFileLeaf("/tmp/ut/sub/a", 7, kindFile))

	node := b.finalize(true, false)

	assert.Equal(t, 1, node.ChildrenCount())
}

func TestSelfSizeSeedsDirectoryTotal(t *testing.T) {
	b := newDirBuilder("/tmp/ut/d")
	b.seedSelfSize(64)
	b.attach(newFileLeaf("/tmp/ut/d/f1", 10, kindFile))

	node := b.finalize(false, false)

	assert.EqualValues(t, 74, node.Size())
}

func TestBasename(t *testing.T) {
	assert.Equal(t, "Applications", basename("/Applications"))
	assert.Equal(t, "foo", basename("/a/b/foo"))
}
