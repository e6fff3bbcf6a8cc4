package scan

import (
	"path/filepath"
	"sort"
)

// kind discriminates the inode type a Node was built from; IsDir and
// IsSymlink are both derived from it.
type kind uint8

const (
	kindFile kind = iota
	kindDir
	kindSymlink
)

// Node is an immutable size-tree node. Once returned from the walker it is
// never mutated; children are ordered by size descending, path ascending.
type Node struct {
	path     string
	size     uint64
	kind     kind
	children []*Node
}

// Path returns the node's absolute path.
func (n *Node) Path() string { return n.path }

// Size returns the node's aggregated size in bytes.
func (n *Node) Size() uint64 { return n.size }

// IsDir reports whether the node represents a directory.
func (n *Node) IsDir() bool { return n.kind == kindDir }

// IsSymlink reports whether the node represents a symbolic link leaf.
func (n *Node) IsSymlink() bool { return n.kind == kindSymlink }

// ChildrenCount returns the number of retained children.
func (n *Node) ChildrenCount() int { return len(n.children) }

// Child returns the i-th child in finalized order.
func (n *Node) Child(i int) *Node { return n.children[i] }

// newFileLeaf builds a finalized, childless leaf node for a regular file,
// symlink, or a failed probe (size 0, path still preserved).
func newFileLeaf(path string, size uint64, k kind) *Node {
	return &Node{path: path, size: size, kind: k}
}

// dirBuilder accumulates a directory node's children and self-size while
// traversal of that directory is in flight. It is not safe for concurrent
// use by multiple goroutines simultaneously; each directory is owned by
// exactly one goroutine at a time.
type dirBuilder struct {
	path     string
	size     uint64
	children []*Node
}

func newDirBuilder(path string) *dirBuilder {
	return &dirBuilder{path: path}
}

// seedSelfSize adds the directory entry's own reported size, when the
// scan-wide include-self-size option is enabled.
func (b *dirBuilder) seedSelfSize(size uint64) {
	b.size += size
}

// attach adds a finalized child and folds its size into the running total.
func (b *dirBuilder) attach(child *Node) {
	if child == nil {
		return
	}

	b.size += child.size
	b.children = append(b.children, child)
}

// finalize sorts children by (size descending, path ascending) and, if
// rootOnly is set and this directory is the scan root, discards them —
// the aggregated size is kept regardless.
func (b *dirBuilder) finalize(rootOnly, isRoot bool) *Node {
	sort.Slice(b.children, func(i, j int) bool {
		ci, cj := b.children[i], b.children[j]
		if ci.size != cj.size {
			return ci.size > cj.size
		}

		return ci.path < cj.path
	})

	children := b.children
	if rootOnly && isRoot {
		children = nil
	}

	return &Node{
		path:     b.path,
		size:     b.size,
		kind:     kindDir,
		children: children,
	}
}

// basename returns the last element of path; AliasesRootChild uses it to
// build the top-level "/<basename>" candidate.
func basename(path string) string {
	return filepath.Base(path)
}
