// Package binding implements a stable, opaque-handle entry point for
// host-language consumers: a single Scan call returning a ResultHandle,
// with accessors and explicit Release calls on both result and node
// handles.
//
// This is the shape a cgo/SWIG/WASM export layer would sit on top of —
// that export layer itself is an external collaborator out of scope
// here, same as the CLI and formatter.
package binding

import (
	"sync"

	"github.com/nodestack/dirspace/internal/scan"
)

// ResultHandle is an opaque reference to a scan.Result owned by the
// package-level registry. The zero value is invalid.
type ResultHandle uint64

// NodeHandle is an opaque reference to a scan.Node. Every NodeHandle
// minted by Child is freshly owned and must be released independently of
// its parent.
type NodeHandle uint64

type registry struct {
	mu      sync.Mutex
	nextID  uint64
	results map[ResultHandle]*scan.Result
	nodes   map[NodeHandle]*scan.Node
}

var global = &registry{ //nolint:gochecknoglobals // single process-wide handle table, mirrors a C-ABI export surface
	results: make(map[ResultHandle]*scan.Result),
	nodes:   make(map[NodeHandle]*scan.Node),
}

func (r *registry) newID() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++

	return r.nextID
}

// Scan runs scan.Scan and returns an opaque handle to the result.
func Scan(path []byte, rootOnly, includeDirectorySelfSize, useAllocatedSize bool) ResultHandle {
	result := scan.Scan(string(path), rootOnly, includeDirectorySelfSize, useAllocatedSize)

	id := ResultHandle(global.newID())

	global.mu.Lock()
	global.results[id] = result
	global.mu.Unlock()

	return id
}

// RootNode returns a freshly-owned handle to the result's root node.
func RootNode(h ResultHandle) (NodeHandle, bool) {
	global.mu.Lock()
	result, ok := global.results[h]
	global.mu.Unlock()

	if !ok {
		return 0, false
	}

	return mintNode(result.Root()), true
}

// ElapsedMillis returns the elapsed wall-clock milliseconds for h.
func ElapsedMillis(h ResultHandle) (int64, bool) {
	global.mu.Lock()
	result, ok := global.results[h]
	global.mu.Unlock()

	if !ok {
		return 0, false
	}

	return result.ElapsedMillis(), true
}

// ReleaseResult frees a result handle. It does not release any node
// handles already minted from it — those are independently owned and
// must be released separately.
func ReleaseResult(h ResultHandle) {
	global.mu.Lock()
	delete(global.results, h)
	global.mu.Unlock()
}

// Path returns a node's absolute path.
func Path(h NodeHandle) (string, bool) {
	n, ok := lookupNode(h)
	if !ok {
		return "", false
	}

	return n.Path(), true
}

// Size returns a node's aggregated size in bytes.
func Size(h NodeHandle) (uint64, bool) {
	n, ok := lookupNode(h)
	if !ok {
		return 0, false
	}

	return n.Size(), true
}

// IsDirectory reports whether a node is a directory.
func IsDirectory(h NodeHandle) (bool, bool) {
	n, ok := lookupNode(h)
	if !ok {
		return false, false
	}

	return n.IsDir(), true
}

// ChildrenCount returns the number of a node's retained children.
func ChildrenCount(h NodeHandle) (int, bool) {
	n, ok := lookupNode(h)
	if !ok {
		return 0, false
	}

	return n.ChildrenCount(), true
}

// Child mints a freshly-owned handle to the i-th child of h.
func Child(h NodeHandle, i int) (NodeHandle, bool) {
	n, ok := lookupNode(h)
	if !ok || i < 0 || i >= n.ChildrenCount() {
		return 0, false
	}

	return mintNode(n.Child(i)), true
}

// ReleaseNode frees a node handle obtained either as a root node or via
// Child. Each handle is independently owned.
func ReleaseNode(h NodeHandle) {
	global.mu.Lock()
	delete(global.nodes, h)
	global.mu.Unlock()
}

func mintNode(n *scan.Node) NodeHandle {
	id := NodeHandle(global.newID())

	global.mu.Lock()
	global.nodes[id] = n
	global.mu.Unlock()

	return id
}

func lookupNode(h NodeHandle) (*scan.Node, bool) {
	global.mu.Lock()
	n, ok := global.nodes[h]
	global.mu.Unlock()

	return n, ok
}
