package scan

import (
	"os"
	"time"
)

// Result is a scan result: a root node together with the elapsed
// wall-clock milliseconds from entry to the moment the tree becomes
// visible to the caller.
type Result struct {
	root    *Node
	elapsed time.Duration
}

// Root returns the scan's root node.
func (r *Result) Root() *Node { return r.root }

// ElapsedMillis returns the elapsed wall-clock time in milliseconds.
func (r *Result) ElapsedMillis() int64 { return r.elapsed.Milliseconds() }

// Scan is the single externally-visible entry point: given a path,
// root-only flag, include-self-size flag, and allocated-size-mode flag,
// it produces a scan result. Scan never fails — an unclassifiable or
// non-existent root yields a result whose root is an empty/zero-size
// node.
func Scan(path string, rootOnly, includeDirSelfSize, useAllocatedSize bool, opts ...Option) *Result {
	start := time.Now()

	cfg := defaultConfig()
	cfg.RootOnly = rootOnly
	cfg.IncludeDirectorySelfSize = includeDirSelfSize
	cfg.UseAllocatedSize = useAllocatedSize

	for _, opt := range opts {
		opt(&cfg)
	}

	ctx := newScanContext(path, cfg)
	ctx.progress = newProgressReporter(cfg.progressHook, cfg.progressTick)
	ctx.progress.start()

	root := dispatch(path, rootOnly, ctx)

	ctx.progress.finish()

	return &Result{root: root, elapsed: time.Since(start)}
}

// dispatch routes the scan root to the file-leaf builder or the walker.
func dispatch(path string, rootOnly bool, ctx *scanContext) *Node {
	info, err := os.Lstat(path)
	if err != nil {
		return newFileLeaf(path, 0, kindFile)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return symlinkLeaf(path)
	}

	if !info.IsDir() {
		size, _ := probeInfo(path, ctx.cfg.UseAllocatedSize)

		return newFileLeaf(path, size, kindFile)
	}

	sched := newScheduler(ctx.cfg.resolvedThreads())

	node := walkDir(path, 0, true, ctx, sched)
	if node == nil {
		// Suppressed by dedup/alias rules at the very root: a suppressed
		// subdirectory would normally contribute nothing, but a scan's
		// root must always yield a visible node. An empty zero-size node
		// preserves that contract.
		node = newDirBuilder(path).finalize(rootOnly, true)
	}

	return node
}
