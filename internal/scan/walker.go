package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// walkDir runs the per-directory enter/classify/iterate/join/finalize
// state machine. It returns nil when the directory is suppressed
// entirely (hard-link alias or duplicate path) — the caller must drop a
// nil result silently, contributing no size and no child.
func walkDir(path string, depth int, isRoot bool, ctx *scanContext, sched *scheduler) *Node {
	builder := newDirBuilder(path)

	// 1. Enter.
	if !readable(path) {
		return builder.finalize(ctx.cfg.RootOnly, isRoot)
	}

	// 2. Classify self.
	if isSymlink(path) {
		return symlinkLeaf(path)
	}

	if _, err := os.Lstat(path); err != nil {
		return builder.finalize(ctx.cfg.RootOnly, isRoot)
	}

	if skip(path, ctx) {
		return builder.finalize(ctx.cfg.RootOnly, isRoot)
	}

	if ctx.oracle.AliasesRootChild(path) {
		return nil
	}

	// 3. Deduplicate.
	if !ctx.markVisited(path) {
		return nil
	}

	// 4. Self-size.
	if ctx.cfg.IncludeDirectorySelfSize {
		builder.seedSelfSize(selfSize(path))
	}

	// 5. Iterate.
	entries, err := fastwalk.ReadDir(path)
	if err != nil {
		ctx.log.WithError(err).WithField("path", path).Debug("readdir failed, keeping partial directory")

		return builder.finalize(ctx.cfg.RootOnly, isRoot)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make([]*Node, 0, len(entries))
	)

	collect := func(n *Node) {
		mu.Lock()
		results = append(results, n)
		mu.Unlock()
	}

	drain := func(batch []fs.DirEntry) {
		for _, entry := range batch {
			processEntry(filepath.Join(path, entry.Name()), entry, depth, ctx, sched, &wg, collect)
		}
	}

	batch := newEntryBatcher(int(ctx.cfg.BatchSize))
	for _, entry := range entries {
		batch.add(entry)
		if batch.ready() {
			drain(batch.flush())
		}
	}

	if rest := batch.flush(); rest != nil {
		drain(rest)
	}

	// 6. Join.
	wg.Wait()

	for _, child := range results {
		builder.attach(child)
	}

	// 7. Finalize.
	return builder.finalize(ctx.cfg.RootOnly, isRoot)
}

// processEntry classifies a single directory entry and either attaches a
// leaf directly or schedules/recurses into a sub-directory.
func processEntry(
	entryPath string,
	entry fs.DirEntry,
	depth int,
	ctx *scanContext,
	sched *scheduler,
	wg *sync.WaitGroup,
	collect func(*Node),
) {
	if !readable(entryPath) {
		collect(newFileLeaf(entryPath, 0, leafKindOf(entry)))
		ctx.progress.recordFile(0)

		return
	}

	if entry.Type()&os.ModeSymlink != 0 {
		collect(symlinkLeaf(entryPath))
		ctx.progress.recordFile(0)

		return
	}

	if entry.IsDir() {
		recurse := func() {
			collect(walkDir(entryPath, depth+1, false, ctx, sched))
		}

		if depth < int(ctx.cfg.DepthCap) {
			wg.Add(1)

			accepted := sched.trySpawn(func() {
				defer wg.Done()
				recurse()
			})

			if !accepted {
				wg.Done()
				recurse()
			}
		} else {
			recurse()
		}

		return
	}

	// Regular file (or an unrecognized entry type, treated the same way:
	// probe its size and preserve path visibility).
	size, _ := probeInfo(entryPath, ctx.cfg.UseAllocatedSize)
	collect(newFileLeaf(entryPath, size, kindFile))
	ctx.progress.recordFile(size)
}

// symlinkLeaf builds a leaf sized as the link's own target-string length,
// never the target's size.
func symlinkLeaf(path string) *Node {
	size, _ := symlinkTargetLen(path)

	return newFileLeaf(path, size, kindSymlink)
}

func leafKindOf(entry fs.DirEntry) kind {
	if entry.Type()&os.ModeSymlink != 0 {
		return kindSymlink
	}

	if entry.IsDir() {
		return kindDir
	}

	return kindFile
}
