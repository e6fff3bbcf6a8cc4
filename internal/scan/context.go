package scan

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// scanContext is the process-wide, one-instance-per-scan state: the entry
// path, its filesystem type tag, the boundary oracle snapshot, and the
// mutable visited-paths set used solely for cycle avoidance.
//
// Every field below is either set once before traversal starts and never
// mutated again (entryPath, entryFSType, oracle, cfg), or is shared
// mutable state with its own dedicated lock (visited).
type scanContext struct {
	cfg Config

	entryPath   string
	entryFSType string
	oracle      *boundaryOracle

	log *logrus.Entry

	visitedMu sync.Mutex
	visited   map[string]struct{}

	entryPathOnce sync.Once

	progress *progressReporter
}

func newScanContext(entryPath string, cfg Config) *scanContext {
	return &scanContext{
		cfg:         cfg,
		entryPath:   entryPath,
		entryFSType: fsType(entryPath),
		oracle:      newBoundaryOracle(cfg),
		log:         cfg.logger,
		visited:     make(map[string]struct{}),
	}
}

// recordEntryPathOnce records the first path ever evaluated as the entry
// path. In this implementation the entry path is already fixed at context
// construction, so this only guards against ever overwriting it.
func (c *scanContext) recordEntryPathOnce(path string) {
	c.entryPathOnce.Do(func() {
		if c.entryPath == "" {
			c.entryPath = path
		}
	})
}

// markVisited inserts path into the dedup set under its dedicated lock. It
// reports whether path was newly inserted (false means a duplicate, which
// the walker treats as "nothing": no size and no child).
func (c *scanContext) markVisited(path string) bool {
	c.visitedMu.Lock()
	defer c.visitedMu.Unlock()

	if _, seen := c.visited[path]; seen {
		return false
	}

	c.visited[path] = struct{}{}

	return true
}
