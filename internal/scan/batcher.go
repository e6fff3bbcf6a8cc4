package scan

import "io/fs"

// entryBatcher accumulates directory entries into fixed-size batches as
// they stream off the iterator, so the walker can classify and dispatch
// work in entry-count-bounded chunks rather than one at a time.
type entryBatcher struct {
	pending []fs.DirEntry
	size    int
}

func newEntryBatcher(size int) *entryBatcher {
	if size < 1 {
		size = DefaultBatchSize
	}

	return &entryBatcher{pending: make([]fs.DirEntry, 0, size), size: size}
}

// add appends an entry to the current batch.
func (b *entryBatcher) add(e fs.DirEntry) {
	b.pending = append(b.pending, e)
}

// ready reports whether the batch has reached its size and should be
// drained.
func (b *entryBatcher) ready() bool {
	return len(b.pending) >= b.size
}

// len returns the number of pending entries.
func (b *entryBatcher) len() int {
	return len(b.pending)
}

// flush returns the pending entries as a batch and resets the batcher.
// After the iterator ends, the walker calls flush once more to drain any
// partial batch.
func (b *entryBatcher) flush() []fs.DirEntry {
	if len(b.pending) == 0 {
		return nil
	}

	batch := b.pending
	b.pending = make([]fs.DirEntry, 0, b.size)

	return batch
}
