package scan

import "sync/atomic"

// scheduler is a bounded thread pool: a fixed number of worker lanes, a
// single atomic in-flight counter, and a non-blocking trySpawn that
// accepts work only while under the pool size, letting the discovering
// goroutine fall back to processing the task inline instead of blocking
// on a full queue.
type scheduler struct {
	limit    int32
	inFlight atomic.Int32
}

// newScheduler builds a scheduler with the given pool size, floored at
// one lane.
func newScheduler(limit int) *scheduler {
	if limit < 1 {
		limit = 1
	}

	return &scheduler{limit: int32(limit)} //nolint:gosec // limit is a small, caller-validated thread count
}

// trySpawn accepts task iff the in-flight count is below the pool size;
// on acceptance it increments the counter, launches task on its own
// goroutine, and decrements on completion. It reports whether the task
// was accepted; a rejected task must be run inline by the caller.
func (s *scheduler) trySpawn(task func()) bool {
	for {
		cur := s.inFlight.Load()
		if cur >= s.limit {
			return false
		}

		if s.inFlight.CompareAndSwap(cur, cur+1) {
			go func() {
				defer s.inFlight.Add(-1)
				task()
			}()

			return true
		}
	}
}
