package scan

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerTrySpawnRespectsLimit(t *testing.T) {
	sched := newScheduler(1)

	release := make(chan struct{})
	started := make(chan struct{})

	accepted := sched.trySpawn(func() {
		close(started)
		<-release
	})
	assert.True(t, accepted)

	<-started

	rejected := sched.trySpawn(func() {})
	assert.False(t, rejected)

	close(release)
}

func TestSchedulerFloorsLimitAtOne(t *testing.T) {
	sched := newScheduler(0)

	assert.EqualValues(t, 1, sched.limit)
}

func TestSchedulerAllowsSequentialAcceptAfterCompletion(t *testing.T) {
	sched := newScheduler(1)

	var wg sync.WaitGroup
	wg.Add(1)

	accepted := sched.trySpawn(func() {
		defer wg.Done()
	})
	assert.True(t, accepted)

	wg.Wait()

	assert.Eventually(t, func() bool { return sched.inFlight.Load() == 0 }, time.Second, time.Millisecond)

	accepted = sched.trySpawn(func() {})
	assert.True(t, accepted)
}
