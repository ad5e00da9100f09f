package gr

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingJob struct {
	n       int32
	counter *int32
	queue   *WorkQueue
}

func (j *countingJob) Run(state *GlobalState) {
	atomic.AddInt32(j.counter, 1)
	if j.n > 0 {
		j.queue.Push(&countingJob{n: j.n - 1, counter: j.counter, queue: j.queue})
	}
}

func TestWorkQueueRunsAllJobsIncludingSpawned(t *testing.T) {
	q := NewWorkQueue()
	var counter int32
	q.Push(&countingJob{n: 5, counter: &counter, queue: q})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.RunUntilDrained(nil)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 6, counter)
}

func TestWorkQueueTerminatesWithNoJobs(t *testing.T) {
	q := NewWorkQueue()
	done := make(chan struct{})
	go func() {
		q.RunUntilDrained(nil)
		close(done)
	}()
	<-done
}

type blockingJob struct {
	release chan struct{}
	ran     *int32
}

func (j *blockingJob) Run(state *GlobalState) {
	<-j.release
	atomic.AddInt32(j.ran, 1)
}

func TestWorkQueuePendingReflectsInFlightJobs(t *testing.T) {
	q := NewWorkQueue()
	release := make(chan struct{})
	var ran int32
	q.Push(&blockingJob{release: release, ran: &ran})

	workerDone := make(chan struct{})
	go func() {
		q.RunUntilDrained(nil)
		close(workerDone)
	}()

	// The job is running but hasn't returned, so pending is still 1 and the
	// worker must not have observed a quiesced queue.
	select {
	case <-workerDone:
		t.Fatal("worker exited before the in-flight job released")
	default:
	}

	close(release)
	<-workerDone
	assert.EqualValues(t, 1, ran)
}
