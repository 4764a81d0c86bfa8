package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRunsJobAfterDelay(t *testing.T) {
	done := make(chan time.Time, 1)
	q := NewQueue("test", func(ctx context.Context, job Job) error {
		done <- time.Now()
		return nil
	}, QueueConfig{Workers: 1})
	q.Start(context.Background())
	defer q.Stop()

	start := time.Now()
	require.NoError(t, q.Enqueue(Job{ID: "1", Kind: "weekly-summary", Delay: 20 * time.Millisecond}))

	select {
	case ranAt := <-done:
		assert.GreaterOrEqual(t, ranAt.Sub(start), 20*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}
}

func TestQueueRetriesFailedJob(t *testing.T) {
	var calls int32
	done := make(chan struct{})
	q := NewQueue("retry", func(ctx context.Context, job Job) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			return errors.New("transient")
		}
		close(done)
		return nil
	}, QueueConfig{Workers: 1, MaxRetries: 1, RetryDelay: 5 * time.Millisecond})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "1"}))

	select {
	case <-done:
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	case <-time.After(time.Second):
		t.Fatal("job was not retried")
	}
}

func TestQueueEnqueueBeforeStart(t *testing.T) {
	q := NewQueue("idle", func(context.Context, Job) error { return nil }, QueueConfig{})

	assert.Error(t, q.Enqueue(Job{ID: "1"}))
}

func TestQueueEnqueueAfterStop(t *testing.T) {
	q := NewQueue("stopped", func(context.Context, Job) error { return nil }, QueueConfig{Workers: 1})
	q.Start(context.Background())
	q.Stop()

	assert.Error(t, q.Enqueue(Job{ID: "1"}))
	q.Stop()
}

func TestQueueDelayDoesNotHoldWorker(t *testing.T) {
	const delay = 150 * time.Millisecond
	var wg sync.WaitGroup
	q := NewQueue("delayed", func(ctx context.Context, job Job) error {
		wg.Done()
		return nil
	}, QueueConfig{Workers: 1})
	q.Start(context.Background())
	defer q.Stop()

	start := time.Now()
	for _, id := range []string{"1", "2", "3", "4"} {
		wg.Add(1)
		require.NoError(t, q.Enqueue(Job{ID: id, Delay: delay}))
	}
	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		assert.Less(t, time.Since(start), 2*delay)
	case <-time.After(2 * time.Second):
		t.Fatal("delayed jobs did not run")
	}
}

func TestQueueStopHandsPendingJobsToOnDrop(t *testing.T) {
	var (
		mu      sync.Mutex
		dropped []string
	)
	q := NewQueue("shutdown", func(context.Context, Job) error {
		t.Error("handler must not run")
		return nil
	}, QueueConfig{Workers: 1, OnDrop: func(job Job) {
		mu.Lock()
		dropped = append(dropped, job.ID)
		mu.Unlock()
	}})
	q.Start(context.Background())

	require.NoError(t, q.Enqueue(Job{ID: "a", Delay: time.Hour}))
	require.NoError(t, q.Enqueue(Job{ID: "b", Delay: time.Hour}))
	q.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"a", "b"}, dropped)
}
