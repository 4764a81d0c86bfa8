package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job represents a queued background task.
type Job struct {
	ID      string
	Kind    string
	Payload interface{}
	// Delay postpones dispatch to a worker; it does not occupy a worker slot.
	Delay      time.Duration
	Attempt    int
	EnqueuedAt time.Time
}

// Handler processes a job.
type Handler func(context.Context, Job) error

// DropHandler receives jobs that were accepted but never handled because the
// queue stopped.
type DropHandler func(Job)

// QueueConfig configures worker pool behaviour.
type QueueConfig struct {
	Workers    int
	BufferSize int
	MaxRetries int
	RetryDelay time.Duration
	Logger     *zap.Logger
	OnDrop     DropHandler
}

type delayedJob struct {
	timer *time.Timer
	job   Job
}

// Queue is an in-memory job dispatcher backed by a fixed pool of goroutines.
type Queue struct {
	name    string
	handler Handler

	workers    int
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
	onDrop     DropHandler

	jobs        chan Job
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	dispatching sync.WaitGroup
	mu          sync.Mutex
	started     bool
	seq         uint64
	delayed     map[uint64]delayedJob
}

// NewQueue builds a new queue with the provided handler.
func NewQueue(name string, handler Handler, cfg QueueConfig) *Queue {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = cfg.Workers * 8
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Queue{
		name:       name,
		handler:    handler,
		workers:    cfg.Workers,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     cfg.Logger,
		onDrop:     cfg.OnDrop,
		jobs:       make(chan Job, cfg.BufferSize),
		delayed:    make(map[uint64]delayedJob),
	}
}

// Start begins worker consumption. Calls after the first are no-ops.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.ctx, q.cancel = context.WithCancel(ctx)
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i + 1)
	}
	q.started = true
	q.logger.Sugar().Infow("queue started", "queue", q.name, "workers", q.workers)
}

// Stop cancels workers and waits for them to exit. Jobs still buffered or
// waiting out their delay go to OnDrop. Enqueue fails afterwards.
func (q *Queue) Stop() {
	q.mu.Lock()
	if !q.started {
		q.mu.Unlock()
		return
	}
	q.cancel()
	q.started = false
	var dropped []Job
	for id, d := range q.delayed {
		d.timer.Stop()
		dropped = append(dropped, d.job)
		delete(q.delayed, id)
	}
	q.mu.Unlock()

	q.wg.Wait()
	q.dispatching.Wait()
drain:
	for {
		select {
		case job := <-q.jobs:
			dropped = append(dropped, job)
		default:
			break drain
		}
	}
	for _, job := range dropped {
		q.drop(job)
	}
	q.logger.Sugar().Infow("queue stopped", "queue", q.name, "dropped", len(dropped))
}

// Enqueue pushes a job onto the queue. A job with a Delay is held on a timer
// and dispatched once it elapses.
func (q *Queue) Enqueue(job Job) error {
	q.mu.Lock()
	if !q.started {
		q.mu.Unlock()
		return fmt.Errorf("queue %s not started", q.name)
	}
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now().UTC()
	}
	ctx := q.ctx
	if job.Delay > 0 {
		q.schedule(ctx, job)
		q.mu.Unlock()
		return nil
	}
	q.dispatching.Add(1)
	q.mu.Unlock()

	defer q.dispatching.Done()
	if !q.dispatch(ctx, job) {
		return fmt.Errorf("queue %s stopped: %w", q.name, ctx.Err())
	}
	return nil
}

// schedule arms a timer for job. q.mu must be held.
func (q *Queue) schedule(ctx context.Context, job Job) {
	q.seq++
	id := q.seq
	timer := time.AfterFunc(job.Delay, func() {
		q.mu.Lock()
		_, owned := q.delayed[id]
		if owned {
			delete(q.delayed, id)
			q.dispatching.Add(1)
		}
		q.mu.Unlock()
		if !owned {
			return
		}
		defer q.dispatching.Done()
		if !q.dispatch(ctx, job) {
			q.drop(job)
		}
	})
	q.delayed[id] = delayedJob{timer: timer, job: job}
}

// dispatch hands job to the workers and reports false when the queue stopped.
func (q *Queue) dispatch(ctx context.Context, job Job) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case q.jobs <- job:
		return true
	}
}

func (q *Queue) drop(job Job) {
	q.logger.Sugar().Warnw("job dropped", "queue", q.name, "job_id", job.ID, "kind", job.Kind)
	if q.onDrop != nil {
		q.onDrop(job)
	}
}

func (q *Queue) worker(workerID int) {
	defer q.wg.Done()
	for {
		select {
		case <-q.ctx.Done():
			return
		case job := <-q.jobs:
			if err := q.handler(q.ctx, job); err != nil {
				q.handleFailure(workerID, job, err)
			}
		}
	}
}

func (q *Queue) handleFailure(workerID int, job Job, err error) {
	job.Attempt++
	if job.Attempt > q.maxRetries {
		q.logger.Sugar().Errorw("job failed", "queue", q.name, "worker", workerID, "job_id", job.ID, "kind", job.Kind, "attempts", job.Attempt, "error", err)
		return
	}
	q.logger.Sugar().Warnw("job failed, retrying", "queue", q.name, "worker", workerID, "job_id", job.ID, "kind", job.Kind, "attempt", job.Attempt, "error", err)

	job.Delay = q.retryDelay
	if err := q.Enqueue(job); err != nil {
		q.logger.Sugar().Errorw("failed to requeue job", "queue", q.name, "job_id", job.ID, "error", err)
		q.drop(job)
	}
}
