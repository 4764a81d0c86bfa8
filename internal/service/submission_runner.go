package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aphrc/internship-tracker/internal/models"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
	"github.com/aphrc/internship-tracker/pkg/jobs"
)

// SubmitTask is the handle of an in-flight submission.
type SubmitTask struct {
	ID        string          `json:"id"`
	Form      models.FormKind `json:"form"`
	InternID  string          `json:"internId"`
	StartedAt time.Time       `json:"startedAt"`

	done chan struct{}
	err  error
}

func newSubmitTask(form models.FormKind, internID string) *SubmitTask {
	return &SubmitTask{
		ID:        uuid.NewString(),
		Form:      form,
		InternID:  internID,
		StartedAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// Done is closed once the submission completed.
func (t *SubmitTask) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the submission completed or ctx ends.
func (t *SubmitTask) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.done:
		return t.err
	}
}

func (t *SubmitTask) finish(err error) {
	t.err = err
	close(t.done)
}

// SubmissionRunnerConfig controls the background submission pipeline.
type SubmissionRunnerConfig struct {
	Workers int
	Latency time.Duration
}

type submissionJob struct {
	task     *SubmitTask
	work     func(context.Context) error
	complete func(error)
}

// SubmissionRunner completes submissions on a worker queue after a fixed latency.
type SubmissionRunner struct {
	queue   *jobs.Queue
	latency time.Duration
	metrics *MetricsService
	logger  *zap.Logger
}

// NewSubmissionRunner constructs the runner. Call Start before submitting.
func NewSubmissionRunner(cfg SubmissionRunnerConfig, metrics *MetricsService, logger *zap.Logger) *SubmissionRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &SubmissionRunner{latency: cfg.Latency, metrics: metrics, logger: logger}
	r.queue = jobs.NewQueue("submissions", r.handle, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: 0,
		Logger:     logger,
		OnDrop:     r.drop,
	})
	return r
}

// Start launches the workers.
func (r *SubmissionRunner) Start(ctx context.Context) {
	r.queue.Start(ctx)
}

// Stop waits for the workers to exit. Submissions that have not run yet
// complete with an internal error.
func (r *SubmissionRunner) Stop() {
	r.queue.Stop()
}

// Run schedules work for task. complete runs before task waiters are released.
func (r *SubmissionRunner) Run(task *SubmitTask, work func(context.Context) error, complete func(error)) error {
	err := r.queue.Enqueue(jobs.Job{
		ID:      task.ID,
		Kind:    string(task.Form),
		Payload: submissionJob{task: task, work: work, complete: complete},
		Delay:   r.latency,
	})
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "schedule submission")
	}
	r.logger.Info("submission started",
		zap.String("task_id", task.ID),
		zap.String("form", string(task.Form)),
		zap.String("intern_id", task.InternID),
	)
	return nil
}

func (r *SubmissionRunner) handle(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(submissionJob)
	if !ok {
		return nil
	}
	r.settle(payload, payload.work(ctx))
	return nil
}

func (r *SubmissionRunner) drop(job jobs.Job) {
	payload, ok := job.Payload.(submissionJob)
	if !ok {
		return
	}
	r.settle(payload, appErrors.Clone(appErrors.ErrInternal, "submission cancelled by shutdown"))
}

func (r *SubmissionRunner) settle(payload submissionJob, err error) {
	if payload.complete != nil {
		payload.complete(err)
	}
	payload.task.finish(err)
	r.metrics.ObserveSubmission(payload.task.Form, time.Since(payload.task.StartedAt), err)

	fields := []zap.Field{
		zap.String("task_id", payload.task.ID),
		zap.String("form", string(payload.task.Form)),
		zap.String("intern_id", payload.task.InternID),
	}
	if err != nil {
		r.logger.Error("submission failed", append(fields, zap.Error(err))...)
		return
	}
	r.logger.Info("submission completed", fields...)
}
