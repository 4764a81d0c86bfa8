package service

import (
	"context"
	"sync"
	"time"

	"github.com/aphrc/internship-tracker/internal/models"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

type draftSession[D any] struct {
	draft       D
	state       models.SubmissionState
	task        *SubmitTask
	submittedAt *time.Time
}

// DraftStore holds one draft of a form per intern together with its submit
// state. Each draft is independent; all access is serialised by one mutex.
type DraftStore[D any] struct {
	kind models.FormKind
	init func(ctx context.Context, internID string) (D, error)

	mu       sync.Mutex
	sessions map[string]*draftSession[D]
}

// NewDraftStore constructs a store. init builds the first draft of an intern.
func NewDraftStore[D any](kind models.FormKind, init func(ctx context.Context, internID string) (D, error)) *DraftStore[D] {
	return &DraftStore[D]{kind: kind, init: init, sessions: make(map[string]*draftSession[D])}
}

func (s *DraftStore[D]) session(ctx context.Context, internID string) (*draftSession[D], error) {
	if sess, ok := s.sessions[internID]; ok {
		return sess, nil
	}
	draft, err := s.init(ctx, internID)
	if err != nil {
		return nil, err
	}
	sess := &draftSession[D]{draft: draft, state: models.SubmissionIdle}
	s.sessions[internID] = sess
	return sess, nil
}

// Snapshot returns the current draft and its submit status.
func (s *DraftStore[D]) Snapshot(ctx context.Context, internID string) (D, models.SubmissionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.session(ctx, internID)
	if err != nil {
		var zero D
		return zero, models.SubmissionStatus{}, err
	}
	return sess.draft, s.status(internID, sess), nil
}

// Update replaces the draft with fn's result. A failing fn leaves it untouched.
func (s *DraftStore[D]) Update(ctx context.Context, internID string, fn func(D) (D, error)) (D, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero D
	sess, err := s.session(ctx, internID)
	if err != nil {
		return zero, err
	}
	next, err := fn(sess.draft)
	if err != nil {
		return zero, err
	}
	sess.draft = next
	return next, nil
}

// BeginSubmit moves the draft to in-flight after gate accepts it and returns
// the draft as submitted.
func (s *DraftStore[D]) BeginSubmit(ctx context.Context, internID string, gate func(D) error) (D, *SubmitTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero D
	sess, err := s.session(ctx, internID)
	if err != nil {
		return zero, nil, err
	}
	if sess.state == models.SubmissionInFlight {
		return zero, sess.task, appErrors.ErrAlreadyInProgress
	}
	if err := gate(sess.draft); err != nil {
		return zero, nil, err
	}
	sess.task = newSubmitTask(s.kind, internID)
	sess.state = models.SubmissionInFlight
	return sess.draft, sess.task, nil
}

// Finish closes task. On success the draft becomes next(draft) and the state
// Done; on failure the draft is kept and the state returns to Idle.
func (s *DraftStore[D]) Finish(internID string, task *SubmitTask, err error, next func(D) D) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[internID]
	if !ok || sess.task != task {
		return
	}
	if err != nil {
		sess.state = models.SubmissionIdle
		return
	}
	now := time.Now().UTC()
	sess.draft = next(sess.draft)
	sess.state = models.SubmissionDone
	sess.submittedAt = &now
}

func (s *DraftStore[D]) status(internID string, sess *draftSession[D]) models.SubmissionStatus {
	status := models.SubmissionStatus{Form: s.kind, InternID: internID, State: sess.state}
	if sess.submittedAt != nil {
		at := *sess.submittedAt
		status.SubmittedAt = &at
	}
	return status
}
