package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aphrc/internship-tracker/internal/models"
)

type weeklySummaryStore interface {
	Append(ctx context.Context, entry models.WeeklySummaryEntry) error
	ListByIntern(ctx context.Context, internID string) ([]models.WeeklySummaryEntry, error)
}

type rosterRecorder interface {
	Get(ctx context.Context, id string) (*models.Participant, error)
	RecordWeeklySubmission(ctx context.Context, internID string, on models.Date) error
	MarkFeedbackSubmitted(ctx context.Context, internID string) error
	ApplyProfile(ctx context.Context, profile models.Profile) error
}

// WeeklySummaryState is the weekly summary screen of one intern.
type WeeklySummaryState struct {
	Draft     models.WeeklySummaryDraft `json:"draft"`
	Status    models.SubmissionStatus   `json:"status"`
	CanSubmit bool                      `json:"canSubmit"`
	WeekOf    models.Date               `json:"weekOf"`
}

// WeeklySummaryService manages weekly summary drafts and their history.
type WeeklySummaryService struct {
	drafts  *DraftStore[models.WeeklySummaryDraft]
	entries weeklySummaryStore
	roster  rosterRecorder
	runner  *SubmissionRunner
	feed    *NotificationService
	logger  *zap.Logger
	now     func() time.Time
}

// NewWeeklySummaryService constructs the service.
func NewWeeklySummaryService(entries weeklySummaryStore, roster rosterRecorder, runner *SubmissionRunner, feed *NotificationService, logger *zap.Logger) *WeeklySummaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeeklySummaryService{
		drafts: NewDraftStore(models.FormWeeklySummary, func(ctx context.Context, internID string) (models.WeeklySummaryDraft, error) {
			if _, err := roster.Get(ctx, internID); err != nil {
				return models.WeeklySummaryDraft{}, err
			}
			return models.EmptyWeeklySummaryDraft(), nil
		}),
		entries: entries,
		roster:  roster,
		runner:  runner,
		feed:    feed,
		logger:  logger,
		now:     time.Now,
	}
}

// State returns the current draft with its derived flags.
func (s *WeeklySummaryService) State(ctx context.Context, internID string) (*WeeklySummaryState, error) {
	draft, status, err := s.drafts.Snapshot(ctx, internID)
	if err != nil {
		return nil, err
	}
	return s.state(draft, status), nil
}

// SetField updates one narrative field.
func (s *WeeklySummaryService) SetField(ctx context.Context, internID string, field models.WeeklySummaryField, value string) (*WeeklySummaryState, error) {
	return s.update(ctx, internID, func(d models.WeeklySummaryDraft) (models.WeeklySummaryDraft, error) {
		return d.WithField(field, value)
	})
}

// ToggleFile attaches or detaches a supporting file name.
func (s *WeeklySummaryService) ToggleFile(ctx context.Context, internID, name string, attach bool) (*WeeklySummaryState, error) {
	return s.update(ctx, internID, func(d models.WeeklySummaryDraft) (models.WeeklySummaryDraft, error) {
		return d.WithFile(name, attach)
	})
}

// Submit starts an asynchronous submission of the current draft.
func (s *WeeklySummaryService) Submit(ctx context.Context, internID string) (*SubmitTask, error) {
	draft, task, err := s.drafts.BeginSubmit(ctx, internID, models.WeeklySummaryDraft.Validate)
	if err != nil {
		s.feed.emitFailure(internID, err)
		return nil, err
	}

	work := func(ctx context.Context) error {
		now := s.now().UTC()
		entry := models.WeeklySummaryEntry{
			ID:             uuid.NewString(),
			InternID:       internID,
			WeekOf:         CurrentWeekAnchor(now),
			TasksCompleted: draft.TasksCompleted,
			Challenges:     draft.Challenges,
			SkillsLearned:  draft.SkillsLearned,
			GoalsNextWeek:  draft.GoalsNextWeek,
			Files:          append([]string{}, draft.Files...),
			SubmittedAt:    now,
		}
		// The roster goes first so a rejected intern leaves no history entry.
		if err := s.roster.RecordWeeklySubmission(ctx, internID, models.DateOf(now)); err != nil {
			return err
		}
		return s.entries.Append(ctx, entry)
	}
	complete := func(err error) {
		s.drafts.Finish(internID, task, err, func(models.WeeklySummaryDraft) models.WeeklySummaryDraft {
			return models.EmptyWeeklySummaryDraft()
		})
		if err == nil {
			s.feed.Emit(internID, models.OutcomeSubmitted, "Weekly Summary Submitted", "Your weekly summary has been successfully submitted.")
		}
	}
	if err := s.runner.Run(task, work, complete); err != nil {
		abort(s.drafts, internID, task, err)
		return nil, err
	}
	return task, nil
}

// History lists the intern's previous submissions newest first.
func (s *WeeklySummaryService) History(ctx context.Context, internID string) ([]models.WeeklySummaryEntry, error) {
	return s.entries.ListByIntern(ctx, internID)
}

func (s *WeeklySummaryService) update(ctx context.Context, internID string, fn func(models.WeeklySummaryDraft) (models.WeeklySummaryDraft, error)) (*WeeklySummaryState, error) {
	if _, err := s.drafts.Update(ctx, internID, fn); err != nil {
		s.feed.emitFailure(internID, err)
		return nil, err
	}
	return s.State(ctx, internID)
}

func (s *WeeklySummaryService) state(draft models.WeeklySummaryDraft, status models.SubmissionStatus) *WeeklySummaryState {
	return &WeeklySummaryState{
		Draft:     draft,
		Status:    status,
		CanSubmit: draft.Validate() == nil && status.State != models.SubmissionInFlight,
		WeekOf:    CurrentWeekAnchor(s.now()),
	}
}

func abort[D any](drafts *DraftStore[D], internID string, task *SubmitTask, err error) {
	drafts.Finish(internID, task, err, nil)
	task.finish(err)
}
