package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aphrc/internship-tracker/internal/models"
)

// FeedbackState is the feedback screen of one intern.
type FeedbackState struct {
	Draft     models.FeedbackDraft    `json:"draft"`
	Status    models.SubmissionStatus `json:"status"`
	CanSubmit bool                    `json:"canSubmit"`
}

type feedbackFormMarker interface {
	MarkFeedbackForm(ctx context.Context, internID string) error
}

// FeedbackService manages end-of-internship feedback drafts.
type FeedbackService struct {
	drafts   *DraftStore[models.FeedbackDraft]
	roster   rosterRecorder
	profiles feedbackFormMarker
	runner   *SubmissionRunner
	feed     *NotificationService
	logger   *zap.Logger
}

// NewFeedbackService constructs the service.
func NewFeedbackService(roster rosterRecorder, profiles feedbackFormMarker, runner *SubmissionRunner, feed *NotificationService, logger *zap.Logger) *FeedbackService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{
		drafts: NewDraftStore(models.FormFeedback, func(ctx context.Context, internID string) (models.FeedbackDraft, error) {
			if _, err := roster.Get(ctx, internID); err != nil {
				return models.FeedbackDraft{}, err
			}
			return models.EmptyFeedbackDraft(), nil
		}),
		roster:   roster,
		profiles: profiles,
		runner:   runner,
		feed:     feed,
		logger:   logger,
	}
}

// State returns the current draft with its derived flags.
func (s *FeedbackService) State(ctx context.Context, internID string) (*FeedbackState, error) {
	draft, status, err := s.drafts.Snapshot(ctx, internID)
	if err != nil {
		return nil, err
	}
	return &FeedbackState{
		Draft:     draft,
		Status:    status,
		CanSubmit: draft.Validate() == nil && status.State != models.SubmissionInFlight,
	}, nil
}

// SetField updates one scalar field.
func (s *FeedbackService) SetField(ctx context.Context, internID string, field models.FeedbackField, value string) (*FeedbackState, error) {
	return s.update(ctx, internID, func(d models.FeedbackDraft) (models.FeedbackDraft, error) {
		return d.WithField(field, value)
	})
}

// ToggleSkill includes or excludes a catalog skill.
func (s *FeedbackService) ToggleSkill(ctx context.Context, internID, skill string, include bool) (*FeedbackState, error) {
	return s.update(ctx, internID, func(d models.FeedbackDraft) (models.FeedbackDraft, error) {
		return d.WithSkill(skill, include)
	})
}

// Submit starts an asynchronous submission of the current draft.
func (s *FeedbackService) Submit(ctx context.Context, internID string) (*SubmitTask, error) {
	draft, task, err := s.drafts.BeginSubmit(ctx, internID, models.FeedbackDraft.Validate)
	if err != nil {
		s.feed.emitFailure(internID, err)
		return nil, err
	}

	work := func(ctx context.Context) error {
		s.logger.Info("feedback received",
			zap.String("intern_id", internID),
			zap.String("overall_experience", string(draft.OverallExperience)),
			zap.Int("skills", len(draft.SkillsDeveloped)),
			zap.Bool("anonymous", draft.Anonymous),
		)
		if err := s.roster.MarkFeedbackSubmitted(ctx, internID); err != nil {
			return err
		}
		if s.profiles == nil {
			return nil
		}
		return s.profiles.MarkFeedbackForm(ctx, internID)
	}
	complete := func(err error) {
		s.drafts.Finish(internID, task, err, func(models.FeedbackDraft) models.FeedbackDraft {
			return models.EmptyFeedbackDraft()
		})
		if err == nil {
			s.feed.Emit(internID, models.OutcomeSubmitted, "Feedback Submitted", "Thank you for your valuable feedback!")
		}
	}
	if err := s.runner.Run(task, work, complete); err != nil {
		abort(s.drafts, internID, task, err)
		return nil, err
	}
	return task, nil
}

func (s *FeedbackService) update(ctx context.Context, internID string, fn func(models.FeedbackDraft) (models.FeedbackDraft, error)) (*FeedbackState, error) {
	if _, err := s.drafts.Update(ctx, internID, fn); err != nil {
		s.feed.emitFailure(internID, err)
		return nil, err
	}
	return s.State(ctx, internID)
}
