package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aphrc/internship-tracker/internal/models"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

type profileStore interface {
	Get(ctx context.Context, internID string) (*models.Profile, error)
	Save(ctx context.Context, profile models.Profile) error
}

type profileDraft struct {
	Profile models.Profile
	Editing bool
}

// ProfileState is the profile screen of one intern.
type ProfileState struct {
	Profile                models.Profile          `json:"profile"`
	Editing                bool                    `json:"editing"`
	Status                 models.SubmissionStatus `json:"status"`
	CanSubmit              bool                    `json:"canSubmit"`
	DurationMonths         int                     `json:"durationMonths"`
	ShowsTerminationReason bool                    `json:"showsTerminationReason"`
}

// ProfileOptions are the select lists of the profile form.
type ProfileOptions struct {
	Education   []models.Option `json:"education"`
	Themes      []models.Option `json:"themes"`
	Units       []models.Option `json:"units"`
	Supervisors []models.Option `json:"supervisors"`
	Modes       []models.Option `json:"modes"`
	Years       []models.Option `json:"years"`
	Statuses    []models.Option `json:"statuses"`
}

// ProfileService runs the view, edit and save lifecycle of intern profiles.
type ProfileService struct {
	drafts *DraftStore[profileDraft]
	store  profileStore
	roster rosterRecorder
	runner *SubmissionRunner
	feed   *NotificationService
	logger *zap.Logger
}

// NewProfileService constructs the service.
func NewProfileService(store profileStore, roster rosterRecorder, runner *SubmissionRunner, feed *NotificationService, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ProfileService{store: store, roster: roster, runner: runner, feed: feed, logger: logger}
	s.drafts = NewDraftStore(models.FormProfile, func(ctx context.Context, internID string) (profileDraft, error) {
		saved, err := store.Get(ctx, internID)
		if err != nil {
			return profileDraft{}, err
		}
		return profileDraft{Profile: *saved}, nil
	})
	return s
}

// Options returns the profile form select lists.
func (s *ProfileService) Options() ProfileOptions {
	statuses := make([]models.Option, 0, len(models.ParticipantStatuses))
	for _, st := range models.ParticipantStatuses {
		statuses = append(statuses, models.Option{Value: string(st), Label: st.Label()})
	}
	return ProfileOptions{
		Education:   models.EducationOptions,
		Themes:      models.ThemeOptions,
		Units:       models.UnitOptions,
		Supervisors: models.SupervisorOptions,
		Modes:       models.ModeOptions,
		Years:       models.YearOptions,
		Statuses:    statuses,
	}
}

// State returns the profile as currently shown.
func (s *ProfileService) State(ctx context.Context, internID string) (*ProfileState, error) {
	draft, status, err := s.drafts.Snapshot(ctx, internID)
	if err != nil {
		return nil, err
	}
	return &ProfileState{
		Profile:                draft.Profile,
		Editing:                draft.Editing,
		Status:                 status,
		CanSubmit:              draft.Editing && status.State != models.SubmissionInFlight,
		DurationMonths:         DurationMonths(draft.Profile.StartDate, draft.Profile.ExpectedEndDate),
		ShowsTerminationReason: draft.Profile.ShowsTerminationReason(),
	}, nil
}

// BeginEdit enters edit mode. It is a no-op while already editing.
func (s *ProfileService) BeginEdit(ctx context.Context, internID string) (*ProfileState, error) {
	return s.update(ctx, internID, func(d profileDraft) (profileDraft, error) {
		d.Editing = true
		return d, nil
	})
}

// SetField edits one profile field. The profile must be in edit mode.
func (s *ProfileService) SetField(ctx context.Context, internID string, field models.ProfileField, value string) (*ProfileState, error) {
	return s.update(ctx, internID, func(d profileDraft) (profileDraft, error) {
		if !d.Editing {
			return d, appErrors.ErrNotEditing
		}
		next, err := d.Profile.WithField(field, value)
		if err != nil {
			return d, err
		}
		d.Profile = next
		return d, nil
	})
}

// Save persists the edited profile in the background and leaves edit mode on
// completion. Field values are kept.
func (s *ProfileService) Save(ctx context.Context, internID string) (*SubmitTask, error) {
	draft, task, err := s.drafts.BeginSubmit(ctx, internID, func(d profileDraft) error {
		if !d.Editing {
			return appErrors.ErrNotEditing
		}
		return nil
	})
	if err != nil {
		s.feed.emitFailure(internID, err)
		return nil, err
	}

	saved := draft.Profile.Normalize()
	saved.InternID = internID
	work := func(ctx context.Context) error {
		if err := s.store.Save(ctx, saved); err != nil {
			return err
		}
		return s.roster.ApplyProfile(ctx, saved)
	}
	complete := func(err error) {
		s.drafts.Finish(internID, task, err, func(d profileDraft) profileDraft {
			d.Profile = saved
			d.Editing = false
			return d
		})
		if err == nil {
			s.feed.Emit(internID, models.OutcomeSaved, "Profile Updated", "Your internship profile has been successfully updated.")
		}
	}
	if err := s.runner.Run(task, work, complete); err != nil {
		abort(s.drafts, internID, task, err)
		return nil, err
	}
	return task, nil
}

// MarkFeedbackForm records the feedback form as received on the saved profile
// and on any open draft.
func (s *ProfileService) MarkFeedbackForm(ctx context.Context, internID string) error {
	saved, err := s.store.Get(ctx, internID)
	if err != nil {
		return err
	}
	saved.Documents.FeedbackForm = true
	if err := s.store.Save(ctx, *saved); err != nil {
		return err
	}
	_, err = s.drafts.Update(ctx, internID, func(d profileDraft) (profileDraft, error) {
		d.Profile.Documents.FeedbackForm = true
		return d, nil
	})
	return err
}

func (s *ProfileService) update(ctx context.Context, internID string, fn func(profileDraft) (profileDraft, error)) (*ProfileState, error) {
	if _, err := s.drafts.Update(ctx, internID, fn); err != nil {
		s.feed.emitFailure(internID, err)
		return nil, err
	}
	return s.State(ctx, internID)
}
