package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aphrc/internship-tracker/internal/models"
	"github.com/aphrc/internship-tracker/internal/repository"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

type trackerFixture struct {
	roster   *RosterService
	feed     *NotificationService
	runner   *SubmissionRunner
	weekly   *WeeklySummaryService
	feedback *FeedbackService
	profiles *ProfileService
	entries  *repository.WeeklySummaryRepository
}

func newTrackerFixture(t *testing.T, latency time.Duration) *trackerFixture {
	t.Helper()
	return newTrackerFixtureWith(t, SubmissionRunnerConfig{Workers: 2, Latency: latency}, nil)
}

// newTrackerFixtureWith wires the services; wrap, when set, decorates the
// roster seen by the weekly summary service.
func newTrackerFixtureWith(t *testing.T, cfg SubmissionRunnerConfig, wrap func(*RosterService) rosterRecorder) *trackerFixture {
	t.Helper()
	seed := repository.DefaultSeed()
	roster := NewRosterService(repository.NewParticipantRepository(seed.Participants), nil, RosterServiceConfig{}, nil)
	feed := NewNotificationService(0, nil, nil)
	runner := NewSubmissionRunner(cfg, NewMetricsService(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	runner.Start(ctx)
	t.Cleanup(func() {
		cancel()
		runner.Stop()
	})

	entries := repository.NewWeeklySummaryRepository(seed.WeeklyHistory)
	profiles := NewProfileService(repository.NewProfileRepository(seed.Profiles), roster, runner, feed, nil)
	var weeklyRoster rosterRecorder = roster
	if wrap != nil {
		weeklyRoster = wrap(roster)
	}
	return &trackerFixture{
		roster:   roster,
		feed:     feed,
		runner:   runner,
		weekly:   NewWeeklySummaryService(entries, weeklyRoster, runner, feed, nil),
		feedback: NewFeedbackService(roster, profiles, runner, feed, nil),
		profiles: profiles,
		entries:  entries,
	}
}

func waitTask(t *testing.T, task *SubmitTask) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, task.Wait(ctx))
}

func countOutcome(feed []models.Notification, outcome models.Outcome) int {
	n := 0
	for _, item := range feed {
		if item.Outcome == outcome {
			n++
		}
	}
	return n
}

func TestWeeklySummarySubmitRejectsBlankTasks(t *testing.T) {
	f := newTrackerFixture(t, 0)
	ctx := context.Background()

	state, err := f.weekly.SetField(ctx, "1", models.FieldTasksCompleted, "   ")
	require.NoError(t, err)
	assert.False(t, state.CanSubmit)

	_, err = f.weekly.Submit(ctx, "1")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, 1, countOutcome(f.feed.List("1", time.Time{}), models.OutcomeValidationError))

	history, err := f.weekly.History(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestWeeklySummaryRapidSubmitsClearDraftOnce(t *testing.T) {
	f := newTrackerFixture(t, 50*time.Millisecond)
	ctx := context.Background()

	_, err := f.weekly.SetField(ctx, "1", models.FieldTasksCompleted, "Finalised the survey report")
	require.NoError(t, err)
	_, err = f.weekly.SetField(ctx, "1", models.FieldChallenges, "Tight deadline")
	require.NoError(t, err)
	state, err := f.weekly.ToggleFile(ctx, "1", "final_report.pdf", true)
	require.NoError(t, err)
	assert.True(t, state.CanSubmit)

	task, err := f.weekly.Submit(ctx, "1")
	require.NoError(t, err)

	state, err = f.weekly.State(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionInFlight, state.Status.State)
	assert.False(t, state.CanSubmit)

	_, err = f.weekly.Submit(ctx, "1")
	assert.ErrorIs(t, err, appErrors.ErrAlreadyInProgress)

	waitTask(t, task)

	state, err = f.weekly.State(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionDone, state.Status.State)
	assert.Equal(t, models.EmptyWeeklySummaryDraft(), state.Draft)
	require.NotNil(t, state.Status.SubmittedAt)

	_, err = f.weekly.SetField(ctx, "1", models.FieldGoalsNextWeek, "Present findings")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	state, err = f.weekly.State(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Present findings", state.Draft.GoalsNextWeek)

	history, err := f.weekly.History(ctx, "1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "Finalised the survey report", history[0].TasksCompleted)
	assert.Equal(t, []string{"final_report.pdf"}, history[0].Files)
	assert.Equal(t, CurrentWeekAnchor(history[0].SubmittedAt), history[0].WeekOf)

	participant, err := f.roster.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 4, participant.WeeklySubmissions)

	feed := f.feed.List("1", time.Time{})
	assert.Equal(t, 1, countOutcome(feed, models.OutcomeSubmitted))
	assert.Equal(t, 1, countOutcome(feed, models.OutcomeAlreadyInProgress))
}

func TestDraftsAreIndependentPerIntern(t *testing.T) {
	f := newTrackerFixture(t, 50*time.Millisecond)
	ctx := context.Background()

	_, err := f.weekly.SetField(ctx, "1", models.FieldTasksCompleted, "one")
	require.NoError(t, err)
	_, err = f.weekly.SetField(ctx, "2", models.FieldTasksCompleted, "two")
	require.NoError(t, err)

	first, err := f.weekly.Submit(ctx, "1")
	require.NoError(t, err)
	second, err := f.weekly.Submit(ctx, "2")
	require.NoError(t, err)
	waitTask(t, first)
	waitTask(t, second)

	janeHistory, err := f.weekly.History(ctx, "2")
	require.NoError(t, err)
	require.Len(t, janeHistory, 1)
	assert.Equal(t, "two", janeHistory[0].TasksCompleted)
}

func TestFeedbackSubmitGateAndReset(t *testing.T) {
	f := newTrackerFixture(t, 0)
	ctx := context.Background()

	state, err := f.feedback.ToggleSkill(ctx, "1", "Teamwork", true)
	require.NoError(t, err)
	assert.False(t, state.CanSubmit)

	_, err = f.feedback.Submit(ctx, "1")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	participant, _ := f.roster.Get(ctx, "1")
	assert.False(t, participant.FeedbackSubmitted)

	_, err = f.feedback.SetField(ctx, "1", models.FieldOverallExperience, "amazing")
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	state, err = f.feedback.SetField(ctx, "1", models.FieldOverallExperience, string(models.RatingExcellent))
	require.NoError(t, err)
	assert.True(t, state.CanSubmit)
	assert.Equal(t, []string{"Teamwork"}, state.Draft.SkillsDeveloped)

	task, err := f.feedback.Submit(ctx, "1")
	require.NoError(t, err)
	waitTask(t, task)

	state, err = f.feedback.State(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.EmptyFeedbackDraft(), state.Draft)
	assert.Equal(t, models.SubmissionDone, state.Status.State)

	participant, err = f.roster.Get(ctx, "1")
	require.NoError(t, err)
	assert.True(t, participant.FeedbackSubmitted)

	profile, err := f.profiles.State(ctx, "1")
	require.NoError(t, err)
	assert.True(t, profile.Profile.Documents.FeedbackForm)
}

func TestProfileEditLifecycle(t *testing.T) {
	f := newTrackerFixture(t, 10*time.Millisecond)
	ctx := context.Background()

	state, err := f.profiles.State(ctx, "1")
	require.NoError(t, err)
	assert.False(t, state.Editing)
	assert.False(t, state.CanSubmit)
	assert.Equal(t, 5, state.DurationMonths)

	_, err = f.profiles.SetField(ctx, "1", models.ProfileFieldMode, "virtual")
	assert.ErrorIs(t, err, appErrors.ErrNotEditing)
	_, err = f.profiles.Save(ctx, "1")
	assert.ErrorIs(t, err, appErrors.ErrNotEditing)

	_, err = f.profiles.BeginEdit(ctx, "1")
	require.NoError(t, err)
	_, err = f.profiles.SetField(ctx, "1", models.ProfileFieldUnit, "it")
	require.NoError(t, err)
	_, err = f.profiles.SetField(ctx, "1", models.ProfileFieldStatus, string(models.StatusVoluntaryTermination))
	require.NoError(t, err)
	state, err = f.profiles.SetField(ctx, "1", models.ProfileFieldTerminationReason, "Relocated")
	require.NoError(t, err)
	assert.True(t, state.ShowsTerminationReason)
	assert.True(t, state.CanSubmit)

	task, err := f.profiles.Save(ctx, "1")
	require.NoError(t, err)
	waitTask(t, task)

	state, err = f.profiles.State(ctx, "1")
	require.NoError(t, err)
	assert.False(t, state.Editing)
	assert.Equal(t, "it", state.Profile.Unit)
	assert.Equal(t, "Relocated", state.Profile.TerminationReason)
	assert.Equal(t, models.SubmissionDone, state.Status.State)

	participant, err := f.roster.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "IT", participant.Unit)
	assert.Equal(t, models.StatusVoluntaryTermination, participant.Status)
	require.NotNil(t, participant.TerminationReason)
	assert.Equal(t, "Relocated", *participant.TerminationReason)

	assert.Equal(t, 1, countOutcome(f.feed.List("1", time.Time{}), models.OutcomeSaved))
}

func TestProfileUnknownIntern(t *testing.T) {
	f := newTrackerFixture(t, 0)
	_, err := f.profiles.State(context.Background(), "404")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestSubmitAfterRunnerStopped(t *testing.T) {
	f := newTrackerFixture(t, 0)
	ctx := context.Background()
	f.runner.Stop()

	_, err := f.weekly.SetField(ctx, "1", models.FieldTasksCompleted, "work")
	require.NoError(t, err)
	_, err = f.weekly.Submit(ctx, "1")
	assert.ErrorIs(t, err, appErrors.ErrInternal)

	state, err := f.weekly.State(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionIdle, state.Status.State)
	assert.Equal(t, "work", state.Draft.TasksCompleted)
}

type rejectingRoster struct {
	*RosterService
}

func (r rejectingRoster) RecordWeeklySubmission(context.Context, string, models.Date) error {
	return appErrors.Clone(appErrors.ErrInternal, "roster unavailable")
}

func TestWeeklySummaryUnknownInternHasNoDraft(t *testing.T) {
	f := newTrackerFixture(t, 0)
	ctx := context.Background()

	_, err := f.weekly.State(ctx, "99")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	_, err = f.weekly.SetField(ctx, "99", models.FieldTasksCompleted, "work")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	_, err = f.weekly.Submit(ctx, "99")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	_, err = f.feedback.Submit(ctx, "99")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	history, err := f.weekly.History(ctx, "99")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestWeeklySummaryRosterFailureLeavesNoHistory(t *testing.T) {
	f := newTrackerFixtureWith(t, SubmissionRunnerConfig{Workers: 1}, func(r *RosterService) rosterRecorder {
		return rejectingRoster{r}
	})
	ctx := context.Background()
	before, err := f.weekly.History(ctx, "1")
	require.NoError(t, err)

	_, err = f.weekly.SetField(ctx, "1", models.FieldTasksCompleted, "work")
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		task, err := f.weekly.Submit(ctx, "1")
		require.NoError(t, err)
		waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		assert.ErrorIs(t, task.Wait(waitCtx), appErrors.ErrInternal)
		cancel()
	}

	after, err := f.weekly.History(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, after, len(before))

	state, err := f.weekly.State(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionIdle, state.Status.State)
	assert.Equal(t, "work", state.Draft.TasksCompleted)
}

func TestIndependentSubmitsShareOneLatency(t *testing.T) {
	const latency = 200 * time.Millisecond
	f := newTrackerFixtureWith(t, SubmissionRunnerConfig{Workers: 1, Latency: latency}, nil)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		_, err := f.weekly.SetField(ctx, id, models.FieldTasksCompleted, "work of "+id)
		require.NoError(t, err)
	}
	_, err := f.feedback.SetField(ctx, "1", models.FieldOverallExperience, string(models.RatingGood))
	require.NoError(t, err)

	start := time.Now()
	var tasks []*SubmitTask
	for _, id := range []string{"1", "2", "3"} {
		task, err := f.weekly.Submit(ctx, id)
		require.NoError(t, err)
		tasks = append(tasks, task)
	}
	task, err := f.feedback.Submit(ctx, "1")
	require.NoError(t, err)
	tasks = append(tasks, task)

	for _, task := range tasks {
		waitTask(t, task)
	}
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, latency)
	assert.Less(t, elapsed, 2*latency)
}

func TestRunnerStopSettlesPendingSubmissions(t *testing.T) {
	f := newTrackerFixtureWith(t, SubmissionRunnerConfig{Workers: 1, Latency: time.Hour}, nil)
	ctx := context.Background()

	_, err := f.weekly.SetField(ctx, "1", models.FieldTasksCompleted, "work")
	require.NoError(t, err)
	task, err := f.weekly.Submit(ctx, "1")
	require.NoError(t, err)

	f.runner.Stop()

	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	assert.ErrorIs(t, task.Wait(waitCtx), appErrors.ErrInternal)

	state, err := f.weekly.State(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionIdle, state.Status.State)
	assert.Equal(t, "work", state.Draft.TasksCompleted)
}
