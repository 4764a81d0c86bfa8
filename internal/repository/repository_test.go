package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aphrc/internship-tracker/internal/models"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

func TestParticipantRepositoryListReturnsCopies(t *testing.T) {
	repo := NewParticipantRepository(DefaultSeed().Participants)
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{list[0].ID, list[1].ID, list[2].ID})

	list[0].Name = "Changed"
	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", again[0].Name)
}

func TestParticipantRepositoryUpdate(t *testing.T) {
	repo := NewParticipantRepository(DefaultSeed().Participants)
	ctx := context.Background()
	before := repo.Version(ctx)

	updated, err := repo.Update(ctx, "2", func(p *models.Participant) error {
		p.ContractIssued = true
		reason := "left early"
		p.TerminationReason = &reason
		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.ContractIssued)
	assert.Nil(t, updated.TerminationReason, "reason is dropped for ongoing interns")
	assert.Greater(t, repo.Version(ctx), before)

	_, err = repo.Update(ctx, "99", func(p *models.Participant) error { return nil })
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	failing := errors.New("boom")
	_, err = repo.Update(ctx, "1", func(p *models.Participant) error {
		p.Name = "Nope"
		return failing
	})
	assert.ErrorIs(t, err, failing)
	found, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", found.Name)
}

func TestWeeklySummaryRepositoryNewestFirst(t *testing.T) {
	repo := NewWeeklySummaryRepository(DefaultSeed().WeeklyHistory)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, models.WeeklySummaryEntry{
		ID:          "3",
		InternID:    "1",
		WeekOf:      models.MustDate("2024-01-22"),
		Files:       []string{"final.pdf"},
		SubmittedAt: time.Date(2024, time.January, 26, 0, 0, 0, 0, time.UTC),
	}))

	entries, err := repo.ListByIntern(ctx, "1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"3", "2", "1"}, []string{entries[0].ID, entries[1].ID, entries[2].ID})

	entries[0].Files[0] = "mutated.pdf"
	again, _ := repo.ListByIntern(ctx, "1")
	assert.Equal(t, "final.pdf", again[0].Files[0])

	empty, err := repo.ListByIntern(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, empty)

	assert.ErrorIs(t, repo.Append(ctx, models.WeeklySummaryEntry{}), appErrors.ErrValidation)
}

func TestDocumentRepositoryLifecycle(t *testing.T) {
	repo := NewDocumentRepository(DefaultSeed().Documents)
	ctx := context.Background()

	docs, err := repo.ListByIntern(ctx, "1")
	require.NoError(t, err)
	require.Len(t, docs, 4)

	require.NoError(t, repo.Create(ctx, models.Document{ID: "5", InternID: "1", Name: "extra.pdf", Category: models.CategoryReports}))
	assert.ErrorIs(t, repo.Create(ctx, models.Document{ID: "5", InternID: "1"}), appErrors.ErrValidation)

	removed, err := repo.Delete(ctx, "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "Contract_Signed.pdf", removed.Name)

	docs, _ = repo.ListByIntern(ctx, "1")
	require.Len(t, docs, 4)
	assert.Equal(t, []string{"1", "3", "4", "5"}, []string{docs[0].ID, docs[1].ID, docs[2].ID, docs[3].ID})

	_, err = repo.Delete(ctx, "1", "2")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	_, err = repo.FindByID(ctx, "2", "1")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestProfileRepository(t *testing.T) {
	repo := NewProfileRepository(DefaultSeed().Profiles)
	ctx := context.Background()

	profile, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "dr-smith", profile.Supervisor)

	profile.Mode = "virtual"
	require.NoError(t, repo.Save(ctx, *profile))
	saved, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "virtual", saved.Mode)

	_, err = repo.Get(ctx, "42")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.Error(t, repo.Save(ctx, models.Profile{}))
}

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	var dest map[string]int
	assert.ErrorIs(t, repo.Get(ctx, "roster:stats", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(ctx, "roster:stats", map[string]int{"total": 3}, time.Minute))
	assert.NoError(t, repo.DeleteByPattern(ctx, "roster:*"))
	assert.NoError(t, repo.Close())
}
