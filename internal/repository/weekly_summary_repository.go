package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/aphrc/internship-tracker/internal/models"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

// WeeklySummaryRepository stores submitted weekly summaries. Entries are append-only.
type WeeklySummaryRepository struct {
	mu       sync.RWMutex
	byIntern map[string][]models.WeeklySummaryEntry
}

// NewWeeklySummaryRepository constructs the repository with seed history.
func NewWeeklySummaryRepository(seed []models.WeeklySummaryEntry) *WeeklySummaryRepository {
	r := &WeeklySummaryRepository{byIntern: make(map[string][]models.WeeklySummaryEntry)}
	for _, entry := range seed {
		r.byIntern[entry.InternID] = append(r.byIntern[entry.InternID], cloneEntry(entry))
	}
	return r
}

// Append records a new entry.
func (r *WeeklySummaryRepository) Append(ctx context.Context, entry models.WeeklySummaryEntry) error {
	if entry.ID == "" || entry.InternID == "" {
		return appErrors.Validation("weekly summary entry requires id and intern id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byIntern[entry.InternID] = append(r.byIntern[entry.InternID], cloneEntry(entry))
	return nil
}

// ListByIntern returns the intern's entries newest first.
func (r *WeeklySummaryRepository) ListByIntern(ctx context.Context, internID string) ([]models.WeeklySummaryEntry, error) {
	r.mu.RLock()
	entries := r.byIntern[internID]
	out := make([]models.WeeklySummaryEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, cloneEntry(entries[i]))
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

func cloneEntry(e models.WeeklySummaryEntry) models.WeeklySummaryEntry {
	e.Files = append([]string{}, e.Files...)
	return e
}
