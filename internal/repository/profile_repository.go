package repository

import (
	"context"
	"sync"

	"github.com/aphrc/internship-tracker/internal/models"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

// ProfileRepository stores one saved profile per intern.
type ProfileRepository struct {
	mu    sync.RWMutex
	items map[string]models.Profile
}

// NewProfileRepository constructs the repository with seed profiles.
func NewProfileRepository(seed []models.Profile) *ProfileRepository {
	r := &ProfileRepository{items: make(map[string]models.Profile, len(seed))}
	for _, p := range seed {
		r.items[p.InternID] = p
	}
	return r
}

// Get returns the saved profile of an intern.
func (r *ProfileRepository) Get(ctx context.Context, internID string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[internID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
	}
	return &p, nil
}

// Save replaces the stored profile.
func (r *ProfileRepository) Save(ctx context.Context, profile models.Profile) error {
	if profile.InternID == "" {
		return appErrors.Validation("profile requires intern id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[profile.InternID] = profile
	return nil
}
