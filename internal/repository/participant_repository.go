package repository

import (
	"context"
	"sync"

	"github.com/aphrc/internship-tracker/internal/models"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

// ParticipantRepository keeps the roster in memory for the process lifetime.
type ParticipantRepository struct {
	mu      sync.RWMutex
	order   []string
	items   map[string]models.Participant
	version uint64
}

// NewParticipantRepository seeds the repository with participants in roster order.
func NewParticipantRepository(seed []models.Participant) *ParticipantRepository {
	r := &ParticipantRepository{items: make(map[string]models.Participant, len(seed))}
	for _, p := range seed {
		if _, exists := r.items[p.ID]; !exists {
			r.order = append(r.order, p.ID)
		}
		r.items[p.ID] = cloneParticipant(p.Normalize())
	}
	return r
}

// List returns a copy of the roster in insertion order.
func (r *ParticipantRepository) List(ctx context.Context) ([]models.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Participant, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneParticipant(r.items[id]))
	}
	return out, nil
}

// FindByID returns a single participant.
func (r *ParticipantRepository) FindByID(ctx context.Context, id string) (*models.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "participant not found")
	}
	out := cloneParticipant(p)
	return &out, nil
}

// Update applies fn to the stored participant under the write lock.
func (r *ParticipantRepository) Update(ctx context.Context, id string, fn func(*models.Participant) error) (*models.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "participant not found")
	}
	next := cloneParticipant(current)
	if err := fn(&next); err != nil {
		return nil, err
	}
	next = next.Normalize()
	next.ID = id
	r.items[id] = next
	r.version++
	out := cloneParticipant(next)
	return &out, nil
}

// Version increases on every roster change.
func (r *ParticipantRepository) Version(ctx context.Context) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func cloneParticipant(p models.Participant) models.Participant {
	if p.ActualEndDate != nil {
		end := *p.ActualEndDate
		p.ActualEndDate = &end
	}
	if p.TerminationReason != nil {
		reason := *p.TerminationReason
		p.TerminationReason = &reason
	}
	return p
}
