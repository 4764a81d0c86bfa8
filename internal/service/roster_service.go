package service

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aphrc/internship-tracker/internal/models"
)

const rosterCachePattern = "roster:*"

type participantStore interface {
	List(ctx context.Context) ([]models.Participant, error)
	FindByID(ctx context.Context, id string) (*models.Participant, error)
	Update(ctx context.Context, id string, fn func(*models.Participant) error) (*models.Participant, error)
	Version(ctx context.Context) uint64
}

// RosterServiceConfig tunes roster querying.
type RosterServiceConfig struct {
	IndexThreshold int
	CacheTTL       time.Duration
}

// RosterResult is the supervisor roster view.
type RosterResult struct {
	Interns []models.Participant `json:"interns"`
	Stats   models.RosterStats   `json:"stats"`
	Filter  models.RosterFilter  `json:"filter"`
}

// RosterService answers supervisor roster queries and applies roster updates
// coming from intern submissions.
type RosterService struct {
	store  participantStore
	cache  *CacheService
	cfg    RosterServiceConfig
	logger *zap.Logger

	mu           sync.Mutex
	index        *RosterIndex
	indexVersion uint64
}

// NewRosterService constructs the roster service. cache may be nil.
func NewRosterService(store participantStore, cache *CacheService, cfg RosterServiceConfig, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{store: store, cache: cache, cfg: cfg, logger: logger}
}

// Query filters the roster and reports whether the result came from cache.
func (s *RosterService) Query(ctx context.Context, filter models.RosterFilter) (*RosterResult, bool, error) {
	filter = filter.Normalized()
	version := s.store.Version(ctx)
	key := rosterCacheKey(version, filter)

	var cached RosterResult
	if s.cache.Get(ctx, key, &cached) {
		return &cached, true, nil
	}

	roster, err := s.store.List(ctx)
	if err != nil {
		return nil, false, err
	}
	result := &RosterResult{
		Interns: s.filter(roster, version, filter),
		Stats:   ComputeRosterStats(roster),
		Filter:  filter,
	}
	s.cache.Set(ctx, key, result, s.cfg.CacheTTL)
	return result, false, nil
}

// Stats returns the aggregate counts over the full roster.
func (s *RosterService) Stats(ctx context.Context) (models.RosterStats, error) {
	roster, err := s.store.List(ctx)
	if err != nil {
		return models.RosterStats{}, err
	}
	return ComputeRosterStats(roster), nil
}

// Get returns one participant.
func (s *RosterService) Get(ctx context.Context, id string) (*models.Participant, error) {
	return s.store.FindByID(ctx, id)
}

// RecordWeeklySubmission bumps the intern's submission counters.
func (s *RosterService) RecordWeeklySubmission(ctx context.Context, internID string, on models.Date) error {
	return s.update(ctx, internID, "weekly submission recorded", func(p *models.Participant) error {
		p.WeeklySubmissions++
		p.LastSubmission = on
		return nil
	})
}

// MarkFeedbackSubmitted flags the intern's end-of-internship feedback as received.
func (s *RosterService) MarkFeedbackSubmitted(ctx context.Context, internID string) error {
	return s.update(ctx, internID, "feedback recorded", func(p *models.Participant) error {
		p.FeedbackSubmitted = true
		return nil
	})
}

// ApplyProfile mirrors a saved profile onto the intern's roster row.
func (s *RosterService) ApplyProfile(ctx context.Context, profile models.Profile) error {
	return s.update(ctx, profile.InternID, "profile applied", func(p *models.Participant) error {
		*p = p.ApplyProfile(profile)
		return nil
	})
}

func (s *RosterService) update(ctx context.Context, internID, event string, fn func(*models.Participant) error) error {
	updated, err := s.store.Update(ctx, internID, fn)
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, rosterCachePattern)
	s.logger.Info(event,
		zap.String("intern_id", internID),
		zap.Int("weekly_submissions", updated.WeeklySubmissions),
		zap.Bool("feedback_submitted", updated.FeedbackSubmitted),
	)
	return nil
}

func (s *RosterService) filter(roster []models.Participant, version uint64, filter models.RosterFilter) []models.Participant {
	if s.cfg.IndexThreshold <= 0 || len(roster) < s.cfg.IndexThreshold {
		return FilterRoster(roster, filter)
	}
	s.mu.Lock()
	if s.index == nil || s.indexVersion != version {
		s.index = NewRosterIndex(roster)
		s.indexVersion = version
		s.logger.Debug("roster index rebuilt", zap.Int("participants", len(roster)), zap.Uint64("version", version))
	}
	idx := s.index
	s.mu.Unlock()
	return idx.Filter(filter)
}

func rosterCacheKey(version uint64, filter models.RosterFilter) string {
	values := url.Values{}
	values.Set("q", filter.Search)
	values.Set("status", filter.Status)
	values.Set("unit", filter.Unit)
	return fmt.Sprintf("roster:%d:%s", version, values.Encode())
}
