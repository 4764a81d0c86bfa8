package service

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aphrc/internship-tracker/internal/models"
)

const defaultFeedCapacity = 200

type feedEntry struct {
	seq uint64
	n   models.Notification
}

// NotificationService is an in-memory feed of user-facing outcomes. Each
// intern keeps at most capacity notifications.
type NotificationService struct {
	mu       sync.RWMutex
	seq      uint64
	items    map[string][]feedEntry
	capacity int
	metrics  *MetricsService
	logger   *zap.Logger
	now      func() time.Time
}

// NewNotificationService constructs the feed. capacity <= 0 uses the default.
func NewNotificationService(capacity int, metrics *MetricsService, logger *zap.Logger) *NotificationService {
	if capacity <= 0 {
		capacity = defaultFeedCapacity
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{items: make(map[string][]feedEntry), capacity: capacity, metrics: metrics, logger: logger, now: time.Now}
}

// Emit appends an outcome for internID and returns the stored notification.
func (s *NotificationService) Emit(internID string, outcome models.Outcome, title, message string) models.Notification {
	if s == nil {
		return models.Notification{}
	}
	n := models.Notification{
		ID:          uuid.NewString(),
		InternID:    internID,
		Outcome:     outcome,
		Title:       title,
		Message:     message,
		Destructive: outcome.Destructive(),
		CreatedAt:   s.now().UTC(),
	}
	s.mu.Lock()
	s.seq++
	entries := append(s.items[internID], feedEntry{seq: s.seq, n: n})
	if over := len(entries) - s.capacity; over > 0 {
		entries = append([]feedEntry(nil), entries[over:]...)
	}
	s.items[internID] = entries
	s.mu.Unlock()

	s.metrics.RecordOutcome(outcome)
	s.logger.Debug("notification emitted", zap.String("intern_id", internID), zap.String("outcome", string(outcome)))
	return n
}

// List returns notifications newest first. A non-empty internID and a non-zero
// since narrow the result; since is exclusive.
func (s *NotificationService) List(internID string, since time.Time) []models.Notification {
	s.mu.RLock()
	var entries []feedEntry
	if internID != "" {
		entries = append(entries, s.items[internID]...)
	} else {
		for _, list := range s.items {
			entries = append(entries, list...)
		}
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].seq > entries[j].seq })
	out := make([]models.Notification, 0, len(entries))
	for _, e := range entries {
		if !since.IsZero() && !e.n.CreatedAt.After(since) {
			continue
		}
		out = append(out, e.n)
	}
	return out
}

func (s *NotificationService) emitFailure(internID string, err error) {
	switch {
	case isAlreadyInProgress(err):
		s.Emit(internID, models.OutcomeAlreadyInProgress, "Submission In Progress", "A submission is already in progress.")
	case isValidation(err):
		s.Emit(internID, models.OutcomeValidationError, "Validation Error", err.Error())
	}
}
