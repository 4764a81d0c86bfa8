package repository

import (
	"context"
	"sync"

	"github.com/aphrc/internship-tracker/internal/models"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

// DocumentRepository holds document metadata per intern in upload order.
type DocumentRepository struct {
	mu       sync.RWMutex
	byIntern map[string][]models.Document
}

// NewDocumentRepository constructs the repository with seed documents.
func NewDocumentRepository(seed []models.Document) *DocumentRepository {
	r := &DocumentRepository{byIntern: make(map[string][]models.Document)}
	for _, doc := range seed {
		r.byIntern[doc.InternID] = append(r.byIntern[doc.InternID], doc)
	}
	return r
}

// ListByIntern returns the intern's documents in upload order.
func (r *DocumentRepository) ListByIntern(ctx context.Context, internID string) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	docs := r.byIntern[internID]
	out := make([]models.Document, len(docs))
	copy(out, docs)
	return out, nil
}

// FindByID looks up one document of an intern.
func (r *DocumentRepository) FindByID(ctx context.Context, internID, id string) (*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, doc := range r.byIntern[internID] {
		if doc.ID == id {
			found := doc
			return &found, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "document not found")
}

// Create appends a document.
func (r *DocumentRepository) Create(ctx context.Context, doc models.Document) error {
	if doc.ID == "" || doc.InternID == "" {
		return appErrors.Validation("document requires id and intern id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byIntern[doc.InternID] {
		if existing.ID == doc.ID {
			return appErrors.Validation("document %s already exists", doc.ID)
		}
	}
	r.byIntern[doc.InternID] = append(r.byIntern[doc.InternID], doc)
	return nil
}

// Delete removes a document and returns what was removed.
func (r *DocumentRepository) Delete(ctx context.Context, internID, id string) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	docs := r.byIntern[internID]
	for i, doc := range docs {
		if doc.ID != id {
			continue
		}
		next := make([]models.Document, 0, len(docs)-1)
		next = append(next, docs[:i]...)
		next = append(next, docs[i+1:]...)
		r.byIntern[internID] = next
		removed := doc
		return &removed, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "document not found")
}
