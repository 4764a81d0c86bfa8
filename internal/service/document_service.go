package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aphrc/internship-tracker/internal/models"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

// DefaultStorageCapacity is the per-intern document quota.
const DefaultStorageCapacity int64 = 1 << 30

type documentStore interface {
	ListByIntern(ctx context.Context, internID string) ([]models.Document, error)
	FindByID(ctx context.Context, internID, id string) (*models.Document, error)
	Create(ctx context.Context, doc models.Document) error
	Delete(ctx context.Context, internID, id string) (*models.Document, error)
}

// DocumentView is a document with its display size.
type DocumentView struct {
	models.Document
	FormattedSize string `json:"formattedSize"`
}

// DocumentGroup is one category of the document library.
type DocumentGroup struct {
	Category  models.DocumentCategory `json:"category"`
	Label     string                  `json:"label"`
	Count     int                     `json:"count"`
	Documents []DocumentView          `json:"documents"`
}

// DocumentLibrary is the grouped document listing with storage usage.
type DocumentLibrary struct {
	Groups         []DocumentGroup `json:"groups"`
	TotalDocuments int             `json:"totalDocuments"`
	TotalBytes     int64           `json:"totalBytes"`
	CapacityBytes  int64           `json:"capacityBytes"`
	StorageUsed    float64         `json:"storageUsed"`
	StoragePercent float64         `json:"storagePercent"`
	StorageLabel   string          `json:"storageLabel"`
}

// GroupDocuments buckets docs by category in display order, keeping the
// relative order of documents inside each bucket.
func GroupDocuments(docs []models.Document, capacity int64) DocumentLibrary {
	if capacity <= 0 {
		capacity = DefaultStorageCapacity
	}
	byCategory := make(map[models.DocumentCategory][]DocumentView, len(models.DocumentCategories))
	var total int64
	for _, doc := range docs {
		total += doc.Size
		byCategory[doc.Category] = append(byCategory[doc.Category], DocumentView{Document: doc, FormattedSize: FormatFileSize(doc.Size)})
	}

	groups := make([]DocumentGroup, 0, len(models.DocumentCategories))
	for _, category := range models.DocumentCategories {
		views := byCategory[category]
		if views == nil {
			views = []DocumentView{}
		}
		groups = append(groups, DocumentGroup{Category: category, Label: category.Label(), Count: len(views), Documents: views})
	}

	used := float64(total) / float64(capacity)
	if used < 0 {
		used = 0
	}
	if used > 1 {
		used = 1
	}
	return DocumentLibrary{
		Groups:         groups,
		TotalDocuments: len(docs),
		TotalBytes:     total,
		CapacityBytes:  capacity,
		StorageUsed:    used,
		StoragePercent: roundTo(used*100, 2),
		StorageLabel:   fmt.Sprintf("%s of %s used", FormatFileSize(total), FormatFileSize(capacity)),
	}
}

// UploadInput is the metadata of a file being filed.
type UploadInput struct {
	Name     string                  `json:"name" validate:"required,max=255"`
	Type     string                  `json:"type" validate:"omitempty,max=127"`
	Size     int64                   `json:"size" validate:"gte=0"`
	Category models.DocumentCategory `json:"category" validate:"required,oneof=agreements contracts reports certificates"`
}

// DownloadDescriptor tells the presentation layer what to fetch.
type DownloadDescriptor struct {
	Document    models.Document `json:"document"`
	Filename    string          `json:"filename"`
	ContentType string          `json:"contentType"`
}

// DocumentService manages document metadata of interns.
type DocumentService struct {
	store     documentStore
	capacity  int64
	validator *validator.Validate
	feed      *NotificationService
	logger    *zap.Logger
	now       func() time.Time
}

// NewDocumentService constructs the service.
func NewDocumentService(store documentStore, capacity int64, validate *validator.Validate, feed *NotificationService, logger *zap.Logger) *DocumentService {
	if capacity <= 0 {
		capacity = DefaultStorageCapacity
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{store: store, capacity: capacity, validator: validate, feed: feed, logger: logger, now: time.Now}
}

// Library returns the intern's documents grouped by category.
func (s *DocumentService) Library(ctx context.Context, internID string) (*DocumentLibrary, error) {
	docs, err := s.store.ListByIntern(ctx, internID)
	if err != nil {
		return nil, err
	}
	library := GroupDocuments(docs, s.capacity)
	return &library, nil
}

// Upload records the metadata of a new document.
func (s *DocumentService) Upload(ctx context.Context, internID string, input UploadInput) (*models.Document, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, s.reject(internID, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid document metadata"))
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, s.reject(internID, appErrors.Validation("file name is required"))
	}
	contentType := input.Type
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	doc := models.Document{
		ID:         uuid.NewString(),
		InternID:   internID,
		Name:       name,
		Type:       contentType,
		Size:       input.Size,
		UploadedAt: models.DateOf(s.now()),
		Category:   input.Category,
	}
	if err := s.store.Create(ctx, doc); err != nil {
		return nil, err
	}
	s.logger.Info("document uploaded", zap.String("intern_id", internID), zap.String("document_id", doc.ID), zap.String("category", string(doc.Category)), zap.Int64("size", doc.Size))
	s.feed.Emit(internID, models.OutcomeUploaded, "File Upload", fmt.Sprintf("File upload for %s category initiated.", doc.Category))
	return &doc, nil
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, internID, id string) error {
	removed, err := s.store.Delete(ctx, internID, id)
	if err != nil {
		return err
	}
	s.logger.Info("document deleted", zap.String("intern_id", internID), zap.String("document_id", id))
	s.feed.Emit(internID, models.OutcomeDeleted, "File Deleted", fmt.Sprintf("%s has been removed.", removed.Name))
	return nil
}

// Download returns the descriptor of a stored document.
func (s *DocumentService) Download(ctx context.Context, internID, id string) (*DownloadDescriptor, error) {
	doc, err := s.store.FindByID(ctx, internID, id)
	if err != nil {
		return nil, err
	}
	s.feed.Emit(internID, models.OutcomeDownloadStarted, "Download Started", fmt.Sprintf("Downloading %s...", doc.Name))
	return &DownloadDescriptor{Document: *doc, Filename: doc.Name, ContentType: doc.Type}, nil
}

func (s *DocumentService) reject(internID string, err error) error {
	s.feed.emitFailure(internID, err)
	return err
}
