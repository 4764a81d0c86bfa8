package service

import (
	"context"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aphrc/internship-tracker/internal/models"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
	"github.com/aphrc/internship-tracker/pkg/export"
	"github.com/aphrc/internship-tracker/pkg/storage"
)

// ExportFormat selects the rendered report type.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

type rosterQuerier interface {
	Query(ctx context.Context, filter models.RosterFilter) (*RosterResult, bool, error)
}

type fileStorage interface {
	Save(relPath string, data []byte) (string, error)
	Open(relPath string) (*os.File, error)
	Delete(relPath string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type tableRenderer interface {
	Render(table export.Table) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportResult describes a generated roster report.
type ExportResult struct {
	ID        string       `json:"id"`
	Format    ExportFormat `json:"format"`
	Filename  string       `json:"filename"`
	URL       string       `json:"url"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Rows      int          `json:"rows"`
}

// ExportFile is an opened export ready to stream.
type ExportFile struct {
	File        *os.File
	Filename    string
	ContentType string
}

// ExportService renders the filtered roster into downloadable reports.
type ExportService struct {
	roster    rosterQuerier
	storage   fileStorage
	signer    *storage.SignedURLSigner
	renderers map[ExportFormat]tableRenderer
	cfg       ExportConfig
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService with CSV and PDF renderers.
func NewExportService(roster rosterQuerier, store fileStorage, signer *storage.SignedURLSigner, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = time.Hour
	}
	return &ExportService{
		roster:  roster,
		storage: store,
		signer:  signer,
		renderers: map[ExportFormat]tableRenderer{
			ExportCSV: export.NewCSVExporter(),
			ExportPDF: export.NewPDFExporter(),
		},
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Export renders the roster matching filter and returns a signed download link.
func (s *ExportService) Export(ctx context.Context, filter models.RosterFilter, format ExportFormat) (*ExportResult, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Validation("unsupported export format %q", format)
	}
	result, _, err := s.roster.Query(ctx, filter)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	payload, err := renderer.Render(rosterTable(result, now))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render roster report")
	}

	id := uuid.NewString()
	filename := fmt.Sprintf("intern_roster_%s%s", now.Format("20060102_150405"), renderer.Extension())
	relPath, err := s.storage.Save(path.Join(id, filename), payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "store roster report")
	}
	token, expiresAt, err := s.signer.Sign(id, relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "sign roster report")
	}

	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	s.logger.Info("roster report exported",
		zap.String("export_id", id),
		zap.String("format", string(format)),
		zap.Int("rows", len(result.Interns)),
	)
	return &ExportResult{
		ID:        id,
		Format:    format,
		Filename:  filename,
		URL:       fmt.Sprintf("%s/exports/%s", prefix, token),
		ExpiresAt: expiresAt,
		Rows:      len(result.Interns),
	}, nil
}

// Open verifies token and opens the referenced report.
func (s *ExportService) Open(token string) (*ExportFile, error) {
	ref, err := s.signer.Verify(token)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export link is invalid or expired")
	}
	file, err := s.storage.Open(ref.Path)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export not found")
	}
	filename := path.Base(ref.Path)
	contentType := "application/octet-stream"
	for _, renderer := range s.renderers {
		if strings.HasSuffix(filename, renderer.Extension()) {
			contentType = renderer.ContentType()
		}
	}
	return &ExportFile{File: file, Filename: filename, ContentType: contentType}, nil
}

// Cleanup removes reports older than the configured TTL.
func (s *ExportService) Cleanup() ([]string, error) {
	removed, err := s.storage.CleanupOlderThan(s.cfg.ResultTTL)
	if err != nil {
		return nil, err
	}
	if len(removed) > 0 {
		s.logger.Info("expired exports removed", zap.Int("count", len(removed)))
	}
	return removed, nil
}

var rosterColumns = []string{
	"Name", "Unit", "Supervisor", "Status", "Start Date", "Expected End",
	"Duration (months)", "Agreement", "Contract", "Feedback", "Weekly Submissions", "Last Submission",
}

func rosterTable(result *RosterResult, generatedAt time.Time) export.Table {
	rows := make([][]string, 0, len(result.Interns))
	for _, p := range result.Interns {
		rows = append(rows, []string{
			p.Name,
			p.Unit,
			p.Supervisor,
			p.Status.Label(),
			p.StartDate.String(),
			p.ExpectedEndDate.String(),
			strconv.Itoa(DurationMonths(p.StartDate, p.ExpectedEndDate)),
			issued(p.AgreementIssued),
			issued(p.ContractIssued),
			issued(p.FeedbackSubmitted),
			strconv.Itoa(p.WeeklySubmissions),
			p.LastSubmission.String(),
		})
	}
	return export.Table{
		Title:   fmt.Sprintf("Intern Roster (%d of %d) %s", len(result.Interns), result.Stats.Total, generatedAt.Format(models.DateLayout)),
		Columns: rosterColumns,
		Rows:    rows,
	}
}

func issued(ok bool) string {
	if ok {
		return "Issued"
	}
	return "Pending"
}
