package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aphrc/internship-tracker/internal/models"
	"github.com/aphrc/internship-tracker/internal/repository"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
	"github.com/aphrc/internship-tracker/pkg/storage"
)

func newExportFixture(t *testing.T) *ExportService {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	roster := NewRosterService(repository.NewParticipantRepository(seedRoster()), nil, RosterServiceConfig{}, nil)
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)
	return NewExportService(roster, store, signer, ExportConfig{APIPrefix: "/api/v1/"}, nil)
}

func TestExportServiceCSV(t *testing.T) {
	svc := newExportFixture(t)

	result, err := svc.Export(context.Background(), models.RosterFilter{Status: "ongoing"}, ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Rows)
	assert.True(t, strings.HasPrefix(result.URL, "/api/v1/exports/"))
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	file, err := svc.Open(strings.TrimPrefix(result.URL, "/api/v1/exports/"))
	require.NoError(t, err)
	defer file.File.Close()
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, result.Filename, file.Filename)

	body, err := io.ReadAll(file.File)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Name,Unit,Supervisor,Status"))
	assert.Equal(t, "John Doe,Research,Dr. Smith,Ongoing,2024-01-15,2024-06-15,5,Issued,Issued,Pending,3,2024-01-19", lines[1])
	assert.Contains(t, lines[2], "Jane Smith")
}

func TestExportServicePDF(t *testing.T) {
	svc := newExportFixture(t)

	result, err := svc.Export(context.Background(), models.RosterFilter{}, ExportPDF)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Rows)

	file, err := svc.Open(strings.TrimPrefix(result.URL, "/api/v1/exports/"))
	require.NoError(t, err)
	defer file.File.Close()
	assert.Equal(t, "application/pdf", file.ContentType)

	header := make([]byte, 4)
	_, err = io.ReadFull(file.File, header)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(header))
}

func TestExportServiceRejectsBadInput(t *testing.T) {
	svc := newExportFixture(t)

	_, err := svc.Export(context.Background(), models.RosterFilter{}, "xlsx")
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Open("not-a-token")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestExportServiceCleanup(t *testing.T) {
	svc := newExportFixture(t)
	_, err := svc.Export(context.Background(), models.RosterFilter{}, ExportCSV)
	require.NoError(t, err)

	removed, err := svc.Cleanup()
	require.NoError(t, err)
	assert.Empty(t, removed)
}
