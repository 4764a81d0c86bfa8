package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aphrc/internship-tracker/internal/dto"
	"github.com/aphrc/internship-tracker/internal/middleware"
	"github.com/aphrc/internship-tracker/internal/models"
	"github.com/aphrc/internship-tracker/internal/service"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

type rosterServiceMock struct {
	result     *service.RosterResult
	cacheHit   bool
	lastFilter models.RosterFilter
	stats      models.RosterStats
	getResp    *models.Participant
	err        error
}

func (m *rosterServiceMock) Query(ctx context.Context, filter models.RosterFilter) (*service.RosterResult, bool, error) {
	m.lastFilter = filter
	return m.result, m.cacheHit, m.err
}

func (m *rosterServiceMock) Stats(ctx context.Context) (models.RosterStats, error) {
	return m.stats, m.err
}

func (m *rosterServiceMock) Get(ctx context.Context, id string) (*models.Participant, error) {
	return m.getResp, m.err
}

type exportServiceMock struct {
	result     *service.ExportResult
	lastFormat service.ExportFormat
	file       *service.ExportFile
	err        error
}

func (m *exportServiceMock) Export(ctx context.Context, filter models.RosterFilter, format service.ExportFormat) (*service.ExportResult, error) {
	m.lastFormat = format
	return m.result, m.err
}

func (m *exportServiceMock) Open(token string) (*service.ExportFile, error) {
	return m.file, m.err
}

func newGinContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func withViewer(c *gin.Context, role models.Role, internID string) {
	c.Set(middleware.ContextViewerKey, models.Viewer{Role: role, View: models.DefaultView(role), InternID: internID})
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRosterHandlerListPassesFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &rosterServiceMock{
		result: &service.RosterResult{
			Interns: []models.Participant{{ID: "1", Name: "John Doe", Status: models.StatusOngoing, AgreementIssued: true}},
			Stats:   models.RosterStats{Total: 3, Ongoing: 2},
		},
		cacheHit: true,
	}
	h := NewRosterHandler(mockSvc, &exportServiceMock{})

	c, w := newGinContext(http.MethodGet, "/supervisor/roster?search=john&status=ongoing&unit=Research", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "john", mockSvc.lastFilter.Search)
	assert.Equal(t, "ongoing", mockSvc.lastFilter.Status)
	assert.Equal(t, "Research", mockSvc.lastFilter.Unit)

	body := decodeEnvelope(t, w)
	var data dto.RosterResponse
	require.NoError(t, json.Unmarshal(body["data"], &data))
	require.Len(t, data.Interns, 1)
	assert.True(t, data.Interns[0].PendingDocuments)
	assert.Equal(t, 3, data.Stats.Total)
}

func TestRosterHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewRosterHandler(&rosterServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "intern not found")}, &exportServiceMock{})

	c, w := newGinContext(http.MethodGet, "/supervisor/roster/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	h.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRosterHandlerExportRejectsUnknownFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exports := &exportServiceMock{}
	h := NewRosterHandler(&rosterServiceMock{}, exports)

	payload, _ := json.Marshal(dto.ExportRosterRequest{Format: "xlsx"})
	c, w := newGinContext(http.MethodPost, "/supervisor/roster/export", payload)
	h.Export(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, exports.lastFormat)
}

func TestRosterHandlerExportCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exports := &exportServiceMock{result: &service.ExportResult{ID: "exp-1", Format: service.ExportCSV, URL: "/api/v1/exports/token"}}
	h := NewRosterHandler(&rosterServiceMock{}, exports)

	payload, _ := json.Marshal(dto.ExportRosterRequest{Format: "csv", Status: "ongoing"})
	c, w := newGinContext(http.MethodPost, "/supervisor/roster/export", payload)
	h.Export(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, service.ExportCSV, exports.lastFormat)
}

func TestRosterHandlerDownloadStreamsFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	file, err := os.CreateTemp("", "roster*.csv")
	require.NoError(t, err)
	defer os.Remove(file.Name())
	_, _ = file.WriteString("ID,Name\n1,John Doe\n")
	_, _ = file.Seek(0, 0)

	exports := &exportServiceMock{file: &service.ExportFile{File: file, Filename: "roster.csv", ContentType: "text/csv"}}
	h := NewRosterHandler(&rosterServiceMock{}, exports)

	c, w := newGinContext(http.MethodGet, "/exports/token", nil)
	c.Params = gin.Params{{Key: "token", Value: "token"}}
	h.Download(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "roster.csv")
	assert.Contains(t, w.Body.String(), "John Doe")
}
