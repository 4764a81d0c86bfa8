package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aphrc/internship-tracker/internal/dto"
	"github.com/aphrc/internship-tracker/internal/middleware"
	"github.com/aphrc/internship-tracker/internal/models"
	"github.com/aphrc/internship-tracker/internal/repository"
	"github.com/aphrc/internship-tracker/internal/service"
	"github.com/aphrc/internship-tracker/pkg/storage"
)

type trackerAPI struct {
	engine *gin.Engine
	feed   *service.NotificationService
}

func newTrackerAPI(t *testing.T) *trackerAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seed := repository.DefaultSeed()
	metrics := service.NewMetricsService()
	roster := service.NewRosterService(repository.NewParticipantRepository(seed.Participants), nil, service.RosterServiceConfig{}, nil)
	feed := service.NewNotificationService(0, metrics, nil)
	runner := service.NewSubmissionRunner(service.SubmissionRunnerConfig{Workers: 1}, metrics, nil)
	ctx, cancel := context.WithCancel(context.Background())
	runner.Start(ctx)
	t.Cleanup(func() {
		cancel()
		runner.Stop()
	})

	localStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	exports := service.NewExportService(roster, localStorage, storage.NewSignedURLSigner("secret", time.Hour), service.ExportConfig{APIPrefix: "/api/v1"}, nil)
	profiles := service.NewProfileService(repository.NewProfileRepository(seed.Profiles), roster, runner, feed, nil)

	engine := gin.New()
	Register(engine.Group("/api/v1"), Handlers{
		Views:         NewViewHandler(),
		Roster:        NewRosterHandler(roster, exports),
		Profile:       NewProfileHandler(profiles),
		WeeklySummary: NewWeeklySummaryHandler(service.NewWeeklySummaryService(repository.NewWeeklySummaryRepository(seed.WeeklyHistory), roster, runner, feed, nil)),
		Feedback:      NewFeedbackHandler(service.NewFeedbackService(roster, profiles, runner, feed, nil)),
		Documents:     NewDocumentHandler(service.NewDocumentService(repository.NewDocumentRepository(seed.Documents), 0, nil, feed, nil)),
		Notifications: NewNotificationHandler(feed),
	})
	return &trackerAPI{engine: engine, feed: feed}
}

func (a *trackerAPI) do(method, path string, role models.Role, internID string, body interface{}) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set(middleware.HeaderRole, string(role))
	}
	if internID != "" {
		req.Header.Set(middleware.HeaderInternID, internID)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func TestRouterRequiresRoleHeaders(t *testing.T) {
	api := newTrackerAPI(t)

	w := api.do(http.MethodGet, "/api/v1/supervisor/roster", "", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/v1/supervisor/roster", models.RoleIntern, "1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodGet, "/api/v1/intern/profile", models.RoleIntern, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/v1/supervisor/roster", models.RoleSupervisor, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterViewCatalog(t *testing.T) {
	api := newTrackerAPI(t)

	w := api.do(http.MethodGet, "/api/v1/views?role=supervisor", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data dto.ViewCatalogResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, models.ViewDashboard, envelope.Data.DefaultView)
	require.Len(t, envelope.Data.Views, 4)
	assert.False(t, envelope.Data.Views[2].Available)

	w = api.do(http.MethodGet, "/api/v1/views?role=admin", "", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouterWeeklySummarySubmitFlow(t *testing.T) {
	api := newTrackerAPI(t)
	base := "/api/v1/intern/weekly-summary"

	w := api.do(http.MethodPost, base+"/submit", models.RoleIntern, "1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPatch, base, models.RoleIntern, "1", dto.SetFieldRequest{Field: string(models.FieldTasksCompleted), Value: "Cleaned survey data"})
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPatch, base, models.RoleIntern, "1", dto.SetFieldRequest{Field: "mood", Value: "great"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, base+"/submit", models.RoleIntern, "1", nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	require.Eventually(t, func() bool {
		for _, n := range api.feed.List("1", time.Time{}) {
			if n.Outcome == models.OutcomeSubmitted {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)

	w = api.do(http.MethodGet, base+"/history", models.RoleIntern, "1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data []models.WeeklySummaryEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data)
	assert.Equal(t, "Cleaned survey data", envelope.Data[0].TasksCompleted)
}

func TestRouterDocumentLifecycle(t *testing.T) {
	api := newTrackerAPI(t)
	base := "/api/v1/intern/documents"

	w := api.do(http.MethodPost, base, models.RoleIntern, "1", service.UploadInput{Name: "Week2.pdf", Type: "application/pdf", Size: 2048, Category: models.CategoryReports})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data models.Document `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = api.do(http.MethodPost, base, models.RoleIntern, "1", service.UploadInput{Name: "x.pdf", Category: "photos"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, base+"/"+created.Data.ID+"/download", models.RoleIntern, "1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodDelete, base+"/"+created.Data.ID, models.RoleIntern, "1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodDelete, base+"/"+created.Data.ID, models.RoleIntern, "1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterNotificationsScopedToIntern(t *testing.T) {
	api := newTrackerAPI(t)
	api.feed.Emit("1", models.OutcomeUploaded, "File Upload", "one")
	api.feed.Emit("2", models.OutcomeUploaded, "File Upload", "two")

	w := api.do(http.MethodGet, "/api/v1/notifications", models.RoleIntern, "1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data []models.Notification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "1", envelope.Data[0].InternID)

	w = api.do(http.MethodGet, "/api/v1/notifications", models.RoleSupervisor, "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)

	w = api.do(http.MethodGet, "/api/v1/notifications?since=yesterday", models.RoleSupervisor, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouterExportDownload(t *testing.T) {
	api := newTrackerAPI(t)

	w := api.do(http.MethodPost, "/api/v1/supervisor/roster/export", models.RoleSupervisor, "", dto.ExportRosterRequest{Format: "csv"})
	require.Equal(t, http.StatusCreated, w.Code)
	var envelope struct {
		Data service.ExportResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.URL)

	w = api.do(http.MethodGet, envelope.Data.URL, "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "John Doe")

	w = api.do(http.MethodGet, "/api/v1/exports/forged", "", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
