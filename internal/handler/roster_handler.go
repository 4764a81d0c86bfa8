package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aphrc/internship-tracker/internal/dto"
	"github.com/aphrc/internship-tracker/internal/middleware"
	"github.com/aphrc/internship-tracker/internal/models"
	"github.com/aphrc/internship-tracker/internal/service"
	"github.com/aphrc/internship-tracker/pkg/response"
)

type rosterService interface {
	Query(ctx context.Context, filter models.RosterFilter) (*service.RosterResult, bool, error)
	Stats(ctx context.Context) (models.RosterStats, error)
	Get(ctx context.Context, id string) (*models.Participant, error)
}

type exportService interface {
	Export(ctx context.Context, filter models.RosterFilter, format service.ExportFormat) (*service.ExportResult, error)
	Open(token string) (*service.ExportFile, error)
}

// RosterHandler serves the supervisor roster.
type RosterHandler struct {
	roster  rosterService
	exports exportService
}

// NewRosterHandler constructs the handler.
func NewRosterHandler(roster rosterService, exports exportService) *RosterHandler {
	return &RosterHandler{roster: roster, exports: exports}
}

// List godoc
// @Summary Filter the intern roster
// @Tags Roster
// @Produce json
// @Param search query string false "Case-insensitive name or supervisor substring"
// @Param status query string false "Status or all"
// @Param unit query string false "Unit or all"
// @Success 200 {object} response.Envelope
// @Router /supervisor/roster [get]
func (h *RosterHandler) List(c *gin.Context) {
	var query dto.RosterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err, "invalid roster query"))
		return
	}
	result, cacheHit, err := h.roster.Query(c.Request.Context(), query.Filter())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, toRosterResponse(result), middleware.ResponseMeta(c))
}

// Stats godoc
// @Summary Roster summary counts
// @Tags Roster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /supervisor/roster/stats [get]
func (h *RosterHandler) Stats(c *gin.Context) {
	stats, err := h.roster.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// Get godoc
// @Summary Get one roster entry
// @Tags Roster
// @Produce json
// @Param id path string true "Intern ID"
// @Success 200 {object} response.Envelope
// @Router /supervisor/roster/{id} [get]
func (h *RosterHandler) Get(c *gin.Context) {
	participant, err := h.roster.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toRosterEntry(*participant))
}

// Export godoc
// @Summary Export the filtered roster as CSV or PDF
// @Tags Roster
// @Accept json
// @Produce json
// @Param payload body dto.ExportRosterRequest true "Export request"
// @Success 201 {object} response.Envelope
// @Router /supervisor/roster/export [post]
func (h *RosterHandler) Export(c *gin.Context) {
	var req dto.ExportRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid export payload"))
		return
	}
	result, err := h.exports.Export(c.Request.Context(), req.Filter(), service.ExportFormat(req.Format))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Download godoc
// @Summary Download a generated roster report
// @Tags Roster
// @Produce octet-stream
// @Param token path string true "Signed export token"
// @Success 200 {file} file
// @Router /exports/{token} [get]
func (h *RosterHandler) Download(c *gin.Context) {
	file, err := h.exports.Open(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.File.Close()
	info, err := file.File.Stat()
	if err != nil {
		response.Error(c, err)
		return
	}
	c.DataFromReader(http.StatusOK, info.Size(), file.ContentType, file.File, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", file.Filename),
	})
}

func toRosterEntry(p models.Participant) dto.RosterEntry {
	return dto.RosterEntry{
		Participant:      p,
		StatusLabel:      p.Status.Label(),
		DurationMonths:   service.DurationMonths(p.StartDate, p.ExpectedEndDate),
		PendingDocuments: p.PendingDocuments(),
	}
}

func toRosterResponse(result *service.RosterResult) dto.RosterResponse {
	entries := make([]dto.RosterEntry, 0, len(result.Interns))
	for _, p := range result.Interns {
		entries = append(entries, toRosterEntry(p))
	}
	return dto.RosterResponse{Interns: entries, Stats: result.Stats, Filter: result.Filter}
}
