package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aphrc/internship-tracker/internal/dto"
	"github.com/aphrc/internship-tracker/internal/models"
	"github.com/aphrc/internship-tracker/internal/service"
	"github.com/aphrc/internship-tracker/pkg/response"
)

type weeklySummaryService interface {
	State(ctx context.Context, internID string) (*service.WeeklySummaryState, error)
	SetField(ctx context.Context, internID string, field models.WeeklySummaryField, value string) (*service.WeeklySummaryState, error)
	ToggleFile(ctx context.Context, internID, name string, attach bool) (*service.WeeklySummaryState, error)
	Submit(ctx context.Context, internID string) (*service.SubmitTask, error)
	History(ctx context.Context, internID string) ([]models.WeeklySummaryEntry, error)
}

// WeeklySummaryHandler serves the weekly summary draft and its history.
type WeeklySummaryHandler struct {
	service weeklySummaryService
}

// NewWeeklySummaryHandler constructs the handler.
func NewWeeklySummaryHandler(svc weeklySummaryService) *WeeklySummaryHandler {
	return &WeeklySummaryHandler{service: svc}
}

// Get godoc
// @Summary Current weekly summary draft
// @Tags WeeklySummary
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /intern/weekly-summary [get]
func (h *WeeklySummaryHandler) Get(c *gin.Context) {
	state, err := h.service.State(c.Request.Context(), internIDFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// SetField godoc
// @Summary Change one weekly summary field
// @Tags WeeklySummary
// @Accept json
// @Produce json
// @Param payload body dto.SetFieldRequest true "Field update"
// @Success 200 {object} response.Envelope
// @Router /intern/weekly-summary [patch]
func (h *WeeklySummaryHandler) SetField(c *gin.Context) {
	var req dto.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid weekly summary field payload"))
		return
	}
	state, err := h.service.SetField(c.Request.Context(), internIDFromContext(c), models.WeeklySummaryField(req.Field), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// ToggleFile godoc
// @Summary Attach or detach a file name
// @Tags WeeklySummary
// @Accept json
// @Produce json
// @Param payload body dto.ToggleMemberRequest true "File toggle"
// @Success 200 {object} response.Envelope
// @Router /intern/weekly-summary/files [post]
func (h *WeeklySummaryHandler) ToggleFile(c *gin.Context) {
	var req dto.ToggleMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid file payload"))
		return
	}
	state, err := h.service.ToggleFile(c.Request.Context(), internIDFromContext(c), req.Member, *req.Include)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// Submit godoc
// @Summary Submit the weekly summary
// @Tags WeeklySummary
// @Produce json
// @Success 202 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /intern/weekly-summary/submit [post]
func (h *WeeklySummaryHandler) Submit(c *gin.Context) {
	task, err := h.service.Submit(c.Request.Context(), internIDFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, acceptedTask(task))
}

// History godoc
// @Summary Previous weekly submissions, newest first
// @Tags WeeklySummary
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /intern/weekly-summary/history [get]
func (h *WeeklySummaryHandler) History(c *gin.Context) {
	entries, err := h.service.History(c.Request.Context(), internIDFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, map[string]interface{}{"total": len(entries)})
}
