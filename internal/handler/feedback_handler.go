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

type feedbackService interface {
	State(ctx context.Context, internID string) (*service.FeedbackState, error)
	SetField(ctx context.Context, internID string, field models.FeedbackField, value string) (*service.FeedbackState, error)
	ToggleSkill(ctx context.Context, internID, skill string, include bool) (*service.FeedbackState, error)
	Submit(ctx context.Context, internID string) (*service.SubmitTask, error)
}

// FeedbackHandler serves the end-of-internship feedback form.
type FeedbackHandler struct {
	service feedbackService
}

// NewFeedbackHandler constructs the handler.
func NewFeedbackHandler(svc feedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: svc}
}

// Get godoc
// @Summary Current feedback draft
// @Tags Feedback
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /intern/feedback [get]
func (h *FeedbackHandler) Get(c *gin.Context) {
	state, err := h.service.State(c.Request.Context(), internIDFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// SetField godoc
// @Summary Change one feedback field
// @Tags Feedback
// @Accept json
// @Produce json
// @Param payload body dto.SetFieldRequest true "Field update"
// @Success 200 {object} response.Envelope
// @Router /intern/feedback [patch]
func (h *FeedbackHandler) SetField(c *gin.Context) {
	var req dto.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid feedback field payload"))
		return
	}
	state, err := h.service.SetField(c.Request.Context(), internIDFromContext(c), models.FeedbackField(req.Field), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// ToggleSkill godoc
// @Summary Include or exclude a developed skill
// @Tags Feedback
// @Accept json
// @Produce json
// @Param payload body dto.ToggleMemberRequest true "Skill toggle"
// @Success 200 {object} response.Envelope
// @Router /intern/feedback/skills [post]
func (h *FeedbackHandler) ToggleSkill(c *gin.Context) {
	var req dto.ToggleMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid skill payload"))
		return
	}
	state, err := h.service.ToggleSkill(c.Request.Context(), internIDFromContext(c), req.Member, *req.Include)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// Submit godoc
// @Summary Submit the feedback form
// @Tags Feedback
// @Produce json
// @Success 202 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /intern/feedback/submit [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	task, err := h.service.Submit(c.Request.Context(), internIDFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, acceptedTask(task))
}
