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

type profileService interface {
	Options() service.ProfileOptions
	State(ctx context.Context, internID string) (*service.ProfileState, error)
	BeginEdit(ctx context.Context, internID string) (*service.ProfileState, error)
	SetField(ctx context.Context, internID string, field models.ProfileField, value string) (*service.ProfileState, error)
	Save(ctx context.Context, internID string) (*service.SubmitTask, error)
}

// ProfileHandler exposes the intern profile edit lifecycle.
type ProfileHandler struct {
	service profileService
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(svc profileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// Get godoc
// @Summary Current profile and edit state
// @Tags Profile
// @Produce json
// @Param X-Intern-ID header string true "Intern ID"
// @Success 200 {object} response.Envelope
// @Router /intern/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	state, err := h.service.State(c.Request.Context(), internIDFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// Options godoc
// @Summary Select options of the profile form
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /intern/profile/options [get]
func (h *ProfileHandler) Options(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Options())
}

// BeginEdit godoc
// @Summary Enter profile edit mode
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /intern/profile/edit [post]
func (h *ProfileHandler) BeginEdit(c *gin.Context) {
	state, err := h.service.BeginEdit(c.Request.Context(), internIDFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// SetField godoc
// @Summary Change one profile field
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body dto.SetFieldRequest true "Field update"
// @Success 200 {object} response.Envelope
// @Router /intern/profile [patch]
func (h *ProfileHandler) SetField(c *gin.Context) {
	var req dto.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "invalid profile field payload"))
		return
	}
	state, err := h.service.SetField(c.Request.Context(), internIDFromContext(c), models.ProfileField(req.Field), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// Save godoc
// @Summary Persist the edited profile
// @Tags Profile
// @Produce json
// @Success 202 {object} response.Envelope
// @Router /intern/profile/save [post]
func (h *ProfileHandler) Save(c *gin.Context) {
	task, err := h.service.Save(c.Request.Context(), internIDFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, acceptedTask(task))
}
