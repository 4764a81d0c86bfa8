package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aphrc/internship-tracker/internal/dto"
	"github.com/aphrc/internship-tracker/internal/models"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
	"github.com/aphrc/internship-tracker/pkg/response"
)

// ViewHandler lists the navigation catalog of each role.
type ViewHandler struct{}

// NewViewHandler constructs the handler.
func NewViewHandler() *ViewHandler {
	return &ViewHandler{}
}

// List godoc
// @Summary Views available to a role
// @Tags Views
// @Produce json
// @Param role query string true "intern or supervisor"
// @Success 200 {object} response.Envelope
// @Router /views [get]
func (h *ViewHandler) List(c *gin.Context) {
	role := models.Role(strings.ToLower(strings.TrimSpace(c.Query("role"))))
	if !role.Valid() {
		response.Error(c, appErrors.Validation("role must be intern or supervisor"))
		return
	}
	response.JSON(c, http.StatusOK, dto.ViewCatalogResponse{
		Role:        role,
		DefaultView: models.DefaultView(role),
		Views:       models.ViewsFor(role),
	})
}
