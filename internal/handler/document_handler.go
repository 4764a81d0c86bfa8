package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aphrc/internship-tracker/internal/models"
	"github.com/aphrc/internship-tracker/internal/service"
	"github.com/aphrc/internship-tracker/pkg/response"
)

type documentService interface {
	Library(ctx context.Context, internID string) (*service.DocumentLibrary, error)
	Upload(ctx context.Context, internID string, input service.UploadInput) (*models.Document, error)
	Delete(ctx context.Context, internID, id string) error
	Download(ctx context.Context, internID, id string) (*service.DownloadDescriptor, error)
}

// DocumentHandler serves the intern document library.
type DocumentHandler struct {
	service documentService
}

// NewDocumentHandler constructs the handler.
func NewDocumentHandler(svc documentService) *DocumentHandler {
	return &DocumentHandler{service: svc}
}

// List godoc
// @Summary Documents grouped by category with storage usage
// @Tags Documents
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /intern/documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	library, err := h.service.Library(c.Request.Context(), internIDFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, library)
}

// Upload godoc
// @Summary Record an uploaded document
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body service.UploadInput true "Document metadata"
// @Success 201 {object} response.Envelope
// @Router /intern/documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	var input service.UploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, bindError(err, "invalid document payload"))
		return
	}
	doc, err := h.service.Upload(c.Request.Context(), internIDFromContext(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, doc)
}

// Delete godoc
// @Summary Remove a document
// @Tags Documents
// @Param id path string true "Document ID"
// @Success 204
// @Router /intern/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), internIDFromContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Download godoc
// @Summary Download descriptor of a document
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Envelope
// @Router /intern/documents/{id}/download [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	descriptor, err := h.service.Download(c.Request.Context(), internIDFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, descriptor)
}
