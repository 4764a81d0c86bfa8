package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aphrc/internship-tracker/internal/models"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
	"github.com/aphrc/internship-tracker/pkg/response"
)

const (
	// HeaderRole carries the dashboard role chosen by the presentation layer.
	HeaderRole = "X-Tracker-Role"
	// HeaderView carries the active view identifier.
	HeaderView = "X-Tracker-View"
	// HeaderInternID identifies the intern whose data is being shown.
	HeaderInternID = "X-Intern-ID"

	// ContextViewerKey stores the resolved models.Viewer.
	ContextViewerKey = "tracker_viewer"
)

// Viewer resolves the explicit session context from request headers. A view
// outside the role's catalog is rejected; a missing view uses the role default.
func Viewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderRole))))
		if role == "" {
			response.Error(c, appErrors.Validation("%s header is required", HeaderRole))
			c.Abort()
			return
		}
		if !role.Valid() {
			response.Error(c, appErrors.Validation("unknown role %q", role))
			c.Abort()
			return
		}

		view := models.View(strings.TrimSpace(c.GetHeader(HeaderView)))
		resolved := models.ResolveView(role, view)
		if view != "" && resolved != view {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "view "+string(view)+" is not available to the "+string(role)+" role"))
			c.Abort()
			return
		}

		c.Set(ContextViewerKey, models.Viewer{
			Role:     role,
			View:     resolved,
			InternID: strings.TrimSpace(c.GetHeader(HeaderInternID)),
		})
		c.Next()
	}
}

// RequireRole rejects requests whose viewer role is not role. Intern routes
// additionally need an intern id.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := ViewerFrom(c)
		if !ok {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		if viewer.Role != role {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "route requires the "+string(role)+" role"))
			c.Abort()
			return
		}
		if role == models.RoleIntern && viewer.InternID == "" {
			response.Error(c, appErrors.Validation("%s header is required", HeaderInternID))
			c.Abort()
			return
		}
		c.Next()
	}
}

// ViewerFrom returns the viewer stored by Viewer.
func ViewerFrom(c *gin.Context) (models.Viewer, bool) {
	value, exists := c.Get(ContextViewerKey)
	if !exists {
		return models.Viewer{}, false
	}
	viewer, ok := value.(models.Viewer)
	return viewer, ok
}
