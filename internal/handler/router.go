package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/aphrc/internship-tracker/internal/middleware"
	"github.com/aphrc/internship-tracker/internal/models"
)

// Handlers bundles every HTTP handler mounted under the API prefix.
type Handlers struct {
	Views         *ViewHandler
	Roster        *RosterHandler
	Profile       *ProfileHandler
	WeeklySummary *WeeklySummaryHandler
	Feedback      *FeedbackHandler
	Documents     *DocumentHandler
	Notifications *NotificationHandler
}

// Register mounts the API routes on group. Export downloads are authorised by
// their signed token rather than the viewer headers.
func Register(group *gin.RouterGroup, h Handlers) {
	group.GET("/views", h.Views.List)
	group.GET("/exports/:token", h.Roster.Download)

	scoped := group.Group("")
	scoped.Use(middleware.Viewer())
	scoped.GET("/notifications", h.Notifications.List)

	supervisor := scoped.Group("/supervisor")
	supervisor.Use(middleware.RequireRole(models.RoleSupervisor))
	{
		supervisor.GET("/roster", h.Roster.List)
		supervisor.GET("/roster/stats", h.Roster.Stats)
		supervisor.GET("/roster/:id", h.Roster.Get)
		supervisor.POST("/roster/export", h.Roster.Export)
	}

	intern := scoped.Group("/intern")
	intern.Use(middleware.RequireRole(models.RoleIntern))
	{
		intern.GET("/profile", h.Profile.Get)
		intern.GET("/profile/options", h.Profile.Options)
		intern.POST("/profile/edit", h.Profile.BeginEdit)
		intern.PATCH("/profile", h.Profile.SetField)
		intern.POST("/profile/save", h.Profile.Save)

		intern.GET("/weekly-summary", h.WeeklySummary.Get)
		intern.PATCH("/weekly-summary", h.WeeklySummary.SetField)
		intern.POST("/weekly-summary/files", h.WeeklySummary.ToggleFile)
		intern.POST("/weekly-summary/submit", h.WeeklySummary.Submit)
		intern.GET("/weekly-summary/history", h.WeeklySummary.History)

		intern.GET("/feedback", h.Feedback.Get)
		intern.PATCH("/feedback", h.Feedback.SetField)
		intern.POST("/feedback/skills", h.Feedback.ToggleSkill)
		intern.POST("/feedback/submit", h.Feedback.Submit)

		intern.GET("/documents", h.Documents.List)
		intern.POST("/documents", h.Documents.Upload)
		intern.DELETE("/documents/:id", h.Documents.Delete)
		intern.GET("/documents/:id/download", h.Documents.Download)
	}
}
