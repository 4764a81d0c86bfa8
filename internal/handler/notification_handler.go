package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aphrc/internship-tracker/internal/dto"
	"github.com/aphrc/internship-tracker/internal/models"
	"github.com/aphrc/internship-tracker/pkg/response"
)

type notificationFeed interface {
	List(internID string, since time.Time) []models.Notification
}

// NotificationHandler exposes the outcome feed polled by the presentation layer.
type NotificationHandler struct {
	feed notificationFeed
}

// NewNotificationHandler constructs the handler.
func NewNotificationHandler(feed notificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// List godoc
// @Summary Outcome notifications, newest first
// @Description Interns see their own notifications; supervisors see every intern's.
// @Tags Notifications
// @Produce json
// @Param since query string false "Exclusive RFC3339 lower bound"
// @Success 200 {object} response.Envelope
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	var query dto.NotificationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err, "invalid notification query"))
		return
	}
	var since time.Time
	if query.Since != "" {
		parsed, err := time.Parse(time.RFC3339Nano, query.Since)
		if err != nil {
			response.Error(c, bindError(err, "since must be an RFC3339 timestamp"))
			return
		}
		since = parsed
	}

	viewer := viewerFromContext(c)
	internID := ""
	if viewer.Role == models.RoleIntern {
		internID = viewer.InternID
	}
	items := h.feed.List(internID, since)
	response.JSON(c, http.StatusOK, items, map[string]interface{}{"total": len(items)})
}
