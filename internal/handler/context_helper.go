package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/aphrc/internship-tracker/internal/dto"
	"github.com/aphrc/internship-tracker/internal/middleware"
	"github.com/aphrc/internship-tracker/internal/models"
	"github.com/aphrc/internship-tracker/internal/service"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

func viewerFromContext(c *gin.Context) models.Viewer {
	viewer, _ := middleware.ViewerFrom(c)
	return viewer
}

func internIDFromContext(c *gin.Context) string {
	return viewerFromContext(c).InternID
}

func bindError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

func acceptedTask(task *service.SubmitTask) dto.SubmissionAccepted {
	return dto.SubmissionAccepted{
		TaskID:    task.ID,
		Form:      task.Form,
		InternID:  task.InternID,
		State:     models.SubmissionInFlight,
		StartedAt: task.StartedAt,
	}
}
