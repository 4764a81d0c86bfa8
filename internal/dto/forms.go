package dto

import (
	"time"

	"github.com/aphrc/internship-tracker/internal/models"
)

// SetFieldRequest replaces one field of a draft.
type SetFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// ToggleMemberRequest adds or removes a member of a set-valued field.
type ToggleMemberRequest struct {
	Member  string `json:"member" binding:"required"`
	Include *bool  `json:"include" binding:"required"`
}

// SubmissionAccepted acknowledges a submission running in the background.
type SubmissionAccepted struct {
	TaskID    string                 `json:"taskId"`
	Form      models.FormKind        `json:"form"`
	InternID  string                 `json:"internId"`
	State     models.SubmissionState `json:"state"`
	StartedAt time.Time              `json:"startedAt"`
}

// ViewCatalogResponse lists the navigation entries of a role.
type ViewCatalogResponse struct {
	Role        models.Role       `json:"role"`
	DefaultView models.View       `json:"defaultView"`
	Views       []models.ViewInfo `json:"views"`
}

// NotificationQuery filters the outcome feed.
type NotificationQuery struct {
	Since string `form:"since"`
}
