package dto

import (
	"github.com/aphrc/internship-tracker/internal/models"
)

// RosterQuery binds the supervisor roster filter from the query string.
type RosterQuery struct {
	Search string `form:"search" binding:"max=200"`
	Status string `form:"status" binding:"max=64"`
	Unit   string `form:"unit" binding:"max=64"`
}

// Filter converts the query into a roster filter.
func (q RosterQuery) Filter() models.RosterFilter {
	return models.RosterFilter{Search: q.Search, Status: q.Status, Unit: q.Unit}
}

// RosterEntry is a participant row with derived columns.
type RosterEntry struct {
	models.Participant
	StatusLabel      string `json:"statusLabel"`
	DurationMonths   int    `json:"durationMonths"`
	PendingDocuments bool   `json:"pendingDocuments"`
}

// RosterResponse is the supervisor roster payload.
type RosterResponse struct {
	Interns []RosterEntry       `json:"interns"`
	Stats   models.RosterStats  `json:"stats"`
	Filter  models.RosterFilter `json:"filter"`
}

// ExportRosterRequest asks for a roster report in the given format.
type ExportRosterRequest struct {
	Format string `json:"format" binding:"required,oneof=csv pdf"`
	Search string `json:"search" binding:"max=200"`
	Status string `json:"status" binding:"max=64"`
	Unit   string `json:"unit" binding:"max=64"`
}

// Filter converts the request into a roster filter.
func (r ExportRosterRequest) Filter() models.RosterFilter {
	return models.RosterFilter{Search: r.Search, Status: r.Status, Unit: r.Unit}
}
