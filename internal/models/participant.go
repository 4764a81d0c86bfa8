package models

import "strings"

// FilterAll disables a facet filter.
const FilterAll = "all"

// ParticipantStatus is the lifecycle state of an internship.
type ParticipantStatus string

const (
	StatusOngoing                ParticipantStatus = "ongoing"
	StatusCompleted              ParticipantStatus = "completed"
	StatusVoluntaryTermination   ParticipantStatus = "voluntary-termination"
	StatusInvoluntaryTermination ParticipantStatus = "involuntary-termination"
)

// ParticipantStatuses lists statuses in display order.
var ParticipantStatuses = []ParticipantStatus{
	StatusOngoing,
	StatusCompleted,
	StatusVoluntaryTermination,
	StatusInvoluntaryTermination,
}

// Valid reports whether s is a known status.
func (s ParticipantStatus) Valid() bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusVoluntaryTermination, StatusInvoluntaryTermination:
		return true
	}
	return false
}

// IsTermination reports whether s ends the internship early.
func (s ParticipantStatus) IsTermination() bool {
	return s == StatusVoluntaryTermination || s == StatusInvoluntaryTermination
}

// Label is the human readable status name.
func (s ParticipantStatus) Label() string {
	switch s {
	case StatusOngoing:
		return "Ongoing"
	case StatusCompleted:
		return "Completed"
	case StatusVoluntaryTermination:
		return "Voluntary Termination"
	case StatusInvoluntaryTermination:
		return "Involuntary Termination"
	}
	return string(s)
}

// Participant is one intern row of the supervisor roster.
type Participant struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Unit              string            `json:"unit"`
	Supervisor        string            `json:"supervisor"`
	Education         string            `json:"education,omitempty"`
	Theme             string            `json:"theme,omitempty"`
	Mode              string            `json:"mode,omitempty"`
	Status            ParticipantStatus `json:"status"`
	StartDate         Date              `json:"startDate"`
	ExpectedEndDate   Date              `json:"expectedEndDate"`
	ActualEndDate     *Date             `json:"actualEndDate,omitempty"`
	TerminationReason *string           `json:"terminationReason,omitempty"`
	AgreementIssued   bool              `json:"agreementIssued"`
	ContractIssued    bool              `json:"contractIssued"`
	FeedbackSubmitted bool              `json:"feedbackSubmitted"`
	WeeklySubmissions int               `json:"weeklySubmissions"`
	LastSubmission    Date              `json:"lastSubmission"`
}

// PendingDocuments reports whether the agreement or the contract is outstanding.
func (p Participant) PendingDocuments() bool {
	return !p.AgreementIssued || !p.ContractIssued
}

// Normalize drops the termination reason unless the status is a termination
// variant, and blank reasons altogether.
func (p Participant) Normalize() Participant {
	if !p.Status.IsTermination() || p.TerminationReason == nil || strings.TrimSpace(*p.TerminationReason) == "" {
		p.TerminationReason = nil
	}
	if p.ActualEndDate != nil && p.ActualEndDate.IsZero() {
		p.ActualEndDate = nil
	}
	return p
}

// RosterFilter holds the supervisor view criteria. Status and Unit accept
// FilterAll to disable the facet.
type RosterFilter struct {
	Search string `json:"search"`
	Status string `json:"status"`
	Unit   string `json:"unit"`
}

// Normalized fills empty facets with FilterAll.
func (f RosterFilter) Normalized() RosterFilter {
	if f.Status == "" {
		f.Status = FilterAll
	}
	if f.Unit == "" {
		f.Unit = FilterAll
	}
	return f
}

// RosterStats are aggregate counts over the full roster.
type RosterStats struct {
	Total            int `json:"totalInterns"`
	Ongoing          int `json:"ongoingInterns"`
	Completed        int `json:"completedInterns"`
	PendingDocuments int `json:"pendingDocuments"`
}
