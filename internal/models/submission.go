package models

import "time"

// FormKind identifies a submittable form.
type FormKind string

const (
	FormProfile       FormKind = "profile"
	FormWeeklySummary FormKind = "weekly-summary"
	FormFeedback      FormKind = "feedback"
)

// SubmissionState is the lifecycle of a draft's submit action.
type SubmissionState string

const (
	SubmissionIdle     SubmissionState = "idle"
	SubmissionInFlight SubmissionState = "in-flight"
	SubmissionDone     SubmissionState = "done"
)

// Outcome is a user-facing semantic result surfaced to the presentation layer.
type Outcome string

const (
	OutcomeSubmitted         Outcome = "submitted"
	OutcomeSaved             Outcome = "saved"
	OutcomeDeleted           Outcome = "deleted"
	OutcomeUploaded          Outcome = "uploaded"
	OutcomeDownloadStarted   Outcome = "download-started"
	OutcomeAlreadyInProgress Outcome = "already-in-progress"
	OutcomeValidationError   Outcome = "validation-error"
)

// Destructive reports whether the outcome is rendered with the destructive variant.
func (o Outcome) Destructive() bool {
	switch o {
	case OutcomeDeleted, OutcomeAlreadyInProgress, OutcomeValidationError:
		return true
	}
	return false
}

// Notification is one entry of the outcome feed.
type Notification struct {
	ID          string    `json:"id"`
	InternID    string    `json:"internId,omitempty"`
	Outcome     Outcome   `json:"outcome"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Destructive bool      `json:"destructive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SubmissionStatus is a snapshot of a draft session.
type SubmissionStatus struct {
	Form        FormKind        `json:"form"`
	InternID    string          `json:"internId"`
	State       SubmissionState `json:"state"`
	SubmittedAt *time.Time      `json:"submittedAt,omitempty"`
}
