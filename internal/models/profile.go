package models

import (
	"strconv"
	"strings"

	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

// Option is a value/label pair offered by a profile select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var (
	EducationOptions = []Option{
		{Value: "diploma", Label: "Diploma"},
		{Value: "bachelor", Label: "Bachelor's"},
		{Value: "master", Label: "Master's"},
		{Value: "phd", Label: "PhD"},
		{Value: "other", Label: "Other"},
	}
	ThemeOptions = []Option{
		{Value: "public-health", Label: "Public Health"},
		{Value: "data-science", Label: "Data Science"},
		{Value: "finance", Label: "Finance"},
		{Value: "hr", Label: "Human Resources"},
		{Value: "it", Label: "Information Technology"},
	}
	// UnitOptions labels double as the unit names shown on the roster.
	UnitOptions = []Option{
		{Value: "research", Label: "Research"},
		{Value: "hr", Label: "HR"},
		{Value: "it", Label: "IT"},
		{Value: "finance", Label: "Finance"},
		{Value: "admin", Label: "Admin"},
	}
	SupervisorOptions = []Option{
		{Value: "dr-smith", Label: "Dr. Smith"},
		{Value: "dr-jones", Label: "Dr. Jones"},
		{Value: "prof-brown", Label: "Prof. Brown"},
		{Value: "ms-davis", Label: "Ms. Davis"},
	}
	ModeOptions = []Option{
		{Value: "physical", Label: "Physical"},
		{Value: "blended", Label: "Blended"},
		{Value: "virtual", Label: "Virtual"},
	}
	YearOptions = []Option{
		{Value: "2023", Label: "2023"},
		{Value: "2024", Label: "2024"},
		{Value: "2025", Label: "2025"},
	}
)

// OptionLabel returns the label of value within options, or value itself when unknown.
func OptionLabel(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func hasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// DocumentStatus tracks which administrative documents have been issued.
type DocumentStatus struct {
	InternshipAgreement bool `json:"internshipAgreement"`
	Contract            bool `json:"contract"`
	FeedbackForm        bool `json:"feedbackForm"`
}

// Profile is the long-lived record an intern maintains about their internship.
type Profile struct {
	InternID              string            `json:"internId"`
	Name                  string            `json:"name"`
	Education             string            `json:"education"`
	Theme                 string            `json:"theme"`
	Unit                  string            `json:"unit"`
	Supervisor            string            `json:"supervisor"`
	Mode                  string            `json:"mode"`
	Year                  string            `json:"year"`
	StartDate             Date              `json:"startDate"`
	ExpectedEndDate       Date              `json:"expectedEndDate"`
	ActualEndDate         Date              `json:"actualEndDate"`
	Status                ParticipantStatus `json:"status"`
	TerminationReason     string            `json:"terminationReason"`
	BrownPresentationLink string            `json:"brownPresentationLink"`
	Documents             DocumentStatus    `json:"documents"`
}

// ProfileField names an editable field of the profile.
type ProfileField string

const (
	ProfileFieldName                  ProfileField = "name"
	ProfileFieldEducation             ProfileField = "education"
	ProfileFieldTheme                 ProfileField = "theme"
	ProfileFieldUnit                  ProfileField = "unit"
	ProfileFieldSupervisor            ProfileField = "supervisor"
	ProfileFieldMode                  ProfileField = "mode"
	ProfileFieldYear                  ProfileField = "year"
	ProfileFieldStartDate             ProfileField = "startDate"
	ProfileFieldExpectedEndDate       ProfileField = "expectedEndDate"
	ProfileFieldActualEndDate         ProfileField = "actualEndDate"
	ProfileFieldStatus                ProfileField = "status"
	ProfileFieldTerminationReason     ProfileField = "terminationReason"
	ProfileFieldBrownPresentationLink ProfileField = "brownPresentationLink"
)

// WithField returns a copy of p with field set to value. Select fields only
// accept values from their option list.
func (p Profile) WithField(field ProfileField, value string) (Profile, error) {
	next := p
	switch field {
	case ProfileFieldName:
		next.Name = value
	case ProfileFieldEducation:
		if !hasOption(EducationOptions, value) {
			return p, appErrors.Validation("invalid education level %q", value)
		}
		next.Education = value
	case ProfileFieldTheme:
		if !hasOption(ThemeOptions, value) {
			return p, appErrors.Validation("invalid theme %q", value)
		}
		next.Theme = value
	case ProfileFieldUnit:
		if !hasOption(UnitOptions, value) {
			return p, appErrors.Validation("invalid unit %q", value)
		}
		next.Unit = value
	case ProfileFieldSupervisor:
		if !hasOption(SupervisorOptions, value) {
			return p, appErrors.Validation("invalid supervisor %q", value)
		}
		next.Supervisor = value
	case ProfileFieldMode:
		if !hasOption(ModeOptions, value) {
			return p, appErrors.Validation("invalid internship mode %q", value)
		}
		next.Mode = value
	case ProfileFieldYear:
		if _, err := strconv.Atoi(value); err != nil || len(value) != 4 {
			return p, appErrors.Validation("invalid year %q", value)
		}
		next.Year = value
	case ProfileFieldStartDate, ProfileFieldExpectedEndDate, ProfileFieldActualEndDate:
		date, err := ParseDate(value)
		if err != nil {
			return p, appErrors.Validation("%s: %v", field, err)
		}
		switch field {
		case ProfileFieldStartDate:
			next.StartDate = date
		case ProfileFieldExpectedEndDate:
			next.ExpectedEndDate = date
		default:
			next.ActualEndDate = date
		}
	case ProfileFieldStatus:
		status := ParticipantStatus(value)
		if !status.Valid() {
			return p, appErrors.Validation("invalid status %q", value)
		}
		next.Status = status
	case ProfileFieldTerminationReason:
		next.TerminationReason = value
	case ProfileFieldBrownPresentationLink:
		next.BrownPresentationLink = value
	default:
		return p, appErrors.Validation("unknown profile field %q", field)
	}
	return next, nil
}

// ShowsTerminationReason reports whether the termination reason applies.
func (p Profile) ShowsTerminationReason() bool {
	return p.Status.IsTermination()
}

// Normalize clears the termination reason for non-termination statuses.
func (p Profile) Normalize() Profile {
	if !p.ShowsTerminationReason() {
		p.TerminationReason = ""
	}
	p.TerminationReason = strings.TrimSpace(p.TerminationReason)
	return p
}

// ApplyProfile copies the profile fields shown on the roster onto p.
func (p Participant) ApplyProfile(profile Profile) Participant {
	profile = profile.Normalize()
	p.Name = profile.Name
	p.Unit = OptionLabel(UnitOptions, profile.Unit)
	p.Supervisor = OptionLabel(SupervisorOptions, profile.Supervisor)
	p.Education = profile.Education
	p.Theme = profile.Theme
	p.Mode = profile.Mode
	p.Status = profile.Status
	p.StartDate = profile.StartDate
	p.ExpectedEndDate = profile.ExpectedEndDate
	p.ActualEndDate = nil
	if !profile.ActualEndDate.IsZero() {
		end := profile.ActualEndDate
		p.ActualEndDate = &end
	}
	p.TerminationReason = nil
	if profile.TerminationReason != "" {
		reason := profile.TerminationReason
		p.TerminationReason = &reason
	}
	p.AgreementIssued = profile.Documents.InternshipAgreement
	p.ContractIssued = profile.Documents.Contract
	p.FeedbackSubmitted = profile.Documents.FeedbackForm
	return p.Normalize()
}
