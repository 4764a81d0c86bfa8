package repository

import (
	"time"

	"github.com/aphrc/internship-tracker/internal/models"
)

// Seed is the mock dataset the tracker starts with.
type Seed struct {
	Participants  []models.Participant
	Profiles      []models.Profile
	Documents     []models.Document
	WeeklyHistory []models.WeeklySummaryEntry
}

// DefaultSeed returns a fresh copy of the built-in mock dataset.
func DefaultSeed() Seed {
	return Seed{
		Participants: []models.Participant{
			{
				ID:                "1",
				Name:              "John Doe",
				Unit:              "Research",
				Supervisor:        "Dr. Smith",
				Education:         "master",
				Theme:             "public-health",
				Mode:              "blended",
				Status:            models.StatusOngoing,
				StartDate:         models.MustDate("2024-01-15"),
				ExpectedEndDate:   models.MustDate("2024-06-15"),
				AgreementIssued:   true,
				ContractIssued:    true,
				FeedbackSubmitted: false,
				WeeklySubmissions: 3,
				LastSubmission:    models.MustDate("2024-01-19"),
			},
			{
				ID:                "2",
				Name:              "Jane Smith",
				Unit:              "IT",
				Supervisor:        "Ms. Davis",
				Education:         "bachelor",
				Theme:             "it",
				Mode:              "physical",
				Status:            models.StatusOngoing,
				StartDate:         models.MustDate("2024-01-08"),
				ExpectedEndDate:   models.MustDate("2024-05-08"),
				AgreementIssued:   true,
				ContractIssued:    false,
				FeedbackSubmitted: false,
				WeeklySubmissions: 4,
				LastSubmission:    models.MustDate("2024-01-22"),
			},
			{
				ID:                "3",
				Name:              "Mike Johnson",
				Unit:              "Finance",
				Supervisor:        "Dr. Jones",
				Education:         "master",
				Theme:             "finance",
				Mode:              "virtual",
				Status:            models.StatusCompleted,
				StartDate:         models.MustDate("2023-09-01"),
				ExpectedEndDate:   models.MustDate("2024-01-01"),
				AgreementIssued:   true,
				ContractIssued:    true,
				FeedbackSubmitted: true,
				WeeklySubmissions: 16,
				LastSubmission:    models.MustDate("2023-12-29"),
			},
		},
		Profiles: []models.Profile{
			{
				InternID:        "1",
				Name:            "John Doe",
				Education:       "master",
				Theme:           "public-health",
				Unit:            "research",
				Supervisor:      "dr-smith",
				Mode:            "blended",
				Year:            "2024",
				StartDate:       models.MustDate("2024-01-15"),
				ExpectedEndDate: models.MustDate("2024-06-15"),
				Status:          models.StatusOngoing,
				Documents:       models.DocumentStatus{InternshipAgreement: true, Contract: true},
			},
			{
				InternID:        "2",
				Name:            "Jane Smith",
				Education:       "bachelor",
				Theme:           "it",
				Unit:            "it",
				Supervisor:      "ms-davis",
				Mode:            "physical",
				Year:            "2024",
				StartDate:       models.MustDate("2024-01-08"),
				ExpectedEndDate: models.MustDate("2024-05-08"),
				Status:          models.StatusOngoing,
				Documents:       models.DocumentStatus{InternshipAgreement: true},
			},
			{
				InternID:        "3",
				Name:            "Mike Johnson",
				Education:       "master",
				Theme:           "finance",
				Unit:            "finance",
				Supervisor:      "dr-jones",
				Mode:            "virtual",
				Year:            "2023",
				StartDate:       models.MustDate("2023-09-01"),
				ExpectedEndDate: models.MustDate("2024-01-01"),
				ActualEndDate:   models.MustDate("2024-01-01"),
				Status:          models.StatusCompleted,
				Documents:       models.DocumentStatus{InternshipAgreement: true, Contract: true, FeedbackForm: true},
			},
		},
		Documents: []models.Document{
			{ID: "1", InternID: "1", Name: "Internship_Agreement_JohnDoe.pdf", Type: "application/pdf", Size: 245760, UploadedAt: models.MustDate("2024-01-15"), Category: models.CategoryAgreements},
			{ID: "2", InternID: "1", Name: "Contract_Signed.pdf", Type: "application/pdf", Size: 189440, UploadedAt: models.MustDate("2024-01-16"), Category: models.CategoryContracts},
			{ID: "3", InternID: "1", Name: "Weekly_Report_Week1.pdf", Type: "application/pdf", Size: 98304, UploadedAt: models.MustDate("2024-01-19"), Category: models.CategoryReports},
			{ID: "4", InternID: "1", Name: "Certificate_Training.pdf", Type: "application/pdf", Size: 156672, UploadedAt: models.MustDate("2024-01-22"), Category: models.CategoryCertificates},
		},
		WeeklyHistory: []models.WeeklySummaryEntry{
			{
				ID:             "1",
				InternID:       "1",
				WeekOf:         models.MustDate("2024-01-08"),
				TasksCompleted: "Completed data analysis for the public health survey project. Reviewed literature on maternal health interventions.",
				Challenges:     "Understanding some statistical methods was challenging, but received good support from the team.",
				SkillsLearned:  "Learned advanced Excel functions and basic R programming for data visualization.",
				GoalsNextWeek:  "Start working on the final report and prepare presentation slides.",
				Files:          []string{"data_analysis_week1.pdf"},
				SubmittedAt:    time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:             "2",
				InternID:       "1",
				WeekOf:         models.MustDate("2024-01-15"),
				TasksCompleted: "Worked on final report draft and created preliminary presentation slides.",
				Challenges:     "Formatting the report according to APHRC standards took longer than expected.",
				SkillsLearned:  "Improved technical writing skills and learned about APHRC's research methodology.",
				GoalsNextWeek:  "Finalize the report and practice presentation for next week's brown presentation.",
				Files:          []string{"report_draft_v1.pdf", "presentation_outline.pptx"},
				SubmittedAt:    time.Date(2024, time.January, 19, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}
