package models

import (
	"strings"
	"time"

	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

// WeeklySummaryField names an editable narrative field of the weekly summary.
type WeeklySummaryField string

const (
	FieldTasksCompleted WeeklySummaryField = "tasksCompleted"
	FieldChallenges     WeeklySummaryField = "challenges"
	FieldSkillsLearned  WeeklySummaryField = "skillsLearned"
	FieldGoalsNextWeek  WeeklySummaryField = "goalsNextWeek"
)

// WeeklySummaryDraft is the in-progress weekly report of one intern.
type WeeklySummaryDraft struct {
	TasksCompleted string   `json:"tasksCompleted"`
	Challenges     string   `json:"challenges"`
	SkillsLearned  string   `json:"skillsLearned"`
	GoalsNextWeek  string   `json:"goalsNextWeek"`
	Files          []string `json:"files"`
}

// EmptyWeeklySummaryDraft is the cleared form state.
func EmptyWeeklySummaryDraft() WeeklySummaryDraft {
	return WeeklySummaryDraft{Files: []string{}}
}

// WithField returns a copy of d with field set to value.
func (d WeeklySummaryDraft) WithField(field WeeklySummaryField, value string) (WeeklySummaryDraft, error) {
	next := d.clone()
	switch field {
	case FieldTasksCompleted:
		next.TasksCompleted = value
	case FieldChallenges:
		next.Challenges = value
	case FieldSkillsLearned:
		next.SkillsLearned = value
	case FieldGoalsNextWeek:
		next.GoalsNextWeek = value
	default:
		return d, appErrors.Validation("unknown weekly summary field %q", field)
	}
	return next, nil
}

// WithFile returns a copy of d with the file name attached or detached.
func (d WeeklySummaryDraft) WithFile(name string, attach bool) (WeeklySummaryDraft, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return d, appErrors.Validation("file name is required")
	}
	next := d.clone()
	next.Files = ToggleMember(d.Files, name, attach)
	return next, nil
}

// Validate is the submit gate: tasks completed must have visible content.
func (d WeeklySummaryDraft) Validate() error {
	if strings.TrimSpace(d.TasksCompleted) == "" {
		return appErrors.Validation("tasks completed is required")
	}
	return nil
}

func (d WeeklySummaryDraft) clone() WeeklySummaryDraft {
	next := d
	next.Files = append([]string{}, d.Files...)
	return next
}

// WeeklySummaryEntry is a submitted weekly report. Entries are never edited.
type WeeklySummaryEntry struct {
	ID             string    `json:"id"`
	InternID       string    `json:"internId"`
	WeekOf         Date      `json:"weekOf"`
	TasksCompleted string    `json:"tasksCompleted"`
	Challenges     string    `json:"challenges"`
	SkillsLearned  string    `json:"skillsLearned"`
	GoalsNextWeek  string    `json:"goalsNextWeek"`
	Files          []string  `json:"files"`
	SubmittedAt    time.Time `json:"submittedAt"`
}
