package models

import (
	"strconv"

	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

// Rating is a categorical experience score.
type Rating string

const (
	RatingExcellent        Rating = "excellent"
	RatingGood             Rating = "good"
	RatingSatisfactory     Rating = "satisfactory"
	RatingNeedsImprovement Rating = "needs-improvement"
)

// Valid reports whether r is one of the four ratings. The empty rating is unset, not valid.
func (r Rating) Valid() bool {
	switch r {
	case RatingExcellent, RatingGood, RatingSatisfactory, RatingNeedsImprovement:
		return true
	}
	return false
}

// Recommendation is how strongly the intern would recommend the programme.
type Recommendation string

const (
	RecommendDefinitely    Recommendation = "definitely"
	RecommendProbably      Recommendation = "probably"
	RecommendMaybe         Recommendation = "maybe"
	RecommendProbablyNot   Recommendation = "probably-not"
	RecommendDefinitelyNot Recommendation = "definitely-not"
)

// Recommendations are ordered from strongest to weakest.
var Recommendations = []Recommendation{
	RecommendDefinitely,
	RecommendProbably,
	RecommendMaybe,
	RecommendProbablyNot,
	RecommendDefinitelyNot,
}

// Valid reports whether r is a known recommendation level.
func (r Recommendation) Valid() bool {
	for _, known := range Recommendations {
		if r == known {
			return true
		}
	}
	return false
}

// SkillCatalog is the fixed list of skills an intern may report.
var SkillCatalog = []string{
	"Research & Analysis",
	"Data Collection",
	"Report Writing",
	"Presentation Skills",
	"Technical Skills",
	"Project Management",
	"Communication",
	"Problem Solving",
	"Teamwork",
	"Leadership",
}

// FeedbackField names an editable scalar field of the feedback form.
type FeedbackField string

const (
	FieldOverallExperience     FeedbackField = "overallExperience"
	FieldLearningOpportunities FeedbackField = "learningOpportunities"
	FieldWorkEnvironment       FeedbackField = "workEnvironment"
	FieldSupervisorSupport     FeedbackField = "supervisorSupport"
	FieldWouldRecommend        FeedbackField = "wouldRecommend"
	FieldSuggestions           FeedbackField = "suggestions"
	FieldAdditionalComments    FeedbackField = "additionalComments"
	FieldAnonymous             FeedbackField = "anonymous"
)

// FeedbackDraft is the end-of-internship evaluation being filled in.
type FeedbackDraft struct {
	OverallExperience     Rating         `json:"overallExperience"`
	LearningOpportunities Rating         `json:"learningOpportunities"`
	WorkEnvironment       Rating         `json:"workEnvironment"`
	SupervisorSupport     Rating         `json:"supervisorSupport"`
	SkillsDeveloped       []string       `json:"skillsDeveloped"`
	WouldRecommend        Recommendation `json:"wouldRecommend"`
	Suggestions           string         `json:"suggestions"`
	AdditionalComments    string         `json:"additionalComments"`
	Anonymous             bool           `json:"anonymous"`
}

// EmptyFeedbackDraft is the cleared form state.
func EmptyFeedbackDraft() FeedbackDraft {
	return FeedbackDraft{SkillsDeveloped: []string{}}
}

// WithField returns a copy of d with field set. Ratings and the recommendation
// accept an empty value to clear the selection; anonymous takes a boolean literal.
func (d FeedbackDraft) WithField(field FeedbackField, value string) (FeedbackDraft, error) {
	next := d.clone()
	switch field {
	case FieldOverallExperience:
		return next, setRating(&next.OverallExperience, field, value)
	case FieldLearningOpportunities:
		return next, setRating(&next.LearningOpportunities, field, value)
	case FieldWorkEnvironment:
		return next, setRating(&next.WorkEnvironment, field, value)
	case FieldSupervisorSupport:
		return next, setRating(&next.SupervisorSupport, field, value)
	case FieldWouldRecommend:
		rec := Recommendation(value)
		if value != "" && !rec.Valid() {
			return d, appErrors.Validation("invalid recommendation %q", value)
		}
		next.WouldRecommend = rec
	case FieldSuggestions:
		next.Suggestions = value
	case FieldAdditionalComments:
		next.AdditionalComments = value
	case FieldAnonymous:
		anonymous, err := strconv.ParseBool(value)
		if err != nil {
			return d, appErrors.Validation("anonymous must be true or false")
		}
		next.Anonymous = anonymous
	default:
		return d, appErrors.Validation("unknown feedback field %q", field)
	}
	return next, nil
}

// WithSkill returns a copy of d with skill included or excluded.
func (d FeedbackDraft) WithSkill(skill string, include bool) (FeedbackDraft, error) {
	if !Contains(SkillCatalog, skill) {
		return d, appErrors.Validation("unknown skill %q", skill)
	}
	next := d.clone()
	next.SkillsDeveloped = ToggleMember(d.SkillsDeveloped, skill, include)
	return next, nil
}

// Validate is the submit gate: the overall experience must be rated.
func (d FeedbackDraft) Validate() error {
	if !d.OverallExperience.Valid() {
		return appErrors.Validation("overall experience rating is required")
	}
	return nil
}

func (d FeedbackDraft) clone() FeedbackDraft {
	next := d
	next.SkillsDeveloped = append([]string{}, d.SkillsDeveloped...)
	return next
}

func setRating(dst *Rating, field FeedbackField, value string) error {
	rating := Rating(value)
	if value != "" && !rating.Valid() {
		return appErrors.Validation("invalid rating %q for %s", value, field)
	}
	*dst = rating
	return nil
}
