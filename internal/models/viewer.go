package models

// Role selects which dashboard the presentation layer is showing.
type Role string

const (
	RoleIntern     Role = "intern"
	RoleSupervisor Role = "supervisor"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleIntern || r == RoleSupervisor
}

// View identifies one screen of a role's dashboard.
type View string

const (
	ViewProfile        View = "profile"
	ViewWeeklySummary  View = "weekly-summary"
	ViewDocuments      View = "documents"
	ViewFeedback       View = "feedback"
	ViewDashboard      View = "dashboard"
	ViewInterns        View = "interns"
	ViewReports        View = "reports"
	ViewFeedbackReview View = "feedback-review"
)

// ViewInfo describes a navigation entry.
type ViewInfo struct {
	ID        View   `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

var viewCatalog = map[Role][]ViewInfo{
	RoleIntern: {
		{ID: ViewProfile, Label: "My Profile", Available: true},
		{ID: ViewWeeklySummary, Label: "Weekly Summary", Available: true},
		{ID: ViewDocuments, Label: "Documents", Available: true},
		{ID: ViewFeedback, Label: "Feedback", Available: true},
	},
	RoleSupervisor: {
		{ID: ViewDashboard, Label: "Overview", Available: true},
		{ID: ViewInterns, Label: "Manage Interns", Available: true},
		{ID: ViewReports, Label: "Reports", Available: false},
		{ID: ViewFeedbackReview, Label: "Review Feedback", Available: false},
	},
}

// ViewsFor returns a copy of the navigation entries of role.
func ViewsFor(role Role) []ViewInfo {
	views := viewCatalog[role]
	out := make([]ViewInfo, len(views))
	copy(out, views)
	return out
}

// DefaultView is the landing screen of role.
func DefaultView(role Role) View {
	if role == RoleSupervisor {
		return ViewDashboard
	}
	return ViewProfile
}

// ResolveView returns view when it belongs to role, else the role's default.
func ResolveView(role Role, view View) View {
	for _, v := range viewCatalog[role] {
		if v.ID == view {
			return view
		}
	}
	return DefaultView(role)
}

// Viewer is the explicit session context supplied by the presentation layer.
type Viewer struct {
	Role     Role   `json:"role"`
	View     View   `json:"view"`
	InternID string `json:"internId"`
}
