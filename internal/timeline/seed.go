package timeline

import "time"

// seedAuthor is the display name used for first-run sample data.
const seedAuthor = "Nisha Kashyap"

// seedSpec describes one sample event relative to the seeding time.
type seedSpec struct {
	daysAgo     int
	category    Category
	title       string
	details     string
	icon        string
	badge       string
	relatedLink string
}

// Sample dataset written on first read of an empty (or corrupt) scope.
// Categories and titles are fixed; dates are relative to the seeding time.
var seedSpecs = []seedSpec{
	{1, CategoryGitActivity, "feat: Implement user authentication module",
		"Added new endpoints and UI for login/registration.",
		"GitCommit", "Git", "https://github.com/example/commit/abc123xyz"},
	{2, CategoryGitActivity, "Refactor: Dashboard widget components",
		"PR #42 - Improved performance and code structure.",
		"GitPullRequest", "Git PR", "https://github.com/example/pull/42"},
	{2, CategoryJiraActivity, "BUG-123: Fix login button responsiveness",
		"Status changed from In Progress to Done.",
		"Workflow", "Jira Update", "https://jira.example.com/browse/BUG-123"},
	{3, CategoryMeetingNotes, "Client meeting and feature planning session",
		"Discussed Q3 roadmap and new feature requests.",
		"Users", "Meeting", ""},
	{4, CategoryDocumentationUpdate, "docs: Update API documentation for v1.2",
		"Added examples for new /summary endpoint.",
		"FileText", "Docs", ""},
	{5, CategoryTaskCompleted, "Onboard new team member",
		"Completed onboarding checklist for Alex.",
		"CheckCircle", "Task Done", ""},
	{6, CategoryGeneralLog, "Research: Explored new charting libraries",
		"Evaluated Recharts, Nivo, and Chart.js for dashboard integration.",
		"BookOpen", "Log", ""},
	{7, CategoryMilestoneAchieved, "Project Alpha: Phase 1 Complete",
		"All core features for phase 1 deployed successfully to staging.",
		"Award", "Milestone", ""},
	{8, CategoryBlockerEncountered, "API Rate Limiting Issue",
		"Third-party API for data sync is hitting rate limits, impacting real-time updates.",
		"AlertTriangle", "Blocker", ""},
	{9, CategoryJiraActivity, "TASK-789: Prepare Q4 Presentation",
		"Moved from To Do to In Progress. Started drafting slides.",
		"Workflow", "Jira Update", "https://jira.example.com/browse/TASK-789"},
}

// SampleEvents builds the seed dataset relative to now. The most recent
// event gets the highest ID so ID order matches date order.
func SampleEvents(now time.Time) []Event {
	events := make([]Event, len(seedSpecs))
	for i, s := range seedSpecs {
		events[i] = Event{
			ID:          int64(len(seedSpecs) - i),
			Category:    s.category,
			Title:       s.title,
			Details:     s.details,
			Date:        NewDate(now.AddDate(0, 0, -s.daysAgo)),
			Author:      seedAuthor,
			Icon:        s.icon,
			Badge:       s.badge,
			RelatedLink: s.relatedLink,
		}
	}
	return events
}
