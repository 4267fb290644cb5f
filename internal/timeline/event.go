// Package timeline provides the event schema, validation, and the per-user
// timeline store for the chronicle journal.
package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// Category classifies a timeline event.
type Category string

// Known categories.
const (
	CategoryTaskCompleted       Category = "task_completed"
	CategoryBlockerEncountered  Category = "blocker_encountered"
	CategoryMilestoneAchieved   Category = "milestone_achieved"
	CategoryGitActivity         Category = "git_activity"
	CategoryJiraActivity        Category = "jira_activity"
	CategoryMeetingNotes        Category = "meeting_notes"
	CategoryDocumentationUpdate Category = "documentation_update"
	CategoryGeneralLog          Category = "general_log"
)

// legacyAliases maps category names from older stored data to their
// current equivalents. Accepted on read only; never written back as-is.
var legacyAliases = map[Category]Category{
	"commit": CategoryGitActivity,
	"pr":     CategoryGitActivity,
	"jira":   CategoryJiraActivity,
	"log":    CategoryGeneralLog,
}

// Categories lists all known categories in display order.
func Categories() []Category {
	return []Category{
		CategoryTaskCompleted,
		CategoryBlockerEncountered,
		CategoryMilestoneAchieved,
		CategoryGitActivity,
		CategoryJiraActivity,
		CategoryMeetingNotes,
		CategoryDocumentationUpdate,
		CategoryGeneralLog,
	}
}

// Normalize resolves legacy aliases to current category names.
// Unknown values pass through unchanged; display lookup handles them.
func (c Category) Normalize() Category {
	if current, ok := legacyAliases[c]; ok {
		return current
	}
	return c
}

// Known reports whether the category (after normalization) is recognized.
func (c Category) Known() bool {
	switch c.Normalize() {
	case CategoryTaskCompleted, CategoryBlockerEncountered, CategoryMilestoneAchieved,
		CategoryGitActivity, CategoryJiraActivity, CategoryMeetingNotes,
		CategoryDocumentationUpdate, CategoryGeneralLog:
		return true
	}
	return false
}

// UnmarshalJSON accepts legacy alias names when reading stored data.
func (c *Category) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Category(raw).Normalize()
	return nil
}

// Display is the presentation mapping for a category: a symbolic glyph
// name and a short badge label.
type Display struct {
	Icon  string
	Badge string
}

var displayByCategory = map[Category]Display{
	CategoryTaskCompleted:       {Icon: "CheckCircle", Badge: "Task"},
	CategoryBlockerEncountered:  {Icon: "AlertTriangle", Badge: "Blocker"},
	CategoryMilestoneAchieved:   {Icon: "Award", Badge: "Milestone"},
	CategoryGitActivity:         {Icon: "GitCommit", Badge: "Git"},
	CategoryJiraActivity:        {Icon: "Workflow", Badge: "Jira"},
	CategoryMeetingNotes:        {Icon: "Users", Badge: "Meeting"},
	CategoryDocumentationUpdate: {Icon: "FileText", Badge: "Docs"},
	CategoryGeneralLog:          {Icon: "BookOpen", Badge: "Log"},
}

// DisplayFor returns the icon/badge mapping for a category.
// Unknown categories fall back to the general-log mapping rather than failing.
func DisplayFor(c Category) Display {
	if d, ok := displayByCategory[c.Normalize()]; ok {
		return d
	}
	return displayByCategory[CategoryGeneralLog]
}

// DateLayout is the display and storage format for event dates.
const DateLayout = "Jan 02, 2006"

// Date is a calendar date, serialized in the "MMM dd, yyyy" display format.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// String formats the date for display.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON writes the date in the display format.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON reads a date in the display format.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := time.Parse(DateLayout, raw)
	if err != nil {
		return fmt.Errorf("parsing event date %q: %w", raw, err)
	}
	d.Time = parsed
	return nil
}

// Event is one immutable record of development activity.
// ID doubles as the sort key: higher means newer.
type Event struct {
	ID          int64    `json:"id"`
	Category    Category `json:"type"`
	Title       string   `json:"title"`
	Details     string   `json:"details,omitempty"`
	Date        Date     `json:"date"`
	Author      string   `json:"author"`
	Icon        string   `json:"iconName"`
	Badge       string   `json:"badgeText"`
	RelatedLink string   `json:"relatedLink,omitempty"`
}

// Title length bounds and details limit, in characters.
const (
	MinTitleLen   = 5
	MaxTitleLen   = 150
	MaxDetailsLen = 1000
)

// ValidationError is returned when draft validation fails.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// AsValidationError checks if err is a ValidationError and extracts it.
func AsValidationError(err error, target **ValidationError) bool {
	return errors.As(err, target)
}

// Draft is a candidate event before an ID is assigned. It is what the
// manual-entry form submits.
type Draft struct {
	Category    Category
	Title       string
	Details     string
	Date        Date
	RelatedLink string
}

// Validate checks field constraints. On failure it returns a
// ValidationError naming every offending field; no partial results.
func (d *Draft) Validate() error {
	var bad []string

	titleLen := utf8.RuneCountInString(strings.TrimSpace(d.Title))
	if titleLen < MinTitleLen || titleLen > MaxTitleLen {
		bad = append(bad, fmt.Sprintf("title (must be %d-%d characters)", MinTitleLen, MaxTitleLen))
	}

	if utf8.RuneCountInString(d.Details) > MaxDetailsLen {
		bad = append(bad, fmt.Sprintf("details (must not exceed %d characters)", MaxDetailsLen))
	}

	if !d.Category.Known() {
		bad = append(bad, "category (unknown value "+string(d.Category)+")")
	}

	if d.Date.IsZero() {
		bad = append(bad, "date (required)")
	}

	if d.RelatedLink != "" && !validLink(d.RelatedLink) {
		bad = append(bad, "relatedLink (must be a well-formed http(s) URL)")
	}

	if len(bad) > 0 {
		return &ValidationError{Fields: bad, Message: "invalid log entry"}
	}
	return nil
}

// validLink accepts absolute http(s) URLs with a host.
func validLink(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
