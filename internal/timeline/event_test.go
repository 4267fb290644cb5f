package timeline

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func validDraft() Draft {
	return Draft{
		Category: CategoryTaskCompleted,
		Title:    "Fixed login bug",
		Date:     NewDate(time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)),
	}
}

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Draft)
		wantErr bool
		field   string
	}{
		{
			name:   "valid draft",
			mutate: func(*Draft) {},
		},
		{
			name:    "title four characters",
			mutate:  func(d *Draft) { d.Title = "Four" },
			wantErr: true,
			field:   "title",
		},
		{
			name:   "title exactly five characters",
			mutate: func(d *Draft) { d.Title = "Fives" },
		},
		{
			name:   "title exactly at max",
			mutate: func(d *Draft) { d.Title = strings.Repeat("a", MaxTitleLen) },
		},
		{
			name:    "title over max",
			mutate:  func(d *Draft) { d.Title = strings.Repeat("a", MaxTitleLen+1) },
			wantErr: true,
			field:   "title",
		},
		{
			name:    "whitespace-padded short title",
			mutate:  func(d *Draft) { d.Title = "  hi  " },
			wantErr: true,
			field:   "title",
		},
		{
			name:   "details exactly at max",
			mutate: func(d *Draft) { d.Details = strings.Repeat("x", MaxDetailsLen) },
		},
		{
			name:    "details over max",
			mutate:  func(d *Draft) { d.Details = strings.Repeat("x", MaxDetailsLen+1) },
			wantErr: true,
			field:   "details",
		},
		{
			name:    "unknown category",
			mutate:  func(d *Draft) { d.Category = "sprint_review" },
			wantErr: true,
			field:   "category",
		},
		{
			name:   "legacy alias category accepted",
			mutate: func(d *Draft) { d.Category = "commit" },
		},
		{
			name:    "zero date",
			mutate:  func(d *Draft) { d.Date = Date{} },
			wantErr: true,
			field:   "date",
		},
		{
			name:   "valid https link",
			mutate: func(d *Draft) { d.RelatedLink = "https://example.com/T-1" },
		},
		{
			name:   "valid http link",
			mutate: func(d *Draft) { d.RelatedLink = "http://example.com" },
		},
		{
			name:    "malformed link",
			mutate:  func(d *Draft) { d.RelatedLink = "not-a-url" },
			wantErr: true,
			field:   "relatedLink",
		},
		{
			name:    "non-http scheme",
			mutate:  func(d *Draft) { d.RelatedLink = "ftp://example.com/file" },
			wantErr: true,
			field:   "relatedLink",
		},
		{
			name:    "scheme without host",
			mutate:  func(d *Draft) { d.RelatedLink = "https://" },
			wantErr: true,
			field:   "relatedLink",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := draft.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				var vErr *ValidationError
				if !AsValidationError(err, &vErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				found := false
				for _, f := range vErr.Fields {
					if strings.HasPrefix(f, tt.field) {
						found = true
					}
				}
				if !found {
					t.Errorf("expected field %q in %v", tt.field, vErr.Fields)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCategoryNormalize(t *testing.T) {
	tests := []struct {
		in   Category
		want Category
	}{
		{"commit", CategoryGitActivity},
		{"pr", CategoryGitActivity},
		{"jira", CategoryJiraActivity},
		{"log", CategoryGeneralLog},
		{CategoryTaskCompleted, CategoryTaskCompleted},
		{"unknown_thing", "unknown_thing"},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisplayFor(t *testing.T) {
	tests := []struct {
		category  Category
		wantIcon  string
		wantBadge string
	}{
		{CategoryTaskCompleted, "CheckCircle", "Task"},
		{CategoryBlockerEncountered, "AlertTriangle", "Blocker"},
		{CategoryMilestoneAchieved, "Award", "Milestone"},
		{"commit", "GitCommit", "Git"},
		{"totally_unknown", "BookOpen", "Log"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			d := DisplayFor(tt.category)
			if d.Icon != tt.wantIcon || d.Badge != tt.wantBadge {
				t.Errorf("DisplayFor(%q) = {%s %s}, want {%s %s}",
					tt.category, d.Icon, d.Badge, tt.wantIcon, tt.wantBadge)
			}
		})
	}
}

func TestEventJSONCategoryAlias(t *testing.T) {
	raw := `{"id":1,"type":"pr","title":"Merged PR #42","date":"Aug 20, 2026","author":"Dev"}`

	var event Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if event.Category != CategoryGitActivity {
		t.Errorf("category = %q, want %q", event.Category, CategoryGitActivity)
	}
	if got := event.Date.String(); got != "Aug 20, 2026" {
		t.Errorf("date = %q, want %q", got, "Aug 20, 2026")
	}
}

func TestDateRejectsBadFormat(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2026-08-20"`), &d); err == nil {
		t.Error("expected error for ISO date, got nil")
	}
}
