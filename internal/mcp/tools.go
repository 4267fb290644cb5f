package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/NishaKashyap1901/commitChronicle/internal/auth"
	"github.com/NishaKashyap1901/commitChronicle/internal/metrics"
	"github.com/NishaKashyap1901/commitChronicle/internal/timeline"
)

// AddInput is the input for the timeline_add tool.
type AddInput struct {
	Category    string `json:"category"               jsonschema:"event category: task_completed, blocker_encountered, milestone_achieved, git_activity, jira_activity, meeting_notes, documentation_update, or general_log (required)"`
	Title       string `json:"title"                  jsonschema:"event title, 5-150 characters (required)"`
	Details     string `json:"details,omitempty"      jsonschema:"optional details, up to 1000 characters"`
	Date        string `json:"date,omitempty"         jsonschema:"event date in 'Jan 02, 2006' format; defaults to today"`
	RelatedLink string `json:"related_link,omitempty" jsonschema:"optional http(s) link to a commit, ticket, or document"`
}

// AddOutput is the output for the timeline_add tool.
type AddOutput struct {
	Event timeline.Event `json:"event" jsonschema:"the recorded timeline event"`
}

func handleAdd(store *timeline.Store, authSvc *auth.Service) mcp.ToolHandlerFor[AddInput, AddOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, AddOutput, error) {
		email, name, err := authSvc.ActiveUser()
		if err != nil {
			return nil, AddOutput{}, err
		}

		date := timeline.NewDate(time.Now())
		if input.Date != "" {
			parsed, parseErr := time.Parse(timeline.DateLayout, input.Date)
			if parseErr != nil {
				return nil, AddOutput{}, fmt.Errorf("invalid date %q: expected format %s", input.Date, timeline.DateLayout)
			}
			date = timeline.NewDate(parsed)
		}

		event, err := store.Submit(email, name, timeline.Draft{
			Category:    timeline.Category(input.Category),
			Title:       input.Title,
			Details:     input.Details,
			Date:        date,
			RelatedLink: input.RelatedLink,
		})
		if err != nil {
			return nil, AddOutput{}, err
		}

		return nil, AddOutput{Event: event}, nil
	}
}

// QueryInput is the input for the timeline_query tool.
type QueryInput struct {
	Page int `json:"page,omitempty" jsonschema:"page number, 1-based; clamped to the valid range"`
}

// QueryOutput is the output for the timeline_query tool.
type QueryOutput struct {
	Events      []timeline.Event `json:"events"       jsonschema:"the page of events, newest first"`
	Page        int              `json:"page"         jsonschema:"the resolved page number"`
	TotalPages  int              `json:"total_pages"  jsonschema:"total number of pages"`
	TotalEvents int              `json:"total_events" jsonschema:"total number of events"`
}

func handleQuery(store *timeline.Store, authSvc *auth.Service) mcp.ToolHandlerFor[QueryInput, QueryOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, QueryOutput, error) {
		email, _, err := authSvc.ActiveUser()
		if err != nil {
			return nil, QueryOutput{}, err
		}

		events, err := store.Load(email)
		if err != nil {
			return nil, QueryOutput{}, err
		}

		page := timeline.Paginate(events, input.Page, timeline.DefaultPageSize)
		return nil, QueryOutput{
			Events:      page.Events,
			Page:        page.Number,
			TotalPages:  page.TotalPages,
			TotalEvents: page.TotalEvents,
		}, nil
	}
}

// MetricsInput is the input for the timeline_metrics tool.
type MetricsInput struct{}

// MetricsOutput is the output for the timeline_metrics tool.
type MetricsOutput struct {
	Summary metrics.Summary `json:"summary" jsonschema:"category count rollup"`
	Series  []metrics.Point `json:"series"  jsonschema:"per-day commit and task counts, date ascending"`
}

func handleMetrics(store *timeline.Store, authSvc *auth.Service) mcp.ToolHandlerFor[MetricsInput, MetricsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ MetricsInput) (*mcp.CallToolResult, MetricsOutput, error) {
		email, _, err := authSvc.ActiveUser()
		if err != nil {
			return nil, MetricsOutput{}, err
		}

		events, err := store.Load(email)
		if err != nil {
			return nil, MetricsOutput{}, err
		}

		return nil, MetricsOutput{
			Summary: metrics.Summarize(events),
			Series:  metrics.Series(events),
		}, nil
	}
}
