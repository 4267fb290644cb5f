// Package assist implements the AI-backed writing flows: the weekly
// activity summary and commit-message improvement. Each flow is a single
// prompt/response round trip with no retries and no conversation state.
package assist

import (
	"context"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/NishaKashyap1901/commitChronicle/internal/llm"
	"github.com/NishaKashyap1901/commitChronicle/internal/output"
)

// Generator is the LLM surface the flows need; inject fakes in tests.
type Generator interface {
	Generate(ctx context.Context, req llm.Request) (*llm.Response, error)
}

// WeeklySummaryInput carries the three raw activity feeds for the week.
// Commits and JiraUpdates are required; ManualLogs may be empty.
type WeeklySummaryInput struct {
	Commits     string `json:"commits"`
	JiraUpdates string `json:"jiraUpdates"`
	ManualLogs  string `json:"manualLogs"`
}

// WeeklySummaryOutput is the generated summary text.
type WeeklySummaryOutput struct {
	Summary string `json:"summary"`
}

// ImproveCommitMessageInput carries the draft commit message.
type ImproveCommitMessageInput struct {
	InitialCommitMessage string `json:"initialCommitMessage"`
}

// ImproveCommitMessageOutput is the rewritten commit message.
type ImproveCommitMessageOutput struct {
	ImprovedCommitMessage string `json:"improvedCommitMessage"`
}

var summaryPrompt = template.Must(template.New("summary").Parse(
	`You are an expert at summarizing software development activity.

Summarize the following development activity from the past week into a
concise weekly report. Highlight key accomplishments, group related work
together, and call out anything that looks blocked. Write in plain prose,
a few short paragraphs at most.

Git commits:
{{.Commits}}

Jira updates:
{{.JiraUpdates}}

Manual log entries:
{{if .ManualLogs}}{{.ManualLogs}}{{else}}(none){{end}}
`))

var improvePrompt = template.Must(template.New("improve").Parse(
	`You are an expert software engineer who writes excellent commit messages.

Rewrite the following draft commit message so it is clear, concise, and
follows conventional commit style (a short imperative subject line, then
an optional body explaining what and why). Return only the improved
commit message, nothing else.

Draft commit message:
{{.InitialCommitMessage}}
`))

// Service runs the generation flows. At most one flow runs at a time;
// a second concurrent call fails fast with a conflict error instead of
// queueing behind the first.
type Service struct {
	gen     Generator
	timeout time.Duration

	mu   sync.Mutex
	busy bool
}

// NewService creates an assist service. A non-positive timeout disables
// the per-request deadline.
func NewService(gen Generator, timeout time.Duration) *Service {
	return &Service{gen: gen, timeout: timeout}
}

// WeeklySummary generates the weekly activity summary.
func (s *Service) WeeklySummary(ctx context.Context, input WeeklySummaryInput) (*WeeklySummaryOutput, error) {
	if strings.TrimSpace(input.Commits) == "" {
		return nil, output.NewUserError("commits are required for a weekly summary")
	}
	if strings.TrimSpace(input.JiraUpdates) == "" {
		return nil, output.NewUserError("jira updates are required for a weekly summary")
	}

	content, err := s.run(ctx, summaryPrompt, input)
	if err != nil {
		return nil, err
	}
	return &WeeklySummaryOutput{Summary: content}, nil
}

// ImproveCommitMessage rewrites a draft commit message.
func (s *Service) ImproveCommitMessage(ctx context.Context, input ImproveCommitMessageInput) (*ImproveCommitMessageOutput, error) {
	if strings.TrimSpace(input.InitialCommitMessage) == "" {
		return nil, output.NewUserError("a draft commit message is required")
	}

	content, err := s.run(ctx, improvePrompt, input)
	if err != nil {
		return nil, err
	}
	return &ImproveCommitMessageOutput{ImprovedCommitMessage: content}, nil
}

// run renders the prompt and performs one guarded generation round trip.
func (s *Service) run(ctx context.Context, tmpl *template.Template, data any) (string, error) {
	if err := s.acquire(); err != nil {
		return "", err
	}
	defer s.release()

	var prompt strings.Builder
	if err := tmpl.Execute(&prompt, data); err != nil {
		return "", output.NewSystemErrorWithCause("failed to render prompt", err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.gen.Generate(ctx, llm.Request{Prompt: prompt.String()})
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", output.NewSystemError("model returned an empty result")
	}
	return content, nil
}

func (s *Service) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return output.NewConflictError("a generation request is already in progress")
	}
	s.busy = true
	return nil
}

func (s *Service) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}
