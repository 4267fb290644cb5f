package assist

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/NishaKashyap1901/commitChronicle/internal/llm"
	"github.com/NishaKashyap1901/commitChronicle/internal/output"
)

// fakeGenerator returns canned content and records prompts. An optional
// block channel holds the call open to exercise the in-flight guard.
type fakeGenerator struct {
	mu      sync.Mutex
	content string
	prompts []string
	block   chan struct{}
}

func (f *fakeGenerator) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, req.Prompt)
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &llm.Response{Content: f.content, Model: "fake"}, nil
}

func (f *fakeGenerator) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func TestWeeklySummary(t *testing.T) {
	gen := &fakeGenerator{content: "A productive week."}
	svc := NewService(gen, time.Minute)

	result, err := svc.WeeklySummary(context.Background(), WeeklySummaryInput{
		Commits:     "abc123 feat: add login",
		JiraUpdates: "BUG-123 done",
		ManualLogs:  "Paired with Alex on onboarding",
	})
	if err != nil {
		t.Fatalf("WeeklySummary: %v", err)
	}
	if result.Summary != "A productive week." {
		t.Errorf("summary = %q", result.Summary)
	}

	prompt := gen.lastPrompt()
	for _, want := range []string{"abc123 feat: add login", "BUG-123 done", "Paired with Alex"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestWeeklySummaryValidation(t *testing.T) {
	tests := []struct {
		name  string
		input WeeklySummaryInput
	}{
		{"missing commits", WeeklySummaryInput{JiraUpdates: "BUG-1 done"}},
		{"missing jira", WeeklySummaryInput{Commits: "abc feat"}},
		{"whitespace only", WeeklySummaryInput{Commits: "  \n ", JiraUpdates: "BUG-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{content: "x"}
			svc := NewService(gen, time.Minute)

			_, err := svc.WeeklySummary(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := output.GetExitCode(err); got != output.ExitUserError {
				t.Errorf("exit code = %d, want %d", got, output.ExitUserError)
			}
			if len(gen.prompts) != 0 {
				t.Error("generator called despite invalid input")
			}
		})
	}
}

func TestWeeklySummaryOptionalLogs(t *testing.T) {
	gen := &fakeGenerator{content: "ok summary"}
	svc := NewService(gen, time.Minute)

	if _, err := svc.WeeklySummary(context.Background(), WeeklySummaryInput{
		Commits:     "abc",
		JiraUpdates: "BUG-1",
	}); err != nil {
		t.Fatalf("empty manual logs should be accepted: %v", err)
	}
	if !strings.Contains(gen.lastPrompt(), "(none)") {
		t.Error("prompt should mark absent manual logs")
	}
}

func TestImproveCommitMessage(t *testing.T) {
	gen := &fakeGenerator{content: "fix: handle null session on login"}
	svc := NewService(gen, time.Minute)

	result, err := svc.ImproveCommitMessage(context.Background(), ImproveCommitMessageInput{
		InitialCommitMessage: "fixed the thing where login breaks",
	})
	if err != nil {
		t.Fatalf("ImproveCommitMessage: %v", err)
	}
	if result.ImprovedCommitMessage != "fix: handle null session on login" {
		t.Errorf("improved = %q", result.ImprovedCommitMessage)
	}
	if !strings.Contains(gen.lastPrompt(), "fixed the thing where login breaks") {
		t.Error("prompt missing the draft message")
	}
}

func TestImproveCommitMessageRequiresInput(t *testing.T) {
	svc := NewService(&fakeGenerator{content: "x"}, time.Minute)
	if _, err := svc.ImproveCommitMessage(context.Background(), ImproveCommitMessageInput{}); err == nil {
		t.Error("expected error for empty message")
	}
}

func TestConcurrentRequestRejected(t *testing.T) {
	gen := &fakeGenerator{content: "done", block: make(chan struct{})}
	svc := NewService(gen, time.Minute)

	started := make(chan struct{})
	firstDone := make(chan error, 1)
	go func() {
		close(started)
		_, err := svc.ImproveCommitMessage(context.Background(), ImproveCommitMessageInput{
			InitialCommitMessage: "slow first request",
		})
		firstDone <- err
	}()

	<-started
	// Wait until the first call holds the guard.
	deadline := time.After(time.Second)
	for {
		svc.mu.Lock()
		busy := svc.busy
		svc.mu.Unlock()
		if busy {
			break
		}
		select {
		case <-deadline:
			t.Fatal("first request never acquired the guard")
		case <-time.After(time.Millisecond):
		}
	}

	_, err := svc.ImproveCommitMessage(context.Background(), ImproveCommitMessageInput{
		InitialCommitMessage: "second request while busy",
	})
	if err == nil {
		t.Fatal("expected conflict for concurrent request")
	}
	if got := output.GetExitCode(err); got != output.ExitConflict {
		t.Errorf("exit code = %d, want %d", got, output.ExitConflict)
	}

	close(gen.block)
	if err := <-firstDone; err != nil {
		t.Fatalf("first request: %v", err)
	}

	// The guard is released after completion.
	if _, err := svc.ImproveCommitMessage(context.Background(), ImproveCommitMessageInput{
		InitialCommitMessage: "third request after release",
	}); err != nil {
		t.Fatalf("request after release: %v", err)
	}
}

func TestRequestTimeoutApplied(t *testing.T) {
	gen := &fakeGenerator{content: "never", block: make(chan struct{})}
	svc := NewService(gen, 10*time.Millisecond)

	_, err := svc.ImproveCommitMessage(context.Background(), ImproveCommitMessageInput{
		InitialCommitMessage: "request that times out",
	})
	if err == nil {
		t.Fatal("expected timeout error")
	}
}
