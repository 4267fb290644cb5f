// Package main provides the entry point for the chronicle CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NishaKashyap1901/commitChronicle/internal/assist"
	"github.com/NishaKashyap1901/commitChronicle/internal/auth"
	"github.com/NishaKashyap1901/commitChronicle/internal/config"
	"github.com/NishaKashyap1901/commitChronicle/internal/llm"
	"github.com/NishaKashyap1901/commitChronicle/internal/timeline"
)

// newAssistService builds the assist service from config (model, provider,
// request timeout).
func newAssistService() (*assist.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	client, err := llm.New(cfg.Model, llm.Provider(cfg.Provider))
	if err != nil {
		return nil, err
	}
	return assist.NewService(client, cfg.AITimeout()), nil
}

// newSummaryCmd creates the summary command.
func newSummaryCmd() *cobra.Command {
	var (
		commitsFlag   string
		jiraFlag      string
		logsFlag      string
		logsFromStore bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Generate an AI weekly activity summary",
		Long: `Generate a weekly activity summary from pasted commit and Jira text.

Commits and Jira updates are required. Manual log entries are optional and
can be pulled from your timeline with --logs-from-store.

Examples:
  chronicle summary --commits "$(git log --oneline --since='1 week ago')" --jira "BUG-123 fixed"
  chronicle summary --commits "..." --jira "..." --logs-from-store`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			logs := logsFlag
			if logsFromStore {
				storeLogs, err := logsFromTimeline()
				if err != nil {
					printer.Error(err)
					return err
				}
				logs = strings.TrimSpace(logs + "\n" + storeLogs)
			}

			svc, err := newAssistService()
			if err != nil {
				printer.Error(err)
				return err
			}

			result, err := svc.WeeklySummary(cmd.Context(), assist.WeeklySummaryInput{
				Commits:     commitsFlag,
				JiraUpdates: jiraFlag,
				ManualLogs:  logs,
			})
			if err != nil {
				printer.Error(err)
				return err
			}

			if printer.IsJSON() {
				return printer.WriteJSON(result)
			}
			printer.Box("Weekly Summary", result.Summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&commitsFlag, "commits", "", "Git commit activity text (required)")
	cmd.Flags().StringVar(&jiraFlag, "jira", "", "Jira update text (required)")
	cmd.Flags().StringVar(&logsFlag, "logs", "", "Manual log entries text")
	cmd.Flags().BoolVar(&logsFromStore, "logs-from-store", false, "Fill manual logs from the timeline")

	return cmd
}

// logsFromTimeline renders the active user's timeline events as plain text
// lines for the summary prompt.
func logsFromTimeline() (string, error) {
	backend := newBackend()
	email, _, err := auth.NewService(backend).ActiveUser()
	if err != nil {
		return "", err
	}

	events, err := timeline.NewStore(backend).Load(email)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, e := range events {
		line := fmt.Sprintf("- [%s] %s: %s", e.Date, e.Badge, e.Title)
		if e.Details != "" {
			line += " (" + e.Details + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// newImproveCmd creates the improve command.
func newImproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "improve <message>",
		Short: "Improve a draft commit message with AI",
		Long: `Rewrite a draft commit message into conventional commit style.

Examples:
  chronicle improve "fixed the thing where login breaks"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			svc, err := newAssistService()
			if err != nil {
				printer.Error(err)
				return err
			}

			result, err := svc.ImproveCommitMessage(cmd.Context(), assist.ImproveCommitMessageInput{
				InitialCommitMessage: args[0],
			})
			if err != nil {
				printer.Error(err)
				return err
			}

			if printer.IsJSON() {
				return printer.WriteJSON(result)
			}
			printer.Println(result.ImprovedCommitMessage)
			return nil
		},
	}
}
