// Package main provides the entry point for the chronicle CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/NishaKashyap1901/commitChronicle/internal/config"
	"github.com/NishaKashyap1901/commitChronicle/internal/envfile"
	"github.com/NishaKashyap1901/commitChronicle/internal/kv"
	"github.com/NishaKashyap1901/commitChronicle/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// newPrinter builds a printer for the command's output stream, honoring
// the --json flag and TTY detection.
func newPrinter(cmd *cobra.Command) *output.Printer {
	w := cmd.OutOrStdout()
	return output.NewPrinter(w, isJSONMode(cmd), output.IsTTY(w)).
		WithStderr(cmd.ErrOrStderr())
}

// newBackend opens the file-backed kv store in the chronicle data directory.
func newBackend() kv.Store {
	return kv.NewFileStore(config.DataDir())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the chronicle CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chronicle",
		Short: "A personal development-activity journal",
		Long: `Chronicle - a personal development-activity journal.

Chronicle keeps a per-user timeline of what you worked on:
  - Manual log entries (tasks, blockers, milestones, meetings, docs)
  - Git and Jira activity records
  - AI-assisted weekly summaries and commit-message drafting
  - Derived metrics (commits, completed tasks, blockers)

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'chronicle --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for API keys that can't be exported to env.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (local override, gitignored)
//  2. $CWD/.env
//  3. ~/.config/commitchronicle/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "journal", Title: "Journal Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "ai", Title: "AI Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "account", Title: "Account Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newAddCmd(), "journal")
	addGroupedCommand(cmd, newTimelineCmd(), "journal")
	addGroupedCommand(cmd, newMetricsCmd(), "journal")
	addGroupedCommand(cmd, newExportCmd(), "journal")

	addGroupedCommand(cmd, newSummaryCmd(), "ai")
	addGroupedCommand(cmd, newImproveCmd(), "ai")

	addGroupedCommand(cmd, newRegisterCmd(), "account")
	addGroupedCommand(cmd, newLoginCmd(), "account")
	addGroupedCommand(cmd, newLogoutCmd(), "account")
	addGroupedCommand(cmd, newConnectCmd(), "account")
	addGroupedCommand(cmd, newDisconnectCmd(), "account")
	addGroupedCommand(cmd, newConnectionsCmd(), "account")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
