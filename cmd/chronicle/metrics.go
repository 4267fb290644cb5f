// Package main provides the entry point for the chronicle CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NishaKashyap1901/commitChronicle/internal/auth"
	"github.com/NishaKashyap1901/commitChronicle/internal/metrics"
	"github.com/NishaKashyap1901/commitChronicle/internal/timeline"
)

// newMetricsCmd creates the metrics command.
func newMetricsCmd() *cobra.Command {
	var seriesFlag bool

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show key metrics derived from the timeline",
		Long: `Show category counts derived from the logged-in user's timeline:
commits, completed tasks, blockers, and milestones.

With --series, also print the per-day activity series used by the
activity-overview chart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			backend := newBackend()
			email, _, err := auth.NewService(backend).ActiveUser()
			if err != nil {
				printer.Error(err)
				return err
			}

			events, err := timeline.NewStore(backend).Load(email)
			if err != nil {
				printer.Error(err)
				return err
			}

			summary := metrics.Summarize(events)

			if printer.IsJSON() {
				result := map[string]any{"summary": summary}
				if seriesFlag {
					result["series"] = metrics.Series(events)
				}
				return printer.WriteJSON(result)
			}

			printer.Section("Key Metrics")
			printer.KeyValue("Commits", fmt.Sprint(summary.Commits))
			printer.KeyValue("Tasks Completed", fmt.Sprint(summary.TasksCompleted))
			printer.KeyValue("Blockers", fmt.Sprint(summary.Blockers))
			printer.KeyValue("Milestones", fmt.Sprint(summary.Milestones))
			printer.KeyValue("Total Events", fmt.Sprint(summary.TotalEvents))

			if seriesFlag {
				printer.Section("Activity Overview")
				rows := make([][]string, 0, len(events))
				for _, p := range metrics.Series(events) {
					rows = append(rows, []string{p.Date, fmt.Sprint(p.Commits), fmt.Sprint(p.Tasks)})
				}
				printer.Table([]string{"DATE", "COMMITS", "TASKS"}, rows)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&seriesFlag, "series", false, "Include the per-day activity series")

	return cmd
}
