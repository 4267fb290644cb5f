// Package main provides the entry point for the chronicle CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NishaKashyap1901/commitChronicle/internal/auth"
	"github.com/NishaKashyap1901/commitChronicle/internal/config"
	"github.com/NishaKashyap1901/commitChronicle/internal/timeline"
)

// newTimelineCmd creates the timeline command.
func newTimelineCmd() *cobra.Command {
	var pageFlag int

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the activity timeline",
		Long: `Show the logged-in user's activity timeline, newest first.

Pages hold 5 events by default (configurable via page_size in config.yaml);
out-of-range page numbers are clamped.

Examples:
  chronicle timeline
  chronicle timeline --page 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			cfg, err := config.Load()
			if err != nil {
				return err
			}

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

			page := timeline.Paginate(events, pageFlag, cfg.PageSize)

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{
					"events":       page.Events,
					"page":         page.Number,
					"total_pages":  page.TotalPages,
					"total_events": page.TotalEvents,
				})
			}

			rows := make([][]string, len(page.Events))
			for i, e := range page.Events {
				details := e.Details
				if len(details) > 60 {
					details = details[:57] + "..."
				}
				rows[i] = []string{e.Date.String(), e.Badge, e.Title, e.Author, details}
			}
			printer.Table([]string{"DATE", "TYPE", "TITLE", "AUTHOR", "DETAILS"}, rows)

			footer := fmt.Sprintf("Page %d of %d (%d events)", page.Number, page.TotalPages, page.TotalEvents)
			if page.HasPrev {
				footer += "  ← --page " + fmt.Sprint(page.Number-1)
			}
			if page.HasNext {
				footer += "  → --page " + fmt.Sprint(page.Number+1)
			}
			printer.Dim("%s", footer)
			return nil
		},
	}

	cmd.Flags().IntVar(&pageFlag, "page", 1, "Page number (1-based)")

	return cmd
}
