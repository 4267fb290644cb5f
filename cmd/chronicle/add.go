// Package main provides the entry point for the chronicle CLI.
package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/NishaKashyap1901/commitChronicle/internal/auth"
	"github.com/NishaKashyap1901/commitChronicle/internal/output"
	"github.com/NishaKashyap1901/commitChronicle/internal/timeline"
)

// newAddCmd creates the add command.
func newAddCmd() *cobra.Command {
	var (
		categoryFlag string
		detailsFlag  string
		dateFlag     string
		linkFlag     string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Record a timeline event",
		Long: `Record a manual timeline event for the logged-in user.

The title must be 5-150 characters; details up to 1000. The date defaults
to today and uses the "Jan 02, 2006" format.

Categories: ` + strings.Join(categoryNames(), ", ") + `

Examples:
  chronicle add "Fixed login bug" --category task_completed
  chronicle add "Hit API rate limiting" --category blocker_encountered --details "Vendor throttles at 100 rps"
  chronicle add "Merged PR #42" --category git_activity --link https://github.com/acme/app/pull/42
  chronicle add "Sprint planning" --category meeting_notes --date "Aug 25, 2026"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			date := timeline.NewDate(time.Now())
			if dateFlag != "" {
				parsed, err := time.Parse(timeline.DateLayout, dateFlag)
				if err != nil {
					err = output.NewUserError("invalid date \"" + dateFlag + "\": expected format " + timeline.DateLayout)
					printer.Error(err)
					return err
				}
				date = timeline.NewDate(parsed)
			}

			backend := newBackend()
			email, name, err := auth.NewService(backend).ActiveUser()
			if err != nil {
				printer.Error(err)
				return err
			}

			event, err := timeline.NewStore(backend).Submit(email, name, timeline.Draft{
				Category:    timeline.Category(categoryFlag),
				Title:       args[0],
				Details:     detailsFlag,
				Date:        date,
				RelatedLink: linkFlag,
			})
			if err != nil {
				printer.Error(err)
				return err
			}

			if printer.IsJSON() {
				return printer.WriteJSON(event)
			}
			return printer.Success(map[string]any{
				"message": "Logged \"" + event.Title + "\" [" + event.Badge + "] on " + event.Date.String(),
			})
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", string(timeline.CategoryGeneralLog), "Event category")
	cmd.Flags().StringVar(&detailsFlag, "details", "", "Optional details (up to 1000 characters)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Event date as 'Jan 02, 2006' (default: today)")
	cmd.Flags().StringVar(&linkFlag, "link", "", "Related http(s) link")

	return cmd
}

// categoryNames returns the known category names for help text.
func categoryNames() []string {
	categories := timeline.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return names
}
