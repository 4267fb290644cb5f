// Package main provides the entry point for the chronicle CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/NishaKashyap1901/commitChronicle/internal/auth"
	"github.com/NishaKashyap1901/commitChronicle/internal/export"
	"github.com/NishaKashyap1901/commitChronicle/internal/timeline"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Request a timeline export",
		Long: `Request an export of the timeline as PDF or Markdown.

Export requests are currently acknowledged only; file generation is not
yet available.

Examples:
  chronicle export --format pdf
  chronicle export --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				printer.Error(err)
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

			message, err := export.Acknowledge(format, len(events))
			if err != nil {
				printer.Error(err)
				return err
			}

			return printer.Success(map[string]any{
				"message": message,
				"format":  string(format),
				"events":  len(events),
			})
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "markdown", "Export format: pdf or markdown")

	return cmd
}
