// Package main provides the entry point for the chronicle CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/NishaKashyap1901/commitChronicle/internal/auth"
	"github.com/NishaKashyap1901/commitChronicle/internal/settings"
)

// newConnectCmd creates the connect command.
func newConnectCmd() *cobra.Command {
	var accountFlag string

	cmd := &cobra.Command{
		Use:   "connect <integration>",
		Short: "Mark a Git or Jira account as connected",
		Long: `Mark an external integration (git or jira) as connected for the
logged-in user. The connection is simulated; no external system is
contacted.

Examples:
  chronicle connect git --account dev@github
  chronicle connect jira --account dev@acme.atlassian.net`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			integration, err := settings.ParseIntegration(args[0])
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

			if err := settings.NewService(backend).Connect(email, integration, accountFlag); err != nil {
				printer.Error(err)
				return err
			}

			return printer.Success(map[string]any{
				"message":     "Connected " + string(integration),
				"integration": string(integration),
				"account":     accountFlag,
			})
		},
	}

	cmd.Flags().StringVar(&accountFlag, "account", "", "Account label shown in settings")

	return cmd
}

// newDisconnectCmd creates the disconnect command.
func newDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <integration>",
		Short: "Disconnect a Git or Jira account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			integration, err := settings.ParseIntegration(args[0])
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

			if err := settings.NewService(backend).Disconnect(email, integration); err != nil {
				printer.Error(err)
				return err
			}

			return printer.Success(map[string]any{
				"message":     "Disconnected " + string(integration),
				"integration": string(integration),
			})
		},
	}
}

// newConnectionsCmd creates the connections command.
func newConnectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connections",
		Short: "Show integration connection status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			backend := newBackend()
			email, _, err := auth.NewService(backend).ActiveUser()
			if err != nil {
				printer.Error(err)
				return err
			}

			conns, err := settings.NewService(backend).Status(email)
			if err != nil {
				printer.Error(err)
				return err
			}

			if printer.IsJSON() {
				return printer.WriteJSON(conns)
			}

			for _, integration := range []settings.Integration{settings.IntegrationGit, settings.IntegrationJira} {
				conn, ok := conns[integration]
				switch {
				case ok && conn.Connected && conn.Account != "":
					printer.KeyValue(string(integration), "connected ("+conn.Account+")")
				case ok && conn.Connected:
					printer.KeyValue(string(integration), "connected")
				default:
					printer.KeyValue(string(integration), "not connected")
				}
			}
			return nil
		},
	}
}
