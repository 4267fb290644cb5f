// Package main provides the entry point for the chronicle CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/NishaKashyap1901/commitChronicle/internal/auth"
)

// newRegisterCmd creates the register command.
func newRegisterCmd() *cobra.Command {
	var (
		nameFlag     string
		passwordFlag string
	)

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Register a new account",
		Long: `Register a new account in the local user registry.

Examples:
  chronicle register dev@example.com --name "Dev Example" --password s3cret`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			backend := newBackend()
			if err := auth.NewService(backend).Register(nameFlag, args[0], passwordFlag); err != nil {
				printer.Error(err)
				return err
			}

			return printer.Success(map[string]any{
				"message": "Registered " + args[0] + ". Run 'chronicle login' to start logging.",
				"email":   args[0],
			})
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&passwordFlag, "password", "", "Password (required)")

	return cmd
}

// newLoginCmd creates the login command.
func newLoginCmd() *cobra.Command {
	var passwordFlag string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and activate a user",
		Long: `Log in with a registered account. The active user scopes all
timeline reads and writes until logout.

Examples:
  chronicle login dev@example.com --password s3cret`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			backend := newBackend()
			user, err := auth.NewService(backend).Login(args[0], passwordFlag)
			if err != nil {
				printer.Error(err)
				return err
			}

			return printer.Success(map[string]any{
				"message": "Logged in as " + user.Name + " (" + user.Email + ")",
				"email":   user.Email,
				"name":    user.Name,
			})
		},
	}

	cmd.Flags().StringVar(&passwordFlag, "password", "", "Password (required)")

	return cmd
}

// newLogoutCmd creates the logout command.
func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out the active user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			backend := newBackend()
			if err := auth.NewService(backend).Logout(); err != nil {
				printer.Error(err)
				return err
			}

			return printer.Success(map[string]any{"message": "Logged out"})
		},
	}
}
