// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying current authentication state.
// It shows the currently authenticated account by validating the session with
// the backend, falling back to locally cached state when offline.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show current authenticated account",
	Long: `The whoami command displays information about the currently authenticated account.
It validates the current session against the backend and shows the account
identifier if authentication is valid; when the backend is unreachable, the
locally cached account is shown instead.

If no valid session exists, it will indicate that the user is not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		app, err := newApp()
		if err != nil {
			return err
		}

		sess := app.manager.Current()
		if !sess.IsAuthenticated {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'caritas login' to get started.")
			return nil
		}

		// Validate against the backend; falls back to the cached record
		// when offline.
		if user, ok := app.svc.WhoAmI(ctx); ok {
			fmt.Printf("👤 Current user: %s\n", displayIdentity(user))
			return nil
		}

		// Session was rejected remotely and could not be refreshed.
		fmt.Println("🔒 You're not logged in yet!")
		fmt.Println("   Run 'caritas login' to get started.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
