// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing authentication state.
// It removes all saved credentials and tokens from the local system and
// notifies the backend to invalidate the session (best-effort).
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove all saved credentials and tokens",
	Long: `The logout command clears all authentication state from the local system,
including the access token, refresh token, and cached user record. It also
attempts to notify the backend to invalidate the current session (best-effort).

Local credentials are removed even when the backend cannot be reached.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		// Cannot fail locally: remote logout is best-effort, local state
		// is always cleared.
		app.manager.Logout(cmd.Context())

		fmt.Println("✅ All credentials and tokens have been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
