// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"caritas/cli/internal/httperrors"
)

// statusCmd shows the local session state and backend reachability.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session state and backend reachability",
	Long: `The status command shows the local session state (from stored credentials,
no network call) and then checks whether the backend is reachable by asking
for its version.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		app, err := newApp()
		if err != nil {
			return err
		}

		sess := app.manager.Current()
		if sess.IsAuthenticated {
			pterm.Success.Printf("Logged in as %s\n", displayIdentity(sess.User))
		} else {
			pterm.Info.Println("Not logged in")
		}

		stopSpinner := startAreaSpinner("Checking backend")
		backendVersion, verr := app.client.GetVersion(ctx)
		stopSpinner()

		if verr != nil {
			return httperrors.FormatNetworkError(verr, "checking the backend")
		}

		fmt.Printf("🌐 Backend %s at %s\n", backendVersion, app.cfg.API.BaseURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
