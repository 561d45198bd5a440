// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Caritas admin console.
// It implements subcommands for authentication and for managing the content of
// the public site (posts, categories, awards, publications, profile) using the
// Cobra CLI framework. The package handles command parsing, execution, and
// provides a terminal UI with spinners and tables.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"caritas/cli/internal/api"
	"caritas/cli/internal/auth"
	"caritas/cli/internal/config"
	"caritas/cli/internal/credstore"
	"caritas/cli/internal/session"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the Caritas admin console.
var rootCmd = &cobra.Command{
	Use:           "caritas",
	Short:         "Caritas admin console for the public content site",
	Long:          `Caritas is a command-line admin console for the Caritas content site. It manages posts, categories, awards, publications, and the organization profile against the remote backend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			ctx := context.Background()
			app, err := newApp()
			if err != nil {
				return err
			}
			backendVersion, err := app.client.GetVersion(ctx)
			if err != nil {
				backendVersion = "unknown"
			}
			fmt.Printf("caritas %s\nbackend %s\n", Version, backendVersion)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// app bundles the wired-up dependencies every command needs: configuration,
// the backend client, the auth service over persistent credential storage,
// and the session manager built on top of it.
type app struct {
	cfg     config.Config
	client  *api.Client
	svc     *auth.Service
	manager *session.Manager
}

// newApp loads configuration and wires the client, auth service, and session
// manager. The session manager's construction-time check runs here, against
// storage only.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	client := api.New(cfg.API.BaseURL, cfg.Endpoints, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
	svc := auth.NewService(client, credstore.Open())
	return &app{
		cfg:     cfg,
		client:  client,
		svc:     svc,
		manager: session.NewManager(svc),
	}, nil
}

// requireToken returns an access token for content commands, refreshing it
// when needed. Prints a login hint when no session exists.
func (a *app) requireToken(ctx context.Context) (string, error) {
	tok, err := a.svc.ValidAccessToken(ctx)
	if err != nil {
		fmt.Println("🔒 You're not logged in yet!")
		fmt.Println("   Run 'caritas login' to get started.")
		return "", err
	}
	return tok, nil
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI and backend version information")
}
