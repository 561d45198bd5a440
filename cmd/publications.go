// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"caritas/cli/internal/content"
)

var (
	publicationTitle     string
	publicationPublisher string
	publicationYear      int
	publicationURL       string
)

var publicationsCmd = &cobra.Command{
	Use:   "publications",
	Short: "Manage portfolio publications",
}

var publicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all publications",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := newApp()
		if err != nil {
			return err
		}
		tok, err := app.requireToken(ctx)
		if err != nil {
			return err
		}

		pubs, err := app.client.ListPublications(ctx, tok)
		if err != nil {
			return err
		}
		if len(pubs) == 0 {
			pterm.Info.Println("No publications yet")
			return nil
		}

		data := pterm.TableData{{"ID", "TITLE", "PUBLISHER", "YEAR"}}
		for _, p := range pubs {
			year := ""
			if p.Year != 0 {
				year = strconv.Itoa(p.Year)
			}
			data = append(data, []string{p.ID, p.Title, p.Publisher, year})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var publicationsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a publication",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := newApp()
		if err != nil {
			return err
		}
		tok, err := app.requireToken(ctx)
		if err != nil {
			return err
		}

		if publicationTitle == "" {
			return fmt.Errorf("a title is required (--title)")
		}

		created, err := app.client.CreatePublication(ctx, tok, content.Publication{
			Title:     publicationTitle,
			Publisher: publicationPublisher,
			Year:      publicationYear,
			URL:       publicationURL,
		})
		if err != nil {
			return err
		}
		pterm.Success.Printf("Added publication %s\n", created.ID)
		return nil
	},
}

var publicationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a publication",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := newApp()
		if err != nil {
			return err
		}
		tok, err := app.requireToken(ctx)
		if err != nil {
			return err
		}

		if err := app.client.DeletePublication(ctx, tok, args[0]); err != nil {
			return err
		}
		pterm.Success.Printf("Deleted publication %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publicationsCmd)
	publicationsCmd.AddCommand(publicationsListCmd, publicationsCreateCmd, publicationsDeleteCmd)

	publicationsCreateCmd.Flags().StringVar(&publicationTitle, "title", "", "Publication title")
	publicationsCreateCmd.Flags().StringVar(&publicationPublisher, "publisher", "", "Publisher name")
	publicationsCreateCmd.Flags().IntVar(&publicationYear, "year", 0, "Year of publication")
	publicationsCreateCmd.Flags().StringVar(&publicationURL, "url", "", "Link to the publication")
}
