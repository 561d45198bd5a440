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
	awardTitle  string
	awardIssuer string
	awardYear   int
)

var awardsCmd = &cobra.Command{
	Use:   "awards",
	Short: "Manage portfolio awards",
}

var awardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all awards",
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

		awards, err := app.client.ListAwards(ctx, tok)
		if err != nil {
			return err
		}
		if len(awards) == 0 {
			pterm.Info.Println("No awards yet")
			return nil
		}

		data := pterm.TableData{{"ID", "TITLE", "ISSUER", "YEAR"}}
		for _, a := range awards {
			year := ""
			if a.Year != 0 {
				year = strconv.Itoa(a.Year)
			}
			data = append(data, []string{a.ID, a.Title, a.Issuer, year})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var awardsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add an award",
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

		if awardTitle == "" {
			return fmt.Errorf("a title is required (--title)")
		}

		created, err := app.client.CreateAward(ctx, tok, content.Award{
			Title:  awardTitle,
			Issuer: awardIssuer,
			Year:   awardYear,
		})
		if err != nil {
			return err
		}
		pterm.Success.Printf("Added award %s\n", created.ID)
		return nil
	},
}

var awardsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an award",
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

		if err := app.client.DeleteAward(ctx, tok, args[0]); err != nil {
			return err
		}
		pterm.Success.Printf("Deleted award %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(awardsCmd)
	awardsCmd.AddCommand(awardsListCmd, awardsCreateCmd, awardsDeleteCmd)

	awardsCreateCmd.Flags().StringVar(&awardTitle, "title", "", "Award title")
	awardsCreateCmd.Flags().StringVar(&awardIssuer, "issuer", "", "Issuing organization")
	awardsCreateCmd.Flags().IntVar(&awardYear, "year", 0, "Year the award was received")
}
