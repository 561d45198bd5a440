// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"caritas/cli/internal/content"
	"caritas/cli/internal/slug"
)

var (
	categoryName string
	categorySlug string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage post categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
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

		cats, err := app.client.ListCategories(ctx, tok)
		if err != nil {
			return err
		}
		if len(cats) == 0 {
			pterm.Info.Println("No categories yet")
			return nil
		}

		data := pterm.TableData{{"ID", "NAME", "SLUG"}}
		for _, c := range cats {
			data = append(data, []string{c.ID, c.Name, c.Slug})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new category",
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

		if categoryName == "" {
			return fmt.Errorf("a name is required (--name)")
		}
		s := categorySlug
		if s == "" {
			s = slug.Make(categoryName)
		}
		if !slug.Valid(s) {
			return fmt.Errorf("invalid slug %q", s)
		}

		created, err := app.client.CreateCategory(ctx, tok, content.Category{Name: categoryName, Slug: s})
		if err != nil {
			return err
		}
		pterm.Success.Printf("Created category %s (%s)\n", created.ID, created.Slug)
		return nil
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
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

		if err := app.client.DeleteCategory(ctx, tok, args[0]); err != nil {
			return err
		}
		pterm.Success.Printf("Deleted category %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesListCmd, categoriesCreateCmd, categoriesDeleteCmd)

	categoriesCreateCmd.Flags().StringVar(&categoryName, "name", "", "Category name")
	categoriesCreateCmd.Flags().StringVar(&categorySlug, "slug", "", "URL slug (derived from the name when omitted)")
}
