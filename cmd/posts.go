// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"caritas/cli/internal/content"
	"caritas/cli/internal/slug"
)

var (
	postTitle    string
	postSlug     string
	postCategory string
	postExcerpt  string
	postBodyFile string
)

// postsCmd groups the blog post management commands.
var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Manage blog posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all posts",
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

		posts, err := app.client.ListPosts(ctx, tok)
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			pterm.Info.Println("No posts yet")
			return nil
		}

		data := pterm.TableData{{"ID", "TITLE", "SLUG", "PUBLISHED"}}
		for _, p := range posts {
			data = append(data, []string{p.ID, p.Title, p.Slug, content.FormatPublished(p.PublishedAt)})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var postsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single post",
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

		p, err := app.client.GetPost(ctx, tok, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Title:     %s\n", p.Title)
		fmt.Printf("Slug:      %s\n", p.Slug)
		if p.CategoryID != "" {
			fmt.Printf("Category:  %s\n", p.CategoryID)
		}
		fmt.Printf("Published: %s\n", content.FormatPublished(p.PublishedAt))
		if p.Excerpt != "" {
			fmt.Printf("Excerpt:   %s\n", p.Excerpt)
		}
		if p.Body != "" {
			fmt.Printf("\n%s\n", p.Body)
		}
		return nil
	},
}

var postsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new draft post",
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

		if postTitle == "" {
			return fmt.Errorf("a title is required (--title)")
		}
		s := postSlug
		if s == "" {
			s = slug.Make(postTitle)
		}
		if !slug.Valid(s) {
			return fmt.Errorf("invalid slug %q", s)
		}

		p := content.Post{
			Title:      postTitle,
			Slug:       s,
			CategoryID: postCategory,
			Excerpt:    postExcerpt,
		}
		if postBodyFile != "" {
			body, err := os.ReadFile(postBodyFile)
			if err != nil {
				return fmt.Errorf("read body file: %w", err)
			}
			p.Body = string(body)
		}

		created, err := app.client.CreatePost(ctx, tok, p)
		if err != nil {
			return err
		}
		pterm.Success.Printf("Created draft %s (%s)\n", created.ID, created.Slug)
		return nil
	},
}

var postsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing post",
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

		p, err := app.client.GetPost(ctx, tok, args[0])
		if err != nil {
			return err
		}

		// Only fields given on the command line are changed.
		if cmd.Flags().Changed("title") {
			p.Title = postTitle
		}
		if cmd.Flags().Changed("slug") {
			if !slug.Valid(postSlug) {
				return fmt.Errorf("invalid slug %q", postSlug)
			}
			p.Slug = postSlug
		}
		if cmd.Flags().Changed("category") {
			p.CategoryID = postCategory
		}
		if cmd.Flags().Changed("excerpt") {
			p.Excerpt = postExcerpt
		}
		if cmd.Flags().Changed("body-file") {
			body, err := os.ReadFile(postBodyFile)
			if err != nil {
				return fmt.Errorf("read body file: %w", err)
			}
			p.Body = string(body)
		}

		updated, err := app.client.UpdatePost(ctx, tok, *p)
		if err != nil {
			return err
		}
		pterm.Success.Printf("Updated post %s\n", updated.ID)
		return nil
	},
}

var postsPublishCmd = &cobra.Command{
	Use:   "publish <id>",
	Short: "Publish a draft post",
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

		p, err := app.client.GetPost(ctx, tok, args[0])
		if err != nil {
			return err
		}
		if p.Published {
			pterm.Info.Printf("Post %s is already published\n", p.ID)
			return nil
		}

		now := time.Now()
		p.Published = true
		p.PublishedAt = &now

		updated, err := app.client.UpdatePost(ctx, tok, *p)
		if err != nil {
			return err
		}
		pterm.Success.Printf("Published %s (%s)\n", updated.Title, content.FormatPublished(updated.PublishedAt))
		return nil
	},
}

var postsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post",
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

		if err := app.client.DeletePost(ctx, tok, args[0]); err != nil {
			return err
		}
		pterm.Success.Printf("Deleted post %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(postsCmd)
	postsCmd.AddCommand(postsListCmd, postsGetCmd, postsCreateCmd, postsUpdateCmd, postsPublishCmd, postsDeleteCmd)

	for _, c := range []*cobra.Command{postsCreateCmd, postsUpdateCmd} {
		c.Flags().StringVar(&postTitle, "title", "", "Post title")
		c.Flags().StringVar(&postSlug, "slug", "", "URL slug (derived from the title when omitted)")
		c.Flags().StringVar(&postCategory, "category", "", "Category ID")
		c.Flags().StringVar(&postExcerpt, "excerpt", "", "Short excerpt shown in listings")
		c.Flags().StringVar(&postBodyFile, "body-file", "", "File containing the post body")
	}
}
