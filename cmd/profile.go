// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	profileName    string
	profileMission string
	profileEmail   string
	profilePhone   string
	profileAddress string
	profileAbout   string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the organization profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the organization profile",
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

		p, err := app.client.GetProfile(ctx, tok)
		if err != nil {
			return err
		}

		fmt.Printf("Name:    %s\n", p.Name)
		if p.Mission != "" {
			fmt.Printf("Mission: %s\n", p.Mission)
		}
		if p.Email != "" {
			fmt.Printf("Email:   %s\n", p.Email)
		}
		if p.Phone != "" {
			fmt.Printf("Phone:   %s\n", p.Phone)
		}
		if p.Address != "" {
			fmt.Printf("Address: %s\n", p.Address)
		}
		if p.About != "" {
			fmt.Printf("\n%s\n", p.About)
		}
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the organization profile",
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

		p, err := app.client.GetProfile(ctx, tok)
		if err != nil {
			return err
		}

		// Only fields given on the command line are changed.
		if cmd.Flags().Changed("name") {
			p.Name = profileName
		}
		if cmd.Flags().Changed("mission") {
			p.Mission = profileMission
		}
		if cmd.Flags().Changed("email") {
			p.Email = profileEmail
		}
		if cmd.Flags().Changed("phone") {
			p.Phone = profilePhone
		}
		if cmd.Flags().Changed("address") {
			p.Address = profileAddress
		}
		if cmd.Flags().Changed("about") {
			p.About = profileAbout
		}

		if _, err := app.client.UpdateProfile(ctx, tok, *p); err != nil {
			return err
		}
		pterm.Success.Println("Profile updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)

	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "Organization name")
	profileUpdateCmd.Flags().StringVar(&profileMission, "mission", "", "Mission statement")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "Contact email")
	profileUpdateCmd.Flags().StringVar(&profilePhone, "phone", "", "Contact phone number")
	profileUpdateCmd.Flags().StringVar(&profileAddress, "address", "", "Postal address")
	profileUpdateCmd.Flags().StringVar(&profileAbout, "about", "", "About text shown on the public site")
}
