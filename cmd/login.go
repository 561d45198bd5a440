// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"caritas/cli/internal/api"
	"caritas/cli/internal/session"
	"caritas/cli/internal/terminal"
)

var loginEmail string

// loginCmd represents the login command for authenticating the admin console.
// It prompts for the admin email and password, exchanges them for tokens, and
// stores the credentials securely. If already logged in with valid
// credentials, it skips the authentication flow.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Authenticate against the Caritas backend",
	Long: `The login command authenticates the admin console against the Caritas backend.
It prompts for the admin email and password (the password is never echoed),
exchanges them for access and refresh tokens, and stores the resulting
credentials in the OS keychain.

If already logged in with valid credentials, the authentication flow is skipped.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		app, err := newApp()
		if err != nil {
			return err
		}

		// If already logged in with a live session, short-circuit
		if sess := app.manager.Current(); sess.IsAuthenticated {
			fmt.Printf("Already logged in as %s\n", displayIdentity(sess.User))
			return nil
		}

		identifier := strings.TrimSpace(loginEmail)
		if identifier == "" {
			fmt.Print("Email: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			identifier = strings.TrimSpace(line)
		}
		if identifier == "" {
			return fmt.Errorf("an email address is required")
		}

		fmt.Print("Password: ")
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return err
		}
		// Remove the password prompt so nothing about the attempt lingers on screen
		terminal.ClearPreviousLines(len("Password: "))

		stopSpinner := startAreaSpinner("Signing in")
		res := app.manager.Login(ctx, identifier, string(secret))
		stopSpinner()

		if !res.OK {
			showLoginFailure(res)
			return fmt.Errorf("login failed")
		}

		fmt.Println(randomLoginGreeting(displayIdentity(app.manager.Current().User)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Admin email address")
}

// showLoginFailure prints a failure Result in a way that matches its kind.
func showLoginFailure(res session.Result) {
	switch res.Kind {
	case session.FailInvalidCredentials:
		pterm.Error.Println("Invalid email or password.")
	case session.FailNetwork:
		pterm.Error.Println("Could not reach the Caritas backend.")
		pterm.Println("  • Check your internet connection and try again")
		if res.Message != "" {
			pterm.Debug.Printf("Technical details: %s\n", res.Message)
		}
	case session.FailBusy:
		pterm.Error.Println("Another session operation is already running.")
	default:
		pterm.Error.Println(res.Message)
	}
}

// displayIdentity extracts a human identifier from the user record.
// It tries common fields and falls back to "user".
func displayIdentity(user api.UserRecord) string {
	for _, key := range []string{"email", "name", "user_id", "id"} {
		if v, ok := user[key].(string); ok && v != "" {
			return v
		}
	}
	return "user"
}

// randomLoginGreeting returns a random greeting phrase with the user's identifier
func randomLoginGreeting(identifier string) string {
	greetings := []string{
		"🎉 Welcome back, %s!",
		"✨ Great to see you, %s!",
		"👋 Hello %s! The site awaits.",
		"💫 Successfully authenticated as %s",
		"✅ Authentication complete! Hi %s!",
		"🔓 Access granted! Welcome %s!",
	}

	return fmt.Sprintf(greetings[rand.IntN(len(greetings))], identifier)
}
