package main

import (
	"fmt"
	"os"

	"github.com/AmalFalah/expense-tracker/internal/cli"
	"github.com/AmalFalah/expense-tracker/internal/common"
	"github.com/AmalFalah/expense-tracker/internal/session"
	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  `Register a new account with the expense-tracker backend.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			prompter := cli.NewPrompter(os.Stdin, os.Stdout)
			email, password, err := readCredentials(prompter, email)
			if err != nil {
				return err
			}

			message, err := client.Register(cmd.Context(), email, password)
			if err != nil {
				return common.NewUserError("Registration failed", err)
			}

			fmt.Println(cli.FormatSuccess(message))
			fmt.Println(cli.FormatInfo("Run 'spend login' to sign in."))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (prompted if omitted)")

	return cmd
}

func loginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session",
		Long: `Exchange credentials for an access token and save it locally.

The token is stored in a single session file and attached to every
subsequent request until 'spend logout'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, store, err := initClient()
			if err != nil {
				return err
			}

			prompter := cli.NewPrompter(os.Stdin, os.Stdout)
			email, password, err := readCredentials(prompter, email)
			if err != nil {
				return err
			}

			resp, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return common.NewUserError("Login failed", err)
			}

			user, err := session.UserFromToken(resp.AccessToken, email)
			if err != nil {
				return fmt.Errorf("backend returned an unusable token: %w", err)
			}

			if err := store.Save(session.Session{Token: resp.AccessToken, User: user}); err != nil {
				return err
			}

			common.LogDebug("Session established", common.Fields{"user_id": user.ID, "role": user.Role})
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged in as %s (%s)", user.Email, user.Role)))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (prompted if omitted)")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the saved session",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, store, err := initClient()
			if err != nil {
				return err
			}

			if err := store.Clear(); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, store, err := initClient()
			if err != nil {
				return err
			}

			sess, err := requireLogin(store)
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s)\n", sess.User.Email, sess.User.Role)
			fmt.Println(cli.SubtleStyle.Render("signed in " + sess.SavedAt.Format("2006-01-02 15:04")))
			return nil
		},
	}
}

// readCredentials collects email and password, prompting for whatever the
// flags did not provide. Passwords are never accepted as flags.
func readCredentials(prompter *cli.Prompter, email string) (string, string, error) {
	var err error
	if email == "" {
		email, err = prompter.ReadLine("Email")
		if err != nil {
			return "", "", fmt.Errorf("failed to read email: %w", err)
		}
	}
	if email == "" {
		return "", "", fmt.Errorf("email is required")
	}

	password, err := prompter.ReadPassword("Password")
	if err != nil {
		return "", "", err
	}
	if password == "" {
		return "", "", fmt.Errorf("password cannot be empty")
	}

	return email, password, nil
}
