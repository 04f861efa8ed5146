package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/AmalFalah/expense-tracker/internal/api"
	"github.com/AmalFalah/expense-tracker/internal/cli"
	"github.com/AmalFalah/expense-tracker/internal/common"
	"github.com/AmalFalah/expense-tracker/internal/model"
	"github.com/spf13/cobra"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts (admin only)",
		Long:  `List, promote, and delete user accounts. All subcommands require the admin role.`,
	}

	cmd.AddCommand(listUsersCmd())
	cmd.AddCommand(promoteUserCmd())
	cmd.AddCommand(deleteUserCmd())

	return cmd
}

func listUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, store, err := initClient()
			if err != nil {
				return err
			}
			if _, err := requireAdmin(store); err != nil {
				return err
			}

			users, err := client.Users(cmd.Context())
			if err != nil {
				return common.NewUserError("Failed to load users", err)
			}

			return renderUserTable(users)
		},
	}
}

func renderUserTable(users []model.User) error {
	if len(users) == 0 {
		fmt.Println(cli.FormatInfo("No users found."))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render(cli.AdminIcon + " Users"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		cli.HeaderStyle.Render("ID"),
		cli.HeaderStyle.Render("Email"),
		cli.HeaderStyle.Render("Role"))
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		strings.Repeat("-", 4), strings.Repeat("-", 28), strings.Repeat("-", 6))
	for _, u := range users {
		role := u.Role
		if u.IsAdmin() {
			role = cli.WarningStyle.Render(role)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Email, role)
	}
	return w.Flush()
}

// refreshUserList re-fetches the user list after a mutation so the printed
// table reflects the change. The mutation itself already succeeded, so a
// failed refresh only warns.
func refreshUserList(cmd *cobra.Command, client *api.Client) error {
	users, err := client.Users(cmd.Context())
	if err != nil {
		fmt.Println(cli.FormatWarning("Could not refresh the user list; run 'spend users list'."))
		return nil
	}
	return renderUserTable(users)
}

func promoteUserCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "promote <id>",
		Short: "Grant a user the admin role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			client, store, err := initClient()
			if err != nil {
				return err
			}
			if _, err := requireAdmin(store); err != nil {
				return err
			}

			if !yes {
				confirmed, err := cli.NewPrompter(os.Stdin, os.Stdout).
					Confirm(fmt.Sprintf("Promote user %d to admin?", userID))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println(cli.FormatInfo("Aborted."))
					return nil
				}
			}

			message, err := client.PromoteUser(cmd.Context(), userID)
			if err != nil {
				return common.NewUserError("Failed to promote user", err)
			}

			fmt.Println(cli.FormatSuccess(message))
			return refreshUserList(cmd, client)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func deleteUserCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			client, store, err := initClient()
			if err != nil {
				return err
			}
			if _, err := requireAdmin(store); err != nil {
				return err
			}

			if !yes {
				confirmed, err := cli.NewPrompter(os.Stdin, os.Stdout).
					Confirm(fmt.Sprintf("Are you sure you want to delete user %d?", userID))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println(cli.FormatInfo("Aborted."))
					return nil
				}
			}

			message, err := client.DeleteUser(cmd.Context(), userID)
			if err != nil {
				return common.NewUserError("Failed to delete user", err)
			}

			fmt.Println(cli.FormatSuccess(message))
			return refreshUserList(cmd, client)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func parseUserID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", arg)
	}
	return id, nil
}
