package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/AmalFalah/expense-tracker/internal/cli"
	"github.com/AmalFalah/expense-tracker/internal/common"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List expense categories, or create new ones as an admin.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, store, err := initClient()
			if err != nil {
				return err
			}
			if _, err := requireLogin(store); err != nil {
				return err
			}

			categories, err := client.Categories(cmd.Context())
			if err != nil {
				return common.NewUserError("Failed to load categories", err)
			}

			if len(categories) == 0 {
				fmt.Println(cli.FormatInfo("No categories yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"))
			fmt.Fprintf(w, "%s\t%s\n", strings.Repeat("-", 4), strings.Repeat("-", 20))
			for _, c := range categories {
				fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Name)
			}
			return w.Flush()
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new category (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, store, err := initClient()
			if err != nil {
				return err
			}
			if _, err := requireAdmin(store); err != nil {
				return err
			}

			name := args[0]
			if err := client.CreateCategory(cmd.Context(), name); err != nil {
				// The saved role can be stale; the backend has the last word.
				if errors.Is(err, common.ErrForbidden) {
					return common.NewUserError("You do not have permission to add categories (admin only)", err)
				}
				return common.NewUserError("Failed to add category", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Category %q added successfully!", strings.TrimSpace(name))))
			return nil
		},
	}
}
