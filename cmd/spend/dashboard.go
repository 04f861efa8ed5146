package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/AmalFalah/expense-tracker/internal/cli"
	"github.com/AmalFalah/expense-tracker/internal/common"
	"github.com/AmalFalah/expense-tracker/internal/model"
	"github.com/AmalFalah/expense-tracker/internal/tui"
	"github.com/spf13/cobra"
)

func topCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Show the top spending categories this month",
		Long:  `Display the backend's current-month aggregate: up to five categories, largest spend first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, store, err := initClient()
			if err != nil {
				return err
			}
			if _, err := requireLogin(store); err != nil {
				return err
			}

			rows, err := client.TopCategories(cmd.Context())
			if err != nil {
				return common.NewUserError("Failed to load dashboard data", err)
			}

			if len(rows) == 0 {
				fmt.Println(cli.FormatInfo("No expenses yet"))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + " Top Categories This Month"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Total"))
			fmt.Fprintf(w, "%s\t%s\n", strings.Repeat("-", 16), strings.Repeat("-", 10))
			for _, row := range rows {
				fmt.Fprintf(w, "%s\t%.2f\n", row.Category, row.Total)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			fmt.Println()
			fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Total This Month: %.2f", model.SumTotals(rows))))
			return nil
		},
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open the full-screen dashboard: add expenses, watch the top-categories
panel, and browse this month's list, all refreshing in place.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			client, store, err := initClient()
			if err != nil {
				return err
			}
			sess, err := requireLogin(store)
			if err != nil {
				return err
			}

			return tui.Run(client, sess.User)
		},
	}
}
