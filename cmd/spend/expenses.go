package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/AmalFalah/expense-tracker/internal/api"
	"github.com/AmalFalah/expense-tracker/internal/cli"
	"github.com/AmalFalah/expense-tracker/internal/common"
	"github.com/AmalFalah/expense-tracker/internal/model"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		category    string
		amount      float64
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long:  `Record an expense against a category. The category may be given by name or id.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, store, err := initClient()
			if err != nil {
				return err
			}
			if _, err := requireLogin(store); err != nil {
				return err
			}

			categoryID, err := resolveCategory(cmd.Context(), client, category)
			if err != nil {
				return err
			}

			if date == "" {
				date = time.Now().Format(model.DateFormat)
			}

			in := api.ExpenseInput{
				CategoryID:  categoryID,
				Amount:      amount,
				Description: description,
				ExpenseDate: date,
			}
			if err := client.AddExpense(cmd.Context(), in); err != nil {
				return common.NewUserError("Failed to add expense. Please try again.", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Expense added: %.2f on %s", amount, date)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category name or id (required)")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "expense amount (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description")
	cmd.Flags().StringVar(&date, "date", "", "expense date as YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func expensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expenses",
		Short: "List this month's expenses",
		Long:  `Display the current month's expenses with a running total.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, store, err := initClient()
			if err != nil {
				return err
			}
			if _, err := requireLogin(store); err != nil {
				return err
			}

			expenses, err := client.MonthlyExpenses(cmd.Context())
			if err != nil {
				return common.NewUserError("Failed to load expenses", err)
			}

			if len(expenses) == 0 {
				fmt.Println(cli.FormatInfo("No expenses found for this month"))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Added At"))

			for _, e := range expenses {
				description := e.Description
				if description == "" {
					description = cli.SubtleStyle.Render("-")
				}
				added := "-"
				if t := e.CreatedTime(); !t.IsZero() {
					added = t.Format("15:04:05")
				}
				fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\t%s\n",
					e.CategoryName(), e.Amount, description, e.ExpenseDate, added)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			fmt.Println()
			fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("Total: %.2f", model.TotalAmount(expenses))))
			return nil
		},
	}
}

// resolveCategory maps a --category value to an id using the fetched list,
// matching by name first (case-insensitive) and by id as a fallback.
func resolveCategory(ctx context.Context, client *api.Client, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("a category is required")
	}

	categories, err := client.Categories(ctx)
	if err != nil {
		return 0, common.NewUserError("Failed to load categories", err)
	}

	for _, c := range categories {
		if strings.EqualFold(c.Name, value) {
			return c.ID, nil
		}
	}

	if id, err := strconv.Atoi(value); err == nil {
		for _, c := range categories {
			if c.ID == id {
				return id, nil
			}
		}
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return 0, fmt.Errorf("unknown category %q (have: %s)", value, strings.Join(names, ", "))
}
