package api

import (
	"context"
	"fmt"
	"time"

	"github.com/AmalFalah/expense-tracker/internal/model"
)

// ExpenseInput is the create-expense request body.
type ExpenseInput struct {
	Description string  `json:"description"`
	ExpenseDate string  `json:"expense_date"`
	Amount      float64 `json:"amount"`
	CategoryID  int     `json:"category_id"`
}

// Validate checks the input before it goes on the wire. The backend is the
// authority; this only catches values that could never be valid.
func (in *ExpenseInput) Validate() error {
	if in.CategoryID <= 0 {
		return fmt.Errorf("a category is required")
	}
	if in.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if _, err := time.Parse(model.DateFormat, in.ExpenseDate); err != nil {
		return fmt.Errorf("expense date must be in YYYY-MM-DD format")
	}
	return nil
}

// AddExpense records a new expense for the authenticated user.
func (c *Client) AddExpense(ctx context.Context, in ExpenseInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return c.postJSON(ctx, "/expenses/", in, nil)
}

// MonthlyExpenses fetches the authenticated user's expenses for the current
// month. An empty month yields an empty slice, not an error.
func (c *Client) MonthlyExpenses(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := c.get(ctx, "/expenses/monthly", &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}
