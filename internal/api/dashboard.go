package api

import (
	"context"

	"github.com/AmalFalah/expense-tracker/internal/model"
)

// TopCategories fetches the backend's current-month spending aggregate,
// sorted by total descending. The backend caps the result at five rows.
func (c *Client) TopCategories(ctx context.Context) ([]model.CategoryTotal, error) {
	var rows []model.CategoryTotal
	if err := c.get(ctx, "/dashboard/top-categories", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
