package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/AmalFalah/expense-tracker/internal/model"
)

type categoryRequest struct {
	Name string `json:"name"`
}

// Categories fetches all expense categories. Any authenticated user may
// list; only admins may create.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.get(ctx, "/categories/", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a new category. The backend rejects non-admin
// callers with a 403.
func (c *Client) CreateCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	return c.postJSON(ctx, "/categories/", categoryRequest{Name: name}, nil)
}
