package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/AmalFalah/expense-tracker/internal/model"
)

// Users fetches all accounts. Admin only; non-admin callers get a 403 back
// from the backend.
func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.get(ctx, "/users/", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// PromoteUser grants a user the admin role and returns the backend's
// acknowledgment message. Admin only.
func (c *Client) PromoteUser(ctx context.Context, userID int) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/promote/%d", userID), nil, "", &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// DeleteUser soft-deletes an account and returns the backend's
// acknowledgment message. Admin only.
func (c *Client) DeleteUser(ctx context.Context, userID int) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", userID), nil, "", &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
