package model

// Category represents a valid expense category. Categories are created by
// admins and never mutated or deleted by this client; expense creation may
// only reference a category id from the currently fetched list.
type Category struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}
