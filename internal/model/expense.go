package model

import (
	"math"
	"time"
)

// Wire formats used by the backend. Dates are plain ISO calendar dates;
// created_at timestamps come back without a zone offset.
const (
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02T15:04:05"
)

// Expense represents a single recorded expense as returned by the backend.
// Date fields are kept as the raw wire strings because the backend serializes
// timestamps without a zone; display helpers parse them best-effort.
type Expense struct {
	Description string    `json:"description"`
	ExpenseDate string    `json:"expense_date"`
	CreatedAt   string    `json:"created_at"`
	Category    *Category `json:"category"`
	Amount      float64   `json:"amount"`
	ID          int       `json:"id"`
}

// CategoryName returns the expense's category name, or "Unknown" when the
// backend reports no category.
func (e Expense) CategoryName() string {
	if e.Category == nil {
		return "Unknown"
	}
	return e.Category.Name
}

// Date parses the expense date, returning the zero time on malformed input.
func (e Expense) Date() time.Time {
	t, err := time.Parse(DateFormat, e.ExpenseDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CreatedTime parses the created_at timestamp, trying the backend's unzoned
// format first and RFC3339 as a fallback.
func (e Expense) CreatedTime() time.Time {
	if t, err := time.Parse(TimestampFormat, e.CreatedAt); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, e.CreatedAt); err == nil {
		return t
	}
	return time.Time{}
}

// TotalAmount sums expense amounts rounded to two decimals, matching the
// footer total shown under the monthly list.
func TotalAmount(expenses []Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return math.Round(total*100) / 100
}
