package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTotalAmount(t *testing.T) {
	tests := []struct {
		name     string
		expenses []Expense
		want     float64
	}{
		{
			name:     "empty list",
			expenses: nil,
			want:     0,
		},
		{
			name: "single expense",
			expenses: []Expense{
				{Amount: 12.50},
			},
			want: 12.50,
		},
		{
			name: "rounds to two decimals",
			expenses: []Expense{
				{Amount: 0.1},
				{Amount: 0.2},
			},
			want: 0.3,
		},
		{
			name: "many expenses",
			expenses: []Expense{
				{Amount: 10.99},
				{Amount: 5.01},
				{Amount: 100},
			},
			want: 116.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TotalAmount(tt.expenses), 0.0001)
		})
	}
}

func TestExpense_CategoryName(t *testing.T) {
	withCategory := Expense{Category: &Category{ID: 3, Name: "Food"}}
	assert.Equal(t, "Food", withCategory.CategoryName())

	withoutCategory := Expense{}
	assert.Equal(t, "Unknown", withoutCategory.CategoryName())
}

func TestExpense_Date(t *testing.T) {
	e := Expense{ExpenseDate: "2025-03-14"}
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), e.Date())

	bad := Expense{ExpenseDate: "not-a-date"}
	assert.True(t, bad.Date().IsZero())
}

func TestExpense_CreatedTime(t *testing.T) {
	// Backend serializes without a zone offset.
	e := Expense{CreatedAt: "2025-03-14T09:30:00"}
	assert.Equal(t, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC), e.CreatedTime())

	// RFC3339 fallback.
	e = Expense{CreatedAt: "2025-03-14T09:30:00Z"}
	assert.Equal(t, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC), e.CreatedTime())

	e = Expense{CreatedAt: "garbage"}
	assert.True(t, e.CreatedTime().IsZero())
}

func TestSumTotals(t *testing.T) {
	rows := []CategoryTotal{
		{Category: "Food", Total: 120.50},
		{Category: "Transport", Total: 30.25},
	}
	assert.InDelta(t, 150.75, SumTotals(rows), 0.0001)
	assert.InDelta(t, 0, SumTotals(nil), 0.0001)
}

func TestMaxTotal(t *testing.T) {
	rows := []CategoryTotal{
		{Category: "Food", Total: 120.50},
		{Category: "Transport", Total: 30.25},
	}
	assert.InDelta(t, 120.50, MaxTotal(rows), 0.0001)

	// Floor of 1 keeps share bars well-defined for tiny or empty months.
	assert.InDelta(t, 1, MaxTotal(nil), 0.0001)
	assert.InDelta(t, 1, MaxTotal([]CategoryTotal{{Total: 0.4}}), 0.0001)
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, User{Role: RoleAdmin}.IsAdmin())
	assert.False(t, User{Role: RoleUser}.IsAdmin())
	assert.False(t, User{}.IsAdmin())
}
