package tui

import (
	"errors"
	"testing"

	"github.com/AmalFalah/expense-tracker/internal/api"
	"github.com/AmalFalah/expense-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() Model {
	return NewModel(api.New("http://localhost:0", nil), model.User{ID: 1, Email: "a@x.com", Role: model.RoleUser})
}

func update(t *testing.T, m Model, msg any) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestModel_InitialState(t *testing.T) {
	m := testModel()

	assert.True(t, m.loading[sectionCategories])
	assert.True(t, m.loading[sectionTopCategories])
	assert.True(t, m.loading[sectionExpenses])
	assert.NotNil(t, m.Init())

	view := m.View()
	assert.Contains(t, view, "Expense Tracker Dashboard")
	assert.Contains(t, view, "a@x.com")
	assert.Contains(t, view, "Loading top categories...")
	assert.Contains(t, view, "Loading expenses...")
}

func TestModel_ExpensesLoaded(t *testing.T) {
	m := testModel()

	m = update(t, m, expensesLoadedMsg{
		seq: 0,
		expenses: []model.Expense{
			{ID: 1, Amount: 12.5, Description: "coffee", ExpenseDate: "2025-03-01", Category: &model.Category{ID: 2, Name: "Food"}},
			{ID: 2, Amount: 40, ExpenseDate: "2025-03-03"},
		},
	})

	assert.False(t, m.loading[sectionExpenses])

	view := m.View()
	assert.Contains(t, view, "Food")
	assert.Contains(t, view, "Unknown")
	// Footer total equals the sum of row amounts, two decimals.
	assert.Contains(t, view, "Total: 52.50")
}

func TestModel_TopCategoriesLoaded(t *testing.T) {
	m := testModel()

	m = update(t, m, topCategoriesLoadedMsg{
		seq: 0,
		rows: []model.CategoryTotal{
			{Category: "Food", Total: 120.5},
			{Category: "Transport", Total: 30.25},
		},
	})

	view := m.View()
	assert.Contains(t, view, "Food")
	assert.Contains(t, view, "Total This Month: 150.75")
}

func TestModel_StaleResponseDropped(t *testing.T) {
	m := testModel()
	m.seq = 2

	// A slow response from an earlier refresh must not overwrite state.
	m = update(t, m, expensesLoadedMsg{
		seq:      1,
		expenses: []model.Expense{{ID: 9, Amount: 999}},
	})
	assert.Empty(t, m.expenses)
	assert.True(t, m.loading[sectionExpenses])

	m = update(t, m, topCategoriesLoadedMsg{seq: 0, rows: []model.CategoryTotal{{Category: "Old", Total: 1}}})
	assert.Empty(t, m.topRows)
}

func TestModel_ExpenseAdded(t *testing.T) {
	m := testModel()
	m.form.inputs[fieldAmount].SetValue("12.50")
	m.loading = map[section]bool{}
	m.submitting = true

	updated, cmd := m.Update(expenseAddedMsg{})
	m = updated.(Model)

	assert.False(t, m.submitting)
	assert.Equal(t, "Expense added successfully!", m.status)
	assert.Empty(t, m.form.inputs[fieldAmount].Value(), "form clears on success")
	assert.Equal(t, 1, m.seq, "refresh runs under a fresh sequence")
	assert.True(t, m.loading[sectionTopCategories])
	assert.True(t, m.loading[sectionExpenses])
	assert.False(t, m.loading[sectionCategories], "categories are not re-fetched")
	require.NotNil(t, cmd, "success schedules the sibling refresh")

	assert.Contains(t, m.View(), "Expense added successfully!")
}

func TestModel_FetchErrorClearsSuccess(t *testing.T) {
	m := testModel()
	m.status = "Expense added successfully!"

	m = update(t, m, fetchErrorMsg{section: sectionExpenses, seq: 0, err: errors.New("boom")})

	assert.Empty(t, m.status, "error and success never show together")
	assert.Equal(t, "Failed to load expenses", m.errors[sectionExpenses])
	assert.Contains(t, m.View(), "Failed to load expenses")
}

func TestModel_FormValidationError(t *testing.T) {
	m := testModel()
	m.form.SetCategories([]model.Category{{ID: 1, Name: "Food"}})
	m.form.inputs[fieldCategory].SetValue("Food")
	m.form.inputs[fieldAmount].SetValue("not-a-number")

	updated, cmd := m.submit()
	m = updated.(Model)

	assert.Nil(t, cmd, "invalid input never issues a request")
	assert.Contains(t, m.errors[sectionForm], "not a number")
}

func TestModel_ClearStatus(t *testing.T) {
	m := testModel()
	m.status = "Expense added successfully!"

	m = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "Failed to load categories", errorText(sectionCategories, errors.New("x")))
	assert.Equal(t, "Failed to load dashboard data", errorText(sectionTopCategories, errors.New("x")))
	assert.Equal(t, "Failed to load expenses", errorText(sectionExpenses, errors.New("x")))

	// Backend rejections on submit get the generic retry message; local
	// validation errors surface as-is.
	assert.Equal(t, "Failed to add expense. Please try again.",
		errorText(sectionForm, &api.Error{StatusCode: 500}))
	assert.Equal(t, "amount must be greater than zero",
		errorText(sectionForm, errors.New("amount must be greater than zero")))
}
