package tui

import (
	"github.com/AmalFalah/expense-tracker/internal/model"
)

// Fetch results carry the sequence number of the refresh that started them.
// The model drops any result whose sequence is older than the current one,
// so a slow stale response can never overwrite newer state.

type categoriesLoadedMsg struct {
	categories []model.Category
	seq        int
}

type topCategoriesLoadedMsg struct {
	rows []model.CategoryTotal
	seq  int
}

type expensesLoadedMsg struct {
	expenses []model.Expense
	seq      int
}

// expenseAddedMsg reports a successful create. It is the refresh signal the
// sibling panels subscribe to.
type expenseAddedMsg struct{}

type fetchErrorMsg struct {
	err     error
	section section
	seq     int
}

// clearStatusMsg fires after the transient success delay elapses.
type clearStatusMsg struct{}

// section names a dashboard panel for error attribution.
type section int

const (
	sectionCategories section = iota
	sectionTopCategories
	sectionExpenses
	sectionForm
)
