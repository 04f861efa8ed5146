package tui

import (
	"context"
	"time"

	"github.com/AmalFalah/expense-tracker/internal/api"
	tea "github.com/charmbracelet/bubbletea"
)

// statusClearDelay is how long a transient success message stays visible.
const statusClearDelay = 2 * time.Second

func (m Model) loadCategories(seq int) tea.Cmd {
	return func() tea.Msg {
		categories, err := m.client.Categories(context.Background())
		if err != nil {
			return fetchErrorMsg{section: sectionCategories, seq: seq, err: err}
		}
		return categoriesLoadedMsg{categories: categories, seq: seq}
	}
}

func (m Model) loadTopCategories(seq int) tea.Cmd {
	return func() tea.Msg {
		rows, err := m.client.TopCategories(context.Background())
		if err != nil {
			return fetchErrorMsg{section: sectionTopCategories, seq: seq, err: err}
		}
		return topCategoriesLoadedMsg{rows: rows, seq: seq}
	}
}

func (m Model) loadExpenses(seq int) tea.Cmd {
	return func() tea.Msg {
		expenses, err := m.client.MonthlyExpenses(context.Background())
		if err != nil {
			return fetchErrorMsg{section: sectionExpenses, seq: seq, err: err}
		}
		return expensesLoadedMsg{expenses: expenses, seq: seq}
	}
}

func (m Model) submitExpense(in api.ExpenseInput) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.AddExpense(context.Background(), in); err != nil {
			return fetchErrorMsg{section: sectionForm, err: err, seq: m.seq}
		}
		return expenseAddedMsg{}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
