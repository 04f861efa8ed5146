// Package tui implements the interactive dashboard: an add-expense form, the
// top-categories panel, and the monthly expense table in one screen.
package tui

import (
	"errors"
	"fmt"

	"github.com/AmalFalah/expense-tracker/internal/api"
	"github.com/AmalFalah/expense-tracker/internal/cli"
	"github.com/AmalFalah/expense-tracker/internal/common"
	"github.com/AmalFalah/expense-tracker/internal/model"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the dashboard state. Each panel follows the same lifecycle:
// idle, loading (request in flight), then success or error, back to idle on
// the next trigger.
type Model struct {
	client       *api.Client
	loading      map[section]bool
	errors       map[section]string
	user         model.User
	status       string
	topRows      []model.CategoryTotal
	expenses     []model.Expense
	form         FormModel
	expenseTable table.Model
	spinner      spinner.Model
	shareBar     progress.Model
	keymap       KeyMap
	seq          int
	width        int
	height       int
	submitting   bool
	quitting     bool
}

// NewModel creates the dashboard for the given authenticated user.
func NewModel(client *api.Client, user model.User) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cli.InfoStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	bar.Width = 24

	columns := []table.Column{
		{Title: "Category", Width: 16},
		{Title: "Amount", Width: 10},
		{Title: "Description", Width: 28},
		{Title: "Date", Width: 12},
		{Title: "Added At", Width: 10},
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithHeight(8),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(cli.PrimaryColor)
	styles.Selected = styles.Selected.UnsetForeground().UnsetBackground()
	tbl.SetStyles(styles)
	tbl.Blur()

	return Model{
		client:       client,
		user:         user,
		form:         NewFormModel(),
		expenseTable: tbl,
		spinner:      sp,
		shareBar:     bar,
		keymap:       DefaultKeyMap(),
		loading: map[section]bool{
			sectionCategories:    true,
			sectionTopCategories: true,
			sectionExpenses:      true,
		},
		errors: make(map[section]string),
	}
}

// Init starts the spinner and the three mount-time fetches.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
		m.loadCategories(m.seq),
		m.loadTopCategories(m.seq),
		m.loadExpenses(m.seq),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.anyLoading() && !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case categoriesLoadedMsg:
		if msg.seq < m.seq {
			return m, nil
		}
		m.loading[sectionCategories] = false
		delete(m.errors, sectionCategories)
		m.form.SetCategories(msg.categories)
		return m, nil

	case topCategoriesLoadedMsg:
		if msg.seq < m.seq {
			return m, nil
		}
		m.loading[sectionTopCategories] = false
		delete(m.errors, sectionTopCategories)
		m.topRows = msg.rows
		return m, nil

	case expensesLoadedMsg:
		if msg.seq < m.seq {
			return m, nil
		}
		m.loading[sectionExpenses] = false
		delete(m.errors, sectionExpenses)
		m.expenses = msg.expenses
		m.expenseTable.SetRows(expenseRows(msg.expenses))
		return m, nil

	case expenseAddedMsg:
		m.submitting = false
		delete(m.errors, sectionForm)
		m.status = "Expense added successfully!"

		var focusCmd tea.Cmd
		m.form, focusCmd = m.form.Reset()

		// One successful create triggers exactly one refresh of the two
		// sibling panels.
		m.seq++
		m.loading[sectionTopCategories] = true
		m.loading[sectionExpenses] = true
		return m, tea.Batch(
			focusCmd,
			m.spinner.Tick,
			m.loadTopCategories(m.seq),
			m.loadExpenses(m.seq),
			clearStatusAfter(statusClearDelay),
		)

	case fetchErrorMsg:
		if msg.section != sectionForm && msg.seq < m.seq {
			return m, nil
		}
		m.submitting = false
		m.loading[msg.section] = false
		// An error never shows alongside a success message.
		m.status = ""
		m.errors[msg.section] = errorText(msg.section, msg.err)
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Refresh):
		return m.refreshAll()

	case key.Matches(msg, m.keymap.Next):
		var cmd tea.Cmd
		m.form, cmd = m.form.Next()
		return m, cmd

	case key.Matches(msg, m.keymap.Prev):
		var cmd tea.Cmd
		m.form, cmd = m.form.Prev()
		return m, cmd

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// refreshAll re-fetches every panel under a fresh sequence number.
func (m Model) refreshAll() (tea.Model, tea.Cmd) {
	m.seq++
	m.status = ""
	m.errors = make(map[section]string)
	m.loading[sectionCategories] = true
	m.loading[sectionTopCategories] = true
	m.loading[sectionExpenses] = true
	return m, tea.Batch(
		m.spinner.Tick,
		m.loadCategories(m.seq),
		m.loadTopCategories(m.seq),
		m.loadExpenses(m.seq),
	)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	in, err := m.form.Input()
	if err != nil {
		m.status = ""
		m.errors[sectionForm] = err.Error()
		return m, nil
	}

	delete(m.errors, sectionForm)
	m.submitting = true
	return m, tea.Batch(m.spinner.Tick, m.submitExpense(in))
}

func (m Model) anyLoading() bool {
	for _, v := range m.loading {
		if v {
			return true
		}
	}
	return false
}

// errorText converts a fetch failure into the message shown on the panel.
func errorText(s section, err error) string {
	msg := common.UserMessage(err)
	switch s {
	case sectionCategories:
		return "Failed to load categories"
	case sectionTopCategories:
		return "Failed to load dashboard data"
	case sectionExpenses:
		return "Failed to load expenses"
	case sectionForm:
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			return "Failed to add expense. Please try again."
		}
		return msg
	}
	return msg
}

func expenseRows(expenses []model.Expense) []table.Row {
	rows := make([]table.Row, 0, len(expenses))
	for _, e := range expenses {
		description := e.Description
		if description == "" {
			description = "-"
		}
		added := "-"
		if t := e.CreatedTime(); !t.IsZero() {
			added = t.Format("15:04:05")
		}
		rows = append(rows, table.Row{
			e.CategoryName(),
			fmt.Sprintf("%.2f", e.Amount),
			description,
			e.ExpenseDate,
			added,
		})
	}
	return rows
}
