package tui

import (
	"fmt"

	"github.com/AmalFalah/expense-tracker/internal/cli"
	"github.com/AmalFalah/expense-tracker/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor)

	labelStyle = lipgloss.NewStyle().
			Width(13).
			Foreground(cli.SubtleColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor).
			MarginTop(1)
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := cli.FormatTitle("Expense Tracker Dashboard")
	subtitle := cli.SubtleStyle.Render(fmt.Sprintf("Signed in as %s (%s)", m.user.Email, m.user.Role))

	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.formPanel(),
		m.topCategoriesPanel(),
	)

	sections := []string{
		header,
		subtitle,
		"",
		top,
		m.expensesPanel(),
		m.statusLine(),
		helpStyle.Render("tab: next field • enter: add expense • ctrl+r: refresh • esc: quit"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) formPanel() string {
	title := panelTitleStyle.Render("Add New Expense")

	body := m.form.View()
	if m.submitting {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.spinner.View()+" Adding...")
	}
	if msg, ok := m.errors[sectionForm]; ok {
		body = lipgloss.JoinVertical(lipgloss.Left, body, cli.FormatError(msg))
	}
	if msg, ok := m.errors[sectionCategories]; ok {
		body = lipgloss.JoinVertical(lipgloss.Left, body, cli.FormatError(msg))
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
}

func (m Model) topCategoriesPanel() string {
	title := panelTitleStyle.Render("Top Categories This Month")

	var body string
	switch {
	case m.loading[sectionTopCategories]:
		body = m.spinner.View() + " Loading top categories..."
	case m.errors[sectionTopCategories] != "":
		body = cli.FormatError(m.errors[sectionTopCategories])
	case len(m.topRows) == 0:
		body = cli.SubtleStyle.Render("No expenses yet")
	default:
		maxTotal := model.MaxTotal(m.topRows)
		lines := make([]string, 0, len(m.topRows)+2)
		for _, row := range m.topRows {
			label := fmt.Sprintf("%-16s %10.2f", row.Category, row.Total)
			bar := m.shareBar.ViewAs(row.Total / maxTotal)
			lines = append(lines, label, bar)
		}
		lines = append(lines, "", cli.BoldStyle.Render(
			fmt.Sprintf("Total This Month: %.2f", model.SumTotals(m.topRows))))
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
}

func (m Model) expensesPanel() string {
	title := panelTitleStyle.Render("Monthly Expenses")

	var body string
	switch {
	case m.loading[sectionExpenses] && len(m.expenses) == 0:
		body = m.spinner.View() + " Loading expenses..."
	case m.errors[sectionExpenses] != "":
		body = cli.FormatError(m.errors[sectionExpenses])
	case len(m.expenses) == 0:
		body = cli.SubtleStyle.Render("No expenses found for this month")
	default:
		total := cli.BoldStyle.Render(fmt.Sprintf("Total: %.2f", model.TotalAmount(m.expenses)))
		body = lipgloss.JoinVertical(lipgloss.Left, m.expenseTable.View(), total)
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
}

func (m Model) statusLine() string {
	if m.status != "" {
		return cli.FormatSuccess(m.status)
	}
	return ""
}
