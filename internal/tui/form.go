package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AmalFalah/expense-tracker/internal/api"
	"github.com/AmalFalah/expense-tracker/internal/model"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form field order, top to bottom.
const (
	fieldCategory = iota
	fieldAmount
	fieldDescription
	fieldDate
	fieldCount
)

var fieldLabels = [fieldCount]string{"Category", "Amount", "Description", "Date"}

// FormModel is the add-expense form: category, amount, optional description,
// and date. Category accepts either a name from the fetched list or a raw id.
type FormModel struct {
	categories []model.Category
	inputs     []textinput.Model
	focus      int
}

// NewFormModel creates the form with today's date prefilled.
func NewFormModel() FormModel {
	inputs := make([]textinput.Model, fieldCount)

	category := textinput.New()
	category.Placeholder = "e.g. Food"
	category.CharLimit = 64
	category.Width = 24
	inputs[fieldCategory] = category

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 16
	amount.Width = 24
	inputs[fieldAmount] = amount

	description := textinput.New()
	description.Placeholder = "(optional)"
	description.CharLimit = 200
	description.Width = 24
	inputs[fieldDescription] = description

	date := textinput.New()
	date.Placeholder = model.DateFormat
	date.CharLimit = 10
	date.Width = 24
	date.SetValue(time.Now().Format(model.DateFormat))
	inputs[fieldDate] = date

	m := FormModel{inputs: inputs}
	m.inputs[fieldCategory].Focus()
	return m
}

// SetCategories installs the fetched category list used to resolve names.
func (m *FormModel) SetCategories(categories []model.Category) {
	m.categories = categories
}

// Update delegates keystrokes to the focused input.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// Next moves focus to the following field, wrapping around.
func (m FormModel) Next() (FormModel, tea.Cmd) {
	return m.setFocus((m.focus + 1) % fieldCount)
}

// Prev moves focus to the preceding field, wrapping around.
func (m FormModel) Prev() (FormModel, tea.Cmd) {
	return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
}

func (m FormModel) setFocus(index int) (FormModel, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = index
	return m, m.inputs[m.focus].Focus()
}

// Input assembles the create-expense request from the current field values.
func (m FormModel) Input() (api.ExpenseInput, error) {
	categoryID, err := m.resolveCategory(m.inputs[fieldCategory].Value())
	if err != nil {
		return api.ExpenseInput{}, err
	}

	rawAmount := strings.TrimSpace(m.inputs[fieldAmount].Value())
	amount, err := strconv.ParseFloat(strings.ReplaceAll(rawAmount, ",", "."), 64)
	if err != nil {
		return api.ExpenseInput{}, fmt.Errorf("amount %q is not a number", rawAmount)
	}

	date := strings.TrimSpace(m.inputs[fieldDate].Value())
	if date == "" {
		date = time.Now().Format(model.DateFormat)
	}

	in := api.ExpenseInput{
		CategoryID:  categoryID,
		Amount:      amount,
		Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
		ExpenseDate: date,
	}

	if err := in.Validate(); err != nil {
		return api.ExpenseInput{}, err
	}

	return in, nil
}

// resolveCategory matches a field value against the fetched list, by name
// (case-insensitive) first and by id as a fallback.
func (m FormModel) resolveCategory(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("a category is required")
	}

	for _, c := range m.categories {
		if strings.EqualFold(c.Name, value) {
			return c.ID, nil
		}
	}

	if id, err := strconv.Atoi(value); err == nil {
		for _, c := range m.categories {
			if c.ID == id {
				return id, nil
			}
		}
	}

	return 0, fmt.Errorf("unknown category %q", value)
}

// Reset clears the form back to its post-submit state: empty fields with
// today's date prefilled. Focus returns to the category field.
func (m FormModel) Reset() (FormModel, tea.Cmd) {
	m.inputs[fieldCategory].SetValue("")
	m.inputs[fieldAmount].SetValue("")
	m.inputs[fieldDescription].SetValue("")
	m.inputs[fieldDate].SetValue(time.Now().Format(model.DateFormat))
	return m.setFocus(fieldCategory)
}

// View renders the labeled fields.
func (m FormModel) View() string {
	lines := make([]string, 0, fieldCount)
	for i, input := range m.inputs {
		label := labelStyle.Render(fieldLabels[i])
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, input.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
