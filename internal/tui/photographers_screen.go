package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/marta/studiobook/internal/app"
	"github.com/marta/studiobook/internal/domain"
)

type photographerMode int

const (
	photographerModeList photographerMode = iota
	photographerModeNew
)

const (
	photographerFieldID = iota
	photographerFieldName
	photographerFieldPhone
	photographerFieldEmail
	photographerFieldYears
	photographerFieldSpecialization
	photographerFieldRate
	photographerFieldCount
)

// photographersModel displays a navigable list of photographers with a
// create form
type photographersModel struct {
	app    *app.App
	items  []*domain.Photographer
	cursor int

	filter     textinput.Model
	filtering  bool
	filterText string

	mode       photographerMode
	fields     []textinput.Model
	fieldFocus int
	formErr    string
}

func newPhotographersModel(a *app.App) tea.Model {
	m := &photographersModel{
		app:    a,
		filter: newField("name contains...", 30, 50),
	}
	m.reload()
	return m
}

func (m *photographersModel) IsCapturingInput() bool {
	return m.mode == photographerModeNew || m.filtering
}

func (m *photographersModel) Init() tea.Cmd {
	return nil
}

func (m *photographersModel) reload() {
	m.items = m.app.Catalog.FindPhotographersByName(m.filterText)
	if m.cursor >= len(m.items) {
		m.cursor = max(0, len(m.items)-1)
	}
}

func (m *photographersModel) initForm() {
	m.fields = make([]textinput.Model, photographerFieldCount)
	m.fields[photographerFieldID] = newField("id (positive number)", 15, 10)
	m.fields[photographerFieldName] = newField("Photographer name", 40, 100)
	m.fields[photographerFieldPhone] = newField("+1 555 0100", 20, 30)
	m.fields[photographerFieldEmail] = newField("email@example.com", 40, 100)
	m.fields[photographerFieldYears] = newField("0", 10, 5)
	m.fields[photographerFieldSpecialization] = newField("portrait, wedding, studio...", 40, 100)
	m.fields[photographerFieldRate] = newField("1000.00", 15, 15)

	m.fieldFocus = photographerFieldID
	m.fields[photographerFieldID].Focus()
	m.formErr = ""
}

func (m *photographersModel) submitForm() tea.Cmd {
	id, err := strconv.Atoi(strings.TrimSpace(m.fields[photographerFieldID].Value()))
	if err != nil {
		m.formErr = fmt.Sprintf("invalid id: %s", m.fields[photographerFieldID].Value())
		return nil
	}

	years := 0
	if v := strings.TrimSpace(m.fields[photographerFieldYears].Value()); v != "" {
		years, err = strconv.Atoi(v)
		if err != nil {
			m.formErr = fmt.Sprintf("invalid experience years: %s", v)
			return nil
		}
	}

	rate := decimal.Zero
	if v := strings.TrimSpace(m.fields[photographerFieldRate].Value()); v != "" {
		rate, err = decimal.NewFromString(v)
		if err != nil {
			m.formErr = fmt.Sprintf("invalid hourly rate: %s", v)
			return nil
		}
	}

	p, err := domain.NewPhotographer(id,
		m.fields[photographerFieldName].Value(),
		m.fields[photographerFieldPhone].Value(),
		m.fields[photographerFieldEmail].Value(),
		years,
		m.fields[photographerFieldSpecialization].Value(),
		rate,
	)
	if err != nil {
		m.formErr = err.Error()
		return nil
	}

	if err := m.app.Catalog.AddPhotographer(p); err != nil {
		m.formErr = err.Error()
		return nil
	}

	m.mode = photographerModeList
	m.reload()
	name := p.Name
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Photographer %q added", name)}
	}
}

func (m *photographersModel) deleteSelected() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	id := m.items[m.cursor].ID
	if err := m.app.Catalog.RemovePhotographer(id); err != nil {
		return func() tea.Msg { return statusMsg{text: err.Error(), isErr: true} }
	}
	m.reload()
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Photographer %d removed", id)}
	}
}

func (m *photographersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		if m.mode == photographerModeNew {
			return m.updateForm(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.New):
			m.mode = photographerModeNew
			m.initForm()
			return m, textinput.Blink
		case key.Matches(msg, DefaultKeyMap.Delete):
			return m, m.deleteSelected()
		case key.Matches(msg, DefaultKeyMap.Filter):
			m.filtering = true
			m.filter.SetValue(m.filterText)
			return m, m.filter.Focus()
		}
	}

	return m, nil
}

func (m *photographersModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, DefaultKeyMap.Select):
		m.filterText = m.filter.Value()
		m.filtering = false
		m.filter.Blur()
		m.reload()
		return m, nil
	case msg.String() == "esc":
		m.filtering = false
		m.filterText = ""
		m.filter.Blur()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m *photographersModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		m.mode = photographerModeList
		return m, nil
	case key.Matches(msg, DefaultKeyMap.Select):
		if m.fieldFocus == photographerFieldCount-1 {
			return m, m.submitForm()
		}
		m.fieldFocus = moveFocus(m.fields, m.fieldFocus, 1)
		return m, nil
	case msg.String() == "tab" || msg.String() == "down":
		m.fieldFocus = moveFocus(m.fields, m.fieldFocus, 1)
		return m, nil
	case msg.String() == "shift+tab" || msg.String() == "up":
		m.fieldFocus = moveFocus(m.fields, m.fieldFocus, -1)
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *photographersModel) View() string {
	if m.mode == photographerModeNew {
		return m.formView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Photographers"))
	b.WriteString("\n\n")

	if m.filtering {
		b.WriteString("Filter: " + m.filter.View() + "\n\n")
	} else if m.filterText != "" {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Filter: %q (esc in filter to clear)", m.filterText)))
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString(subtitleStyle.Render("No photographers. Press [n] to add one."))
		return b.String()
	}

	for i, p := range m.items {
		line := fmt.Sprintf("%-5d %-28s %-20s %2d yr  %s/h",
			p.ID, truncateStr(p.Name, 28), truncateStr(p.Specialization, 20),
			p.ExperienceYears, p.RatePerHour.StringFixed(2))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("[n] new  [d] delete  [/] filter  [↑/↓] move"))
	return b.String()
}

func (m *photographersModel) formView() string {
	labels := []string{"ID", "Name", "Phone", "Email", "Experience", "Specialization", "Rate per hour"}

	var b strings.Builder
	b.WriteString(titleStyle.Render("New photographer"))
	b.WriteString("\n\n")
	for i, f := range m.fields {
		b.WriteString(fmt.Sprintf("%-15s %s\n", labels[i]+":", f.View()))
	}
	if m.formErr != "" {
		b.WriteString("\n" + errStyle.Render(m.formErr))
	}
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("[enter] next/save  [tab] next field  [esc] cancel"))
	return b.String()
}
