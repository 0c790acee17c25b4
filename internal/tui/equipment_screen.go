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

type equipmentMode int

const (
	equipmentModeList equipmentMode = iota
	equipmentModeNew
)

const (
	equipmentFieldID = iota
	equipmentFieldName
	equipmentFieldType
	equipmentFieldAvailable
	equipmentFieldPrice
	equipmentFieldCount
)

// equipmentModel displays a navigable list of equipment with a create form
type equipmentModel struct {
	app    *app.App
	items  []*domain.Equipment
	cursor int

	filter     textinput.Model
	filtering  bool
	filterText string

	mode       equipmentMode
	fields     []textinput.Model
	fieldFocus int
	formErr    string
}

func newEquipmentModel(a *app.App) tea.Model {
	m := &equipmentModel{
		app:    a,
		filter: newField("name contains...", 30, 50),
	}
	m.reload()
	return m
}

func (m *equipmentModel) IsCapturingInput() bool {
	return m.mode == equipmentModeNew || m.filtering
}

func (m *equipmentModel) Init() tea.Cmd {
	return nil
}

func (m *equipmentModel) reload() {
	m.items = m.app.Catalog.FindEquipmentByName(m.filterText)
	if m.cursor >= len(m.items) {
		m.cursor = max(0, len(m.items)-1)
	}
}

func (m *equipmentModel) initForm() {
	m.fields = make([]textinput.Model, equipmentFieldCount)
	m.fields[equipmentFieldID] = newField("id (positive number)", 15, 10)
	m.fields[equipmentFieldName] = newField("Equipment name", 40, 100)
	m.fields[equipmentFieldType] = newField("camera, lens, flash...", 25, 50)
	m.fields[equipmentFieldAvailable] = newField("y/n", 5, 3)
	m.fields[equipmentFieldPrice] = newField("200.00", 15, 15)

	m.fieldFocus = equipmentFieldID
	m.fields[equipmentFieldID].Focus()
	m.formErr = ""
}

func (m *equipmentModel) submitForm() tea.Cmd {
	id, err := strconv.Atoi(strings.TrimSpace(m.fields[equipmentFieldID].Value()))
	if err != nil {
		m.formErr = fmt.Sprintf("invalid id: %s", m.fields[equipmentFieldID].Value())
		return nil
	}

	available := true
	switch strings.ToLower(strings.TrimSpace(m.fields[equipmentFieldAvailable].Value())) {
	case "", "y", "yes":
	case "n", "no":
		available = false
	default:
		m.formErr = fmt.Sprintf("invalid availability (y/n): %s", m.fields[equipmentFieldAvailable].Value())
		return nil
	}

	price := decimal.Zero
	if v := strings.TrimSpace(m.fields[equipmentFieldPrice].Value()); v != "" {
		price, err = decimal.NewFromString(v)
		if err != nil {
			m.formErr = fmt.Sprintf("invalid price: %s", v)
			return nil
		}
	}

	e, err := domain.NewEquipment(id,
		m.fields[equipmentFieldName].Value(),
		m.fields[equipmentFieldType].Value(),
		available,
		price,
	)
	if err != nil {
		m.formErr = err.Error()
		return nil
	}

	if err := m.app.Catalog.AddEquipment(e); err != nil {
		m.formErr = err.Error()
		return nil
	}

	m.mode = equipmentModeList
	m.reload()
	name := e.Name
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Equipment %q added", name)}
	}
}

func (m *equipmentModel) deleteSelected() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	id := m.items[m.cursor].ID
	if err := m.app.Catalog.RemoveEquipment(id); err != nil {
		return func() tea.Msg { return statusMsg{text: err.Error(), isErr: true} }
	}
	m.reload()
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Equipment %d removed", id)}
	}
}

func (m *equipmentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		if m.mode == equipmentModeNew {
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
			m.mode = equipmentModeNew
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

func (m *equipmentModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

func (m *equipmentModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		m.mode = equipmentModeList
		return m, nil
	case key.Matches(msg, DefaultKeyMap.Select):
		if m.fieldFocus == equipmentFieldCount-1 {
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

func (m *equipmentModel) View() string {
	if m.mode == equipmentModeNew {
		return m.formView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Equipment"))
	b.WriteString("\n\n")

	if m.filtering {
		b.WriteString("Filter: " + m.filter.View() + "\n\n")
	} else if m.filterText != "" {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Filter: %q (esc in filter to clear)", m.filterText)))
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString(subtitleStyle.Render("No equipment. Press [n] to add some."))
		return b.String()
	}

	for i, e := range m.items {
		avail := "available"
		if !e.IsAvailable {
			avail = "unavailable"
		}
		line := fmt.Sprintf("%-5d %-28s %-15s %-12s %s/h",
			e.ID, truncateStr(e.Name, 28), truncateStr(e.Type, 15), avail, e.PricePerHour.StringFixed(2))
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

func (m *equipmentModel) formView() string {
	labels := []string{"ID", "Name", "Type", "Available", "Price per hour"}

	var b strings.Builder
	b.WriteString(titleStyle.Render("New equipment"))
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
