package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marta/studiobook/internal/app"
	"github.com/marta/studiobook/internal/domain"
)

// clientMode represents the current screen mode
type clientMode int

const (
	clientModeList clientMode = iota
	clientModeNew
)

// form field indices
const (
	clientFieldID = iota
	clientFieldName
	clientFieldPhone
	clientFieldEmail
	clientFieldLoyalty
	clientFieldNotes
	clientFieldCount
)

// clientsModel displays a navigable list of clients with a create form
type clientsModel struct {
	app    *app.App
	items  []*domain.Client
	cursor int

	// Filter state
	filter     textinput.Model
	filtering  bool
	filterText string

	// Form state
	mode       clientMode
	fields     []textinput.Model
	fieldFocus int
	formErr    string
}

func newClientsModel(a *app.App) tea.Model {
	m := &clientsModel{
		app:    a,
		filter: newField("name contains...", 30, 50),
	}
	m.reload()
	return m
}

// IsCapturingInput returns true when the form or filter is active
func (m *clientsModel) IsCapturingInput() bool {
	return m.mode == clientModeNew || m.filtering
}

func (m *clientsModel) Init() tea.Cmd {
	return nil
}

// reload re-reads the catalog through the name filter. An empty filter
// matches every client.
func (m *clientsModel) reload() {
	m.items = m.app.Catalog.FindClientsByName(m.filterText)
	if m.cursor >= len(m.items) {
		m.cursor = max(0, len(m.items)-1)
	}
}

func (m *clientsModel) initForm() {
	m.fields = make([]textinput.Model, clientFieldCount)
	m.fields[clientFieldID] = newField("id (positive number)", 15, 10)
	m.fields[clientFieldName] = newField("Client name", 40, 100)
	m.fields[clientFieldPhone] = newField("+1 555 0100", 20, 30)
	m.fields[clientFieldEmail] = newField("email@example.com", 40, 100)
	m.fields[clientFieldLoyalty] = newField("0", 10, 5)
	m.fields[clientFieldNotes] = newField("Optional notes", 50, 200)

	m.fieldFocus = clientFieldID
	m.fields[clientFieldID].Focus()
	m.formErr = ""
}

func (m *clientsModel) submitForm() tea.Cmd {
	id, err := strconv.Atoi(strings.TrimSpace(m.fields[clientFieldID].Value()))
	if err != nil {
		m.formErr = fmt.Sprintf("invalid id: %s", m.fields[clientFieldID].Value())
		return nil
	}

	loyalty := 0
	if v := strings.TrimSpace(m.fields[clientFieldLoyalty].Value()); v != "" {
		loyalty, err = strconv.Atoi(v)
		if err != nil {
			m.formErr = fmt.Sprintf("invalid loyalty level: %s", v)
			return nil
		}
	}

	client, err := domain.NewClient(id,
		m.fields[clientFieldName].Value(),
		m.fields[clientFieldPhone].Value(),
		m.fields[clientFieldEmail].Value(),
		loyalty,
		m.fields[clientFieldNotes].Value(),
	)
	if err != nil {
		m.formErr = err.Error()
		return nil
	}

	if err := m.app.Catalog.AddClient(client); err != nil {
		m.formErr = err.Error()
		return nil
	}

	m.mode = clientModeList
	m.reload()
	name := client.Name
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Client %q added", name)}
	}
}

func (m *clientsModel) deleteSelected() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	id := m.items[m.cursor].ID
	if err := m.app.Catalog.RemoveClient(id); err != nil {
		return func() tea.Msg { return statusMsg{text: err.Error(), isErr: true} }
	}
	m.reload()
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Client %d removed", id)}
	}
}

func (m *clientsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		if m.mode == clientModeNew {
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
			m.mode = clientModeNew
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

func (m *clientsModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

func (m *clientsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		m.mode = clientModeList
		return m, nil
	case key.Matches(msg, DefaultKeyMap.Select):
		if m.fieldFocus == clientFieldCount-1 {
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

func (m *clientsModel) View() string {
	if m.mode == clientModeNew {
		return m.formView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Clients"))
	b.WriteString("\n\n")

	if m.filtering {
		b.WriteString("Filter: " + m.filter.View() + "\n\n")
	} else if m.filterText != "" {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Filter: %q (esc in filter to clear)", m.filterText)))
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString(subtitleStyle.Render("No clients. Press [n] to add one."))
		return b.String()
	}

	for i, client := range m.items {
		line := fmt.Sprintf("%-5d %-28s loyalty %-3d %s",
			client.ID, truncateStr(client.Name, 28), client.LoyaltyLevel, truncateStr(client.Email, 25))
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

func (m *clientsModel) formView() string {
	labels := []string{"ID", "Name", "Phone", "Email", "Loyalty level", "Notes"}

	var b strings.Builder
	b.WriteString(titleStyle.Render("New client"))
	b.WriteString("\n\n")
	for i, f := range m.fields {
		b.WriteString(fmt.Sprintf("%-14s %s\n", labels[i]+":", f.View()))
	}
	if m.formErr != "" {
		b.WriteString("\n" + errStyle.Render(m.formErr))
	}
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("[enter] next/save  [tab] next field  [esc] cancel"))
	return b.String()
}
