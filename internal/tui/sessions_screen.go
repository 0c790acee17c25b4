package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marta/studiobook/internal/app"
	"github.com/marta/studiobook/internal/domain"
	"github.com/marta/studiobook/internal/service"
)

const sessionDateLayout = "2006-01-02 15:04"

type sessionMode int

const (
	sessionModeList sessionMode = iota
	sessionModeNew
	sessionModeConfirm
)

const (
	sessionFieldID = iota
	sessionFieldClient
	sessionFieldPhotographer
	sessionFieldEquipment
	sessionFieldDate
	sessionFieldDuration
	sessionFieldLocation
	sessionFieldCount
)

// sessionsModel displays sessions and drives the create workflow:
// form, price preview, confirm, commit.
type sessionsModel struct {
	app    *app.App
	items  []*domain.PhotoSession
	cursor int

	mode       sessionMode
	fields     []textinput.Model
	fieldFocus int
	formErr    string

	// Pending session awaiting confirmation
	pending      *domain.PhotoSession
	pendingQuote *service.SessionQuote
}

func newSessionsModel(a *app.App) tea.Model {
	m := &sessionsModel{app: a}
	m.reload()
	return m
}

func (m *sessionsModel) IsCapturingInput() bool {
	return m.mode == sessionModeNew || m.mode == sessionModeConfirm
}

func (m *sessionsModel) Init() tea.Cmd {
	return nil
}

func (m *sessionsModel) reload() {
	m.items = m.app.Catalog.Sessions()
	if m.cursor >= len(m.items) {
		m.cursor = max(0, len(m.items)-1)
	}
}

func (m *sessionsModel) initForm() {
	m.fields = make([]textinput.Model, sessionFieldCount)
	m.fields[sessionFieldID] = newField("session id", 15, 10)
	m.fields[sessionFieldClient] = newField("client id", 15, 10)
	m.fields[sessionFieldPhotographer] = newField("photographer id", 15, 10)
	m.fields[sessionFieldEquipment] = newField("equipment ids, comma-separated (optional)", 40, 100)
	m.fields[sessionFieldDate] = newField("2026-08-29 15:30", 20, 20)
	m.fields[sessionFieldDuration] = newField("minutes", 10, 6)
	m.fields[sessionFieldLocation] = newField("Studio A", 40, 100)

	m.fieldFocus = sessionFieldID
	m.fields[sessionFieldID].Focus()
	m.formErr = ""
	m.pending = nil
	m.pendingQuote = nil
}

// submitForm parses the form and builds a priced session. Success moves
// to the confirm step; nothing touches the catalog yet.
func (m *sessionsModel) submitForm() {
	intField := func(idx int, label string) (int, bool) {
		v, err := strconv.Atoi(strings.TrimSpace(m.fields[idx].Value()))
		if err != nil {
			m.formErr = fmt.Sprintf("invalid %s: %s", label, m.fields[idx].Value())
			return 0, false
		}
		return v, true
	}

	id, ok := intField(sessionFieldID, "session id")
	if !ok {
		return
	}
	clientID, ok := intField(sessionFieldClient, "client id")
	if !ok {
		return
	}
	photographerID, ok := intField(sessionFieldPhotographer, "photographer id")
	if !ok {
		return
	}

	equipmentIDs, err := parseIDList(m.fields[sessionFieldEquipment].Value())
	if err != nil {
		m.formErr = err.Error()
		return
	}

	date, err := time.Parse(sessionDateLayout, strings.TrimSpace(m.fields[sessionFieldDate].Value()))
	if err != nil {
		m.formErr = fmt.Sprintf("invalid date (expected %s): %s", sessionDateLayout, m.fields[sessionFieldDate].Value())
		return
	}

	duration := 0
	if v := strings.TrimSpace(m.fields[sessionFieldDuration].Value()); v != "" {
		duration, err = strconv.Atoi(v)
		if err != nil {
			m.formErr = fmt.Sprintf("invalid duration: %s", v)
			return
		}
	}

	session, quote, err := m.app.Sessions.Build(id, clientID, photographerID, equipmentIDs,
		date, duration, m.fields[sessionFieldLocation].Value())
	if err != nil {
		m.formErr = err.Error()
		return
	}

	m.pending = session
	m.pendingQuote = quote
	m.mode = sessionModeConfirm
}

// commitPending adds the confirmed session to the catalog.
func (m *sessionsModel) commitPending() tea.Cmd {
	if err := m.app.Catalog.AddSession(m.pending); err != nil {
		m.mode = sessionModeNew
		m.formErr = err.Error()
		return nil
	}
	id := m.pending.ID
	total := m.pending.TotalPrice.StringFixed(2)
	m.pending = nil
	m.pendingQuote = nil
	m.mode = sessionModeList
	m.reload()
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Session %d created, total %s", id, total)}
	}
}

func (m *sessionsModel) deleteSelected() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	id := m.items[m.cursor].ID
	if err := m.app.Catalog.RemoveSession(id); err != nil {
		return func() tea.Msg { return statusMsg{text: err.Error(), isErr: true} }
	}
	m.reload()
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Session %d removed", id)}
	}
}

func (m *sessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case sessionModeNew:
			return m.updateForm(msg)
		case sessionModeConfirm:
			return m.updateConfirm(msg)
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
			clients, photographers, _, _ := m.app.Catalog.Counts()
			if clients == 0 || photographers == 0 {
				return m, func() tea.Msg {
					return statusMsg{
						text:  "A session needs at least one client and one photographer in the catalog",
						isErr: true,
					}
				}
			}
			m.mode = sessionModeNew
			m.initForm()
			return m, textinput.Blink
		case key.Matches(msg, DefaultKeyMap.Delete):
			return m, m.deleteSelected()
		}
	}

	return m, nil
}

func (m *sessionsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		m.mode = sessionModeList
		return m, nil
	case key.Matches(msg, DefaultKeyMap.Select):
		if m.fieldFocus == sessionFieldCount-1 {
			m.submitForm()
			return m, nil
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

func (m *sessionsModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		return m, m.commitPending()
	case "n", "esc":
		m.pending = nil
		m.pendingQuote = nil
		m.mode = sessionModeNew
		return m, nil
	}
	return m, nil
}

func (m *sessionsModel) View() string {
	switch m.mode {
	case sessionModeNew:
		return m.formView()
	case sessionModeConfirm:
		return m.confirmView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sessions"))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(subtitleStyle.Render("No sessions. Press [n] to create one."))
		return b.String()
	}

	for i, s := range m.items {
		line := fmt.Sprintf("%-5d %s  %-20s with %-20s %4d min  %s",
			s.ID,
			s.Date.Format(sessionDateLayout),
			truncateStr(s.Client.Name, 20),
			truncateStr(s.Photographer.Name, 20),
			s.DurationMinutes,
			s.TotalPrice.StringFixed(2),
		)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("[n] new  [d] delete  [↑/↓] move"))
	return b.String()
}

func (m *sessionsModel) formView() string {
	labels := []string{"Session ID", "Client ID", "Photographer ID", "Equipment IDs", "Date", "Duration", "Location"}

	var b strings.Builder
	b.WriteString(titleStyle.Render("New session"))
	b.WriteString("\n\n")
	for i, f := range m.fields {
		b.WriteString(fmt.Sprintf("%-16s %s\n", labels[i]+":", f.View()))
	}
	if m.formErr != "" {
		b.WriteString("\n" + errStyle.Render(m.formErr))
	}
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("[enter] next/price  [tab] next field  [esc] cancel"))
	return b.String()
}

func (m *sessionsModel) confirmView() string {
	q := m.pendingQuote
	s := m.pending

	var b strings.Builder
	b.WriteString(titleStyle.Render("Confirm session"))
	b.WriteString("\n\n")
	b.WriteString(s.Summary())
	b.WriteString("\n\n")
	for _, skipped := range q.SkippedEquipment {
		b.WriteString(warnStyle.Render(fmt.Sprintf("Equipment %d not found, skipped", skipped)))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Photographer: %s  Equipment: %s  Total: %s\n",
		q.PhotographerCost.StringFixed(2),
		q.EquipmentCost.StringFixed(2),
		priceStyle.Render(q.Total.StringFixed(2)),
	))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("[y] create  [n/esc] back to form"))
	return b.String()
}
