package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marta/studiobook/internal/app"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenClients Screen = iota
	ScreenPhotographers
	ScreenEquipment
	ScreenSessions
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenClients:
		return "Clients"
	case ScreenPhotographers:
		return "Photographers"
	case ScreenEquipment:
		return "Equipment"
	case ScreenSessions:
		return "Sessions"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	app           *app.App
	currentScreen Screen
	width         int
	height        int

	// Screen models (lazy initialized)
	clients       tea.Model
	photographers tea.Model
	equipment     tea.Model
	sessions      tea.Model

	// Status bar state
	status    string
	statusErr bool
}

// New creates a new root model
func New(a *app.App) Model {
	return Model{
		app:           a,
		currentScreen: ScreenClients,
		clients:       newClientsModel(a),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// initScreen lazy-initializes a screen on first visit, and sends a
// RefreshDataMsg on subsequent visits so screens reload data.
func (m *Model) initScreen(screen Screen) tea.Cmd {
	refresh := func() tea.Msg { return RefreshDataMsg{} }
	switch screen {
	case ScreenClients:
		if m.clients == nil {
			m.clients = newClientsModel(m.app)
			return m.clients.Init()
		}
	case ScreenPhotographers:
		if m.photographers == nil {
			m.photographers = newPhotographersModel(m.app)
			return m.photographers.Init()
		}
	case ScreenEquipment:
		if m.equipment == nil {
			m.equipment = newEquipmentModel(m.app)
			return m.equipment.Init()
		}
	case ScreenSessions:
		if m.sessions == nil {
			m.sessions = newSessionsModel(m.app)
			return m.sessions.Init()
		}
	}
	return refresh
}

// InputCapturer is implemented by screens that capture keyboard input
// (text forms and filters). When active, global navigation keys are
// suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

// activeScreen returns the model for the current screen
func (m *Model) activeScreen() tea.Model {
	switch m.currentScreen {
	case ScreenClients:
		return m.clients
	case ScreenPhotographers:
		return m.photographers
	case ScreenEquipment:
		return m.equipment
	case ScreenSessions:
		return m.sessions
	}
	return nil
}

func (m *Model) activeScreenCapturingInput() bool {
	if ic, ok := m.activeScreen().(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Clear the status line on any keypress
		m.status = ""
		m.statusErr = false

		// Skip global navigation when a screen is capturing text input
		if !m.activeScreenCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return m, tea.Quit

			case key.Matches(msg, DefaultKeyMap.Clients):
				m.currentScreen = ScreenClients
				return m, m.initScreen(ScreenClients)

			case key.Matches(msg, DefaultKeyMap.Photographers):
				m.currentScreen = ScreenPhotographers
				return m, m.initScreen(ScreenPhotographers)

			case key.Matches(msg, DefaultKeyMap.Equipment):
				m.currentScreen = ScreenEquipment
				return m, m.initScreen(ScreenEquipment)

			case key.Matches(msg, DefaultKeyMap.Sessions):
				m.currentScreen = ScreenSessions
				return m, m.initScreen(ScreenSessions)

			case key.Matches(msg, DefaultKeyMap.Save):
				path, ok := m.app.Save("")
				if ok {
					m.status = fmt.Sprintf("Data saved to %s", path)
				} else {
					m.status = fmt.Sprintf("Could not save data to %s", path)
					m.statusErr = true
				}
				return m, nil

			case key.Matches(msg, DefaultKeyMap.Load):
				path := m.app.Load("")
				m.status = fmt.Sprintf("Data loaded from %s", path)
				// Loaded state replaces everything; the current screen
				// must re-read the catalog.
				return m, func() tea.Msg { return RefreshDataMsg{} }
			}
		}

	case statusMsg:
		m.status = msg.text
		m.statusErr = msg.isErr
		return m, nil
	}

	// Route message to current screen
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenClients:
		if m.clients != nil {
			m.clients, cmd = m.clients.Update(msg)
		}
	case ScreenPhotographers:
		if m.photographers != nil {
			m.photographers, cmd = m.photographers.Update(msg)
		}
	case ScreenEquipment:
		if m.equipment != nil {
			m.equipment, cmd = m.equipment.Update(msg)
		}
	case ScreenSessions:
		if m.sessions != nil {
			m.sessions, cmd = m.sessions.Update(msg)
		}
	}

	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	clients, photographers, equipment, sessions := m.app.Catalog.Counts()
	header := headerStyle.Render(fmt.Sprintf("studiobook - %s", m.currentScreen.String())) +
		subtitleStyle.Render(fmt.Sprintf("  %d clients · %d photographers · %d equipment · %d sessions",
			clients, photographers, equipment, sessions))

	footer := footerStyle.Render("[C]lients  [P]hotographers  [E]quipment  [S]essions  sa[V]e  [L]oad  [Q]uit")

	content := "Loading..."
	if screen := m.activeScreen(); screen != nil {
		content = screen.View()
	}

	statusLine := ""
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errStyle
		}
		statusLine = style.Render("\n" + m.status)
	}

	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, statusLine, divider, footer)

	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
