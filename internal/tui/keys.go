package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Navigation
	Clients       key.Binding
	Photographers key.Binding
	Equipment     key.Binding
	Sessions      key.Binding
	Save          key.Binding
	Load          key.Binding

	// Actions
	Select key.Binding
	New    key.Binding
	Delete key.Binding
	Filter key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Clients:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clients")),
	Photographers: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "photographers")),
	Equipment:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "equipment")),
	Sessions:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sessions")),
	Save:          key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "save")),
	Load:          key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "load")),
	Select:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	New:           key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Delete:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Filter:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
}
