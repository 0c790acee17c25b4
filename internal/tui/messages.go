package tui

// RefreshDataMsg tells the active screen to reload from the catalog,
// sent on screen switches and after a snapshot load replaces the data.
type RefreshDataMsg struct{}

// statusMsg carries a one-line operator message for the root status bar.
type statusMsg struct {
	text  string
	isErr bool
}
