package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// truncateStr truncates a string to the specified length with ellipsis
func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// newField builds a form text input with common settings.
func newField(placeholder string, width, charLimit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = width
	ti.CharLimit = charLimit
	return ti
}

// moveFocus shifts focus between form fields, wrapping around.
func moveFocus(fields []textinput.Model, focus, delta int) int {
	fields[focus].Blur()
	focus = (focus + delta + len(fields)) % len(fields)
	fields[focus].Focus()
	return focus
}

// parseIDList parses a comma-separated id list; blank input means none.
func parseIDList(csv string) ([]int, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil, nil
	}

	var ids []int
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid equipment ID %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
