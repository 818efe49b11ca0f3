package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// Filter is a one-line text input that narrows a list by substring.
type Filter struct {
	Model textinput.Model
}

// NewFilter creates an unfocused filter input.
func NewFilter(placeholder string, charLimit int) Filter {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return Filter{Model: ti}
}

// Focus starts editing.
func (f *Filter) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur stops editing and keeps the current value.
func (f *Filter) Blur() {
	f.Model.Blur()
}

// Focused reports whether keys are going to the input.
func (f Filter) Focused() bool {
	return f.Model.Focused()
}

// Clear empties the input.
func (f *Filter) Clear() {
	f.Model.SetValue("")
}

// Update forwards messages to the input.
func (f Filter) Update(msg tea.Msg) (Filter, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input.
func (f Filter) View() string {
	return f.Model.View()
}

// Value returns the current filter text.
func (f Filter) Value() string {
	return f.Model.Value()
}

// Match reports whether s contains the filter text, ignoring case. An
// empty filter matches everything.
func (f Filter) Match(s string) bool {
	q := strings.TrimSpace(f.Model.Value())
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}
