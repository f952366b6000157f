package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // string for text fields, []string for starter lists
	Label() string // Display label for the field
}

// keyCapturer is an optional interface for fields that temporarily own keys
// the dialog normally handles (enter, esc, tab).
type keyCapturer interface {
	CapturesKey(key string) bool
}

// validator is an optional interface for fields that can block submission.
type validator interface {
	Validate() string
}
