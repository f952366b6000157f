package form

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/starters/internal/core/starters"
	"github.com/colonyops/starters/pkg/tuitest"
)

var testLabels = StarterListLabels{
	Title:       "Conversation Starters",
	Placeholder: "Add a conversation starter",
	Delete:      "Delete",
	HelpEdit:    "ctrl+g: grab",
	HelpDrag:    "enter: drop",
}

func newFocusedStarterField(t *testing.T, initial []string) *StarterListField {
	t.Helper()
	f := NewStarterListField(testLabels, initial, starters.DefaultLimits(), zerolog.Nop())
	f.Focus()
	return f
}

func send(f *StarterListField, msgs ...tea.Msg) {
	for _, msg := range msgs {
		f.Update(msg)
	}
}

func TestStarterListField(t *testing.T) {
	t.Run("empty initial value gets placeholder", func(t *testing.T) {
		f := NewStarterListField(testLabels, nil, starters.DefaultLimits(), zerolog.Nop())
		assert.Equal(t, []string{""}, f.Starters())
		assert.Equal(t, "Conversation Starters", f.Label())
		assert.False(t, f.Focused())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewStarterListField(testLabels, nil, starters.DefaultLimits(), zerolog.Nop())
		field, cmd := f.Update(tuitest.KeyPress('a'))
		assert.Nil(t, cmd)
		assert.Equal(t, []string{""}, field.Value())
	})

	t.Run("typing grows the list", func(t *testing.T) {
		f := newFocusedStarterField(t, nil)

		send(f, tuitest.Type("Hi")...)
		assert.Equal(t, []string{"Hi", ""}, f.Starters())

		send(f, tuitest.KeyDown())
		assert.Equal(t, 1, f.Row())

		send(f, tuitest.Type("Yo")...)
		assert.Equal(t, []string{"Hi", "Yo", ""}, f.Starters())
	})

	t.Run("typing stops growing at cap", func(t *testing.T) {
		limits := starters.Limits{MaxStarters: 2, MaxLength: 64}
		f := NewStarterListField(testLabels, []string{"one", ""}, limits, zerolog.Nop())
		f.Focus()

		send(f, tuitest.KeyDown())
		send(f, tuitest.Type("two")...)
		assert.Equal(t, []string{"one", "two"}, f.Starters())
	})

	t.Run("input is limited to max length", func(t *testing.T) {
		limits := starters.Limits{MaxStarters: 4, MaxLength: 3}
		f := NewStarterListField(testLabels, nil, limits, zerolog.Nop())
		f.Focus()

		send(f, tuitest.Type("abcdef")...)
		assert.Equal(t, "abc", f.Starters()[0])
	})

	t.Run("leaving a blank middle row removes it", func(t *testing.T) {
		f := newFocusedStarterField(t, []string{"A", "B", ""})

		// clear A
		send(f, tuitest.KeyBackspace())
		assert.Equal(t, []string{"", "B", ""}, f.Starters())

		send(f, tuitest.KeyDown())
		assert.Equal(t, []string{"B", ""}, f.Starters())
		assert.Equal(t, 0, f.Row(), "cursor stays on the row that moved up")
	})

	t.Run("leaving the trailing blank row keeps it", func(t *testing.T) {
		f := newFocusedStarterField(t, []string{"A", ""})

		send(f, tuitest.KeyDown(), tuitest.KeyUp())
		assert.Equal(t, []string{"A", ""}, f.Starters())
		assert.Equal(t, 0, f.Row())
	})

	t.Run("ctrl+d deletes populated rows only", func(t *testing.T) {
		f := newFocusedStarterField(t, []string{"A", "B", ""})

		send(f, tuitest.KeyCtrl('d'))
		assert.Equal(t, []string{"B", ""}, f.Starters())

		send(f, tuitest.KeyDown(), tuitest.KeyCtrl('d'))
		assert.Equal(t, []string{"B", ""}, f.Starters())
	})

	t.Run("deleting last populated row leaves placeholder", func(t *testing.T) {
		f := newFocusedStarterField(t, []string{"only"})

		send(f, tuitest.KeyCtrl('d'))
		assert.Equal(t, []string{""}, f.Starters())
		assert.Equal(t, 0, f.Row())
	})

	t.Run("grab move and drop reorders", func(t *testing.T) {
		f := newFocusedStarterField(t, []string{"A", "B", "C", ""})

		send(f, tuitest.KeyCtrl('g'))
		require.True(t, f.Dragging())
		assert.True(t, f.CapturesKey("enter"))

		send(f, tuitest.KeyDown(), tuitest.KeyDown())
		assert.Equal(t, []string{"A", "B", "C", ""}, f.Starters(), "list untouched until drop")

		send(f, tuitest.KeyEnter())
		assert.Equal(t, []string{"B", "C", "A", ""}, f.Starters())
		assert.Equal(t, 2, f.Row())
		assert.False(t, f.Dragging())
		assert.False(t, f.CapturesKey("enter"))
	})

	t.Run("grab then esc leaves list unchanged", func(t *testing.T) {
		f := newFocusedStarterField(t, []string{"A", "B"})

		send(f, tuitest.KeyCtrl('g'), tuitest.KeyDown(), tuitest.KeyEsc())
		assert.Equal(t, []string{"A", "B"}, f.Starters())
		assert.False(t, f.Dragging())
	})

	t.Run("hover stays within bounds", func(t *testing.T) {
		f := newFocusedStarterField(t, []string{"A", "B"})

		send(f, tuitest.KeyCtrl('g'), tuitest.KeyUp(), tuitest.KeyUp(), tuitest.KeyEnter())
		assert.Equal(t, []string{"A", "B"}, f.Starters())
	})

	t.Run("blur ends a drag session", func(t *testing.T) {
		f := newFocusedStarterField(t, []string{"A", "B"})

		send(f, tuitest.KeyCtrl('g'), tuitest.KeyDown())
		f.Blur()

		assert.False(t, f.Dragging())
		assert.Equal(t, []string{"A", "B"}, f.Starters())
	})

	t.Run("blur cleans up blank current row", func(t *testing.T) {
		f := newFocusedStarterField(t, []string{"", "A", ""})

		f.Blur()
		assert.Equal(t, []string{"A", ""}, f.Starters())
	})

	t.Run("set value re-initializes empty list", func(t *testing.T) {
		f := newFocusedStarterField(t, []string{"A", "B", ""})
		send(f, tuitest.KeyDown(), tuitest.KeyDown())

		f.SetValue(nil)
		assert.Equal(t, []string{""}, f.Starters())
		assert.Equal(t, 0, f.Row())
	})

	t.Run("view shows preview while dragging", func(t *testing.T) {
		f := newFocusedStarterField(t, []string{"Alpha", "Beta"})

		send(f, tuitest.KeyCtrl('g'), tuitest.KeyDown())
		view := tuitest.StripANSI(f.View())

		assert.Contains(t, view, "Conversation Starters (2/4)")
		assert.Contains(t, view, "Add a conversation starter", "origin row renders as empty slot")
		assert.Contains(t, view, "Alpha")
		assert.NotContains(t, view, "Beta", "hovered row shows the dragged starter")
		assert.Contains(t, view, "enter: drop")
	})

	t.Run("view changes with focus", func(t *testing.T) {
		f := NewStarterListField(testLabels, []string{"A"}, starters.DefaultLimits(), zerolog.Nop())
		unfocused := f.View()

		f.Focus()
		focused := f.View()

		assert.NotEqual(t, unfocused, focused)
		assert.Contains(t, tuitest.StripANSI(focused), "ctrl+g: grab")
	})
}

func TestStarterListField_CustomKeyMap(t *testing.T) {
	keys := DefaultStarterListKeyMap()
	keys.Grab = key.NewBinding(key.WithKeys("ctrl+o"))
	keys.Drop = key.NewBinding(key.WithKeys("space"))

	f := newFocusedStarterField(t, []string{"A", "B", ""}).WithKeyMap(keys)

	send(f, tuitest.KeyCtrl('g'))
	assert.False(t, f.Dragging(), "default grab key no longer bound")

	send(f, tuitest.KeyCtrl('o'))
	require.True(t, f.Dragging())
	assert.True(t, f.CapturesKey("space"))
	assert.False(t, f.CapturesKey("enter"))

	send(f, tuitest.KeyDown(), tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "}))
	assert.Equal(t, []string{"B", "A", ""}, f.Starters())
}
