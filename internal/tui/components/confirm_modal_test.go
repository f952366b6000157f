package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/starters/pkg/tuitest"
)

func TestConfirmModal(t *testing.T) {
	tests := []struct {
		name          string
		key           tea.Msg
		wantConfirmed bool
		wantCancelled bool
	}{
		{"y confirms", tuitest.KeyPress('y'), true, false},
		{"Y confirms", tuitest.KeyPress('Y'), true, false},
		{"enter confirms", tuitest.KeyEnter(), true, false},
		{"n cancels", tuitest.KeyPress('n'), false, true},
		{"esc cancels", tuitest.KeyEsc(), false, true},
		{"other keys ignored", tuitest.KeyPress('x'), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewConfirmModal("Discard changes?", "Continue? (y/n)")
			m, cmd := m.Update(tt.key)

			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantConfirmed, m.Confirmed())
			assert.Equal(t, tt.wantCancelled, m.Cancelled())
		})
	}
}

func TestConfirmModal_View(t *testing.T) {
	m := NewConfirmModal("Discard unsaved changes?", "Continue? (y/n)")
	view := tuitest.StripANSI(m.View())

	assert.Contains(t, view, "Discard unsaved changes?")
	assert.Contains(t, view, "Continue? (y/n)")
}
