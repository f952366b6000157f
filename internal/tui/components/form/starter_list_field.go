package form

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/starters/internal/core/starters"
	"github.com/colonyops/starters/internal/core/styles"
)

const (
	iconHandle = "⠿"
	iconDelete = "✕"
)

// StarterListLabels holds the user-facing strings of a StarterListField.
type StarterListLabels struct {
	Title       string
	Placeholder string
	Delete      string
	HelpEdit    string
	HelpDrag    string
}

// StarterListField edits an ordered list of conversation starters. The row
// under the cursor is edited in place; ctrl+g grabs a row so it can be moved
// with the arrow keys and dropped with enter.
type StarterListField struct {
	labels  StarterListLabels
	value   *starters.FieldValue
	editor  *starters.Editor
	input   textinput.Model
	keys    StarterListKeyMap
	row     int
	focused bool
}

// NewStarterListField creates a field bound to a copy of initial.
func NewStarterListField(labels StarterListLabels, initial []string, limits starters.Limits, logger zerolog.Logger) *StarterListField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = labels.Placeholder
	ti.CharLimit = limits.MaxLength
	ti.SetWidth(limits.MaxLength)

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = styles.StarterPlaceholderStyle
	inputStyles.Blurred.Placeholder = styles.StarterPlaceholderStyle
	ti.SetStyles(inputStyles)

	value := starters.NewFieldValue(initial)
	f := &StarterListField{
		labels: labels,
		value:  value,
		editor: starters.NewEditor(value, limits, logger),
		input:  ti,
		keys:   DefaultStarterListKeyMap(),
	}
	f.loadRow()
	return f
}

func (f *StarterListField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	}

	if f.editor.Dragging() {
		return f, f.updateDrag(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, f.keys.Up):
		f.moveRow(-1)
		return f, nil
	case key.Matches(keyMsg, f.keys.Down):
		f.moveRow(1)
		return f, nil
	case key.Matches(keyMsg, f.keys.Delete):
		f.deleteRow()
		return f, nil
	case key.Matches(keyMsg, f.keys.Grab):
		f.editor.DragStart(f.row)
		f.editor.DragOver(f.row)
		f.input.Blur()
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if text := f.input.Value(); text != f.list()[f.row] {
		f.editor.Edit(f.row, text)
	}
	return f, cmd
}

func (f *StarterListField) updateDrag(msg tea.KeyPressMsg) tea.Cmd {
	hover, _ := f.editor.DragHover()

	switch {
	case key.Matches(msg, f.keys.Up):
		if hover > 0 {
			f.editor.DragOver(hover - 1)
		}
	case key.Matches(msg, f.keys.Down):
		if hover < len(f.list())-1 {
			f.editor.DragOver(hover + 1)
		}
	case key.Matches(msg, f.keys.Drop):
		f.editor.Drop(hover)
		f.row = hover
		f.clampRow()
		f.loadRow()
		return f.input.Focus()
	case key.Matches(msg, f.keys.Cancel):
		f.editor.DragEnd()
		f.loadRow()
		return f.input.Focus()
	}
	return nil
}

// WithKeyMap replaces the default key bindings.
func (f *StarterListField) WithKeyMap(keys StarterListKeyMap) *StarterListField {
	f.keys = keys
	return f
}

// CapturesKey claims the dialog's navigation keys while a row is grabbed.
func (f *StarterListField) CapturesKey(k string) bool {
	if !f.editor.Dragging() {
		return false
	}
	switch k {
	case "tab", "shift+tab":
		return true
	}
	return slices.Contains(f.keys.Drop.Keys(), k) || slices.Contains(f.keys.Cancel.Keys(), k)
}

func (f *StarterListField) moveRow(delta int) {
	target := f.row + delta
	if target < 0 || target >= len(f.list()) {
		return
	}

	before := len(f.list())
	f.editor.Blur(f.row)
	if len(f.list()) < before && target > f.row {
		target--
	}

	f.row = target
	f.clampRow()
	f.loadRow()
}

func (f *StarterListField) deleteRow() {
	f.editor.Delete(f.row)
	f.clampRow()
	f.loadRow()
}

func (f *StarterListField) list() []string { return f.value.Value() }

func (f *StarterListField) clampRow() {
	f.row = max(0, min(f.row, len(f.list())-1))
}

func (f *StarterListField) loadRow() {
	f.input.SetValue(f.list()[f.row])
	f.input.CursorEnd()
}

// SetValue replaces the list from outside the field, for example when the
// stored agent changes on disk. An empty list is re-initialized.
func (f *StarterListField) SetValue(list []string) {
	f.value.OnChange(slices.Clone(list))
	f.editor.Sync()
	f.clampRow()
	f.loadRow()
}

// Starters returns the committed list, including placeholder slots.
func (f *StarterListField) Starters() []string { return slices.Clone(f.list()) }

// Row returns the index of the row under the cursor.
func (f *StarterListField) Row() int { return f.row }

// Dragging reports whether a row is grabbed.
func (f *StarterListField) Dragging() bool { return f.editor.Dragging() }

func (f *StarterListField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}

	limits := f.editor.Limits()
	title := titleStyle.Render(f.labels.Title) + " " +
		styles.TextMutedStyle.Render(fmt.Sprintf("(%d/%d)", starters.Populated(f.list()), limits.MaxStarters))

	rows := make([]string, 0, len(f.list())+2)
	rows = append(rows, title)
	for i := range f.list() {
		rows = append(rows, f.renderRow(i))
	}

	if f.focused {
		help := f.labels.HelpEdit
		if f.editor.Dragging() {
			help = f.labels.HelpDrag
		}
		if help != "" {
			rows = append(rows, styles.FormHelpStyle.Render(help))
		}
	}

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}
	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (f *StarterListField) renderRow(i int) string {
	src, dragging := f.editor.DragSource()
	hover, _ := f.editor.DragHover()

	cursor := "  "
	if f.focused && i == f.row && !dragging {
		cursor = "> "
	}

	var text string
	switch {
	case f.focused && i == f.row && !dragging:
		text = f.input.View()
	default:
		text = f.editor.Display(i)
		style := styles.StarterRowStyle
		switch {
		case dragging && i == hover && hover != src:
			style = styles.StarterRowDropStyle
		case dragging && i == src:
			style = styles.StarterRowDragStyle
		}
		if text == "" {
			text = styles.StarterPlaceholderStyle.Render(f.labels.Placeholder)
		} else {
			text = style.Render(text)
		}
	}

	del := styles.StarterDeleteMutedStyle.Render(iconDelete)
	if f.editor.CanDelete(i) {
		del = styles.StarterDeleteStyle.Render(iconDelete)
		if f.focused && i == f.row && !dragging && f.labels.Delete != "" {
			del += " " + styles.TextMutedStyle.Render(f.labels.Delete)
		}
	}

	return strings.Join([]string{cursor, styles.StarterHandleStyle.Render(iconHandle), " ", text, " ", del}, "")
}

func (f *StarterListField) Focus() tea.Cmd {
	f.focused = true
	f.clampRow()
	f.loadRow()
	return f.input.Focus()
}

// Blur ends any drag in progress and runs blank cleanup on the current row.
func (f *StarterListField) Blur() {
	f.focused = false
	f.editor.DragEnd()
	f.editor.Blur(f.row)
	f.clampRow()
	f.loadRow()
	f.input.Blur()
}

func (f *StarterListField) Focused() bool { return f.focused }
func (f *StarterListField) Value() any    { return f.Starters() }
func (f *StarterListField) Label() string { return f.labels.Title }
