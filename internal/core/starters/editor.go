package starters

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/colonyops/starters/internal/core/logging"
)

// Binding connects an Editor to the form field that owns the list. The editor
// never modifies Value in place; it hands a full replacement to OnChange.
type Binding interface {
	Value() []string
	OnChange(list []string)
}

// FieldValue is an in-memory Binding.
type FieldValue struct {
	list    []string
	changes int
}

// NewFieldValue creates a FieldValue holding a copy of list.
func NewFieldValue(list []string) *FieldValue {
	return &FieldValue{list: slices.Clone(list)}
}

func (v *FieldValue) Value() []string { return v.list }

func (v *FieldValue) OnChange(list []string) {
	v.list = list
	v.changes++
}

// Changes returns how many replacements have been received.
func (v *FieldValue) Changes() int { return v.changes }

// Editor applies list edits and drag gestures to a bound field. It is not safe
// for concurrent use; all calls are expected from a single event loop.
type Editor struct {
	binding Binding
	limits  Limits
	drag    DragTracker
	log     zerolog.Logger
}

// NewEditor creates an editor for binding and runs Sync once.
func NewEditor(binding Binding, limits Limits, logger zerolog.Logger) *Editor {
	e := &Editor{
		binding: binding,
		limits:  limits,
		log:     logging.ComponentOf(logger, "starters"),
	}
	e.Sync()
	return e
}

// Limits returns the limits the editor enforces.
func (e *Editor) Limits() Limits { return e.limits }

// Value returns the bound list.
func (e *Editor) Value() []string { return e.binding.Value() }

// Sync replaces an empty bound list with a single placeholder. Call it
// whenever the list may have been reset externally.
func (e *Editor) Sync() {
	e.commit("initialize", e.binding.Value(), Initialize(e.binding.Value()))
}

// Edit sets the text of the starter at index, truncated to the length limit.
func (e *Editor) Edit(index int, text string) {
	cur := e.binding.Value()
	e.commit("edit", cur, Edit(cur, index, e.limits.Clamp(text), e.limits))
}

// Blur runs cleanup for the starter at index when it loses focus.
func (e *Editor) Blur(index int) {
	cur := e.binding.Value()
	e.commit("blur", cur, Blur(cur, index))
}

// Delete removes the starter at index if it is populated.
func (e *Editor) Delete(index int) {
	cur := e.binding.Value()
	e.commit("delete", cur, Delete(cur, index))
}

// CanDelete reports whether Delete(index) would remove anything.
func (e *Editor) CanDelete(index int) bool {
	list := e.binding.Value()
	return index >= 0 && index < len(list) && !IsBlank(list[index])
}

// DragStart begins dragging the starter at index.
func (e *Editor) DragStart(index int) {
	e.drag.Start(index)
	e.log.Debug().Int("source", index).Msg("drag start")
}

// DragOver moves the drag preview to index.
func (e *Editor) DragOver(index int) {
	e.drag.Over(index)
}

// DragEnd abandons any drag session.
func (e *Editor) DragEnd() {
	if _, ok := e.drag.Source(); ok {
		e.log.Debug().Msg("drag end")
	}
	e.drag.End()
}

// Drop commits the drag session onto index. A session whose source no longer
// exists in the bound list (the list shrank externally) is discarded.
func (e *Editor) Drop(index int) {
	cur := e.binding.Value()

	if src, ok := e.drag.Source(); ok && (src >= len(cur) || index < 0 || index >= len(cur)) {
		e.log.Warn().Int("source", src).Int("target", index).Int("len", len(cur)).Msg("discarding stale drag session")
		e.drag.End()
		return
	}

	e.commit("reorder", cur, e.drag.Drop(cur, index))
}

// Dragging reports whether a drag session has started.
func (e *Editor) Dragging() bool {
	_, ok := e.drag.Source()
	return ok
}

// DragSource returns the dragged index, if any.
func (e *Editor) DragSource() (int, bool) { return e.drag.Source() }

// DragHover returns the hovered index, if any.
func (e *Editor) DragHover() (int, bool) { return e.drag.Hover() }

// Display returns the preview value for the row at index.
func (e *Editor) Display(index int) string {
	return e.drag.Display(e.binding.Value(), index)
}

func (e *Editor) commit(op string, prev, next []string) {
	if sameList(prev, next) {
		return
	}
	e.log.Debug().Str("op", op).Int("len", len(next)).Msg("starters changed")
	e.binding.OnChange(next)
}

// sameList reports whether next is the unchanged prev returned by a no-op.
func sameList(prev, next []string) bool {
	if len(prev) != len(next) {
		return false
	}
	if len(prev) == 0 {
		return true
	}
	return &prev[0] == &next[0]
}
