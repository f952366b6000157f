package starters

// DragTracker holds the transient state of a drag gesture. The committed list
// is only touched on Drop; everything before that is preview.
//
// The zero value has no active session.
type DragTracker struct {
	source    int
	hover     int
	hasSource bool
	hasHover  bool
}

// Start begins a session dragging the starter at index.
func (d *DragTracker) Start(index int) {
	d.source = index
	d.hasSource = true
}

// Over records the position the pointer is currently over. Repeated calls
// overwrite the previous position.
func (d *DragTracker) Over(index int) {
	d.hover = index
	d.hasHover = true
}

// End clears the session. It runs on both completed and aborted gestures.
func (d *DragTracker) End() {
	*d = DragTracker{}
}

// Drop commits the move from the session source to index, then ends the
// session. The returned list is list itself when nothing moved.
func (d *DragTracker) Drop(list []string, index int) []string {
	defer d.End()

	if !d.hasSource || d.source == index {
		return list
	}
	return Reorder(list, d.source, index)
}

// Source returns the dragged index, if any.
func (d *DragTracker) Source() (int, bool) {
	return d.source, d.hasSource
}

// Hover returns the hovered index, if any.
func (d *DragTracker) Hover() (int, bool) {
	return d.hover, d.hasHover
}

// Active reports whether both a source and a hover position are tracked.
func (d *DragTracker) Active() bool {
	return d.hasSource && d.hasHover
}

// Display returns what the row at index should show while rendering. The
// hovered row shows the dragged starter and the origin row shows an empty
// slot; all other rows show their committed value.
func (d *DragTracker) Display(list []string, index int) string {
	mustIndex(list, index)

	if !d.Active() || d.hover == d.source {
		return list[index]
	}

	switch index {
	case d.hover:
		if d.source < 0 || d.source >= len(list) {
			return list[index]
		}
		return list[d.source]
	case d.source:
		return ""
	default:
		return list[index]
	}
}
