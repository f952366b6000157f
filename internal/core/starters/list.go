// Package starters implements the editing rules for an ordered list of
// conversation starters: auto-growing insertion, blank cleanup, deletion,
// and drag reordering with a visual swap preview.
//
// Every list operation takes the current list and returns the list that should
// replace it. Inputs are never modified. Operations that do nothing return the
// input slice itself so callers can skip change notifications.
package starters

import (
	"fmt"
	"slices"
	"strings"
)

// NoIndex marks an absent position, for example a reorder with no source.
const NoIndex = -1

const (
	DefaultMaxStarters = 4
	DefaultMaxLength   = 64
)

// Limits bounds the list length and the length of each starter.
type Limits struct {
	MaxStarters int
	MaxLength   int // in runes
}

// DefaultLimits returns the limits used when no configuration overrides them.
func DefaultLimits() Limits {
	return Limits{
		MaxStarters: DefaultMaxStarters,
		MaxLength:   DefaultMaxLength,
	}
}

// Clamp truncates text to MaxLength runes. A non-positive MaxLength disables
// truncation.
func (l Limits) Clamp(text string) string {
	if l.MaxLength <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= l.MaxLength {
		return text
	}
	return string(runes[:l.MaxLength])
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Populated returns the number of non-blank starters in list.
func Populated(list []string) int {
	n := 0
	for _, s := range list {
		if !IsBlank(s) {
			n++
		}
	}
	return n
}

// Initialize returns a single placeholder when list is empty and list
// otherwise.
func Initialize(list []string) []string {
	if len(list) == 0 {
		return []string{""}
	}
	return list
}

// Edit replaces the starter at index with text. When the last starter receives
// non-blank text and the list is below the cap, a trailing placeholder is
// appended so there is always a slot for the next entry.
func Edit(list []string, index int, text string, limits Limits) []string {
	mustIndex(list, index)

	out := make([]string, len(list), len(list)+1)
	copy(out, list)
	out[index] = text

	if index == len(list)-1 && !IsBlank(text) && len(list) < limits.MaxStarters {
		out = append(out, "")
	}

	return out
}

// Blur removes the starter at index when it is blank and not the trailing
// slot. Whitespace-only starters count as blank and are removed too.
func Blur(list []string, index int) []string {
	mustIndex(list, index)

	if !IsBlank(list[index]) || index == len(list)-1 {
		return list
	}

	return Initialize(slices.Delete(slices.Clone(list), index, index+1))
}

// Delete removes a populated starter. Blank starters cannot be deleted.
func Delete(list []string, index int) []string {
	mustIndex(list, index)

	if IsBlank(list[index]) {
		return list
	}

	return Initialize(slices.Delete(slices.Clone(list), index, index+1))
}

// Reorder moves the starter at source to target. Removing the source shifts
// later indices before the starter is inserted again.
func Reorder(list []string, source, target int) []string {
	if source == NoIndex || target == NoIndex || source == target {
		return list
	}
	mustIndex(list, source)
	mustIndex(list, target)

	out := slices.Clone(list)
	moved := out[source]
	out = slices.Delete(out, source, source+1)
	return slices.Insert(out, target, moved)
}

func mustIndex(list []string, index int) {
	if index < 0 || index >= len(list) {
		panic(fmt.Sprintf("starters: index %d out of range [0,%d)", index, len(list)))
	}
}
