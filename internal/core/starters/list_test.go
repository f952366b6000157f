package starters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limits(max int) Limits {
	return Limits{MaxStarters: max, MaxLength: DefaultMaxLength}
}

func TestInitialize(t *testing.T) {
	t.Run("empty becomes placeholder", func(t *testing.T) {
		assert.Equal(t, []string{""}, Initialize(nil))
		assert.Equal(t, []string{""}, Initialize([]string{}))
	})

	t.Run("non-empty is returned as is", func(t *testing.T) {
		in := []string{"a", ""}
		out := Initialize(in)
		assert.Same(t, &in[0], &out[0])
	})
}

func TestEdit(t *testing.T) {
	tests := []struct {
		name  string
		list  []string
		index int
		text  string
		max   int
		want  []string
	}{
		{
			name: "last index with text appends placeholder",
			list: []string{""}, index: 0, text: "Hello", max: 4,
			want: []string{"Hello", ""},
		},
		{
			name: "last index with whitespace does not append",
			list: []string{""}, index: 0, text: "   ", max: 4,
			want: []string{"   "},
		},
		{
			name: "middle index never appends",
			list: []string{"a", "b", ""}, index: 1, text: "changed", max: 4,
			want: []string{"a", "changed", ""},
		},
		{
			name: "cap reached does not append",
			list: []string{"a", "b", "c", ""}, index: 3, text: "d", max: 4,
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "clearing last entry keeps length",
			list: []string{"a", "b"}, index: 1, text: "", max: 4,
			want: []string{"a", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := append([]string(nil), tt.list...)
			got := Edit(tt.list, tt.index, tt.text, limits(tt.max))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, orig, tt.list, "input must not be modified")
		})
	}
}

func TestBlur(t *testing.T) {
	t.Run("keeps blank last element", func(t *testing.T) {
		in := []string{"a", ""}
		out := Blur(in, 1)
		assert.Same(t, &in[0], &out[0])
		assert.Equal(t, []string{"a", ""}, out)
	})

	t.Run("removes blank middle element", func(t *testing.T) {
		assert.Equal(t, []string{"a", ""}, Blur([]string{"", "a", ""}, 0))
	})

	t.Run("removes whitespace-only middle element", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, Blur([]string{"a", " ", "b"}, 1))
		assert.Equal(t, []string{"a", ""}, Blur([]string{"\t \n", "a", ""}, 0))
	})

	t.Run("keeps populated element", func(t *testing.T) {
		in := []string{"a", "b"}
		out := Blur(in, 0)
		assert.Same(t, &in[0], &out[0])
	})

	t.Run("single blank element is kept", func(t *testing.T) {
		assert.Equal(t, []string{""}, Blur([]string{""}, 0))
	})
}

func TestDelete(t *testing.T) {
	t.Run("blank is a no-op", func(t *testing.T) {
		in := []string{"a", ""}
		out := Delete(in, 1)
		assert.Same(t, &in[0], &out[0])
		assert.Len(t, out, 2)
	})

	t.Run("removes populated element", func(t *testing.T) {
		in := []string{"a", "b", ""}
		out := Delete(in, 0)
		assert.Equal(t, []string{"b", ""}, out)
		assert.Equal(t, []string{"a", "b", ""}, in)
	})

	t.Run("substitutes placeholder when emptied", func(t *testing.T) {
		assert.Equal(t, []string{""}, Delete([]string{"only"}, 0))
	})
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name           string
		list           []string
		source, target int
		want           []string
	}{
		{"forward", []string{"A", "B", "C", ""}, 0, 2, []string{"B", "C", "A", ""}},
		{"backward", []string{"A", "B", "C", ""}, 2, 0, []string{"C", "A", "B", ""}},
		{"adjacent", []string{"A", "B"}, 0, 1, []string{"B", "A"}},
		{"to end", []string{"A", "B", "C"}, 0, 2, []string{"B", "C", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reorder(tt.list, tt.source, tt.target)
			assert.Equal(t, tt.want, got)
			assert.ElementsMatch(t, tt.list, got)
			assert.Equal(t, tt.list[tt.source], got[tt.target])
		})
	}

	t.Run("no-ops are reference stable", func(t *testing.T) {
		in := []string{"A", "B"}
		for _, pair := range [][2]int{{1, 1}, {NoIndex, 1}, {0, NoIndex}, {NoIndex, NoIndex}} {
			out := Reorder(in, pair[0], pair[1])
			assert.Same(t, &in[0], &out[0], "pair %v", pair)
		}
	})
}

func TestOutOfRangePanics(t *testing.T) {
	list := []string{"a"}
	assert.Panics(t, func() { Edit(list, 1, "x", DefaultLimits()) })
	assert.Panics(t, func() { Blur(list, -1) })
	assert.Panics(t, func() { Delete(list, 5) })
	assert.Panics(t, func() { Reorder(list, 0, 3) })
}

func TestLimitsClamp(t *testing.T) {
	l := Limits{MaxLength: 5}
	assert.Equal(t, "hello", l.Clamp("hello world"))
	assert.Equal(t, "héllo", l.Clamp("héllo wörld"))
	assert.Equal(t, "hi", l.Clamp("hi"))

	long := strings.Repeat("x", 100)
	assert.Equal(t, long, Limits{}.Clamp(long))
	require.Len(t, DefaultLimits().Clamp(long), DefaultMaxLength)
}

func TestEditScenario(t *testing.T) {
	l := limits(4)

	list := Initialize(nil)
	require.Equal(t, []string{""}, list)

	list = Edit(list, 0, "Hello", l)
	assert.Equal(t, []string{"Hello", ""}, list)

	list = Edit(list, 1, "World", l)
	assert.Equal(t, []string{"Hello", "World", ""}, list)

	list = Delete(list, 0)
	assert.Equal(t, []string{"World", ""}, list)

	before := list
	list = Blur(list, 1)
	assert.Same(t, &before[0], &list[0])
	assert.Equal(t, []string{"World", ""}, list)
}
