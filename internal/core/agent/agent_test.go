package agent

import (
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/starters/internal/core/starters"
)

func TestCleanStarters(t *testing.T) {
	got := CleanStarters([]string{" Hello ", "", "  ", "World", ""})
	assert.Equal(t, []string{"Hello", "World"}, got)
	assert.Empty(t, CleanStarters(nil))
}

func TestAgentValidate(t *testing.T) {
	limits := starters.Limits{MaxStarters: 2, MaxLength: 5}

	t.Run("valid", func(t *testing.T) {
		a := Agent{ID: "abc", Name: "Helper", ConversationStarters: []string{"hi"}}
		assert.NoError(t, a.Validate(limits))
	})

	t.Run("missing id and name", func(t *testing.T) {
		err := Agent{}.Validate(limits)

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Len(t, fieldErrs, 2)
	})

	t.Run("too many starters", func(t *testing.T) {
		a := Agent{ID: "abc", Name: "Helper", ConversationStarters: []string{"a", "b", "c"}}
		err := a.Validate(limits)

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Equal(t, "conversation_starters", fieldErrs[0].Field)
	})

	t.Run("starter too long", func(t *testing.T) {
		a := Agent{ID: "abc", Name: "Helper", ConversationStarters: []string{strings.Repeat("x", 6)}}
		err := a.Validate(limits)

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Equal(t, "conversation_starters[0]", fieldErrs[0].Field)
		assert.Contains(t, fieldErrs[0].Err.Error(), "maximum 5")
	})
}
