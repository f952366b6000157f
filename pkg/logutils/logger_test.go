package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("writes json to file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "logs", "starters.log")

		l, closer, err := New("info", file)
		require.NoError(t, err)

		l.Info().Str("component", "test").Msg("hello")
		l.Debug().Msg("filtered")
		closer()

		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"message":"hello"`)
		assert.Contains(t, string(data), `"component":"test"`)
		assert.NotContains(t, string(data), "filtered")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, _, err := New("loud", "")
		assert.Error(t, err)
	})
}
