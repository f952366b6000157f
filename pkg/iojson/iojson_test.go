package iojson

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Items []string `json:"items"`
}

func TestFileReader(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"items":["a","b"]}`), 0o644))

		fr := &FileReader[payload]{}
		fr.SetPath(path)

		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got.Items)
	})

	t.Run("reads stdin override", func(t *testing.T) {
		fr := &FileReader[payload]{Stdin: strings.NewReader(`{"items":["x"]}`)}

		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, got.Items)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		fr := &FileReader[payload]{Stdin: strings.NewReader(`{"other":1}`)}

		_, err := fr.Read()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode JSON")
	})

	t.Run("missing file", func(t *testing.T) {
		fr := &FileReader[payload]{}
		fr.SetPath(filepath.Join(t.TempDir(), "missing.json"))

		_, err := fr.Read()
		assert.ErrorContains(t, err, "open file")
	})
}

func TestWriters(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteLine(&out, payload{Items: []string{"a"}}))
	assert.Equal(t, "{\"items\":[\"a\"]}\n", out.String())

	out.Reset()
	require.NoError(t, WriteWith(&out, &errOut, payload{Items: []string{"a"}}))
	assert.Contains(t, out.String(), "\"items\": [\n")
	assert.Empty(t, errOut.String())

	out.Reset()
	require.NoError(t, WriteError(&out, "boom", map[string]any{"field": "x"}))
	assert.Contains(t, out.String(), `"message": "boom"`)
}
