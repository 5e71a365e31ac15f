package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "empty", input: "", expect: ""},
		{name: "single line", input: `{"tickets": []}`, expect: `{"tickets": []}`},
		{name: "joins lines", input: "{\n  \"a\": 1,\n  \"b\": 2\n}\n", expect: `{"a": 1,"b": 2}`},
		{name: "windows line endings", input: "{\r\n\"a\": 1\r\n}", expect: `{"a": 1}`},
		{name: "no trailing newline", input: "a\nb", expect: "ab"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.json")
	require.NoError(t, os.WriteFile(path, []byte("{\n  \"tickets\": [\n  ]\n}\n"), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"tickets": []}`, got)
}

func TestReadFile_Missing(t *testing.T) {
	got, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, got)
}
