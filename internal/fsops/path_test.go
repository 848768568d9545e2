package fsops

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	base := "/srv/data"

	tests := []struct {
		name     string
		input    PathInput
		expected string
	}{
		{
			name:     "relative path joins base",
			input:    Path("notes/today.md"),
			expected: "/srv/data/notes/today.md",
		},
		{
			name:     "absolute path passes through",
			input:    Path("/etc/hosts"),
			expected: "/etc/hosts",
		},
		{
			name:     "empty input resolves to base",
			input:    Path(""),
			expected: "/srv/data",
		},
		{
			name:     "whitespace-only input resolves to base",
			input:    Path("   "),
			expected: "/srv/data",
		},
		{
			name:     "dot segments are cleaned",
			input:    Path("a/./b/../c.txt"),
			expected: "/srv/data/a/c.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolve(base, tt.input))
		})
	}
}

func TestResolve_ResultAsInput(t *testing.T) {
	tmpDir := t.TempDir()
	ops := NewOperations(tmpDir)

	written := ops.WriteText(Path("chain.txt"), "chained", DefaultWriteOptions())
	require.True(t, written.Success)

	// A result from a previous operation is a valid path input and points
	// at the absolute path it acted on.
	read := ops.ReadText(written, EncodingUTF8)
	require.True(t, read.Success)
	assert.Equal(t, "chained", read.Content)
	assert.Equal(t, filepath.Join(tmpDir, "chain.txt"), read.Path)
}

func TestOperations_Resolve(t *testing.T) {
	ops := NewOperations("/base")

	assert.Equal(t, "/base/x.txt", ops.Resolve(Path("x.txt")))
	assert.Equal(t, "/abs/x.txt", ops.Resolve(Path("/abs/x.txt")))
	assert.Equal(t, "/base", ops.BaseDir())
}
