package fsops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ducktyper/internal/errors"
)

func TestYAML_RoundTrip(t *testing.T) {
	ops := NewOperations(t.TempDir())
	data := map[string]any{
		"name":    "ducktyper",
		"retries": 3,
		"nested":  map[string]any{"enabled": true},
		"tags":    []any{"a", "b"},
	}

	written := ops.WriteYAML(Path("conf.yaml"), data, true)
	require.True(t, written.Success, "write failed: %v", written.Err)

	read := ops.ReadYAML(written)
	require.True(t, read.Success, "read failed: %v", read.Err)
	assert.Equal(t, FormatYAML, read.Format)
	assert.Equal(t, "ducktyper", read.Data["name"])
	assert.Equal(t, 3, read.Data["retries"])
	assert.Equal(t, map[string]any{"enabled": true}, read.Data["nested"])
	assert.Equal(t, []any{"a", "b"}, read.Data["tags"])
}

func TestJSON_RoundTrip(t *testing.T) {
	ops := NewOperations(t.TempDir())
	data := map[string]any{
		"name":    "ducktyper",
		"retries": 3,
		"nested":  map[string]any{"enabled": true},
	}

	written := ops.WriteJSON(Path("conf.json"), data, DefaultJSONOptions())
	require.True(t, written.Success, "write failed: %v", written.Err)

	read := ops.ReadJSON(written)
	require.True(t, read.Success, "read failed: %v", read.Err)
	assert.Equal(t, FormatJSON, read.Format)
	assert.Equal(t, "ducktyper", read.Data["name"])
	// JSON numbers decode as float64.
	assert.Equal(t, float64(3), read.Data["retries"])
	assert.Equal(t, map[string]any{"enabled": true}, read.Data["nested"])
}

func TestReadYAML_MissingFile(t *testing.T) {
	ops := NewOperations(t.TempDir())

	res := ops.ReadYAML(Path("absent.yaml"))
	require.False(t, res.Success)
	assert.True(t, errors.IsNotFound(res.Err))
	// Failures still carry a usable empty map, never nil.
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestReadJSON_MissingFile(t *testing.T) {
	ops := NewOperations(t.TempDir())

	res := ops.ReadJSON(Path("absent.json"))
	require.False(t, res.Success)
	assert.True(t, errors.IsNotFound(res.Err))
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestReadYAML_EmptyDocument(t *testing.T) {
	tmpDir := t.TempDir()
	ops := NewOperations(tmpDir)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "empty.yaml"), nil, 0o644))

	res := ops.ReadYAML(Path("empty.yaml"))
	require.True(t, res.Success)
	assert.Empty(t, res.Data)
	assert.NotNil(t, res.Data)
}

func TestReadYAML_NonMappingRoot(t *testing.T) {
	tmpDir := t.TempDir()
	ops := NewOperations(tmpDir)

	tests := []struct {
		name    string
		content string
	}{
		{"sequence root", "- one\n- two\n"},
		{"scalar root", "just a string\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			res := ops.ReadYAML(Path(path))
			require.False(t, res.Success)
			assert.True(t, errors.IsValidation(res.Err))
			assert.Empty(t, res.Data)
		})
	}
}

func TestReadJSON_NonObjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	ops := NewOperations(tmpDir)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "list.json"), []byte(`[1, 2, 3]`), 0o644))

	res := ops.ReadJSON(Path("list.json"))
	require.False(t, res.Success)
	assert.True(t, errors.IsValidation(res.Err))
}

func TestReadYAML_MalformedDocument(t *testing.T) {
	tmpDir := t.TempDir()
	ops := NewOperations(tmpDir)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "bad.yaml"), []byte("key: [unclosed\n  nope"), 0o644))

	res := ops.ReadYAML(Path("bad.yaml"))
	require.False(t, res.Success)
	assert.True(t, errors.IsFormat(res.Err))
}

func TestReadJSON_MalformedDocument(t *testing.T) {
	tmpDir := t.TempDir()
	ops := NewOperations(tmpDir)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "bad.json"), []byte(`{"key":`), 0o644))

	res := ops.ReadJSON(Path("bad.json"))
	require.False(t, res.Success)
	assert.True(t, errors.IsFormat(res.Err))
}

func TestYAML_Disabled(t *testing.T) {
	ops := NewOperations(t.TempDir(), WithoutYAML())

	read := ops.ReadYAML(Path("any.yaml"))
	require.False(t, read.Success)
	assert.ErrorIs(t, read.Err, errors.ErrUnsupported)
	assert.NotNil(t, read.Data)

	written := ops.WriteYAML(Path("any.yaml"), map[string]any{"k": "v"}, true)
	require.False(t, written.Success)
	assert.ErrorIs(t, written.Err, errors.ErrUnsupported)

	// JSON stays available when YAML support is off.
	ok := ops.WriteJSON(Path("still.json"), map[string]any{"k": "v"}, DefaultJSONOptions())
	assert.True(t, ok.Success)
}

func TestWriteJSON_LiteralNonASCII(t *testing.T) {
	tmpDir := t.TempDir()
	ops := NewOperations(tmpDir)

	res := ops.WriteJSON(Path("i18n.json"), map[string]any{"greeting": "héllo <wörld>"}, DefaultJSONOptions())
	require.True(t, res.Success)

	raw, err := os.ReadFile(filepath.Join(tmpDir, "i18n.json"))
	require.NoError(t, err)
	// Non-ASCII and HTML-significant characters are written literally.
	assert.Contains(t, string(raw), "héllo <wörld>")
	assert.NotContains(t, string(raw), `\u`)
}

func TestWriteJSON_Indent(t *testing.T) {
	tmpDir := t.TempDir()
	ops := NewOperations(tmpDir)

	opts := DefaultJSONOptions()
	opts.Indent = 4
	res := ops.WriteJSON(Path("wide.json"), map[string]any{"k": "v"}, opts)
	require.True(t, res.Success)

	raw, err := os.ReadFile(filepath.Join(tmpDir, "wide.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n    \"k\"")
}

func TestWriteYAML_BlockStyle(t *testing.T) {
	tmpDir := t.TempDir()
	ops := NewOperations(tmpDir)

	res := ops.WriteYAML(Path("block.yaml"), map[string]any{
		"outer": map[string]any{"inner": "value"},
	}, true)
	require.True(t, res.Success)

	raw, err := os.ReadFile(filepath.Join(tmpDir, "block.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "outer:\n  inner: value")
}
