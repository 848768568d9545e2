package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ducktyper/internal/errors"
)

func seedFindTree(t *testing.T) (string, *Operations) {
	t.Helper()
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "pkg", "deep"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "main.go"), []byte("package main"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "pkg", "util.go"), []byte("package pkg"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "pkg", "deep", "deep.go"), []byte("package deep"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "pkg", "notes.txt"), []byte("notes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".git", "config.go"), []byte("x"), 0o644))
	return tmpDir, NewOperations(tmpDir)
}

func TestFindFiles_Recursive(t *testing.T) {
	tmpDir, ops := seedFindTree(t)

	res := ops.FindFiles(Path(""), "*.go", DefaultFindOptions())
	require.True(t, res.Success)
	assert.ElementsMatch(t, []string{
		filepath.Join(tmpDir, "main.go"),
		filepath.Join(tmpDir, "pkg", "util.go"),
		filepath.Join(tmpDir, "pkg", "deep", "deep.go"),
	}, res.Files)
	assert.Empty(t, res.Directories)
	assert.Equal(t, 3, res.TotalMatches)
	assert.Equal(t, "*.go", res.Pattern)
	assert.True(t, res.Recursive)
}

func TestFindFiles_Shallow(t *testing.T) {
	tmpDir, ops := seedFindTree(t)

	res := ops.FindFiles(Path(""), "*.go", FindOptions{Recursive: false})
	require.True(t, res.Success)
	assert.Equal(t, []string{filepath.Join(tmpDir, "main.go")}, res.Files)
	assert.Equal(t, 1, res.TotalMatches)
	assert.False(t, res.Recursive)
}

func TestFindFiles_HiddenExcludedByDefault(t *testing.T) {
	tmpDir, ops := seedFindTree(t)

	// Nothing under .git shows up unless hidden entries are requested.
	res := ops.FindFiles(Path(""), "config.go", DefaultFindOptions())
	require.True(t, res.Success)
	assert.Empty(t, res.Files)

	opts := DefaultFindOptions()
	opts.IncludeHidden = true
	res = ops.FindFiles(Path(""), "config.go", opts)
	require.True(t, res.Success)
	assert.Equal(t, []string{filepath.Join(tmpDir, ".git", "config.go")}, res.Files)
}

func TestFindFiles_MatchesDirectories(t *testing.T) {
	tmpDir, ops := seedFindTree(t)

	res := ops.FindFiles(Path(""), "pkg", DefaultFindOptions())
	require.True(t, res.Success)
	assert.Empty(t, res.Files)
	assert.Equal(t, []string{filepath.Join(tmpDir, "pkg")}, res.Directories)
	assert.Equal(t, 1, res.TotalMatches)
}

func TestFindFiles_TotalMatchesInvariant(t *testing.T) {
	_, ops := seedFindTree(t)

	res := ops.FindFiles(Path(""), "*", DefaultFindOptions())
	require.True(t, res.Success)
	assert.Equal(t, len(res.Files)+len(res.Directories), res.TotalMatches)
}

func TestFindFiles_NoMatches(t *testing.T) {
	_, ops := seedFindTree(t)

	res := ops.FindFiles(Path(""), "*.rs", DefaultFindOptions())
	require.True(t, res.Success)
	assert.Empty(t, res.Files)
	assert.Empty(t, res.Directories)
	assert.Zero(t, res.TotalMatches)
}

func TestFindFiles_MissingRoot(t *testing.T) {
	ops := NewOperations(t.TempDir())

	res := ops.FindFiles(Path("absent"), "*", DefaultFindOptions())
	require.False(t, res.Success)
	assert.True(t, errors.IsNotFound(res.Err))
}

func TestFindFiles_RootIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	ops := NewOperations(tmpDir)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "f.txt"), []byte("x"), 0o644))

	res := ops.FindFiles(Path("f.txt"), "*", DefaultFindOptions())
	require.False(t, res.Success)
	assert.True(t, errors.IsValidation(res.Err))
}

func TestFindFiles_InvalidPattern(t *testing.T) {
	_, ops := seedFindTree(t)

	res := ops.FindFiles(Path(""), "[unclosed", DefaultFindOptions())
	require.False(t, res.Success)
	assert.True(t, errors.IsValidation(res.Err))
}
