package filesystem

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ducktyper/internal/fsops"
	"ducktyper/internal/testutil"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	tmpDir := t.TempDir()
	return NewService(tmpDir, testutil.Logger()), tmpDir
}

func TestService_WriteReadRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	written := svc.WriteText(fsops.Path("note.txt"), "hello service", fsops.DefaultWriteOptions())
	require.True(t, written.Success)

	read := svc.ReadText(written, fsops.EncodingUTF8)
	require.True(t, read.Success)
	assert.Equal(t, "hello service", read.Content)
}

func TestService_NilLoggerIsSafe(t *testing.T) {
	svc := NewService(t.TempDir(), nil)

	res := svc.WriteText(fsops.Path("x.txt"), "ok", fsops.DefaultWriteOptions())
	assert.True(t, res.Success)
}

func TestService_DebugLogging(t *testing.T) {
	tmpDir := t.TempDir()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := NewService(tmpDir, logger)

	svc.WriteText(fsops.Path("logged.txt"), "x", fsops.DefaultWriteOptions())
	svc.ReadText(fsops.Path("logged.txt"), fsops.EncodingUTF8)

	out := buf.String()
	assert.Contains(t, out, "write text")
	assert.Contains(t, out, "read text")
	assert.Contains(t, out, filepath.Join(tmpDir, "logged.txt"))
}

func TestService_BaseDirAndResolve(t *testing.T) {
	svc, tmpDir := newTestService(t)

	assert.Equal(t, tmpDir, svc.BaseDir())
	assert.Equal(t, filepath.Join(tmpDir, "a", "b.txt"), svc.ResolvePath(fsops.Path("a/b.txt")))
}

func TestService_ChecksumAndInfo(t *testing.T) {
	svc, tmpDir := newTestService(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "f.txt"), []byte("content"), 0o644))

	sum := svc.Checksum(fsops.Path("f.txt"), "sha256")
	require.True(t, sum.Success)
	assert.Len(t, sum.Checksum, 64)

	info := svc.GetFileInfo(fsops.Path("f.txt"))
	require.True(t, info.Success)
	assert.True(t, info.IsFile)
	assert.Equal(t, int64(7), info.Size)
}

func TestService_CopyMoveDelete(t *testing.T) {
	svc, tmpDir := newTestService(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("x"), 0o644))

	require.True(t, svc.Copy(fsops.Path("a.txt"), fsops.Path("b.txt"), false).Success)
	require.True(t, svc.Move(fsops.Path("b.txt"), fsops.Path("c.txt"), false).Success)
	require.True(t, svc.Delete(fsops.Path("c.txt"), false).Success)

	_, err := os.Stat(filepath.Join(tmpDir, "c.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestService_ListAndFind(t *testing.T) {
	svc, tmpDir := newTestService(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "one.md"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "docs", "two.md"), []byte("y"), 0o644))

	listing := svc.ListDirectory(fsops.Path(""), fsops.ListOptions{Pattern: "*.md"})
	require.True(t, listing.Success)
	assert.Equal(t, 1, listing.TotalFiles)

	found := svc.FindFiles(fsops.Path(""), "*.md", fsops.DefaultFindOptions())
	require.True(t, found.Success)
	assert.Equal(t, 2, found.TotalMatches)
}

func TestService_StructuredDocuments(t *testing.T) {
	svc, _ := newTestService(t)
	data := map[string]any{"service": "ducktyper"}

	require.True(t, svc.WriteYAML(fsops.Path("doc.yaml"), data, true).Success)
	yamlRes := svc.ReadYAML(fsops.Path("doc.yaml"))
	require.True(t, yamlRes.Success)
	assert.Equal(t, "ducktyper", yamlRes.Data["service"])

	require.True(t, svc.WriteJSON(fsops.Path("doc.json"), data, fsops.DefaultJSONOptions()).Success)
	jsonRes := svc.ReadJSON(fsops.Path("doc.json"))
	require.True(t, jsonRes.Success)
	assert.Equal(t, "ducktyper", jsonRes.Data["service"])
}

func TestService_ForwardsOptions(t *testing.T) {
	svc := NewService(t.TempDir(), testutil.Logger(), fsops.WithoutYAML())

	res := svc.ReadYAML(fsops.Path("any.yaml"))
	assert.False(t, res.Success)
}
