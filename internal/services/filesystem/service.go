// Package filesystem provides the public façade over the fsops operation
// layer. Every method is a thin delegation that logs at debug level first;
// the package also hosts stateless path utilities and advanced helpers
// (temp files, disk usage, MIME detection, lock probing).
package filesystem

import (
	"log/slog"

	"ducktyper/internal/fsops"
	"ducktyper/internal/logging"
)

// Service is the stable public API surface of the filesystem layer. It
// wraps one Operations instance bound to a base directory fixed at
// construction.
type Service struct {
	ops    *fsops.Operations
	logger *slog.Logger
}

// NewService creates a Service bound to baseDir. A nil logger defaults to a
// no-op logger so diagnostics are opt-in.
func NewService(baseDir string, logger *slog.Logger, opts ...fsops.Option) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	opts = append([]fsops.Option{fsops.WithLogger(logger)}, opts...)
	return &Service{
		ops:    fsops.NewOperations(baseDir, opts...),
		logger: logger,
	}
}

// BaseDir returns the base directory relative paths resolve against.
func (s *Service) BaseDir() string {
	return s.ops.BaseDir()
}

// ResolvePath resolves a path input against the base directory.
func (s *Service) ResolvePath(path fsops.PathInput) string {
	return s.ops.Resolve(path)
}

// ReadText reads the file at path as text.
func (s *Service) ReadText(path fsops.PathInput, encoding fsops.Encoding) fsops.ReadResult[string] {
	s.logger.Debug("read text", "path", s.ops.Resolve(path), "encoding", string(encoding))
	return s.ops.ReadText(path, encoding)
}

// ReadBinary reads the file at path as bytes.
func (s *Service) ReadBinary(path fsops.PathInput) fsops.ReadResult[[]byte] {
	s.logger.Debug("read binary", "path", s.ops.Resolve(path))
	return s.ops.ReadBinary(path)
}

// Checksum computes the hex digest of the file at path.
func (s *Service) Checksum(path fsops.PathInput, algorithm string) fsops.ChecksumResult {
	s.logger.Debug("checksum", "path", s.ops.Resolve(path), "algorithm", algorithm)
	return s.ops.Checksum(path, algorithm)
}

// WriteText writes text content to path.
func (s *Service) WriteText(path fsops.PathInput, content string, opts fsops.WriteOptions) fsops.WriteResult {
	s.logger.Debug("write text", "path", s.ops.Resolve(path), "atomic", opts.Atomic)
	return s.ops.WriteText(path, content, opts)
}

// WriteBinary writes raw bytes to path.
func (s *Service) WriteBinary(path fsops.PathInput, content []byte, opts fsops.WriteOptions) fsops.WriteResult {
	s.logger.Debug("write binary", "path", s.ops.Resolve(path), "atomic", opts.Atomic)
	return s.ops.WriteBinary(path, content, opts)
}

// Copy copies src to dst.
func (s *Service) Copy(src, dst fsops.PathInput, overwrite bool) fsops.WriteResult {
	s.logger.Debug("copy", "src", s.ops.Resolve(src), "dst", s.ops.Resolve(dst))
	return s.ops.Copy(src, dst, overwrite)
}

// Move renames src to dst.
func (s *Service) Move(src, dst fsops.PathInput, overwrite bool) fsops.WriteResult {
	s.logger.Debug("move", "src", s.ops.Resolve(src), "dst", s.ops.Resolve(dst))
	return s.ops.Move(src, dst, overwrite)
}

// Delete removes path.
func (s *Service) Delete(path fsops.PathInput, missingOK bool) fsops.OperationResult {
	s.logger.Debug("delete", "path", s.ops.Resolve(path), "missing_ok", missingOK)
	return s.ops.Delete(path, missingOK)
}

// CreateDirectory creates path and missing parents.
func (s *Service) CreateDirectory(path fsops.PathInput, existOK bool) fsops.OperationResult {
	s.logger.Debug("create directory", "path", s.ops.Resolve(path))
	return s.ops.CreateDirectory(path, existOK)
}

// GetFileInfo gathers a metadata snapshot of path.
func (s *Service) GetFileInfo(path fsops.PathInput) fsops.FileInfoResult {
	s.logger.Debug("file info", "path", s.ops.Resolve(path))
	return s.ops.GetFileInfo(path)
}

// ListDirectory produces a listing snapshot of path.
func (s *Service) ListDirectory(path fsops.PathInput, opts fsops.ListOptions) fsops.DirectoryInfoResult {
	s.logger.Debug("list directory", "path", s.ops.Resolve(path), "pattern", opts.Pattern)
	return s.ops.ListDirectory(path, opts)
}

// FindFiles searches root for entries matching pattern.
func (s *Service) FindFiles(root fsops.PathInput, pattern string, opts fsops.FindOptions) fsops.FindResult {
	s.logger.Debug("find files", "root", s.ops.Resolve(root), "pattern", pattern, "recursive", opts.Recursive)
	return s.ops.FindFiles(root, pattern, opts)
}

// ReadYAML reads and parses a YAML document.
func (s *Service) ReadYAML(path fsops.PathInput) fsops.DataResult {
	s.logger.Debug("read yaml", "path", s.ops.Resolve(path))
	return s.ops.ReadYAML(path)
}

// WriteYAML serializes data as YAML and writes it to path.
func (s *Service) WriteYAML(path fsops.PathInput, data map[string]any, atomic bool) fsops.WriteResult {
	s.logger.Debug("write yaml", "path", s.ops.Resolve(path))
	return s.ops.WriteYAML(path, data, atomic)
}

// ReadJSON reads and parses a JSON document.
func (s *Service) ReadJSON(path fsops.PathInput) fsops.DataResult {
	s.logger.Debug("read json", "path", s.ops.Resolve(path))
	return s.ops.ReadJSON(path)
}

// WriteJSON serializes data as JSON and writes it to path.
func (s *Service) WriteJSON(path fsops.PathInput, data map[string]any, opts fsops.JSONOptions) fsops.WriteResult {
	s.logger.Debug("write json", "path", s.ops.Resolve(path))
	return s.ops.WriteJSON(path, data, opts)
}
