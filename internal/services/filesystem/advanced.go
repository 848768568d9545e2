package filesystem

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"ducktyper/internal/errors"
	"ducktyper/internal/fsops"
	"ducktyper/internal/utils"
)

const (
	tempDirPermissions = 0o700
	binarySniffLen     = 8000
)

// CreateTempDirectory creates a uniquely named directory under the system
// temp dir and returns its path.
func (s *Service) CreateTempDirectory(prefix string) (string, error) {
	name := utils.SanitizeFilename(prefix) + "-" + uuid.NewString()
	path := filepath.Join(os.TempDir(), name)
	if err := os.Mkdir(path, tempDirPermissions); err != nil {
		return "", errors.FromOS("mktemp", path, err)
	}
	s.logger.Debug("created temp directory", "path", path)
	return path, nil
}

// CreateTempFile creates a uniquely named empty file under the system temp
// dir and returns its path.
func (s *Service) CreateTempFile(prefix, suffix string) (string, error) {
	name := utils.SanitizeFilename(prefix) + "-" + uuid.NewString() + suffix
	path := filepath.Join(os.TempDir(), name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", errors.FromOS("mktemp", path, err)
	}
	if err := f.Close(); err != nil {
		return "", errors.FromOS("mktemp", path, err)
	}
	s.logger.Debug("created temp file", "path", path)
	return path, nil
}

// ContentSearchOptions controls FindFilesByContent.
type ContentSearchOptions struct {
	Pattern        string  // glob filter on file names; empty means all files
	MaxFileSize    int64   // files larger than this are skipped
	FilesPerSecond float64 // >0 throttles scan I/O
	IncludeHidden  bool
}

// DefaultContentSearchOptions returns the standard content search behavior:
// all files, 10 MiB cap, unthrottled.
func DefaultContentSearchOptions() ContentSearchOptions {
	return ContentSearchOptions{Pattern: "*", MaxFileSize: 10 << 20}
}

// FindFilesByContent returns the files under root whose content contains
// needle. Binary files and files over the size cap are skipped; unreadable
// files are logged and skipped. With FilesPerSecond set the scan is rate
// limited to bound I/O pressure on large trees.
func (s *Service) FindFilesByContent(ctx context.Context, root fsops.PathInput, needle string, opts ContentSearchOptions) ([]string, error) {
	if opts.Pattern == "" {
		opts.Pattern = "*"
	}

	found := s.ops.FindFiles(root, opts.Pattern, fsops.FindOptions{
		Recursive:     true,
		IncludeHidden: opts.IncludeHidden,
	})
	if found.Failed() {
		return nil, found.Err
	}

	var limiter *rate.Limiter
	if opts.FilesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.FilesPerSecond), 1)
	}

	target := []byte(needle)
	var matches []string
	for _, path := range found.Files {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return matches, err
			}
		}

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if opts.MaxFileSize > 0 && info.Size() > opts.MaxFileSize {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		if isBinary(data) {
			continue
		}
		if bytes.Contains(data, target) {
			matches = append(matches, path)
		}
	}
	return matches, nil
}

// isBinary uses the classic null-byte sniff over the head of the file.
func isBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}

// DiskUsage describes capacity of the filesystem containing a path.
type DiskUsage struct {
	Total     uint64
	Free      uint64
	Available uint64
	Used      uint64
}

// GetDiskUsage reports capacity of the filesystem containing path.
func (s *Service) GetDiskUsage(path string) (DiskUsage, error) {
	usage, err := diskUsage(path)
	if err != nil {
		return DiskUsage{}, errors.FromOS("statfs", path, err)
	}
	return usage, nil
}

// FileSizeString renders a byte count for humans, e.g. "1.5 MB".
func (s *Service) FileSizeString(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}

// GetMimeType detects the MIME type of the file at path from its content.
func (s *Service) GetMimeType(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", errors.FromOS("mime", path, err)
	}
	return mt.String(), nil
}

// IsPathWriteable reports whether path (or, for a missing path, its parent
// directory) can be written by the current process.
func (s *Service) IsPathWriteable(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = filepath.Dir(path)
	}
	return accessWritable(path)
}

// IsFileLocked reports whether another process holds an exclusive lock on
// the file at path.
func (s *Service) IsFileLocked(path string) (bool, error) {
	locked, err := probeLock(path)
	if err != nil {
		return false, errors.FromOS("lock", path, err)
	}
	return locked, nil
}

// GetFileTimestamp returns the modification time of path.
func (s *Service) GetFileTimestamp(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, errors.FromOS("stat", path, err)
	}
	return info.ModTime(), nil
}
