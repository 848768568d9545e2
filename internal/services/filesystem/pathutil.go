package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"ducktyper/internal/errors"
)

// Path utilities. These are pure helpers over path strings; they hold no
// state and never touch the base directory.

// JoinPath joins path segments with the platform separator.
func (s *Service) JoinPath(parts ...string) string {
	return filepath.Join(parts...)
}

// SplitPath splits a path into its segments. An absolute path's first
// segment is the separator itself.
func (s *Service) SplitPath(path string) []string {
	cleaned := filepath.Clean(path)
	sep := string(filepath.Separator)

	var parts []string
	if filepath.IsAbs(cleaned) {
		parts = append(parts, sep)
		cleaned = strings.TrimPrefix(cleaned, sep)
	}
	if cleaned == "" || cleaned == "." {
		return parts
	}
	return append(parts, strings.Split(cleaned, sep)...)
}

// NormalizePath cleans a path, collapsing separators, "." and "..".
func (s *Service) NormalizePath(path string) string {
	return filepath.Clean(path)
}

// ExpandUserVars expands a leading ~ and any $VAR environment references.
func (s *Service) ExpandUserVars(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.FromOS("expand", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return os.ExpandEnv(path), nil
}

// IsSameFile reports whether two paths refer to the same underlying file.
func (s *Service) IsSameFile(a, b string) (bool, error) {
	infoA, err := os.Stat(a)
	if err != nil {
		return false, errors.FromOS("stat", a, err)
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false, errors.FromOS("stat", b, err)
	}
	return os.SameFile(infoA, infoB), nil
}

// IsSubdirectory reports whether child is lexically contained in parent.
func (s *Service) IsSubdirectory(parent, child string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// GetExtension returns the file extension including the leading dot, or ""
// when there is none.
func (s *Service) GetExtension(path string) string {
	return filepath.Ext(path)
}

// File type names returned by GetFileType.
const (
	TypeFile      = "file"
	TypeDirectory = "directory"
	TypeSymlink   = "symlink"
	TypeMissing   = "missing"
	TypeOther     = "other"
)

// GetFileType classifies what sits at path without following symlinks.
func (s *Service) GetFileType(path string) string {
	info, err := os.Lstat(path)
	if err != nil {
		return TypeMissing
	}
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return TypeSymlink
	case info.IsDir():
		return TypeDirectory
	case info.Mode().IsRegular():
		return TypeFile
	default:
		return TypeOther
	}
}
