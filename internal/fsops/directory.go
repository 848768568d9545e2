package fsops

import (
	"fmt"
	"path/filepath"
	"strings"

	"ducktyper/internal/errors"
)

// ListOptions controls directory listings. The zero value lists every
// non-hidden entry.
type ListOptions struct {
	Pattern       string // glob applied to entry names; empty matches all
	IncludeHidden bool
}

// ListDirectory produces a listing snapshot of the directory at path.
// Hidden entries are skipped unless requested; entries failing the pattern
// are skipped; per-item stat failures are logged and skipped rather than
// aborting the listing. A missing or non-directory path is a failure.
func (o *Operations) ListDirectory(path PathInput, opts ListOptions) DirectoryInfoResult {
	target := o.Resolve(path)

	info, err := o.fs.Stat(target)
	if err != nil {
		return DirectoryInfoResult{Outcome: failed(target, errors.FromOS("list", target, err))}
	}
	if !info.IsDir() {
		return DirectoryInfoResult{Outcome: failed(target,
			errors.NewPathError("list", target, errors.ErrValidation, "not a directory"))}
	}

	entries, err := o.fs.ReadDir(target)
	if err != nil {
		return DirectoryInfoResult{Outcome: failed(target, errors.FromOS("list", target, err))}
	}

	result := DirectoryInfoResult{
		Files:       []string{},
		Directories: []string{},
	}
	for _, entry := range entries {
		name := entry.Name()
		if !opts.IncludeHidden && isHidden(name) {
			continue
		}
		if opts.Pattern != "" {
			matched, err := filepath.Match(opts.Pattern, name)
			if err != nil {
				return DirectoryInfoResult{Outcome: failed(target,
					errors.NewValidationError(target, "pattern", "invalid pattern "+opts.Pattern))}
			}
			if !matched {
				continue
			}
		}

		full := filepath.Join(target, name)
		if entry.IsDir() {
			result.Directories = append(result.Directories, full)
			continue
		}
		entryInfo, err := entry.Info()
		if err != nil {
			o.logger.Warn("skipping unreadable entry", "path", full, "error", err)
			continue
		}
		result.Files = append(result.Files, full)
		result.TotalSize += entryInfo.Size()
	}

	result.TotalFiles = len(result.Files)
	result.TotalDirectories = len(result.Directories)
	result.IsEmpty = result.TotalFiles == 0 && result.TotalDirectories == 0
	result.Outcome = succeeded(target,
		fmt.Sprintf("%d files, %d directories", result.TotalFiles, result.TotalDirectories))
	return result
}

// isHidden reports whether a name is hidden by Unix convention. The current
// and parent directory entries never appear in listings, so a plain prefix
// check is enough.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
