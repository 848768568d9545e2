package fsops

import (
	"fmt"
	"path/filepath"

	"ducktyper/internal/errors"
)

// FindOptions controls pattern searches.
type FindOptions struct {
	Recursive     bool
	IncludeHidden bool
}

// DefaultFindOptions returns the standard search behavior: recursive,
// hidden entries excluded.
func DefaultFindOptions() FindOptions {
	return FindOptions{Recursive: true}
}

// FindFiles searches the directory at root for entries whose name matches
// the glob pattern, partitioned into files and directories. The search root
// must be an existing directory. Unreadable subdirectories are logged and
// skipped.
func (o *Operations) FindFiles(root PathInput, pattern string, opts FindOptions) FindResult {
	target := o.Resolve(root)

	info, err := o.fs.Stat(target)
	if err != nil {
		return FindResult{Outcome: failed(target, errors.FromOS("find", target, err))}
	}
	if !info.IsDir() {
		return FindResult{Outcome: failed(target,
			errors.NewPathError("find", target, errors.ErrValidation, "not a directory"))}
	}
	if _, err := filepath.Match(pattern, "probe"); err != nil {
		return FindResult{Outcome: failed(target,
			errors.NewValidationError(target, "pattern", "invalid pattern "+pattern))}
	}

	result := FindResult{
		Pattern:     pattern,
		Recursive:   opts.Recursive,
		Files:       []string{},
		Directories: []string{},
	}
	o.findIn(target, pattern, opts, &result)

	result.TotalMatches = len(result.Files) + len(result.Directories)
	result.Outcome = succeeded(target, fmt.Sprintf("%d matches for %q", result.TotalMatches, pattern))
	return result
}

func (o *Operations) findIn(dir, pattern string, opts FindOptions, result *FindResult) {
	entries, err := o.fs.ReadDir(dir)
	if err != nil {
		o.logger.Warn("skipping unreadable directory", "path", dir, "error", err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !opts.IncludeHidden && isHidden(name) {
			continue
		}

		full := filepath.Join(dir, name)
		matched, _ := filepath.Match(pattern, name)
		if matched {
			if entry.IsDir() {
				result.Directories = append(result.Directories, full)
			} else {
				result.Files = append(result.Files, full)
			}
		}
		if opts.Recursive && entry.IsDir() {
			o.findIn(full, pattern, opts, result)
		}
	}
}
