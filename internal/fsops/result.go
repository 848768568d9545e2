// Package fsops implements the ducktyper filesystem operation layer: path
// resolution against a base directory, atomic writes, checksums, structured
// (YAML/JSON) serialization, directory listing and pattern search.
//
// Every operation returns an immutable result value instead of an error for
// expected failure modes. Callers branch on Success; a failed result always
// carries a non-nil Err from the internal/errors taxonomy and a zero-valued
// payload, never a partially populated one.
package fsops

import (
	"io/fs"
	"time"
)

// Outcome is the shared base of every operation result.
type Outcome struct {
	Success bool
	Path    string
	Message string
	Err     error // nil iff Success
}

// pathRef makes every result usable as a PathInput for follow-up operations.
func (o Outcome) pathRef() string {
	return o.Path
}

// Failed reports whether the operation failed.
func (o Outcome) Failed() bool {
	return !o.Success
}

// ErrorMessage returns the error text, or "" for successful results.
func (o Outcome) ErrorMessage() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

func succeeded(path, message string) Outcome {
	return Outcome{Success: true, Path: path, Message: message}
}

func failed(path string, err error) Outcome {
	return Outcome{Path: path, Message: err.Error(), Err: err}
}

// OperationResult is the outcome of an operation with no payload beyond the
// path it acted on (delete, create directory).
type OperationResult struct {
	Outcome
}

// ReadResult is the outcome of reading a file as text or bytes. Content is
// zero-valued ("" or nil) when the read failed.
type ReadResult[T ~string | ~[]byte] struct {
	Outcome
	Content  T
	Encoding Encoding // set for text reads only
}

// WriteResult is the outcome of writing, copying or moving. BytesWritten is
// populated only on success; Checksum only when requested; OriginalPath only
// for move operations.
type WriteResult struct {
	Outcome
	BytesWritten int64
	Checksum     string
	OriginalPath string
}

// FileInfoResult is a metadata snapshot of a path. A missing path is a
// successful result with Exists=false; only I/O failures while checking are
// errors. All metadata fields are zero-valued when Exists is false.
type FileInfoResult struct {
	Outcome
	Exists      bool
	IsFile      bool
	IsDir       bool
	IsSymlink   bool
	Size        int64
	Modified    time.Time
	Created     time.Time
	Owner       string // best effort, empty where the platform has no lookup
	Permissions fs.FileMode
	MimeType    string // files only
}

// DirectoryInfoResult is a listing snapshot of a directory.
type DirectoryInfoResult struct {
	Outcome
	Files            []string
	Directories      []string
	TotalFiles       int
	TotalDirectories int
	TotalSize        int64
	IsEmpty          bool
}

// FindResult is a pattern-search snapshot.
type FindResult struct {
	Outcome
	Pattern      string
	Recursive    bool
	Files        []string
	Directories  []string
	TotalMatches int
}

// DataResult is the outcome of reading structured data. Data is an empty map
// when the operation failed; the contract of this layer only supports
// mapping roots, never scalars or lists.
type DataResult struct {
	Outcome
	Data   map[string]any
	Format string // "yaml" or "json"
}
