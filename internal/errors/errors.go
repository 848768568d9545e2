// Package errors provides the error taxonomy for ducktyper filesystem
// operations.
//
// Every failed operation maps onto one of the sentinel categories below:
// - NotFound errors
// - Permission errors
// - Already-exists conflicts
// - Format errors (unparseable YAML/JSON)
// - Validation errors (parsed content with the wrong shape)
// - Generic I/O errors
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error categories for filesystem operations
var (
	ErrNotFound         = errors.New("path not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrAlreadyExists    = errors.New("path already exists")
	ErrFormat           = errors.New("format error")
	ErrValidation       = errors.New("validation error")
	ErrIO               = errors.New("i/o error")
	ErrUnsupported      = errors.New("operation not supported")
)

// PathError represents a failed operation on a filesystem path.
type PathError struct {
	Op      string
	Path    string
	Kind    error // one of the sentinel categories
	Message string
	Err     error
}

func (e *PathError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func (e *PathError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// NewPathError creates a new path error with an explicit category.
func NewPathError(op, path string, kind error, message string) *PathError {
	return &PathError{Op: op, Path: path, Kind: kind, Message: message}
}

// NewNotFound creates a not-found error for a path.
func NewNotFound(op, path string) *PathError {
	return &PathError{Op: op, Path: path, Kind: ErrNotFound, Message: "no such file or directory"}
}

// NewPermissionDenied creates a permission error for a path.
func NewPermissionDenied(op, path string) *PathError {
	return &PathError{Op: op, Path: path, Kind: ErrPermissionDenied, Message: "permission denied"}
}

// NewAlreadyExists creates an already-exists conflict for a path.
func NewAlreadyExists(op, path string) *PathError {
	return &PathError{Op: op, Path: path, Kind: ErrAlreadyExists, Message: "already exists"}
}

// FormatError represents structured-data content that failed to parse or
// parsed to an unexpected shape.
type FormatError struct {
	Path    string
	Format  string // "yaml" or "json"
	Message string
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s in %s: %s", e.Format, e.Path, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return errors.Is(target, ErrFormat)
}

// NewFormatError creates a new format error.
func NewFormatError(path, format, message string, err error) *FormatError {
	return &FormatError{Path: path, Format: format, Message: message, Err: err}
}

// ValidationError represents parsed content that fails the structural
// contract of this layer (for example a YAML document whose root is a list).
type ValidationError struct {
	Path    string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Path, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return errors.Is(target, ErrValidation)
}

// NewValidationError creates a new validation error.
func NewValidationError(path, rule, message string) *ValidationError {
	return &ValidationError{Path: path, Rule: rule, Message: message}
}

// FromOS maps an error returned by the OS into this package's taxonomy.
// A nil error maps to nil.
func FromOS(op, path string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &PathError{Op: op, Path: path, Kind: ErrNotFound, Message: "no such file or directory", Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &PathError{Op: op, Path: path, Kind: ErrPermissionDenied, Message: "permission denied", Err: err}
	case errors.Is(err, fs.ErrExist):
		return &PathError{Op: op, Path: path, Kind: ErrAlreadyExists, Message: "already exists", Err: err}
	default:
		return &PathError{Op: op, Path: path, Kind: ErrIO, Err: err}
	}
}

// IsNotFound checks if an error represents a missing path.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPermissionDenied checks if an error represents denied access.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsAlreadyExists checks if an error represents an existing destination.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsFormat checks if an error is a parse failure.
func IsFormat(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsValidation checks if an error is a structural validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
