package fsops

import (
	"log/slog"

	"ducktyper/internal/adapters/filesystem"
	"ducktyper/internal/domain"
	"ducktyper/internal/logging"
)

// Operations implements every filesystem capability of this layer against a
// single base directory. The concrete type satisfies the Reader, Writer,
// Informer, Lister, Finder and Serializer interfaces; the service façade
// composes them by delegation.
type Operations struct {
	baseDir     string
	fs          domain.FileSystemAdapter
	logger      *slog.Logger
	yamlEnabled bool
}

// Option configures an Operations instance at construction time.
type Option func(*Operations)

// WithAdapter swaps the OS adapter, mainly for failure injection in tests.
func WithAdapter(fs domain.FileSystemAdapter) Option {
	return func(o *Operations) {
		o.fs = fs
	}
}

// WithLogger sets the logger used for per-item diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Operations) {
		o.logger = logger
	}
}

// WithoutYAML disables the YAML capability. Both YAML operations then
// short-circuit to a typed failure instead of touching the filesystem.
func WithoutYAML() Option {
	return func(o *Operations) {
		o.yamlEnabled = false
	}
}

// NewOperations creates an Operations instance bound to baseDir. The base
// directory is fixed for the lifetime of the instance.
func NewOperations(baseDir string, opts ...Option) *Operations {
	o := &Operations{
		baseDir:     baseDir,
		fs:          filesystem.New(),
		logger:      logging.NewNopLogger(),
		yamlEnabled: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// BaseDir returns the base directory relative paths resolve against.
func (o *Operations) BaseDir() string {
	return o.baseDir
}

// Resolve resolves a path input against the base directory without touching
// the filesystem.
func (o *Operations) Resolve(path PathInput) string {
	return resolve(o.baseDir, path)
}
