// Package filesystem provides the OS-backed implementation of the
// domain.FileSystemAdapter contract.
package filesystem

import (
	"io/fs"
	"os"
)

// Adapter provides file system operations backed by the os package.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

// Stat returns file info, following symlinks.
func (a *Adapter) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info without following symlinks.
func (a *Adapter) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// ReadFile reads a file from disk.
func (a *Adapter) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file.
func (a *Adapter) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Open opens a file for reading.
func (a *Adapter) Open(path string) (*os.File, error) {
	return os.Open(path)
}

// CreateTemp creates a temporary file in dir.
func (a *Adapter) CreateTemp(dir, pattern string) (*os.File, error) {
	return os.CreateTemp(dir, pattern)
}

// Rename renames a file or directory.
func (a *Adapter) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Remove deletes a file or empty directory.
func (a *Adapter) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll deletes a path and any children it contains.
func (a *Adapter) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// MkdirAll creates a directory and all necessary parents.
func (a *Adapter) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// ReadDir reads directory contents.
func (a *Adapter) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Chmod changes the file permissions.
func (a *Adapter) Chmod(path string, perm os.FileMode) error {
	return os.Chmod(path, perm)
}
