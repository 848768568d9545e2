// Package domain defines the low-level contracts that the filesystem
// operation layer is built on.
package domain

import (
	"io/fs"
	"os"
)

// FileSystemAdapter defines the OS-level surface used by the operation
// helpers. Keeping it behind an interface lets tests inject failures at
// specific points (for example a rename that fails mid atomic write).
type FileSystemAdapter interface {
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Open(path string) (*os.File, error)
	CreateTemp(dir, pattern string) (*os.File, error)
	Rename(oldpath, newpath string) error
	Remove(path string) error
	RemoveAll(path string) error
	MkdirAll(path string, perm os.FileMode) error
	ReadDir(path string) ([]fs.DirEntry, error)
	Chmod(path string, perm os.FileMode) error
}
