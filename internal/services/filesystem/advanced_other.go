//go:build !linux && !darwin

package filesystem

import (
	"os"

	"ducktyper/internal/errors"
)

func diskUsage(string) (DiskUsage, error) {
	return DiskUsage{}, errors.ErrUnsupported
}

func accessWritable(path string) bool {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func probeLock(string) (bool, error) {
	return false, errors.ErrUnsupported
}
