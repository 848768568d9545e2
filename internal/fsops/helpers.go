package fsops

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	stderrors "errors"
	"hash"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"ducktyper/internal/errors"
)

const (
	filePermissions = 0o644
	dirPermissions  = 0o755
	checksumBufSize = 64 * 1024
)

// DefaultChecksumAlgorithm is used when no algorithm is named.
const DefaultChecksumAlgorithm = "sha256"

// atomicWrite writes data to a temporary file in the target's directory and
// renames it into place, so readers never observe a partial write. The temp
// file is removed on every failure path. Returns the final path, which may
// differ from the input in case normalization on some platforms.
func (o *Operations) atomicWrite(path string, data []byte, perm os.FileMode) (string, error) {
	dir := filepath.Dir(path)
	tmp, err := o.fs.CreateTemp(dir, ".ducktyper-tmp-*")
	if err != nil {
		return "", errors.FromOS("write", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		o.fs.Remove(tmpName)
		return "", errors.FromOS("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		o.fs.Remove(tmpName)
		return "", errors.FromOS("write", path, err)
	}
	if err := o.fs.Chmod(tmpName, perm); err != nil {
		o.fs.Remove(tmpName)
		return "", errors.FromOS("write", path, err)
	}
	if err := o.fs.Rename(tmpName, path); err != nil {
		o.fs.Remove(tmpName)
		return "", errors.FromOS("write", path, err)
	}
	return path, nil
}

// directWrite writes data to path in one shot, without the temp-and-rename
// dance.
func (o *Operations) directWrite(path string, data []byte, perm os.FileMode) (string, error) {
	if err := o.fs.WriteFile(path, data, perm); err != nil {
		return "", errors.FromOS("write", path, err)
	}
	return path, nil
}

func newDigest(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case "", DefaultChecksumAlgorithm:
		return sha256.New(), nil
	case "sha512":
		return sha512.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "md5":
		return md5.New(), nil
	default:
		return nil, errors.NewValidationError("", "checksum_algorithm",
			"unsupported checksum algorithm "+algorithm)
	}
}

// checksumFile streams the file through the named digest in fixed-size
// chunks and returns the hex digest.
func (o *Operations) checksumFile(path, algorithm string) (string, error) {
	digest, err := newDigest(algorithm)
	if err != nil {
		return "", err
	}

	f, err := o.fs.Open(path)
	if err != nil {
		return "", errors.FromOS("checksum", path, err)
	}
	defer f.Close()

	buf := make([]byte, checksumBufSize)
	if _, err := io.CopyBuffer(digest, f, buf); err != nil {
		return "", errors.FromOS("checksum", path, err)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// ensureDir creates path and all missing parents. With existOK false an
// existing directory is an already-exists conflict.
func (o *Operations) ensureDir(path string, existOK bool) error {
	if !existOK {
		if _, err := o.fs.Stat(path); err == nil {
			return errors.NewAlreadyExists("mkdir", path)
		}
	}
	if err := o.fs.MkdirAll(path, dirPermissions); err != nil {
		return errors.FromOS("mkdir", path, err)
	}
	return nil
}

// safeCopy copies a file or directory tree. Returns bytes transferred,
// which is 0 for directories.
func (o *Operations) safeCopy(src, dst string, overwrite bool) (int64, error) {
	info, err := o.fs.Stat(src)
	if err != nil {
		return 0, errors.FromOS("copy", src, err)
	}

	if _, err := o.fs.Stat(dst); err == nil && !overwrite {
		return 0, errors.NewAlreadyExists("copy", dst)
	}

	if info.IsDir() {
		if err := o.copyTree(src, dst); err != nil {
			return 0, err
		}
		return 0, nil
	}
	return o.copyFile(src, dst, info.Mode().Perm())
}

func (o *Operations) copyFile(src, dst string, perm os.FileMode) (int64, error) {
	data, err := o.fs.ReadFile(src)
	if err != nil {
		return 0, errors.FromOS("copy", src, err)
	}
	if err := o.fs.MkdirAll(filepath.Dir(dst), dirPermissions); err != nil {
		return 0, errors.FromOS("copy", dst, err)
	}
	if err := o.fs.WriteFile(dst, data, perm); err != nil {
		return 0, errors.FromOS("copy", dst, err)
	}
	return int64(len(data)), nil
}

func (o *Operations) copyTree(src, dst string) error {
	if err := o.fs.MkdirAll(dst, dirPermissions); err != nil {
		return errors.FromOS("copy", dst, err)
	}
	entries, err := o.fs.ReadDir(src)
	if err != nil {
		return errors.FromOS("copy", src, err)
	}
	for _, entry := range entries {
		srcChild := filepath.Join(src, entry.Name())
		dstChild := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := o.copyTree(srcChild, dstChild); err != nil {
				return err
			}
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return errors.FromOS("copy", srcChild, err)
		}
		if _, err := o.copyFile(srcChild, dstChild, info.Mode().Perm()); err != nil {
			return err
		}
	}
	return nil
}

// safeMove renames src to dst, falling back to copy-and-delete when the
// rename crosses filesystems. Returns bytes transferred (0 for directories).
func (o *Operations) safeMove(src, dst string, overwrite bool) (int64, error) {
	info, err := o.fs.Stat(src)
	if err != nil {
		return 0, errors.FromOS("move", src, err)
	}

	if _, err := o.fs.Stat(dst); err == nil {
		if !overwrite {
			return 0, errors.NewAlreadyExists("move", dst)
		}
		if err := o.fs.RemoveAll(dst); err != nil {
			return 0, errors.FromOS("move", dst, err)
		}
	}

	var size int64
	if !info.IsDir() {
		size = info.Size()
	}

	if err := o.fs.Rename(src, dst); err != nil {
		if !stderrors.Is(err, syscall.EXDEV) {
			return 0, errors.FromOS("move", src, err)
		}
		// Cross-device rename: copy then delete the source.
		if _, copyErr := o.safeCopy(src, dst, overwrite); copyErr != nil {
			return 0, copyErr
		}
		if err := o.fs.RemoveAll(src); err != nil {
			return 0, errors.FromOS("move", src, err)
		}
	}
	return size, nil
}

// safeDelete removes a file or directory tree. A missing path is a silent
// no-op returning false when missingOK is set, otherwise a not-found error.
func (o *Operations) safeDelete(path string, missingOK bool) (bool, error) {
	info, err := o.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if missingOK {
				return false, nil
			}
			return false, errors.NewNotFound("delete", path)
		}
		return false, errors.FromOS("delete", path, err)
	}

	if info.IsDir() {
		err = o.fs.RemoveAll(path)
	} else {
		err = o.fs.Remove(path)
	}
	if err != nil {
		return false, errors.FromOS("delete", path, err)
	}
	return true, nil
}
