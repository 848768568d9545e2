package fsops

import (
	"fmt"
	"path/filepath"

	"ducktyper/internal/errors"
)

// WriteOptions controls text and binary writes.
type WriteOptions struct {
	Encoding Encoding // text writes only; empty means UTF-8
	Atomic   bool
	Checksum bool // read the written file back and record its sha256
}

// DefaultWriteOptions returns the standard write behavior: UTF-8, atomic,
// no checksum.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{Encoding: EncodingUTF8, Atomic: true}
}

// WriteText writes content to path in the named encoding, creating missing
// parent directories. UTF-16 family encodings are converted to bytes first
// (including the byte-order mark the encoding implies) and always written
// through the binary path, so the BOM is emitted reliably.
func (o *Operations) WriteText(path PathInput, content string, opts WriteOptions) WriteResult {
	target := o.Resolve(path)
	enc := normalizeEncoding(opts.Encoding)

	data, err := encodeText(target, content, enc)
	if err != nil {
		return WriteResult{Outcome: failed(target, err)}
	}

	return o.writeBytes(target, data, opts.Atomic, opts.Checksum,
		fmt.Sprintf("wrote %d characters", len([]rune(content))))
}

// WriteBinary writes raw bytes to path, creating missing parent
// directories.
func (o *Operations) WriteBinary(path PathInput, content []byte, opts WriteOptions) WriteResult {
	target := o.Resolve(path)
	return o.writeBytes(target, content, opts.Atomic, opts.Checksum,
		fmt.Sprintf("wrote %d bytes", len(content)))
}

func (o *Operations) writeBytes(target string, data []byte, atomic, checksum bool, message string) WriteResult {
	if err := o.fs.MkdirAll(filepath.Dir(target), dirPermissions); err != nil {
		return WriteResult{Outcome: failed(target, errors.FromOS("write", target, err))}
	}

	var final string
	var err error
	if atomic {
		final, err = o.atomicWrite(target, data, filePermissions)
	} else {
		final, err = o.directWrite(target, data, filePermissions)
	}
	if err != nil {
		return WriteResult{Outcome: failed(target, err)}
	}

	result := WriteResult{
		Outcome:      succeeded(final, message),
		BytesWritten: int64(len(data)),
	}
	if checksum {
		// Hashing reads the just-written file back; this layer is not a
		// hot path, so the extra read is acceptable.
		sum, err := o.checksumFile(final, DefaultChecksumAlgorithm)
		if err != nil {
			return WriteResult{Outcome: failed(final, err)}
		}
		result.Checksum = sum
	}
	return result
}

// Copy copies src to dst. An existing destination is an error unless
// overwrite is set. Bytes transferred is 0 for directory trees.
func (o *Operations) Copy(src, dst PathInput, overwrite bool) WriteResult {
	srcPath := o.Resolve(src)
	dstPath := o.Resolve(dst)

	bytes, err := o.safeCopy(srcPath, dstPath, overwrite)
	if err != nil {
		return WriteResult{Outcome: failed(dstPath, err)}
	}
	return WriteResult{
		Outcome:      succeeded(dstPath, fmt.Sprintf("copied %s to %s", srcPath, dstPath)),
		BytesWritten: bytes,
	}
}

// Move renames src to dst, copying across filesystems when necessary.
func (o *Operations) Move(src, dst PathInput, overwrite bool) WriteResult {
	srcPath := o.Resolve(src)
	dstPath := o.Resolve(dst)

	bytes, err := o.safeMove(srcPath, dstPath, overwrite)
	if err != nil {
		return WriteResult{Outcome: failed(dstPath, err)}
	}
	return WriteResult{
		Outcome:      succeeded(dstPath, fmt.Sprintf("moved %s to %s", srcPath, dstPath)),
		BytesWritten: bytes,
		OriginalPath: srcPath,
	}
}

// Delete removes path. A missing path succeeds silently when missingOK is
// set.
func (o *Operations) Delete(path PathInput, missingOK bool) OperationResult {
	target := o.Resolve(path)

	removed, err := o.safeDelete(target, missingOK)
	if err != nil {
		return OperationResult{Outcome: failed(target, err)}
	}
	message := "deleted"
	if !removed {
		message = "nothing to delete"
	}
	return OperationResult{Outcome: succeeded(target, message)}
}

// CreateDirectory creates path and all missing parents. An existing
// directory is an error only when existOK is false.
func (o *Operations) CreateDirectory(path PathInput, existOK bool) OperationResult {
	target := o.Resolve(path)

	if err := o.ensureDir(target, existOK); err != nil {
		return OperationResult{Outcome: failed(target, err)}
	}
	return OperationResult{Outcome: succeeded(target, "directory created")}
}
