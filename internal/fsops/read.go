package fsops

import (
	"fmt"

	"ducktyper/internal/errors"
)

// ReadText reads the whole file at path as text in the named encoding. The
// empty encoding means UTF-8. Content is "" on failure.
func (o *Operations) ReadText(path PathInput, encoding Encoding) ReadResult[string] {
	target := o.Resolve(path)
	enc := normalizeEncoding(encoding)

	data, err := o.fs.ReadFile(target)
	if err != nil {
		return ReadResult[string]{Outcome: failed(target, errors.FromOS("read", target, err))}
	}

	content, err := decodeText(target, data, enc)
	if err != nil {
		return ReadResult[string]{Outcome: failed(target, err)}
	}

	return ReadResult[string]{
		Outcome:  succeeded(target, fmt.Sprintf("read %d characters", len([]rune(content)))),
		Content:  content,
		Encoding: enc,
	}
}

// ReadBinary reads the whole file at path as bytes. Content is nil on
// failure.
func (o *Operations) ReadBinary(path PathInput) ReadResult[[]byte] {
	target := o.Resolve(path)

	data, err := o.fs.ReadFile(target)
	if err != nil {
		return ReadResult[[]byte]{Outcome: failed(target, errors.FromOS("read", target, err))}
	}

	return ReadResult[[]byte]{
		Outcome: succeeded(target, fmt.Sprintf("read %d bytes", len(data))),
		Content: data,
	}
}

// Checksum streams the file at path through the named digest algorithm
// (sha256 when empty) and returns the hex digest.
func (o *Operations) Checksum(path PathInput, algorithm string) ChecksumResult {
	target := o.Resolve(path)

	sum, err := o.checksumFile(target, algorithm)
	if err != nil {
		return ChecksumResult{Outcome: failed(target, err)}
	}

	if algorithm == "" {
		algorithm = DefaultChecksumAlgorithm
	}
	return ChecksumResult{
		Outcome:   succeeded(target, fmt.Sprintf("%s checksum computed", algorithm)),
		Algorithm: algorithm,
		Checksum:  sum,
	}
}

// ChecksumResult is the outcome of a standalone checksum computation.
type ChecksumResult struct {
	Outcome
	Algorithm string
	Checksum  string
}
