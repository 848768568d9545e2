package fsops

import (
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"ducktyper/internal/errors"
)

// Encoding names a text encoding for read/write operations.
type Encoding string

const (
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF16   Encoding = "utf-16"
	EncodingUTF16LE Encoding = "utf-16le"
	EncodingUTF16BE Encoding = "utf-16be"
)

// normalizeEncoding canonicalizes an encoding name. The empty string means
// UTF-8. Hyphen placement variants of the UTF-16 family collapse to the
// canonical constants.
func normalizeEncoding(e Encoding) Encoding {
	name := strings.ToLower(strings.TrimSpace(string(e)))
	name = strings.ReplaceAll(name, "_", "-")
	switch name {
	case "", "utf8", "utf-8":
		return EncodingUTF8
	case "utf16", "utf-16":
		return EncodingUTF16
	case "utf-16-le", "utf16le", "utf-16le":
		return EncodingUTF16LE
	case "utf-16-be", "utf16be", "utf-16be":
		return EncodingUTF16BE
	default:
		return Encoding(name)
	}
}

// isUTF16 reports whether the encoding belongs to the UTF-16 family, which
// is written through the binary path so the byte-order mark is emitted
// exactly as the encoding implies.
func isUTF16(e Encoding) bool {
	switch e {
	case EncodingUTF16, EncodingUTF16LE, EncodingUTF16BE:
		return true
	}
	return false
}

// encodeText converts a UTF-8 Go string into the byte representation of the
// named encoding.
func encodeText(path string, content string, e Encoding) ([]byte, error) {
	switch e {
	case EncodingUTF8:
		return []byte(content), nil
	case EncodingUTF16:
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
		return enc.NewEncoder().Bytes([]byte(content))
	case EncodingUTF16LE:
		enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
		return enc.NewEncoder().Bytes([]byte(content))
	case EncodingUTF16BE:
		enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
		return enc.NewEncoder().Bytes([]byte(content))
	}
	codec, err := ianaindex.IANA.Encoding(string(e))
	if err != nil || codec == nil {
		return nil, errors.NewValidationError(path, "encoding", "unsupported encoding "+string(e))
	}
	return codec.NewEncoder().Bytes([]byte(content))
}

// decodeText converts raw file bytes in the named encoding into a Go string.
func decodeText(path string, data []byte, e Encoding) (string, error) {
	switch e {
	case EncodingUTF8:
		return string(data), nil
	case EncodingUTF16:
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case EncodingUTF16LE:
		enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case EncodingUTF16BE:
		enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	codec, err := ianaindex.IANA.Encoding(string(e))
	if err != nil || codec == nil {
		return "", errors.NewValidationError(path, "encoding", "unsupported encoding "+string(e))
	}
	out, err := codec.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
