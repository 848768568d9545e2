package fsops

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"ducktyper/internal/errors"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

const yamlIndent = 2

// JSONOptions controls JSON writes.
type JSONOptions struct {
	Atomic bool
	Indent int
}

// DefaultJSONOptions returns the standard JSON write behavior: atomic,
// 2-space indent.
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{Atomic: true, Indent: 2}
}

// ReadYAML reads and parses the YAML file at path. An empty document parses
// to an empty map; a document whose root is not a mapping is a validation
// failure.
func (o *Operations) ReadYAML(path PathInput) DataResult {
	target := o.Resolve(path)
	if !o.yamlEnabled {
		return DataResult{
			Outcome: failed(target, errors.NewPathError("read_yaml", target,
				errors.ErrUnsupported, "yaml support not available")),
			Data:   map[string]any{},
			Format: FormatYAML,
		}
	}

	read := o.ReadText(path, EncodingUTF8)
	if read.Failed() {
		return DataResult{Outcome: read.Outcome, Data: map[string]any{}, Format: FormatYAML}
	}

	var parsed any
	if err := yaml.Unmarshal([]byte(read.Content), &parsed); err != nil {
		return DataResult{
			Outcome: failed(target, errors.NewFormatError(target, FormatYAML, "cannot parse document", err)),
			Data:    map[string]any{},
			Format:  FormatYAML,
		}
	}

	data, err := requireMapping(target, FormatYAML, parsed)
	if err != nil {
		return DataResult{Outcome: failed(target, err), Data: map[string]any{}, Format: FormatYAML}
	}
	return DataResult{
		Outcome: succeeded(target, fmt.Sprintf("parsed %d keys", len(data))),
		Data:    data,
		Format:  FormatYAML,
	}
}

// WriteYAML serializes data as block-style YAML and writes it to path.
func (o *Operations) WriteYAML(path PathInput, data map[string]any, atomic bool) WriteResult {
	target := o.Resolve(path)
	if !o.yamlEnabled {
		return WriteResult{Outcome: failed(target, errors.NewPathError("write_yaml", target,
			errors.ErrUnsupported, "yaml support not available"))}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(data); err != nil {
		enc.Close()
		return WriteResult{Outcome: failed(target, errors.NewFormatError(target, FormatYAML, "cannot serialize data", err))}
	}
	if err := enc.Close(); err != nil {
		return WriteResult{Outcome: failed(target, errors.NewFormatError(target, FormatYAML, "cannot serialize data", err))}
	}

	opts := DefaultWriteOptions()
	opts.Atomic = atomic
	return o.WriteText(Path(target), buf.String(), opts)
}

// ReadJSON reads and parses the JSON file at path. A document whose root is
// not an object is a validation failure.
func (o *Operations) ReadJSON(path PathInput) DataResult {
	target := o.Resolve(path)

	read := o.ReadText(path, EncodingUTF8)
	if read.Failed() {
		return DataResult{Outcome: read.Outcome, Data: map[string]any{}, Format: FormatJSON}
	}

	var parsed any
	if err := json.Unmarshal([]byte(read.Content), &parsed); err != nil {
		return DataResult{
			Outcome: failed(target, errors.NewFormatError(target, FormatJSON, "cannot parse document", err)),
			Data:    map[string]any{},
			Format:  FormatJSON,
		}
	}

	data, err := requireMapping(target, FormatJSON, parsed)
	if err != nil {
		return DataResult{Outcome: failed(target, err), Data: map[string]any{}, Format: FormatJSON}
	}
	return DataResult{
		Outcome: succeeded(target, fmt.Sprintf("parsed %d keys", len(data))),
		Data:    data,
		Format:  FormatJSON,
	}
}

// WriteJSON serializes data as indented JSON with literal non-ASCII text
// and writes it to path.
func (o *Operations) WriteJSON(path PathInput, data map[string]any, opts JSONOptions) WriteResult {
	target := o.Resolve(path)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", opts.Indent))
	}
	if err := enc.Encode(data); err != nil {
		return WriteResult{Outcome: failed(target, errors.NewFormatError(target, FormatJSON, "cannot serialize data", err))}
	}

	wopts := DefaultWriteOptions()
	wopts.Atomic = opts.Atomic
	return o.WriteText(Path(target), buf.String(), wopts)
}

// requireMapping enforces the mapping-root contract of this layer. A nil
// root (empty document) coerces to an empty map; anything else that is not
// a mapping is rejected.
func requireMapping(path, format string, parsed any) (map[string]any, error) {
	switch v := parsed.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, errors.NewValidationError(path, "mapping_root",
			fmt.Sprintf("%s root must be a mapping, got %T", format, parsed))
	}
}
