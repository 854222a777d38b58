// Package document loads, prints and saves the YAML or JSON documents the
// beanpath CLI navigates. Decoded documents are plain Go values: map[string]any,
// []any and scalars.
package document

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"beanpath/errors"
	"beanpath/internal/config"
)

// FormatOf returns the format of a file from its extension; anything but
// ".json" is YAML.
func FormatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return config.FormatJSON
	}

	return config.FormatYAML
}

// LoadFile reads and decodes a document. An empty file decodes to an empty map.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", path)
	}

	return Parse(data)
}

// Parse decodes YAML data. JSON is accepted as the YAML subset it is.
func Parse(data []byte) (any, error) {
	var doc any

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse document")
	}

	if doc == nil {
		doc = map[string]any{}
	}

	return doc, nil
}

// ParseValue decodes a command-line value as a YAML scalar or flow collection:
// "42" is an int, "true" a bool, "[a, b]" a []any, "{k: v}" a map[string]any
// and "null" is nil. The empty string stays a string.
func ParseValue(s string) (any, error) {
	if s == "" {
		return "", nil
	}

	var v any

	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, errors.Wrapf(err, "failed to parse value %q", s)
	}

	return v, nil
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc any, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(doc), "failed to encode JSON")
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "failed to encode YAML")
		}

		return errors.Wrap(enc.Close(), "failed to encode YAML")
	default:
		return errors.Newf("unknown format %q", format)
	}
}

// Marshal returns doc encoded in the given format.
func Marshal(doc any, format string) ([]byte, error) {
	var buf bytes.Buffer

	if err := Encode(&buf, doc, format); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile encodes doc in the format of path and writes it there.
func WriteFile(doc any, path string) error {
	data, err := Marshal(doc, FormatOf(path))
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write document %s", path)
	}

	return nil
}
