package client

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"mcpman/internal/errors"
	"mcpman/pkg/fileutil"
)

// Document is a client configuration file decoded structurally. Working on
// the raw document rather than typed structs lets adapters edit the entries
// they own while every unknown field in the file survives a rewrite.
type Document map[string]any

// ReadJSONDocument loads a JSON config file into a Document. Numbers are
// decoded as json.Number so they re-encode exactly as written.
//
// A missing file returns (nil, nil); callers substitute their canonical
// empty document. A present but undecodable file returns an error
// classified as ErrConfigParse.
func ReadJSONDocument(path string) (Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrapf(errors.ErrConfigParse, "parsing %s: %v", path, err)
	}
	return doc, nil
}

// WriteJSONDocument writes a Document as indented JSON, creating parent
// directories as needed. The write is atomic.
func WriteJSONDocument(path string, doc Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	return fileutil.AtomicWriteJSON(path, doc)
}

// ReadTOMLDocument loads a TOML config file into a Document, with the same
// missing-file and parse-error contract as ReadJSONDocument.
func ReadTOMLDocument(path string) (Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(errors.ErrConfigParse, "parsing %s: %v", path, err)
	}
	return doc, nil
}

// WriteTOMLDocument writes a Document as TOML, creating parent directories
// as needed. The write is atomic.
func WriteTOMLDocument(path string, doc Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	return fileutil.AtomicWriteTOML(path, doc)
}

// ChildMap returns m[key] when it is an object, nil otherwise.
func ChildMap(m map[string]any, key string) map[string]any {
	child, _ := m[key].(map[string]any)
	return child
}

// ChildSlice returns m[key] when it is an array, nil otherwise.
func ChildSlice(m map[string]any, key string) []any {
	child, _ := m[key].([]any)
	return child
}

// StringValue returns m[key] when it is a string, "" otherwise.
func StringValue(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// StringSlice returns m[key] as a string slice, skipping non-string
// elements. Returns nil when the key is absent or not an array.
func StringSlice(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// StringMap returns m[key] as a string-to-string map, skipping non-string
// values. Returns nil when the key is absent or not an object.
func StringMap(m map[string]any, key string) map[string]string {
	raw, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// AnySlice converts a string slice to []any, the shape JSON decoding
// produces. Adapters use it when building entries inside a Document.
func AnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// AnyMap converts a string map to map[string]any, the shape JSON decoding
// produces.
func AnyMap(values map[string]string) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
