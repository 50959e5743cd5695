package settings

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_settings.toml
var sampleSettings string

// ErrParse indicates a structurally malformed settings document.
var ErrParse = errors.New("parse error")

// ParseJSON decodes a JSON settings document and normalizes its mount
// paths. A document with a bad mount source is rejected as a whole.
func ParseJSON(content []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", ErrParse, err)
	}
	if err := doc.cleanPaths(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseTOML decodes a TOML settings document and normalizes its mount
// paths.
func ParseTOML(content []byte) (*Document, error) {
	var doc Document
	if err := toml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode toml: %w", ErrParse, err)
	}
	if err := doc.cleanPaths(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseFile reads a settings document from disk, choosing the format by
// file extension (.json or .toml).
func ParseFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(content)
	case ".toml":
		return ParseTOML(content)
	default:
		return nil, fmt.Errorf("%w: unsupported settings format %q", ErrParse, filepath.Ext(path))
	}
}

// EncodeJSON serializes a document to indented JSON. Absent fields are
// omitted entirely so a later import does not spuriously clear state.
func EncodeJSON(doc *Document) ([]byte, error) {
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(encoded, '\n'), nil
}

// EncodeTOML serializes a document to TOML with absent fields omitted.
func EncodeTOML(doc *Document) ([]byte, error) {
	encoded, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return encoded, nil
}

// CreateSample writes a sample settings document to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleSettings), 0o644); err != nil {
		return fmt.Errorf("write sample settings: %w", err)
	}
	return nil
}
