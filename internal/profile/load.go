package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ducban/minimalist-cv/schemas"
)

// Load reads a profile document from disk, validates it, and returns the
// normalized record. JSON and YAML documents are accepted; the extension
// picks the syntax (.yaml/.yml for YAML, anything else is read as JSON).
func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile document: %w", err)
	}
	p, err := Parse(raw, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("invalid profile document %s: %w", path, err)
	}
	return p, nil
}

// Parse validates and decodes a raw profile document. The document passes
// two gates: the JSON Schema (shape, unknown fields, rich text kinds) and
// the struct validator (required names, well-formed URLs and email).
func Parse(raw []byte, ext string) (*Profile, error) {
	doc := raw
	if ext == ".yaml" || ext == ".yml" {
		converted, err := yamlToJSON(raw)
		if err != nil {
			return nil, err
		}
		doc = converted
	}

	if err := schemas.ValidateProfile(doc); err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile document: %w", err)
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// yamlToJSON re-encodes a YAML document as JSON so the same schema and
// decoder handle both syntaxes.
func yamlToJSON(raw []byte) ([]byte, error) {
	var v interface{}
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	doc, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML document to JSON: %w", err)
	}
	return doc, nil
}
