// Package schema provides JSON Schema validation for the game data files
// this module reads: journal entries, world bundles, and language files.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed all:schemas
var schemaFS embed.FS

// Document kinds with an embedded schema.
const (
	KindJournal  = "journal"
	KindWorld    = "world"
	KindLanguage = "language"
)

var kinds = []string{KindJournal, KindWorld, KindLanguage}

// SchemaError represents a single schema validation error.
type SchemaError struct {
	Path       string `json:"path"`
	Message    string `json:"message"`
	ParseError bool   `json:"-"` // true when the error is a JSON parse or read failure
}

func (e SchemaError) String() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Validator validates game data JSON documents against the embedded schemas.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewValidator compiles the embedded schema for every document kind. Each
// schema is registered under its file name so that $ref paths between them
// (world.json refers to journal.json) resolve.
func NewValidator() (*Validator, error) {
	c := jsonschema.NewCompiler()
	for _, kind := range kinds {
		name := kind + ".json"
		data, err := schemaFS.ReadFile("schemas/" + name)
		if err != nil {
			return nil, fmt.Errorf("read embedded schema %s: %w", name, err)
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse embedded schema %s: %w", name, err)
		}
		if err := c.AddResource(name, doc); err != nil {
			return nil, fmt.Errorf("register schema %s: %w", name, err)
		}
	}

	v := &Validator{schemas: make(map[string]*jsonschema.Schema, len(kinds))}
	for _, kind := range kinds {
		s, err := c.Compile(kind + ".json")
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", kind, err)
		}
		v.schemas[kind] = s
	}
	return v, nil
}

// Validate reads, parses, and validates the JSON document at docPath
// against the schema for kind. Read and parse failures come back as a
// single SchemaError with ParseError set.
func (v *Validator) Validate(kind, docPath string) []SchemaError {
	data, err := os.ReadFile(docPath)
	if err != nil {
		return []SchemaError{{Message: fmt.Sprintf("cannot read file: %v", err), ParseError: true}}
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []SchemaError{{Message: fmt.Sprintf("invalid JSON: %v", err), ParseError: true}}
	}
	return v.ValidateDocument(kind, doc)
}

// ValidateDocument validates an already-parsed JSON document against the
// schema for kind.
func (v *Validator) ValidateDocument(kind string, doc any) []SchemaError {
	s, ok := v.schemas[kind]
	if !ok {
		return []SchemaError{{Message: fmt.Sprintf("unknown document kind %q", kind)}}
	}
	if err := s.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return flatten(ve)
		}
		return []SchemaError{{Message: err.Error()}}
	}
	return nil
}

// flatten walks a validation error's cause tree and keeps the leaves,
// which carry the concrete complaints.
func flatten(ve *jsonschema.ValidationError) []SchemaError {
	if len(ve.Causes) == 0 {
		return []SchemaError{{Path: instancePath(ve), Message: ve.Error()}}
	}
	var errs []SchemaError
	for _, cause := range ve.Causes {
		errs = append(errs, flatten(cause)...)
	}
	return errs
}

func instancePath(ve *jsonschema.ValidationError) string {
	if len(ve.InstanceLocation) == 0 {
		return ""
	}
	return "/" + strings.Join(ve.InstanceLocation, "/")
}
