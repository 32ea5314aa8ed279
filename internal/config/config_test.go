package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromReader(t *testing.T) {
	const doc = `
language: lang/en.json
format: json
strict: true
max_localize_depth: 4
lint_rules:
  - syntax
  - references
`
	opts, err := LoadFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	if opts.Language != "lang/en.json" {
		t.Errorf("Language = %q", opts.Language)
	}
	if opts.Format != "json" {
		t.Errorf("Format = %q", opts.Format)
	}
	if !opts.Strict {
		t.Error("Strict = false, want true")
	}
	if opts.MaxLocalizeDepth != 4 {
		t.Errorf("MaxLocalizeDepth = %d", opts.MaxLocalizeDepth)
	}
	if len(opts.LintRules) != 2 || opts.LintRules[0] != "syntax" || opts.LintRules[1] != "references" {
		t.Errorf("LintRules = %v", opts.LintRules)
	}
}

func TestLoadFromReaderDefaults(t *testing.T) {
	opts, err := LoadFromReader(strings.NewReader("language: en.json\n"))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	if opts.Format != "" || opts.Strict || opts.MaxLocalizeDepth != 0 || len(opts.LintRules) != 0 {
		t.Errorf("unset fields not zero-valued: %+v", opts)
	}
}

func TestLoadFromReaderUnknownField(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("languge: en.json\n"))
	if err == nil {
		t.Fatal("LoadFromReader() accepted unknown field")
	}
	if !strings.Contains(err.Error(), "decode yaml") {
		t.Errorf("error = %v, want decode error", err)
	}
}

func TestLoadFromReaderBadFormat(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("format: xml\n"))
	if err == nil {
		t.Fatal("LoadFromReader() accepted format xml")
	}
	if !strings.Contains(err.Error(), "format") {
		t.Errorf("error = %v, want format complaint", err)
	}
}

func TestLoadFromReaderNegativeDepth(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("max_localize_depth: -1\n"))
	if err == nil {
		t.Fatal("LoadFromReader() accepted negative depth")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	err := Validate(&Options{Format: "xml", MaxLocalizeDepth: -2})
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "format") || !strings.Contains(msg, "max_localize_depth") {
		t.Errorf("error = %v, want both failures reported", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	if err := os.WriteFile(path, []byte("format: text\nstrict: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if opts.Format != "text" || !opts.Strict {
		t.Errorf("opts = %+v", opts)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() = nil error for missing file")
	}
}
