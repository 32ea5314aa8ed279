// Package config loads the optional YAML options file for foundry-render.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Options controls rendering and linting. Command-line flags override any
// value set here.
type Options struct {
	// Language is the path to a language JSON file providing the
	// localization dictionary.
	Language string `yaml:"language"`
	// Format selects CLI output: "text" or "json". Empty means text.
	Format string `yaml:"format"`
	// Strict makes lint warnings count as failures.
	Strict bool `yaml:"strict"`
	// MaxLocalizeDepth overrides the localization recursion ceiling.
	// Zero keeps the default.
	MaxLocalizeDepth int `yaml:"max_localize_depth"`
	// LintRules restricts linting to the named rules. Empty runs all.
	LintRules []string `yaml:"lint_rules"`
}

// Load reads the YAML options file at path and returns a validated [Options].
// It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	opts, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return opts, nil
}

// LoadFromReader decodes YAML options from r and validates the result.
// Useful in tests where options are constructed from string literals.
func LoadFromReader(r io.Reader) (*Options, error) {
	opts := &Options{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(opts); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks that opts contains a coherent set of values. It returns a
// joined error listing all failures found.
func Validate(opts *Options) error {
	var errs []error
	if opts.Format != "" && opts.Format != "text" && opts.Format != "json" {
		errs = append(errs, fmt.Errorf("config: format must be \"text\" or \"json\", got %q", opts.Format))
	}
	if opts.MaxLocalizeDepth < 0 {
		errs = append(errs, fmt.Errorf("config: max_localize_depth must not be negative, got %d", opts.MaxLocalizeDepth))
	}
	return errors.Join(errs...)
}
