package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path and returns a validated
// [Config]. It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r, fills in defaults for omitted
// fields, and validates the result. Useful in tests where configs are
// constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills zero values that decoding may have left behind (e.g. a
// present-but-empty section overwrites the defaults seeded by [Default]).
func applyDefaults(cfg *Config) {
	if cfg.Editor.SeekPolicy == "" {
		cfg.Editor.SeekPolicy = SeekWordMidpoint
	}
	if cfg.Search.DebounceMillis == 0 {
		cfg.Search.DebounceMillis = 500
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogInfo
	}
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if !cfg.Logging.Level.IsValid() {
		errs = append(errs, fmt.Errorf("logging.level %q is invalid; valid values: debug, info, warn, error", cfg.Logging.Level))
	}
	if !cfg.Editor.SeekPolicy.IsValid() {
		errs = append(errs, fmt.Errorf("editor.seek_policy %q is invalid; valid values: start, midpoint", cfg.Editor.SeekPolicy))
	}
	if cfg.Search.DebounceMillis < 0 {
		errs = append(errs, fmt.Errorf("search.debounce_millis must not be negative, got %d", cfg.Search.DebounceMillis))
	}
	if cfg.Search.SuggestionLimit < 0 {
		errs = append(errs, fmt.Errorf("search.suggestion_limit must not be negative, got %d", cfg.Search.SuggestionLimit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
