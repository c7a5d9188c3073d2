// Package config provides the configuration schema, loader, and file watcher
// for the subcue subtitle editor.
package config

import "time"

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// SeekPolicy selects where the playhead lands when the user clicks a word.
type SeekPolicy string

const (
	// SeekWordStart seeks to the clicked word's start time.
	SeekWordStart SeekPolicy = "start"

	// SeekWordMidpoint seeks to the temporal midpoint of the clicked word.
	// This keeps the word highlighted after the seek even when playback
	// resumes immediately, and is the default.
	SeekWordMidpoint SeekPolicy = "midpoint"
)

// IsValid reports whether p is a recognised seek policy.
func (p SeekPolicy) IsValid() bool {
	return p == SeekWordStart || p == SeekWordMidpoint
}

// Config is the root configuration structure for subcue.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	Editor    EditorConfig    `yaml:"editor"`
	Search    SearchConfig    `yaml:"search"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// EditorConfig holds editing-engine policy knobs. These are hot-reloadable:
// the editor re-reads them per operation via the [Watcher].
type EditorConfig struct {
	// SeekPolicy is where a word click seeks the playhead. Default: midpoint.
	SeekPolicy SeekPolicy `yaml:"seek_policy"`
}

// SearchConfig tunes the search/replace engine.
type SearchConfig struct {
	// DebounceMillis is the quiet period after the last query keystroke
	// before the index is rebuilt. Default: 500.
	DebounceMillis int `yaml:"debounce_millis"`

	// SuggestionLimit caps "did you mean" suggestions offered for zero-hit
	// searches. Default: 5. Zero disables suggestions.
	SuggestionLimit int `yaml:"suggestion_limit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level controls verbosity. Default: info.
	Level LogLevel `yaml:"level"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	// Enabled turns on metric recording through the global meter provider.
	Enabled bool `yaml:"enabled"`

	// ServiceName overrides the service name reported in telemetry.
	ServiceName string `yaml:"service_name"`
}

// Default returns a Config populated with every default value.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			SeekPolicy: SeekWordMidpoint,
		},
		Search: SearchConfig{
			DebounceMillis:  500,
			SuggestionLimit: 5,
		},
		Logging: LoggingConfig{
			Level: LogInfo,
		},
	}
}

// DebounceDelay returns the search debounce interval as a [time.Duration].
func (c *Config) DebounceDelay() time.Duration {
	return time.Duration(c.Search.DebounceMillis) * time.Millisecond
}
