package config

// ConfigDiff describes what changed between two configs.
// Only fields that can be safely hot-reloaded are tracked.
type ConfigDiff struct {
	SeekPolicyChanged bool
	NewSeekPolicy     SeekPolicy

	DebounceChanged bool
	NewDebounce     int

	SuggestionLimitChanged bool
	NewSuggestionLimit     int

	LogLevelChanged bool
	NewLogLevel     LogLevel
}

// Changed reports whether any tracked field differs.
func (d ConfigDiff) Changed() bool {
	return d.SeekPolicyChanged || d.DebounceChanged || d.SuggestionLimitChanged || d.LogLevelChanged
}

// Diff compares old and new configs and returns what changed.
// Only tracks changes that are safe to apply without restart.
func Diff(old, new *Config) ConfigDiff {
	d := ConfigDiff{}

	if old.Editor.SeekPolicy != new.Editor.SeekPolicy {
		d.SeekPolicyChanged = true
		d.NewSeekPolicy = new.Editor.SeekPolicy
	}
	if old.Search.DebounceMillis != new.Search.DebounceMillis {
		d.DebounceChanged = true
		d.NewDebounce = new.Search.DebounceMillis
	}
	if old.Search.SuggestionLimit != new.Search.SuggestionLimit {
		d.SuggestionLimitChanged = true
		d.NewSuggestionLimit = new.Search.SuggestionLimit
	}
	if old.Logging.Level != new.Logging.Level {
		d.LogLevelChanged = true
		d.NewLogLevel = new.Logging.Level
	}

	return d
}
