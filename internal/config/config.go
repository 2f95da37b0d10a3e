// Package config holds the immutable per-run configuration and the
// optional on-disk defaults file.
package config

// DefaultHeight is the number of result lines shown when neither the
// --height flag nor the config file says otherwise.
const DefaultHeight = 21

// Config is the immutable configuration for one interactive run. It is
// built once, before the event loop starts, and never mutated.
type Config struct {
	// VisibleChoices is the number of result lines rendered below the
	// search line, already clamped to the terminal height.
	VisibleChoices int

	// InitialQuery pre-fills the search line.
	InitialQuery string

	// Choices is the full candidate list. Its order is the canonical
	// tie-break order for ranking.
	Choices []string
}

// New builds a Config, clamping visible to what fits on a terminal with
// screenRows rows (the search line occupies one row).
func New(visible, screenRows int, initialQuery string, choices []string) *Config {
	if max := screenRows - 1; visible > max {
		visible = max
	}
	if visible < 0 {
		visible = 0
	}
	return &Config{
		VisibleChoices: visible,
		InitialQuery:   initialQuery,
		Choices:        choices,
	}
}
