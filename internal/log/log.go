// Package log provides the optional JSON-lines debug logger. The TTY owns
// the screen while the picker runs, so debug output goes to a file named
// by SELECTA_DEBUG instead of stderr; without it everything is discarded.
package log

import (
	"io"
	"log/slog"
	"os"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "SELECTA_DEBUG"

// New returns the process logger. When SELECTA_DEBUG names a writable
// file, debug-level JSON lines are appended there; otherwise the logger
// discards everything.
func New() *slog.Logger {
	path := os.Getenv(EnvVar)
	if path == "" {
		return discard()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return discard()
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
