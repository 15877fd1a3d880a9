/*
PURPOSE:
  Provides a structured logger for jsonl-vet.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - Stdout carries only the [ERROR]/[OK] contract lines; the logger
    must stay off it.

  Implementation-discovered:
  - Needs to default to warn so routine scans stay silent.

ARCHITECTURE INTEGRATION:
  - Used by: internal/lint

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).
  - Handler writes to stderr, never stdout.

USAGE:
  output.Logger.Debug("scanned file", "path", path)

RELATED FILES:
  - internal/output/report.go

MAINTENANCE:
  - Configurable log levels?
*/

package output

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	// Quiet by default. Anything below warn is developer-only detail.
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// SetLogger allows overriding the default logger (e.g. for testing)
func SetLogger(l *slog.Logger) {
	Logger = l
}
