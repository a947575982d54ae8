package garden

import (
	"log/slog"

	"github.com/gogpu/garden/internal/logging"
)

// SetLogger configures the logger for garden and all its sub-packages.
// By default, garden produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by garden:
//   - [slog.LevelDebug]: raster allocations, layer attach/detach, plant edits
//   - [slog.LevelInfo]: lifecycle events (garden created, layers added or removed)
//   - [slog.LevelWarn]: degenerate input that was corrected (negative sizes)
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	garden.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by garden.
// Sub-packages share the same logger configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
