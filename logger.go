package rasterizer

import (
	"log/slog"
	"sync/atomic"
)

// silent drops every record; its handler reports every level disabled.
var silent = slog.New(slog.DiscardHandler)

// active is swapped by SetLogger and read by every render worker.
var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(silent)
}

// SetLogger routes rasterizer diagnostics to l. A nil l silences them
// again, which is also the state at program start.
//
// Records are emitted at [slog.LevelDebug] only: "rasterizer: frame
// rendered" after each Render, with the frame size, worker count and a
// "stats" group, and "rasterizer: parsed OBJ" after each parsed file.
//
//	rasterizer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return active.Load()
}
