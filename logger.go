package glyphregion

import (
	"log/slog"
	"sync/atomic"
)

// silent drops every record. slog.DiscardHandler reports itself disabled,
// so Debug calls on a silent logger never format their attributes.
var silent = slog.New(slog.DiscardHandler)

// active holds the logger shared by this package and font. It is swapped
// atomically so builds on other goroutines never see a torn value.
var active atomic.Pointer[slog.Logger]

// SetLogger routes glyphregion diagnostics to l. Nothing is logged until
// it is called; passing nil silences the package again.
//
// Records emitted:
//   - [slog.LevelDebug]: per-build summary, dropped contours with fewer
//     than three points, characters a font does not map
//   - [slog.LevelWarn]: vertical scaling skipped for glyphs with no height
//
// It is safe to call while builds are running.
func SetLogger(l *slog.Logger) {
	active.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	if l := active.Load(); l != nil {
		return l
	}
	return silent
}
