package ada

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler reports every level as disabled, so Debug calls in the
// drawing paths return before building a record.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(silentHandler{})

// current holds the active logger.
var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes ada's diagnostics to l; nil silences them again, which
// is also the initial state. It may be called while other goroutines draw.
//
// Everything ada logs is at [slog.LevelDebug]: canvases created or
// rejected, and shapes skipped because their input was degenerate. Pixel
// writes are never logged.
//
//	ada.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger { return current.Load() }
