package ggshapes

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// discard drops every record. Enabled is false, so disabled calls never
// format their arguments.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var (
	silent  = slog.New(discard{})
	current atomic.Pointer[slog.Logger]
)

func init() {
	current.Store(silent)
}

// SetLogger sets the logger shared by ggshapes, its sub-packages and the
// gg rasteriser underneath the raster surface. Nothing is logged until it
// is called; nil switches logging off again.
//
// Levels:
//   - [slog.LevelDebug]: every primitive and image draw, shapes skipped in lenient mode
//   - [slog.LevelInfo]: image loaded, render pass finished
//   - [slog.LevelWarn]: failed loads, close errors
//
//	ggshapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
	gg.SetLogger(l)
}

// Logger returns the logger set with SetLogger. It never returns nil and
// is safe to call from any goroutine.
func Logger() *slog.Logger {
	return current.Load()
}
