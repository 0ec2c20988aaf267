package grid

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by the grid model. By default nothing is
// logged; pass nil to restore that.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current grid logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
