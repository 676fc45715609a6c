package log

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"time"
)

const errorKey = "LOG_ERROR"

// Levels understood by the handlers of this package. Trace sits below slog's
// Debug and is the level used for per-call encoding details.
// LevelTrace 低于 slog 的 Debug，用于记录每次编码的细节。
const (
	LevelTrace slog.Level = -8
	LevelDebug            = slog.LevelDebug
	LevelInfo             = slog.LevelInfo
	LevelWarn             = slog.LevelWarn
	LevelError            = slog.LevelError
)

// levelNames holds the padded terminal label and the lower case value of
// every known level.
var levelNames = map[slog.Level]struct{ label, key string }{
	LevelTrace: {"TRACE", "trace"},
	LevelDebug: {"DEBUG", "debug"},
	LevelInfo:  {"INFO ", "info"},
	LevelWarn:  {"WARN ", "warn"},
	LevelError: {"ERROR", "error"},
}

func levelLabel(l slog.Level) string {
	if n, ok := levelNames[l]; ok {
		return n.label
	}
	return "?????"
}

func levelKey(l slog.Level) string {
	if n, ok := levelNames[l]; ok {
		return n.key
	}
	return l.String()
}

// Logger writes leveled records made of a message and key/value pairs.
// Logger 写入由消息和键值对组成的分级日志记录。
type Logger interface {
	// With returns a Logger that adds ctx to every record it writes.
	With(ctx ...any) Logger

	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
}

// logger resolves its handler on every write, so loggers derived from the
// package handler follow SetHandler.
type logger struct {
	handler func() slog.Handler
	ctx     []any
}

// NewLogger returns a logger writing to h.
func NewLogger(h slog.Handler) Logger {
	return &logger{handler: func() slog.Handler { return h }}
}

func (l *logger) With(ctx ...any) Logger {
	return &logger{handler: l.handler, ctx: append(slices.Clip(l.ctx), normalize(ctx)...)}
}

// write must be called directly from the exported methods so that the call
// site is always three frames up.
func (l *logger) write(level slog.Level, msg string, ctx []any) {
	h := l.handler()
	if !h.Enabled(context.Background(), level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(l.ctx...)
	r.Add(normalize(ctx)...)
	h.Handle(context.Background(), r)
}

// normalize pads an odd key/value list so the last key is not lost.
func normalize(ctx []any) []any {
	if len(ctx)%2 == 0 {
		return ctx
	}
	return append(slices.Clip(ctx), nil, errorKey, "Normalized odd number of arguments by adding nil")
}

func (l *logger) Trace(msg string, ctx ...any) { l.write(LevelTrace, msg, ctx) }
func (l *logger) Debug(msg string, ctx ...any) { l.write(LevelDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...any)  { l.write(LevelInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...any)  { l.write(LevelWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...any) { l.write(LevelError, msg, ctx) }
