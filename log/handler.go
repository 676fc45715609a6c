package log

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/holiman/uint256"
)

type discardHandler struct{}

// DiscardHandler returns a handler that drops every record.
// DiscardHandler 返回一个丢弃所有记录的处理器。
func DiscardHandler() slog.Handler { return discardHandler{} }

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// TerminalHandler writes one human readable line per record:
//
//	LEVEL[MM-DD|HH:MM:SS.mmm] MESSAGE                         key=value key=value ...
//
// Handlers derived with WithAttrs share the writer and its lock.
// TerminalHandler 适用于交互式程序或开发调试；派生的处理器共享同一个写入器和锁。
type TerminalHandler struct {
	mu    *sync.Mutex
	wr    io.Writer
	lvl   slog.Level
	color bool
	attrs []slog.Attr
	buf   []byte
}

// NewTerminalHandler returns a terminal handler writing records of level lvl
// and above to wr, with ANSI colors if useColor is set.
func NewTerminalHandler(wr io.Writer, lvl slog.Level, useColor bool) *TerminalHandler {
	return &TerminalHandler{mu: new(sync.Mutex), wr: wr, lvl: lvl, color: useColor}
}

func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl
}

func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf = h.format(h.buf[:0], r)
	_, err := h.wr.Write(h.buf)
	return err
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TerminalHandler{
		mu:    h.mu,
		wr:    h.wr,
		lvl:   h.lvl,
		color: h.color,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

// WithGroup returns h unchanged; group names are not rendered on the terminal.
func (h *TerminalHandler) WithGroup(string) slog.Handler { return h }

// NewJSONHandler returns a handler writing records of level lvl and above to
// wr as JSON objects.
func NewJSONHandler(wr io.Writer, lvl slog.Level) slog.Handler {
	return slog.NewJSONHandler(wr, &slog.HandlerOptions{Level: lvl, ReplaceAttr: replaceAttr(false)})
}

// NewLogfmtHandler returns a handler writing records of level lvl and above to
// wr in logfmt, a machine parseable key=value format.
func NewLogfmtHandler(wr io.Writer, lvl slog.Level) slog.Handler {
	return slog.NewTextHandler(wr, &slog.HandlerOptions{Level: lvl, ReplaceAttr: replaceAttr(true)})
}

// replaceAttr renames the builtin keys to "t" and "lvl" and renders values the
// slog handlers would otherwise print as structs or base64 the same way the
// terminal does.
// 大整数与字节切片转为字符串，否则 JSON 处理器会输出结构体或 base64。
func replaceAttr(logfmt bool) func([]string, slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		switch attr.Key {
		case slog.TimeKey:
			attr.Key = "t"
		case slog.LevelKey:
			if l, ok := attr.Value.Any().(slog.Level); ok {
				return slog.String("lvl", levelKey(l))
			}
		}
		switch v := attr.Value.Any().(type) {
		case time.Time:
			if logfmt {
				attr.Value = slog.StringValue(v.Format(timeFormat))
			}
		case *big.Int, *uint256.Int, []byte:
			attr.Value = slog.StringValue(string(FormatSlogValue(attr.Value, nil)))
		}
		return attr
	}
}
