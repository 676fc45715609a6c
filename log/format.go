package log

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/holiman/uint256"
)

const (
	timeFormat  = "2006-01-02T15:04:05-0700"
	termMsgJust = 40 // message column width when attributes follow
)

var spaces = []byte(strings.Repeat(" ", termMsgJust))

var levelColors = map[slog.Level]string{
	LevelTrace: "\x1b[34m",
	LevelDebug: "\x1b[36m",
	LevelInfo:  "\x1b[32m",
	LevelWarn:  "\x1b[33m",
	LevelError: "\x1b[31m",
}

func (h *TerminalHandler) format(buf []byte, r slog.Record) []byte {
	var color string
	if h.color {
		color = levelColors[r.Level]
	}
	msg := r.Message
	if strings.ContainsFunc(msg, func(c rune) bool { return (c < ' ' && c != '\t') || c == 0x7f }) {
		msg = strconv.Quote(msg)
	}
	buf = appendColored(buf, color, levelLabel(r.Level))
	buf = append(buf, '[')
	buf = appendTermTime(buf, r.Time)
	buf = append(buf, "] "...)
	buf = append(buf, msg...)

	if len(h.attrs)+r.NumAttrs() > 0 && len(msg) < termMsgJust {
		buf = append(buf, spaces[:termMsgJust-len(msg)]...)
	}
	for _, attr := range h.attrs {
		buf = appendTermAttr(buf, color, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		buf = appendTermAttr(buf, color, attr)
		return true
	})
	return append(buf, '\n')
}

func appendTermAttr(buf []byte, color string, attr slog.Attr) []byte {
	buf = append(buf, ' ')
	buf = appendColored(buf, color, attr.Key)
	buf = append(buf, '=')
	return FormatSlogValue(attr.Value, buf)
}

func appendColored(buf []byte, color, s string) []byte {
	if color == "" {
		return append(buf, s...)
	}
	buf = append(buf, color...)
	buf = append(buf, s...)
	return append(buf, "\x1b[0m"...)
}

// FormatSlogValue appends the terminal form of v to tmp. Big integers are
// written in decimal and byte slices as 0x-prefixed hex.
// FormatSlogValue 将 v 的终端格式追加到 tmp：大整数以十进制输出，字节切片以 0x 十六进制输出。
func FormatSlogValue(v slog.Value, tmp []byte) []byte {
	switch v = v.Resolve(); v.Kind() {
	case slog.KindString:
		return appendEscapeString(tmp, v.String())
	case slog.KindInt64:
		return strconv.AppendInt(tmp, v.Int64(), 10)
	case slog.KindUint64:
		return strconv.AppendUint(tmp, v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.AppendFloat(tmp, v.Float64(), 'f', 3, 64)
	case slog.KindBool:
		return strconv.AppendBool(tmp, v.Bool())
	case slog.KindDuration:
		return appendEscapeString(tmp, v.Duration().String())
	case slog.KindTime:
		return v.Time().AppendFormat(tmp, timeFormat)
	}
	return appendAny(tmp, v.Any())
}

func appendAny(buf []byte, value any) []byte {
	if value == nil {
		return append(buf, "<nil>"...)
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return append(buf, "<nil>"...)
	}
	switch v := value.(type) {
	case *big.Int:
		return v.Append(buf, 10)
	case *uint256.Int:
		return append(buf, v.Dec()...)
	case []byte:
		return append(append(buf, "0x"...), hex.EncodeToString(v)...)
	case error:
		return appendEscapeString(buf, v.Error())
	case fmt.Stringer:
		return appendEscapeString(buf, v.String())
	}
	return appendEscapeString(buf, fmt.Sprintf("%+v", value))
}

// appendEscapeString quotes s when it is empty or holds spaces, '=', quotes or
// control characters, keeping key=value pairs parseable.
func appendEscapeString(dst []byte, s string) []byte {
	quote := s == "" || strings.ContainsFunc(s, func(c rune) bool {
		return c <= ' ' || c == '=' || c == '"' || c == 0x7f
	})
	if quote {
		return strconv.AppendQuote(dst, s)
	}
	return append(dst, s...)
}

// appendTermTime appends t as "01-02|15:04:05.000".
func appendTermTime(buf []byte, t time.Time) []byte {
	_, month, day := t.Date()
	hour, minute, sec := t.Clock()

	buf = appendZeroPadded(buf, int(month), 2)
	buf = append(buf, '-')
	buf = appendZeroPadded(buf, day, 2)
	buf = append(buf, '|')
	buf = appendZeroPadded(buf, hour, 2)
	buf = append(buf, ':')
	buf = appendZeroPadded(buf, minute, 2)
	buf = append(buf, ':')
	buf = appendZeroPadded(buf, sec, 2)
	buf = append(buf, '.')
	return appendZeroPadded(buf, t.Nanosecond()/int(time.Millisecond), 3)
}

// appendZeroPadded appends the non-negative n left padded with zeroes to width.
func appendZeroPadded(buf []byte, n, width int) []byte {
	var digits [20]byte
	d := strconv.AppendUint(digits[:0], uint64(n), 10)
	for i := len(d); i < width; i++ {
		buf = append(buf, '0')
	}
	return append(buf, d...)
}
