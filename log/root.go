package log

import (
	"log/slog"
	"sync/atomic"
)

// handlerBox gives atomic.Pointer a single concrete type to hold.
type handlerBox struct{ h slog.Handler }

var installed atomic.Pointer[handlerBox]

// The package stays silent until the application installs a handler.
// 在应用程序调用 SetHandler 之前，包内日志全部丢弃。
func init() {
	installed.Store(&handlerBox{DiscardHandler()})
}

func installedHandler() slog.Handler {
	return installed.Load().h
}

// SetHandler makes h the destination of every logger created by New, including
// loggers created before the call, and returns the previous handler. A nil h
// restores the silent default.
//
//	defer log.SetHandler(log.SetHandler(h))
func SetHandler(h slog.Handler) (prev slog.Handler) {
	if h == nil {
		h = DiscardHandler()
	}
	return installed.Swap(&handlerBox{h}).h
}

// New returns a logger writing to the installed handler with ctx attached to
// every record.
// New 返回写入当前已安装处理器的日志记录器，并为每条记录附加 ctx。
func New(ctx ...any) Logger {
	return (&logger{handler: installedHandler}).With(ctx...)
}
