// SPDX-License-Identifier: MIT

// Package logutil builds the slog loggers used across ndslice and adds a
// TRACE level below DEBUG.
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"
)

// LevelTrace is finer than slog.LevelDebug: per-handle lifecycle events.
const LevelTrace slog.Level = -8

// NewLogger returns a text logger writing to w at level, reporting TRACE by
// name and trimming source paths to their base name.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if lvl, ok := attr.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	}))
}

// Trace logs msg at LevelTrace on l, attributing it to the caller.
func Trace(l *slog.Logger, msg string, args ...any) {
	traceContext(context.Background(), l, 1, msg, args...)
}

// TraceContext is Trace with an explicit context. skip counts extra frames
// between the reported caller and the call to TraceContext.
func TraceContext(ctx context.Context, l *slog.Logger, skip int, msg string, args ...any) {
	traceContext(ctx, l, skip+1, msg, args...)
}

// traceContext attributes the record skip frames above its own caller.
func traceContext(ctx context.Context, l *slog.Logger, skip int, msg string, args ...any) {
	if l == nil || !l.Enabled(ctx, LevelTrace) {
		return
	}
	var pcs [1]uintptr
	// frames 0 and 1 are runtime.Callers and traceContext
	runtime.Callers(2+skip, pcs[:])
	record := slog.NewRecord(time.Now(), LevelTrace, msg, pcs[0])
	record.Add(args...)
	_ = l.Handler().Handle(ctx, record)
}
