package log

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// Log configuration constants
const (
	LevelDebug = int(slog.LevelDebug)
	LevelInfo  = int(slog.LevelInfo)
	LevelWarn  = int(slog.LevelWarn)
	LevelErr   = int(slog.LevelError)

	OutputJSON = 1
	OutputText = 2
)

// NewContext returns a context carrying a logger that writes to w.
func NewContext(ctx context.Context, level, format int, w io.Writer) context.Context {
	var l slog.LevelVar
	l.Set(slog.Level(level))

	opts := &slog.HandlerOptions{Level: &l}
	if format == OutputJSON {
		return newContext(ctx, slog.New(slog.NewJSONHandler(w, opts)))
	}
	return newContext(ctx, slog.New(slog.NewTextHandler(w, opts)))
}

// CopyFromContext returns dest carrying the logger found in orig.
func CopyFromContext(orig, dest context.Context) context.Context {
	return newContext(dest, fromContext(orig))
}

// With returns a context whose logger adds args to every record.
func With(ctx context.Context, args ...any) context.Context {
	return newContext(ctx, fromContext(ctx).With(args...))
}

func Debug(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).DebugContext(ctx, msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).InfoContext(ctx, msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).WarnContext(ctx, msg, args...)
}

// Error logs msg with err attached under the "err" key.
func Error(ctx context.Context, msg string, err error, args ...any) {
	fromContext(ctx).ErrorContext(ctx, msg, append([]any{"err", err}, args...)...)
}

func newContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func fromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
