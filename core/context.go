package core

import "context"

// loggerKey is the context key for storing a per-request logger.
type loggerKey struct{}

// ContextWithLogger returns a new context carrying the logger.
func ContextWithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFromContext extracts the logger from the context, or nil.
func LoggerFromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return nil
	}
	if l, ok := ctx.Value(loggerKey{}).(*Logger); ok {
		return l
	}
	return nil
}

// LoggerOr returns the context logger when present, fallback otherwise.
func LoggerOr(ctx context.Context, fallback *Logger) *Logger {
	if l := LoggerFromContext(ctx); l != nil {
		return l
	}
	return fallback
}
