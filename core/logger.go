package core

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var loggerInstance = NewNopLogger() // libraries stay silent until a caller installs a logger

// SetLogger sets the global logger instance
func SetLogger(logger *Logger) {
	if logger == nil {
		logger = NewNopLogger()
	}
	loggerInstance = logger
}

// GetLogger retrieves the global logger instance
func GetLogger() *Logger {
	return loggerInstance
}

// Logger is a thin structured logger over zap that accepts either printf
// arguments or slog-style key/value pairs.
type Logger struct {
	z *zap.Logger
}

// FromZap wraps an existing zap logger.
func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{z: zap.NewNop()}
}

// NewLogger builds a logger for the given level ("debug", "info", "warn",
// "error"; default "info") and format ("json" or "console"; default "json").
func NewLogger(level, format string) (*Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	var config zap.Config
	if format == "console" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	// stdout carries command output
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	z, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: build: %w", err)
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" && format != "console" {
		z = z.With(zap.String("hostname", hostname))
	}
	return &Logger{z: z}, nil
}

func (l *Logger) log(level zapcore.Level, msg string, args ...interface{}) {
	if l == nil || l.z == nil {
		return
	}
	if !l.z.Core().Enabled(level) {
		return
	}
	var fields []zap.Field
	if len(args) > 0 {
		// Detect slog-style key-value pairs: even number of args where
		// odd-positioned args (keys) are strings.
		if isKeyValuePairs(args) {
			fields = make([]zap.Field, 0, len(args)/2)
			for i := 0; i < len(args)-1; i += 2 {
				key, _ := args[i].(string)
				fields = append(fields, zap.Any(key, args[i+1]))
			}
		} else {
			msg = fmt.Sprintf(msg, args...)
		}
	}
	if ce := l.z.Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}

// logf always treats args as printf operands.
func (l *Logger) logf(level zapcore.Level, format string, args ...interface{}) {
	if l == nil || l.z == nil || !l.z.Core().Enabled(level) {
		return
	}
	if ce := l.z.Check(level, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}

// isKeyValuePairs returns true if args look like slog-style key-value pairs:
// even count and every key (even index) is a string.
func isKeyValuePairs(args []interface{}) bool {
	if len(args)%2 != 0 {
		return false
	}
	for i := 0; i < len(args); i += 2 {
		if _, ok := args[i].(string); !ok {
			return false
		}
	}
	return true
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log(zapcore.DebugLevel, msg, args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(zapcore.DebugLevel, format, args...)
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.log(zapcore.InfoLevel, msg, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(zapcore.InfoLevel, format, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log(zapcore.WarnLevel, msg, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(zapcore.WarnLevel, format, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.log(zapcore.ErrorLevel, msg, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(zapcore.ErrorLevel, format, args...)
}

// With returns a child logger carrying attrs on every entry.
func (l *Logger) With(attrs map[string]interface{}) *Logger {
	if l == nil {
		return NewNopLogger().With(attrs)
	}
	fields := make([]zap.Field, 0, len(attrs))
	for k, v := range attrs {
		fields = append(fields, zap.Any(k, v))
	}
	return &Logger{z: l.z.With(fields...)}
}

// Zap exposes the underlying zap logger.
func (l *Logger) Zap() *zap.Logger {
	return l.z
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}
