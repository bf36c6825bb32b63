package logger

import (
	"context"
	"os"
	"time"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelFatal LogLevel = "FATAL"
)

type attributes = map[string]any

type LogEntry struct {
	Level      LogLevel
	Message    string
	Attributes attributes
	Error      error
	Timestamp  time.Time
}

type Logger interface {
	Log(ctx context.Context, entry LogEntry)
	Shutdown(ctx context.Context) error
}

var globalLogger Logger = noopLogger{}

type contextAttributesKey struct{}

// WithAttributes returns a context whose attributes are added to every entry
// logged with it. Attributes passed at the call site win on conflicts.
func WithAttributes(ctx context.Context, attrs attributes) context.Context {
	merged := make(attributes, len(attrs))
	for k, v := range contextAttributes(ctx) {
		merged[k] = v
	}
	for k, v := range attrs {
		merged[k] = v
	}
	return context.WithValue(ctx, contextAttributesKey{}, merged)
}

func contextAttributes(ctx context.Context) attributes {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(contextAttributesKey{}).(attributes)
	return attrs
}

func newLogEntry(ctx context.Context, level LogLevel, message string, err error, attrs attributes) LogEntry {
	if fromCtx := contextAttributes(ctx); len(fromCtx) > 0 {
		merged := make(attributes, len(fromCtx)+len(attrs))
		for k, v := range fromCtx {
			merged[k] = v
		}
		for k, v := range attrs {
			merged[k] = v
		}
		attrs = merged
	}

	return LogEntry{
		Level:      level,
		Message:    message,
		Attributes: attrs,
		Error:      err,
		Timestamp:  time.Now(),
	}
}

func Debug(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelDebug, message, nil, attrs))
}

func Info(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelInfo, message, nil, attrs))
}

func Warn(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelWarn, message, nil, attrs))
}

func Error(ctx context.Context, message string, err error, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelError, message, err, attrs))
}

// Fatal logs, flushes the logger and exits the process.
func Fatal(ctx context.Context, message string, err error, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(ctx, LogLevelFatal, message, err, attrs))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = globalLogger.Shutdown(shutdownCtx)
	exit(1)
}

var exit = os.Exit

func Log(ctx context.Context, entry LogEntry) {
	globalLogger.Log(ctx, entry)
}

func Shutdown(ctx context.Context) error {
	return globalLogger.Shutdown(ctx)
}

func Initialize(collectorEndpoint, serviceName string, isProduction bool) error {
	var (
		l   Logger
		err error
	)

	if isProduction {
		l, err = initializeOtelLogger(collectorEndpoint, serviceName)
	} else {
		l, err = initStdoutLogger(serviceName)
	}

	if err != nil {
		return err
	}

	globalLogger = l
	return nil
}
