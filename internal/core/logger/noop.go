package logger

import "context"

// noopLogger is installed until Initialize runs, so tests log nowhere.
type noopLogger struct{}

func (noopLogger) Log(context.Context, LogEntry)  {}
func (noopLogger) Shutdown(context.Context) error { return nil }
