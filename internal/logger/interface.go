package logger

import "context"

// Logger is the leveled logger shared by all components. The context is
// accepted for call-site symmetry with the rest of the codebase; the default
// implementation does not read it.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
