// Package logging defines the leveled logger the client writes request and
// response diagnostics through.
package logging

import "context"

// Classification labels a log entry.
type Classification string

// Classifications the client and its middleware log with.
const (
	Warn  Classification = "WARN"
	Debug Classification = "DEBUG"
)

// Logger writes fmt-style entries under a classification.
type Logger interface {
	Logf(classification Classification, format string, v ...interface{})
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(classification Classification, format string, v ...interface{})

// Logf calls f.
func (f LoggerFunc) Logf(classification Classification, format string, v ...interface{}) {
	f(classification, format, v...)
}

// ContextLogger is implemented by loggers that enrich entries from the
// operation context, such as a request span or ID.
type ContextLogger interface {
	WithContext(context.Context) Logger
}

// WithContext binds ctx to logger when it is a ContextLogger. A nil logger
// becomes Nop.
func WithContext(ctx context.Context, logger Logger) Logger {
	switch l := logger.(type) {
	case nil:
		return Nop{}
	case ContextLogger:
		return l.WithContext(ctx)
	default:
		return logger
	}
}

// Nop discards every entry.
type Nop struct{}

// Logf does nothing.
func (Nop) Logf(Classification, string, ...interface{}) {}
