package logs

import "context"

// contextKey is the type of the keys the logs package stores
// in a context.Context
type contextKey string

// ContextKeyTraceID is the key under which a trace identifier is
// kept in the context so that all the log entries of an operation
// can be correlated
const ContextKeyTraceID contextKey = "trace_id"

// Fields is the set of key/value pairs attached to a log entry
type Fields interface {
	// Add a new field to the set
	Add(key string, value interface{})
}

// MapFields is the implementation of Fields backed by a map. It also
// implements Loggable so it can be passed directly to a Logger
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for key, value := range f {
		fields.Add(key, value)
	}
}

// Loggable is implemented by the types that know how to
// describe themselves as log fields
type Loggable interface {
	Log(fields Fields)
}

// Logger is the logging interface used across the module
type Logger interface {
	Debug(ctx context.Context, msg string, loggable Loggable)
	Info(ctx context.Context, msg string, loggable Loggable)
	Warn(ctx context.Context, msg string, loggable Loggable)
	Error(ctx context.Context, msg string, loggable Loggable)
}

// WithTraceID returns a copy of ctx carrying the trace id
func WithTraceID(ctx context.Context, traceID int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// GetTraceID returns the trace id kept in the context, or 0 if
// there is none
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	traceID, ok := ctx.Value(ContextKeyTraceID).(int64)
	if !ok {
		return 0
	}

	return traceID
}
