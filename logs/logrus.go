package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLoggerProperties are the properties used to
// build a Logger backed by logrus
type LogrusLoggerProperties struct {
	// Level is the minimum level at which entries are emitted
	Level logrus.Level

	// Output is where entries are written. It defaults to stderr
	Output io.Writer

	// JSON selects the json formatter instead of the text one
	JSON bool
}

// Logrus is the implementation of Logger that uses logrus
type Logrus struct {
	logger *logrus.Logger
}

// NewLogrus creates a new Logger backed by logrus
func NewLogrus(props LogrusLoggerProperties) *Logrus {
	logger := logrus.New()
	logger.SetLevel(props.Level)

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if props.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return &Logrus{logger: logger}
}

// ParseLevel converts a level name such as "debug" or "warn"
// into a logrus level
func ParseLevel(level string) (logrus.Level, error) {
	return logrus.ParseLevel(level)
}

func (l *Logrus) entry(ctx context.Context, loggable Loggable) *logrus.Entry {
	fields := MapFields{}
	if loggable != nil {
		loggable.Log(fields)
	}

	if traceID := GetTraceID(ctx); traceID != 0 {
		fields.Add(string(ContextKeyTraceID), traceID)
	}

	return l.logger.WithFields(logrus.Fields(fields))
}

// Debug implementation of Logger for Logrus
func (l *Logrus) Debug(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Debug(msg)
}

// Info implementation of Logger for Logrus
func (l *Logrus) Info(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Info(msg)
}

// Warn implementation of Logger for Logrus
func (l *Logrus) Warn(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Warn(msg)
}

// Error implementation of Logger for Logrus
func (l *Logrus) Error(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Error(msg)
}
