package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

type implLogger struct {
	logger *logrus.Logger
}

// New creates a Logger writing to stdout. format is "json" or "text".
func New(level, format string) Logger {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer, level, format string) Logger {
	l := logrus.New()
	l.SetOutput(w)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel // default to info
	}
	l.SetLevel(lvl)

	return &implLogger{logger: l}
}

// Logrus exposes the underlying logrus instance for middleware that logs
// structured fields.
func Logrus(l Logger) *logrus.Logger {
	if impl, ok := l.(*implLogger); ok {
		return impl.logger
	}
	return logrus.StandardLogger()
}

// WithFields returns a context whose log lines carry fields.
func WithFields(ctx context.Context, fields map[string]interface{}) context.Context {
	merged := logrus.Fields{}
	if prev, ok := ctx.Value(ctxKey{}).(logrus.Fields); ok {
		for k, v := range prev {
			merged[k] = v
		}
	}
	for k, v := range fields {
		merged[k] = v
	}
	return context.WithValue(ctx, ctxKey{}, merged)
}

func (l *implLogger) entry(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if fields, ok := ctx.Value(ctxKey{}).(logrus.Fields); ok {
			return l.logger.WithFields(fields)
		}
	}
	return logrus.NewEntry(l.logger)
}

func (l *implLogger) shouldLog(level logrus.Level) bool {
	return l.logger.IsLevelEnabled(level)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(logrus.DebugLevel) {
		l.entry(ctx).Debugf(msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(logrus.InfoLevel) {
		l.entry(ctx).Infof(msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(logrus.WarnLevel) {
		l.entry(ctx).Warnf(msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(logrus.ErrorLevel) {
		l.entry(ctx).Errorf(msg, args...)
	}
}
