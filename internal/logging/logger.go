package logging

import (
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Logger wraps a leveled logger with a verbose gate and lightweight timing
// helpers. The zero value is silent and safe to use.
type Logger struct {
	inner   *charmlog.Logger
	verbose bool
}

func New(w io.Writer, verbose bool) Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	inner := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	return Logger{inner: inner, verbose: verbose}
}

// NewFile returns a logger that appends logfmt records to path, plus a close
// function for the underlying file.
func NewFile(path string, verbose bool) (Logger, func() error, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Logger{}, nil, err
	}
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	inner := charmlog.NewWithOptions(file, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmlog.LogfmtFormatter,
		Level:           level,
	})
	return Logger{inner: inner, verbose: verbose}, file.Close, nil
}

func (l Logger) WithPrefix(prefix string) Logger {
	if l.inner == nil {
		return l
	}
	return Logger{inner: l.inner.WithPrefix(prefix), verbose: l.verbose}
}

func (l Logger) Infof(format string, args ...any) {
	if l.inner == nil {
		return
	}
	l.inner.Infof(format, args...)
}

func (l Logger) Warnf(format string, args ...any) {
	if l.inner == nil {
		return
	}
	l.inner.Warnf(format, args...)
}

func (l Logger) Errorf(format string, args ...any) {
	if l.inner == nil {
		return
	}
	l.inner.Errorf(format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	if l.inner == nil || !l.verbose {
		return
	}
	l.inner.Debugf(format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if l.inner == nil || !l.verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}
