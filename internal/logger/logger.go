// Package logger provides the append-only text log sysdash writes while the
// terminal is owned by the dashboard.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Dicklesworthstone/sysdash/internal/errors"
)

const target = "sysdash"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// textLogger writes one plain line per record, without timestamps.
// Write failures are dropped so logging never interrupts the caller.
type textLogger struct {
	out   *log.Logger
	debug bool
}

// New returns a logger writing to w. Debug records are emitted only when
// debug is set.
func New(w io.Writer, debug bool) Logger {
	return &textLogger{out: log.New(w, "", 0), debug: debug}
}

func (l *textLogger) write(level, format string, args ...interface{}) {
	_ = l.out.Output(3, fmt.Sprintf("[%-5s %s] ", level, target)+fmt.Sprintf(format, args...))
}

func (l *textLogger) Debug(format string, args ...interface{}) {
	if l.debug {
		l.write("DEBUG", format, args...)
	}
}

func (l *textLogger) Info(format string, args ...interface{}) {
	l.write("INFO", format, args...)
}

func (l *textLogger) Warn(format string, args ...interface{}) {
	l.write("WARN", format, args...)
}

func (l *textLogger) Error(format string, args ...interface{}) {
	l.write("ERROR", format, args...)
}

// File is a Logger bound to an open log file.
type File struct {
	Logger
	f *os.File
}

// Open opens path for appending, creating it if needed.
func Open(path string, debug bool) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrLogSink, "open log file "+path)
	}
	return &File{Logger: New(f, debug), f: f}, nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "info", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "warn", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "error", Message: fmt.Sprintf(format, args...)})
}

// Count returns how many messages were logged at the given level.
func (l *BufferLogger) Count(level string) int {
	n := 0
	for _, m := range l.Messages {
		if m.Level == level {
			n++
		}
	}
	return n
}
