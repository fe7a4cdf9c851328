// Package errors classifies the failures sysdash can exit with.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for categorizing errors
const (
	ErrUnsupportedPlatform = "UNSUPPORTED_PLATFORM"
	ErrLogSink             = "LOG_SINK"
	ErrTerminalIO          = "TERMINAL_IO"
	ErrMetrics             = "METRICS"
)

// Process exit statuses. Any other failure exits with 1.
var exitCodes = map[string]int{
	ErrUnsupportedPlatform: 2,
	ErrLogSink:             3,
	ErrTerminalIO:          4,
	ErrMetrics:             5,
}

// Error is a failure tagged with the code it exits under.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// New creates an error with no underlying cause.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to err.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Cause: err}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf returns the code of the outermost *Error in err's chain, or "".
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := exitCodes[CodeOf(err)]; ok {
		return code
	}
	return 1
}
