package errors

import (
	stderr "errors"
	"fmt"

	"github.com/companion-uyan/data-structure-algorithm/logs"
)

const (
	// ErrCodeInvariantViolation is reported when the validation of a tree
	// finds metadata or structure that does not match what the balancing
	// algorithm guarantees
	ErrCodeInvariantViolation = 1001

	// ErrCodeInvalidWorkload is reported when a workload description
	// cannot be run as given
	ErrCodeInvalidWorkload = 1002

	// ErrCodeInvalidConfig is reported when the configuration of a
	// command is not valid
	ErrCodeInvalidConfig = 1003
)

// Error is the error type returned by the packages of this module
// when they need to report a categorised failure
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// New creates an error with the given code and a formatted description
func New(code int, format string, args ...interface{}) *Error {
	return &Error{ErrorCode: code, Description: fmt.Sprintf(format, args...)}
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Log implementation of logs.Loggable for Error
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}

// HasCode returns true if err, or any error it wraps, is an *Error
// with the given code
func HasCode(err error, code int) bool {
	var e *Error
	return stderr.As(err, &e) && e.ErrorCode == code
}
