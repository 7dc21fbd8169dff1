package concurrent

import (
	"fmt"
	"runtime/debug"
)

// ErrPanic is the error reported for a supplier that panicked
// instead of returning
type ErrPanic struct {
	// Value passed to panic
	Value interface{}

	// Stack of the goroutine at the time of the panic
	Stack []byte
}

// Error implementation of error for ErrPanic
func (e ErrPanic) Error() string {
	switch x := e.Value.(type) {
	case string:
		return fmt.Sprintf("panic error %s", x)
	case error:
		return fmt.Sprintf("panic error %s", x.Error())
	default:
		return fmt.Sprintf("unknown panic %+v", x)
	}
}

// Unwrap returns the value passed to panic when it is an error
func (e ErrPanic) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// ErrNotRun is the error reported for the suppliers of a batch
// that were never run because the context was done first
type ErrNotRun struct {
	Cause error
}

// Error implementation of error for ErrNotRun
func (e ErrNotRun) Error() string {
	return fmt.Sprintf("operation not run: %s", e.Cause.Error())
}

// Unwrap returns the error of the context
func (e ErrNotRun) Unwrap() error {
	return e.Cause
}

func errorFromPanic(r interface{}) error {
	return ErrPanic{Value: r, Stack: debug.Stack()}
}
