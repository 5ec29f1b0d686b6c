package oddcounter

import (
	"errors"
	"fmt"
)

// ErrEvenInitialValue indicates a constructor was asked for an even starting
// value. It is the only recoverable failure in the package; everything else
// (for example using a freed boundary handle) is a caller contract violation,
// not a reported error.
var ErrEvenInitialValue = errors.New("oddcounter: even initial value")

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("oddcounter.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error
func errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
