package script

import (
	"errors"
	"fmt"
)

// Errors for script operations.
var (
	// ErrClosed is returned when operating on a closed script view.
	ErrClosed = errors.New("script view is closed")

	// ErrNoCanvas is raised inside Lua when canvas functions are used
	// outside of draw.
	ErrNoCanvas = errors.New("canvas used outside draw")
)

// Error wraps a failure raised while running a script callback.
type Error struct {
	// Callback is the Lua global that failed, or "chunk" for the script body.
	Callback string

	// Err is the underlying Lua error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("script %s: %v", e.Callback, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
