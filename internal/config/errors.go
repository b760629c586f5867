package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration operations.
var (
	// ErrUnsupportedFormat indicates the config file extension is not recognized.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrWatcherClosed indicates the watcher has already been closed.
	ErrWatcherClosed = errors.New("config watcher closed")
)

// ParseError represents an error parsing a configuration file.
type ParseError struct {
	// Path is the file path where the error occurred.
	Path string

	// Line is the line number (1-indexed, 0 if unknown).
	Line int

	// Column is the column number (1-indexed, 0 if unknown).
	Column int

	// Message describes the parse error.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		if e.Column > 0 {
			return fmt.Sprintf("parse error in %s at line %d, column %d: %s",
				e.Path, e.Line, e.Column, e.Message)
		}
		return fmt.Sprintf("parse error in %s at line %d: %s",
			e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a configuration value that failed validation.
type ValidationError struct {
	// Path is the setting path (e.g., "display.scale").
	Path string

	// Message describes why validation failed.
	Message string

	// Value is the invalid value.
	Value any

	// Code is an error code for programmatic handling.
	Code ValidationErrorCode
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrorCode identifies the type of validation failure.
type ValidationErrorCode int

const (
	// ErrCodeUnknown is an unspecified validation error.
	ErrCodeUnknown ValidationErrorCode = iota

	// ErrCodeOutOfRange indicates a numeric value is out of bounds.
	ErrCodeOutOfRange

	// ErrCodeInvalidEnum indicates a value is not in the allowed set.
	ErrCodeInvalidEnum

	// ErrCodeInvalidFormat indicates a string doesn't match the expected format.
	ErrCodeInvalidFormat
)

// String returns the code name.
func (c ValidationErrorCode) String() string {
	switch c {
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeInvalidEnum:
		return "invalid_enum"
	case ErrCodeInvalidFormat:
		return "invalid_format"
	default:
		return "unknown"
	}
}
