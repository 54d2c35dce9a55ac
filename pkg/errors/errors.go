package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigShape ErrorCode = "CONFIG_SHAPE"

	// Project errors
	ErrInvalidProject  ErrorCode = "INVALID_PROJECT"
	ErrProjectNotFound ErrorCode = "PROJECT_NOT_FOUND"
	ErrMissingFile     ErrorCode = "MISSING_FILE"
	ErrScriptFailed    ErrorCode = "SCRIPT_FAILED"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkExists ErrorCode = "SYMLINK_EXISTS"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// DotfileError represents a structured error with code and details
type DotfileError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotfileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotfileError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DotfileError with the same code
func (e *DotfileError) Is(target error) bool {
	var targetErr *DotfileError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotfileError with the given code and message
func New(code ErrorCode, message string) *DotfileError {
	return &DotfileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotfileError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotfileError {
	return &DotfileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotfileError
func Wrap(err error, code ErrorCode, message string) *DotfileError {
	if err == nil {
		return nil
	}
	return &DotfileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotfileError {
	if err == nil {
		return nil
	}
	return &DotfileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// MissingFile reports a path referenced by a project config that does not exist.
func MissingFile(kind, path string) *DotfileError {
	return Newf(ErrMissingFile, "%s does not exist: %s", kind, path).
		WithDetail("path", path).
		WithDetail("kind", kind)
}

// WithDetail adds a detail to the error
func (e *DotfileError) WithDetail(key string, value interface{}) *DotfileError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DotfileError) WithDetails(details map[string]interface{}) *DotfileError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dfErr *DotfileError
	if errors.As(err, &dfErr) {
		return dfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotfileError
func GetErrorCode(err error) ErrorCode {
	var dfErr *DotfileError
	if errors.As(err, &dfErr) {
		return dfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotfileError
func GetErrorDetails(err error) map[string]interface{} {
	var dfErr *DotfileError
	if errors.As(err, &dfErr) {
		return dfErr.Details
	}
	return nil
}
