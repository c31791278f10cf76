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
	ErrUsage        ErrorCode = "USAGE"

	// Path list errors
	ErrDuplicate        ErrorCode = "DUPLICATE"
	ErrInvalidPath      ErrorCode = "INVALID_PATH"
	ErrNotFound         ErrorCode = "NOT_FOUND"
	ErrIndexOutOfRange  ErrorCode = "INDEX_OUT_OF_RANGE"
	ErrNoPathsDefined   ErrorCode = "NO_PATHS_DEFINED"
	ErrWorkingDirectory ErrorCode = "WORKING_DIRECTORY"

	// Storage errors
	ErrStorage    ErrorCode = "STORAGE"
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Runtime (interpreter) errors
	ErrRuntime ErrorCode = "RUNTIME"
)

// PypathError represents a structured error with code and details
type PypathError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PypathError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PypathError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PypathError) Is(target error) bool {
	var targetErr *PypathError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PypathError with the given code and message
func New(code ErrorCode, message string) *PypathError {
	return &PypathError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PypathError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PypathError {
	return &PypathError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PypathError
func Wrap(err error, code ErrorCode, message string) *PypathError {
	if err == nil {
		return nil
	}
	return &PypathError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PypathError {
	if err == nil {
		return nil
	}
	return &PypathError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PypathError) WithDetail(key string, value interface{}) *PypathError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pypathErr *PypathError
	if errors.As(err, &pypathErr) {
		return pypathErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PypathError
func GetErrorCode(err error) ErrorCode {
	var pypathErr *PypathError
	if errors.As(err, &pypathErr) {
		return pypathErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PypathError
func GetErrorDetails(err error) map[string]interface{} {
	var pypathErr *PypathError
	if errors.As(err, &pypathErr) {
		return pypathErr.Details
	}
	return nil
}

// UserMessage returns the message meant for the person at the terminal,
// without the bracketed code. Wrapped causes are kept.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var pypathErr *PypathError
	if !errors.As(err, &pypathErr) {
		return err.Error()
	}
	if pypathErr.Wrapped != nil {
		return fmt.Sprintf("%s: %v", pypathErr.Message, pypathErr.Wrapped)
	}
	return pypathErr.Message
}
