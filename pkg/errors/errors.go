package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode identifies the kind of a failure. Codes are stable so tests and
// callers can match on them instead of on messages.
type ErrorCode string

const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Generation errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrMissingVariable  ErrorCode = "MISSING_VARIABLE"
	ErrWriteConflict    ErrorCode = "WRITE_CONFLICT"
	ErrIOFailure        ErrorCode = "IO_FAILURE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Template acquisition errors
	ErrFetchFailed ErrorCode = "FETCH_FAILED"
)

// Detail keys shared across packages.
const (
	DetailPath      = "path"
	DetailTemplate  = "template"
	DetailVariables = "variables"
	DetailSearched  = "searched"
	DetailPaths     = "paths"
	DetailURL       = "url"
)

// ScafferError is a coded error with optional structured details.
type ScafferError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ScafferError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ScafferError) Unwrap() error {
	return e.Wrapped
}

// Is matches any ScafferError with the same code.
func (e *ScafferError) Is(target error) bool {
	var targetErr *ScafferError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ScafferError with the given code and message
func New(code ErrorCode, message string) *ScafferError {
	return &ScafferError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ScafferError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ScafferError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. It returns nil for a nil err.
func Wrap(err error, code ErrorCode, message string) *ScafferError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ScafferError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *ScafferError) WithDetail(key string, value interface{}) *ScafferError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ScafferError) WithDetails(details map[string]interface{}) *ScafferError {
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
	var scafferErr *ScafferError
	if errors.As(err, &scafferErr) {
		return scafferErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ScafferError
func GetErrorCode(err error) ErrorCode {
	var scafferErr *ScafferError
	if errors.As(err, &scafferErr) {
		return scafferErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ScafferError
func GetErrorDetails(err error) map[string]interface{} {
	var scafferErr *ScafferError
	if errors.As(err, &scafferErr) {
		return scafferErr.Details
	}
	return nil
}

// MissingVariables builds the MISSING_VARIABLE error for all names at once.
// names are the kebab forms of the variables, in prompt order.
func MissingVariables(names []string) *ScafferError {
	return Newf(ErrMissingVariable, "missing values for %d variable(s): %s", len(names), strings.Join(names, ", ")).
		WithDetail(DetailVariables, names)
}

// TemplateNotFound builds the TEMPLATE_NOT_FOUND error listing the roots that
// were searched.
func TemplateNotFound(name string, searched []string) *ScafferError {
	return Newf(ErrTemplateNotFound, "template %q not found", name).
		WithDetail(DetailTemplate, name).
		WithDetail(DetailSearched, searched)
}

// Summary formats the details of err as sorted "key=value" pairs, for
// logging.
func Summary(err error) string {
	details := GetErrorDetails(err)
	if len(details) == 0 {
		return ""
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, details[k]))
	}
	return strings.Join(parts, " ")
}
