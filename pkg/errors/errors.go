package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeDuplicate     ErrorCode = "DUPLICATE"
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode
	Message string
	// Details lists every individual problem, in the order they were found.
	Details []string
	Err     error
}

func (e *AppError) Error() string {
	msg := e.Message
	if len(e.Details) > 0 {
		msg = fmt.Sprintf("%s: %s", e.Message, e.Detail())
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail joins Details the way clients expect to read them.
func (e *AppError) Detail() string {
	return strings.Join(e.Details, ", ")
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with an AppError
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation creates a validation error carrying every violated rule.
func Validation(details []string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: "Validation failed",
		Details: details,
	}
}

// Storage wraps an I/O failure on a backing collection.
func Storage(err error) *AppError {
	return Wrap(ErrCodeInternalError, "internal error", err)
}

// As returns the AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the AppError in err's chain, or
// ErrCodeInternalError for anything else.
func CodeOf(err error) ErrorCode {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// IsNotFound checks if error is NotFound
func IsNotFound(err error) bool {
	return err != nil && CodeOf(err) == ErrCodeNotFound
}

// IsValidation checks if error is a validation failure
func IsValidation(err error) bool {
	return err != nil && CodeOf(err) == ErrCodeValidation
}

// IsDuplicate checks if error is Duplicate
func IsDuplicate(err error) bool {
	return err != nil && CodeOf(err) == ErrCodeDuplicate
}

// IsStorage checks if error is an internal storage failure
func IsStorage(err error) bool {
	return err != nil && CodeOf(err) == ErrCodeInternalError
}
