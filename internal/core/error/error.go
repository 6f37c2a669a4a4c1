package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// StorageErrorMessage describes database related failures.
	StorageErrorMessage = "storage operation failed"
)

// Kind classifies an AppError for logging and status mapping.
type Kind string

const (
	KindValidation Kind = "validation"
	KindUpstream   Kind = "upstream"
	KindStorage    Kind = "storage"
	KindCache      Kind = "cache"
	KindInternal   Kind = "internal"
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Kind    Kind
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// PublicMessage is the text that may be returned to a caller.
// Only validation messages are considered safe; everything else collapses
// to SystemErrorMessage.
func (e *AppError) PublicMessage() string {
	if e.Kind == KindValidation {
		return e.Message
	}
	return SystemErrorMessage
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Validation reports a caller mistake. The message is returned to the caller verbatim.
func Validation(message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// Validationf is Validation with fmt formatting.
func Validationf(format string, args ...any) *AppError {
	return Validation(fmt.Sprintf(format, args...))
}

// WrapUpstream wraps a failure of an external collaborator (catalog, language model).
func WrapUpstream(err error, message string) error {
	if err == nil {
		return nil
	}
	// keep the innermost classification, e.g. a storage error bubbling through
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	return &AppError{
		Kind:    KindUpstream,
		Err:     err,
		Status:  http.StatusInternalServerError,
		Message: message,
	}
}

// WrapStorage wraps a persistence failure with a consistent status code and message.
func WrapStorage(err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind:    KindStorage,
		Err:     err,
		Status:  http.StatusInternalServerError,
		Message: StorageErrorMessage,
	}
}

// From converts any error into an AppError, defaulting to an internal 500.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(err, http.StatusInternalServerError, SystemErrorMessage)
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return errors.As(e.Err, target)
}
