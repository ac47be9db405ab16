package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// AppError is the application error type carried from services up to handlers.
// Message is the user-visible text; Err is the wrapped cause and is never
// exposed to the client.
type AppError struct {
	Code     ErrorCode
	Domain   string
	Message  string
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds a fresh AppError.
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying cause to a new AppError.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// InternalError wraps an unexpected system error. The client only ever sees
// the generic message.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// NewBadRequestError builds a 400 with a caller-supplied message.
func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}

// NewValidationError collapses a field -> message map into one short 400
// message. The client only ever gets a single string, never a field map.
func NewValidationError(errs map[string]string) *AppError {
	allRequired := len(errs) > 0
	for _, msg := range errs {
		if msg == "Invalid email format" {
			return New(CodeValidationFailed, "request", msg, http.StatusBadRequest)
		}
		if msg != "This field is required" {
			allRequired = false
		}
	}
	if allRequired {
		return New(CodeValidationFailed, "request", "All fields are required", http.StatusBadRequest)
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+errs[field])
	}
	return New(CodeValidationFailed, "request", strings.Join(parts, "; "), http.StatusBadRequest)
}

// NewForbiddenError builds a 403.
func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, "auth", message, http.StatusForbidden)
}

// NewNotFoundError builds a 404 with a domain-specific message.
func NewNotFoundError(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// NewConflictError builds a 409 with a domain-specific message.
func NewConflictError(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}
