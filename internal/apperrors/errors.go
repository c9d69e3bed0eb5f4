// Package apperrors defines the error kinds services return and their HTTP status mapping.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	// TypeValidation is a missing or blank required field (HTTP 400).
	TypeValidation ErrorType = "validation"
	// TypeNotFound is an unknown session or box (HTTP 404).
	TypeNotFound ErrorType = "not_found"
	// TypeConflict is an operation refused because another one is running (HTTP 409).
	TypeConflict ErrorType = "conflict"
	// TypePersistence is a store failure (HTTP 500).
	TypePersistence ErrorType = "persistence"
)

type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) HTTPStatus() int {
	switch e.Type {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func ValidationError(message string) *Error {
	return &Error{Type: TypeValidation, Message: message, Context: make(map[string]any)}
}

func NotFoundError(message string) *Error {
	return &Error{Type: TypeNotFound, Message: message, Context: make(map[string]any)}
}

func ConflictError(message string) *Error {
	return &Error{Type: TypeConflict, Message: message, Context: make(map[string]any)}
}

func PersistenceError(message string, cause error) *Error {
	return &Error{Type: TypePersistence, Message: message, Cause: cause, Context: make(map[string]any)}
}

// WithField adds a context field (chainable).
func (e *Error) WithField(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

type ErrorResponse struct {
	Error string    `json:"error"`
	Type  ErrorType `json:"type"`
}

func (e *Error) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message, Type: e.Type}
}

// AsStructuredError returns err as an *Error, wrapping unknown errors as persistence failures.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}
	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}
	return PersistenceError("internal error", err)
}

func IsType(err error, errorType ErrorType) bool {
	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr.Type == errorType
	}
	return false
}

func IsValidation(err error) bool {
	return IsType(err, TypeValidation)
}

func IsNotFound(err error) bool {
	return IsType(err, TypeNotFound)
}
