package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a stable, machine-readable error code surfaced to API clients.
type Code string

const (
	CodeValidation         Code = "VALIDATION_FAILED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeConflict           Code = "CONFLICT"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeUnverified         Code = "EMAIL_NOT_VERIFIED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeInternal           Code = "INTERNAL_ERROR"
	CodeExternal           Code = "EXTERNAL_SERVICE_ERROR"
)

// AppError carries a stable code plus the HTTP status it maps to.
type AppError struct {
	Code     Code
	Message  string
	Details  any
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

func New(code Code, message string, httpCode int) *AppError {
	return &AppError{Code: code, Message: message, HTTPCode: httpCode}
}

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

func Unauthenticated(message string) *AppError {
	return New(CodeUnauthenticated, message, http.StatusUnauthorized)
}

func InvalidCredentials(message string) *AppError {
	return New(CodeInvalidCredentials, message, http.StatusUnauthorized)
}

func Unverified(message string) *AppError {
	return New(CodeUnverified, message, http.StatusForbidden)
}

func Forbidden(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func Internal(message string, err error) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Err: err, HTTPCode: http.StatusInternalServerError}
}

func External(message string, err error) *AppError {
	return &AppError{Code: CodeExternal, Message: message, Err: err, HTTPCode: http.StatusBadGateway}
}

// FromError extracts an *AppError from err's chain; unknown errors map to
// a generic internal error so handlers never leak raw failures.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}
