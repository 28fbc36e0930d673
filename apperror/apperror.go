// Package apperror defines the application's error taxonomy and its mapping
// to HTTP status codes, so services can return typed failures and controllers
// can translate them uniformly.
package apperror

import (
	"errors"
	"net/http"
)

// ErrorType categorizes an application error.
type ErrorType int

const (
	// InternalError is an unexpected failure (store, crypto primitive). Its
	// detail is never exposed to clients.
	InternalError ErrorType = iota
	// UnauthenticatedError means the request carried no usable credential.
	UnauthenticatedError
	// ForbiddenError means the principal is authenticated but does not own
	// the resource.
	ForbiddenError
	// NotFoundError means the resource id does not exist.
	NotFoundError
	// InvalidArgumentError means a required field is missing or malformed.
	InvalidArgumentError
	// ConflictError means a unique field is already taken.
	ConflictError
	// InvalidCredentialsError is the deliberately undifferentiated login
	// failure (unknown email and wrong password are indistinguishable).
	InvalidCredentialsError
)

// AppError carries a type, a client-facing message and an optional wrapped
// cause for logs.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to the HTTP status an adapter should send.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case UnauthenticatedError, ForbiddenError, InvalidCredentialsError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case InvalidArgumentError, ConflictError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is what a client may see. Internal failures collapse to a
// generic message.
func (e *AppError) PublicMessage() string {
	if e.Type == InternalError {
		return "something went wrong, please try again"
	}
	return e.Message
}

func newError(t ErrorType, message string, err error) *AppError {
	return &AppError{Type: t, Message: message, Err: err}
}

func Internal(message string, err error) *AppError {
	return newError(InternalError, message, err)
}

func Unauthenticated(message string) *AppError {
	return newError(UnauthenticatedError, message, nil)
}

func Forbidden(message string) *AppError {
	return newError(ForbiddenError, message, nil)
}

func NotFound(message string) *AppError {
	return newError(NotFoundError, message, nil)
}

func InvalidArgument(message string) *AppError {
	return newError(InvalidArgumentError, message, nil)
}

func Conflict(message string) *AppError {
	return newError(ConflictError, message, nil)
}

func InvalidCredentials() *AppError {
	return newError(InvalidCredentialsError, "wrong email or password", nil)
}

// From extracts the *AppError from err's chain; anything else is wrapped as
// an internal failure so callers always get a typed error.
func From(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("unexpected error", err)
}

func Is(err error, t ErrorType) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Type == t
}
