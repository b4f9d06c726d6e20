package utils

import (
	"errors"
	"net/http"
)

// CustomError carries the HTTP status that should be returned to the client
// along with a safe message. Err keeps the underlying cause for logging.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with no underlying cause.
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// WrapError attaches a cause to a client-facing error.
func WrapError(statusCode int, message string, err error) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message, Err: err}
}

func BadRequest(message string) *CustomError {
	return NewCustomError(http.StatusBadRequest, message)
}

func NotFound(message string) *CustomError {
	return NewCustomError(http.StatusNotFound, message)
}

func Conflict(message string) *CustomError {
	return NewCustomError(http.StatusConflict, message)
}

func Internal(message string, err error) *CustomError {
	return WrapError(http.StatusInternalServerError, message, err)
}

// StatusCode returns the status carried by err, or 500.
func StatusCode(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.StatusCode
	}
	return http.StatusInternalServerError
}
