// Package apierror holds the single error kind handlers raise for
// precondition failures. The HTTP boundary renders it as
// {"message": ..., "status_code": ...}.
package apierror

import (
	"net/http"

	"github.com/pkg/errors"
)

type Error struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(message string, statusCode int) *Error {
	return &Error{
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(message string) *Error {
	return New(message, http.StatusNotFound)
}

func BadRequest(message string) *Error {
	return New(message, http.StatusBadRequest)
}

// From returns the *Error anywhere in err's chain.
func From(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
