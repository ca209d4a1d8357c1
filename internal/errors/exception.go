package errors

import (
	"errors"
	"net/http"
)

const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeBadRequest = "BAD_REQUEST"
	CodeInternal   = "INTERNAL_ERROR"
)

type Exception struct {
	Message    string
	Code       string
	Field      string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// From extracts an *Exception from an error chain.
func From(err error) (*Exception, bool) {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func StatusCode(err error) int {
	if appErr, ok := From(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
