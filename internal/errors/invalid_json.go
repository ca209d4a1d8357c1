package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Message:    "invalid JSON payload",
	Code:       CodeBadRequest,
	StatusCode: http.StatusBadRequest,
}
