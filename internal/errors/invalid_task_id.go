package errors

import "net/http"

var ErrInvalidTaskID = &Exception{
	Message:    "task id must be a positive integer",
	Code:       CodeBadRequest,
	StatusCode: http.StatusBadRequest,
}
