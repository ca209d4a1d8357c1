package errors

import "net/http"

func BadRequest(message string) *Exception {
	return &Exception{
		Message:    message,
		Code:       CodeBadRequest,
		StatusCode: http.StatusBadRequest,
	}
}
