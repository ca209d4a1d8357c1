package errors

import "net/http"

func Validation(field, message string) *Exception {
	return &Exception{
		Message:    message,
		Code:       CodeValidation,
		Field:      field,
		StatusCode: http.StatusBadRequest,
	}
}
