package errors

import (
	"fmt"
	"net/http"
)

func TaskNotFound(id uint) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("task not found with id: %d", id),
		Code:       CodeNotFound,
		StatusCode: http.StatusNotFound,
	}
}
