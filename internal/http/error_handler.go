package http

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
)

// ErrorHandler is the single cross-cutting translator from the error
// taxonomy to the uniform wire body {message, code, field}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := dto.ErrorResponse{
		Message: "an unexpected error occurred",
		Code:    apperrors.CodeInternal,
	}

	if exc, ok := apperrors.From(err); ok {
		status = exc.StatusCode
		body.Message = exc.Message
		body.Code = exc.Code
		if exc.Field != "" {
			field := exc.Field
			body.Field = &field
		}
	} else if httpErr, ok := err.(*echo.HTTPError); ok {
		// Framework-raised errors: unmatched routes, method not allowed.
		status = httpErr.Code
		body.Message = fmt.Sprintf("%v", httpErr.Message)
		body.Code = wireCode(httpErr.Code)
	} else {
		log.Printf("unexpected error: %v", err)
	}

	if jsonErr := c.JSON(status, body); jsonErr != nil {
		log.Printf("failed to write error response: %v", jsonErr)
	}
}

func wireCode(status int) string {
	switch {
	case status == http.StatusNotFound:
		return apperrors.CodeNotFound
	case status >= 400 && status < 500:
		return apperrors.CodeBadRequest
	default:
		return apperrors.CodeInternal
	}
}
