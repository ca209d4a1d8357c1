package validators

import (
	"strings"
	"time"
	"unicode/utf8"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

// ValidateTaskRequest checks the declared field constraints of a create or
// update payload and returns the first violation, or nil.
func ValidateTaskRequest(r *dto.TaskRequest) *apperrors.Exception {
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.Validation("title", "title must not be blank")
	}
	if utf8.RuneCountInString(r.Title) > maxTitleLength {
		return apperrors.Validation("title", "title must be at most 200 characters")
	}

	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLength {
		return apperrors.Validation("description", "description must be at most 2000 characters")
	}

	if r.Status == "" {
		return apperrors.Validation("status", "status is required")
	}
	if !model.TaskStatus(r.Status).Valid() {
		return apperrors.Validation("status", "status must be one of TODO, IN_PROGRESS, DONE")
	}

	if r.DueDate != nil {
		if _, err := time.Parse(dto.DateLayout, *r.DueDate); err != nil {
			return apperrors.Validation("dueDate", "dueDate must be a date in YYYY-MM-DD format")
		}
	}

	return nil
}
