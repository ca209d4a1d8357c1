package dto

import (
	"fmt"
	"time"

	model "task-manager.com/task-manager/internal/models"
)

// DateLayout is the wire format for due dates, a calendar date with no time
// component.
const DateLayout = "2006-01-02"

type TaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate"`
}

type TaskResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type ErrorResponse struct {
	Message string  `json:"message"`
	Code    string  `json:"code"`
	Field   *string `json:"field"`
}

// ToTask converts an inbound request into an entity. Id and timestamps are
// never taken from the request; they are managed server-side.
func ToTask(req *TaskRequest) (*model.Task, error) {
	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TaskStatus(req.Status),
	}

	if req.DueDate != nil {
		due, err := time.Parse(DateLayout, *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("parse due date: %w", err)
		}
		task.DueDate = &due
	}

	return task, nil
}

// ToTaskResponse converts an entity into its wire shape. Timestamps are
// rendered as RFC 3339 instants in UTC, the due date as a bare date.
func ToTaskResponse(task *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if task.DueDate != nil {
		due := task.DueDate.Format(DateLayout)
		resp.DueDate = &due
	}

	return resp
}

func ToTaskResponses(tasks []model.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, ToTaskResponse(&tasks[i]))
	}
	return responses
}
