package dto

import (
	"testing"
	"time"

	model "task-manager.com/task-manager/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func TestToTaskMapsAllFields(t *testing.T) {
	req := &TaskRequest{
		Title:       "T",
		Description: strPtr("D"),
		Status:      "IN_PROGRESS",
		DueDate:     strPtr("2025-12-31"),
	}

	task, err := ToTask(req)
	if err != nil {
		t.Fatalf("failed to map request: %v", err)
	}

	if task.Title != "T" {
		t.Errorf("expected title T, got %q", task.Title)
	}
	if task.Description == nil || *task.Description != "D" {
		t.Errorf("expected description D, got %v", task.Description)
	}
	if task.Status != model.StatusInProgress {
		t.Errorf("expected status IN_PROGRESS, got %s", task.Status)
	}
	if task.DueDate == nil || task.DueDate.Format(DateLayout) != "2025-12-31" {
		t.Errorf("expected due date 2025-12-31, got %v", task.DueDate)
	}
	if task.ID != 0 || !task.CreatedAt.IsZero() || !task.UpdatedAt.IsZero() {
		t.Error("expected id and timestamps to be left unset")
	}
}

func TestToTaskNilOptionalFields(t *testing.T) {
	task, err := ToTask(&TaskRequest{Title: "T", Status: "TODO"})
	if err != nil {
		t.Fatalf("failed to map request: %v", err)
	}

	if task.Description != nil {
		t.Errorf("expected nil description, got %v", task.Description)
	}
	if task.DueDate != nil {
		t.Errorf("expected nil due date, got %v", task.DueDate)
	}
}

func TestToTaskRejectsBadDate(t *testing.T) {
	_, err := ToTask(&TaskRequest{Title: "T", Status: "TODO", DueDate: strPtr("31-12-2025")})
	if err == nil {
		t.Error("expected an error for a malformed date")
	}
}

func TestToTaskResponseRendersUTCInstants(t *testing.T) {
	created := time.Date(2025, 6, 1, 14, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	due := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	resp := ToTaskResponse(&model.Task{
		ID:          7,
		Title:       "T",
		Description: strPtr("D"),
		Status:      model.StatusDone,
		DueDate:     &due,
		CreatedAt:   created,
		UpdatedAt:   created,
	})

	if resp.ID != 7 {
		t.Errorf("expected id 7, got %d", resp.ID)
	}
	if resp.CreatedAt != "2025-06-01T12:30:00Z" {
		t.Errorf("expected UTC RFC 3339 createdAt, got %q", resp.CreatedAt)
	}
	if resp.UpdatedAt != resp.CreatedAt {
		t.Errorf("expected matching timestamps, got %q and %q", resp.CreatedAt, resp.UpdatedAt)
	}
	if resp.DueDate == nil || *resp.DueDate != "2025-12-31" {
		t.Errorf("expected due date 2025-12-31, got %v", resp.DueDate)
	}
	if resp.Status != "DONE" {
		t.Errorf("expected status DONE, got %q", resp.Status)
	}
}

func TestToTaskResponseNilOptionalFields(t *testing.T) {
	resp := ToTaskResponse(&model.Task{
		ID:        1,
		Title:     "T",
		Status:    model.StatusTodo,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})

	if resp.Description != nil {
		t.Errorf("expected nil description, got %v", resp.Description)
	}
	if resp.DueDate != nil {
		t.Errorf("expected nil due date, got %v", resp.DueDate)
	}
}
