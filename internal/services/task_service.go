package services

import (
	"context"
	"errors"
	"log"
	"time"

	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) GetTasksByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error) {
	return s.repo.FindByStatus(ctx, status)
}

func (s *TaskService) GetTasksDueBefore(ctx context.Context, date time.Time) ([]model.Task, error) {
	return s.repo.FindByDueDateBefore(ctx, date)
}

func (s *TaskService) GetTasksDueBetween(ctx context.Context, start, end time.Time) ([]model.Task, error) {
	return s.repo.FindByDueDateBetween(ctx, start, end)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, apperrors.TaskNotFound(id)
		}
		return nil, err
	}
	return task, nil
}

// CreateTask persists a new task. Any caller-supplied id or timestamps are
// discarded and regenerated server-side.
func (s *TaskService) CreateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	log.Printf("task created with id %d", task.ID)
	return task, nil
}

// UpdateTask replaces the mutable fields of an existing task. This is a full
// replace, not a patch: a nil description or due date in the input clears the
// stored value. created_at is preserved, updated_at is refreshed.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, in *model.Task) (*model.Task, error) {
	var updated *model.Task

	err := s.repo.Transaction(ctx, func(tx *repository.TaskRepository) error {
		existing, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		existing.Title = in.Title
		existing.Description = in.Description
		existing.Status = in.Status
		existing.DueDate = in.DueDate

		if err := tx.Update(ctx, existing); err != nil {
			return err
		}

		updated = existing
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, apperrors.TaskNotFound(id)
		}
		return nil, err
	}

	log.Printf("task updated with id %d", id)
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	err := s.repo.Transaction(ctx, func(tx *repository.TaskRepository) error {
		task, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		return tx.Delete(ctx, task)
	})
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return apperrors.TaskNotFound(id)
		}
		return err
	}

	log.Printf("task deleted with id %d", id)
	return nil
}

func (s *TaskService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
