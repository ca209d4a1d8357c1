package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	model "task-manager.com/task-manager/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

var ErrTaskNotFound = errors.New("task not found")

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Transaction runs fn against a repository bound to a single database
// transaction. Mutating service operations use it for their
// load-modify-store sequences.
func (r *TaskRepository) Transaction(ctx context.Context, fn func(*TaskRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&TaskRepository{db: tx})
	})
}

// Create persists a new task. The id is assigned by the database and both
// timestamps are set to the same instant.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	now := time.Now().UTC()
	task.ID = 0
	task.CreatedAt = now
	task.UpdatedAt = now

	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("id asc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id asc").
		Find(&tasks).Error
	return tasks, err
}

// FindByDueDateBefore returns tasks whose due date is strictly earlier than
// date. Tasks without a due date are excluded.
func (r *TaskRepository) FindByDueDateBefore(ctx context.Context, date time.Time) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("due_date IS NOT NULL AND due_date < ?", date).
		Order("id asc").
		Find(&tasks).Error
	return tasks, err
}

// FindByDueDateBetween returns tasks with a due date in [start, end], bounds
// inclusive.
func (r *TaskRepository) FindByDueDateBetween(ctx context.Context, start, end time.Time) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("due_date BETWEEN ? AND ?", start, end).
		Order("id asc").
		Find(&tasks).Error
	return tasks, err
}

// Update overwrites the mutable columns of the stored row. A nil description
// or due date clears the stored value. created_at is never touched.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	task.UpdatedAt = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"due_date":    task.DueDate,
			"updated_at":  task.UpdatedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, task.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
