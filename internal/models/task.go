package model

import (
	"time"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// Valid reports whether s is one of the three task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is the single persisted entity. The database is the sole source of
// truth; nothing is cached across requests.
type Task struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"size:200;not null"`
	Description *string    `gorm:"size:2000"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;check:status IN ('TODO','IN_PROGRESS','DONE');index:idx_tasks_status;index:idx_tasks_status_due_date,priority:1"`
	DueDate     *time.Time `gorm:"type:date;index:idx_tasks_due_date;index:idx_tasks_status_due_date,priority:2"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}
