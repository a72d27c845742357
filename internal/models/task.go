package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

type Task struct {
	ID            uint64     `gorm:"primarykey" json:"id"`
	ProjectID     uint64     `gorm:"not null;index" json:"project_id"`
	Title         string     `gorm:"type:varchar(200);not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Status        TaskStatus `gorm:"type:varchar(20);not null;default:'TODO';index" json:"status"`
	AssigneeEmail string     `gorm:"type:varchar(255)" json:"assignee_email"`
	DueDate       *time.Time `gorm:"index" json:"due_date"`
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`

	// Relations
	Project  Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Comments []Comment `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}

// IsOverdue reports whether the task is past its due date and not yet done.
// Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskStatusDone
}
