package dto

import (
	"time"

	"github.com/yukikurage/project-tracker-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID            uint64            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Status        models.TaskStatus `json:"status"`
	AssigneeEmail string            `json:"assignee_email"`
	DueDate       *time.Time        `json:"due_date"`
	CreatedAt     time.Time         `json:"created_at"`
	IsOverdue     bool              `json:"is_overdue"`
	CommentCount  int64             `json:"comment_count"`
	Project       *ProjectRefDTO    `json:"project,omitempty"`
	Comments      []CommentDTO      `json:"comments,omitempty"`
}

// ToTaskDTO converts a Task model to TaskDTO. The overdue flag is derived
// against the caller's "now" so every task in one response shares the same
// reference time. The parent project is included when preloaded.
func ToTaskDTO(task models.Task, commentCount int64, now time.Time) TaskDTO {
	dto := TaskDTO{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		Status:        task.Status,
		AssigneeEmail: task.AssigneeEmail,
		DueDate:       task.DueDate,
		CreatedAt:     task.CreatedAt,
		IsOverdue:     task.IsOverdue(now),
		CommentCount:  commentCount,
	}

	// Include project if preloaded
	if task.Project.ID != 0 {
		ref := ToProjectRefDTO(task.Project)
		dto.Project = &ref
	}

	return dto
}
