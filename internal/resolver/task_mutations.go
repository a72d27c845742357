package resolver

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/project-tracker-api/internal/dto"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// CreateTaskArgs represents input for creating a task
type CreateTaskArgs struct {
	OrganizationSlug string     `json:"organization_slug"`
	ProjectID        uint64     `json:"project_id"`
	Title            string     `json:"title"`
	Description      *string    `json:"description"`
	Status           *string    `json:"status"`
	AssigneeEmail    *string    `json:"assignee_email"`
	DueDate          *time.Time `json:"due_date"`
}

// UpdateTaskArgs represents input for updating a task.
// Nil fields are left unchanged.
type UpdateTaskArgs struct {
	ID               uint64     `json:"id"`
	OrganizationSlug string     `json:"organization_slug"`
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Status           *string    `json:"status"`
	AssigneeEmail    *string    `json:"assignee_email"`
	DueDate          *time.Time `json:"due_date"`
}

// DeleteTaskArgs identifies the task to delete
type DeleteTaskArgs struct {
	ID               uint64 `json:"id"`
	OrganizationSlug string `json:"organization_slug"`
}

// CreateTask creates a task under a project that must belong to the
// organization identified by slug.
func (r *Resolver) CreateTask(args CreateTaskArgs) TaskPayload {
	project, err := r.projects.FindScoped(args.ProjectID, args.OrganizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return taskFailure("Project not found", notFoundError("project_id", "Project not found"))
		}
		return taskFailure(err.Error())
	}

	status := models.TaskStatusTodo
	if args.Status != nil && *args.Status != "" {
		status, err = models.ValidateTaskStatus(*args.Status)
		if err != nil {
			return taskFailure("Task could not be created", FieldError{Field: "status", Message: err.Error()})
		}
	}

	task := &models.Task{
		ProjectID: project.ID,
		Title:     args.Title,
		Status:    status,
		DueDate:   args.DueDate,
	}
	if args.Description != nil {
		task.Description = *args.Description
	}
	if args.AssigneeEmail != nil {
		task.AssigneeEmail = *args.AssigneeEmail
	}

	if err := r.tasks.Create(task); err != nil {
		return taskFailure(err.Error())
	}

	return taskSuccess(dto.ToTaskDTO(*task, 0, time.Now()), "Task created successfully")
}

// UpdateTask patches the supplied fields of a tenant-scoped task.
func (r *Resolver) UpdateTask(args UpdateTaskArgs) TaskPayload {
	task, err := r.tasks.FindScoped(args.ID, args.OrganizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return taskFailure("Task not found", notFoundError("id", "Task not found"))
		}
		return taskFailure(err.Error())
	}

	if args.Status != nil && *args.Status != "" {
		status, err := models.ValidateTaskStatus(*args.Status)
		if err != nil {
			return taskFailure("Task could not be updated", FieldError{Field: "status", Message: err.Error()})
		}
		task.Status = status
	}
	if args.Title != nil {
		task.Title = *args.Title
	}
	if args.Description != nil {
		task.Description = *args.Description
	}
	if args.AssigneeEmail != nil {
		task.AssigneeEmail = *args.AssigneeEmail
	}
	if args.DueDate != nil {
		task.DueDate = args.DueDate
	}

	if err := r.tasks.Update(task); err != nil {
		return taskFailure(err.Error())
	}

	counts, err := r.comments.CountByTaskIDs([]uint64{task.ID})
	if err != nil {
		return taskFailure(err.Error())
	}

	return taskSuccess(dto.ToTaskDTO(*task, counts[task.ID], time.Now()), "Task updated successfully")
}

// DeleteTask deletes a tenant-scoped task, cascading to its comments.
func (r *Resolver) DeleteTask(args DeleteTaskArgs) TaskPayload {
	task, err := r.tasks.FindScoped(args.ID, args.OrganizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return taskFailure("Task not found", notFoundError("id", "Task not found"))
		}
		return taskFailure(err.Error())
	}

	if err := r.tasks.Delete(task.ID); err != nil {
		return taskFailure(err.Error())
	}

	return TaskPayload{
		Success: true,
		Message: fmt.Sprintf("Task '%s' deleted successfully", task.Title),
		Errors:  []FieldError{},
	}
}
