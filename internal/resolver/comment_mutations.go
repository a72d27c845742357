package resolver

import (
	"errors"
	"strings"

	"github.com/yukikurage/project-tracker-api/internal/dto"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// AddCommentArgs represents input for adding a comment to a task
type AddCommentArgs struct {
	OrganizationSlug string `json:"organization_slug"`
	TaskID           uint64 `json:"task_id"`
	Content          string `json:"content"`
	AuthorEmail      string `json:"author_email"`
}

// AddComment adds a comment to a tenant-scoped task. Content is trimmed and
// must not be empty; comments cannot be edited or deleted afterwards.
func (r *Resolver) AddComment(args AddCommentArgs) CommentPayload {
	task, err := r.tasks.FindScoped(args.TaskID, args.OrganizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return commentFailure("Task not found", notFoundError("task_id", "Task not found"))
		}
		return commentFailure(err.Error())
	}

	content := strings.TrimSpace(args.Content)
	if content == "" {
		return commentFailure("Comment could not be added", FieldError{Field: "content", Message: "Comment content cannot be empty"})
	}

	comment := &models.Comment{
		TaskID:      task.ID,
		Content:     content,
		AuthorEmail: args.AuthorEmail,
	}
	if err := r.comments.Create(comment); err != nil {
		return commentFailure(err.Error())
	}

	return commentSuccess(dto.ToCommentDTO(*comment), "Comment added successfully")
}
