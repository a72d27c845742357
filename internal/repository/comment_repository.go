package repository

import (
	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListScoped retrieves the comments of a task under the organization
// identified by slug, oldest first
func (r *GormCommentRepository) ListScoped(taskID uint64, organizationSlug string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.
		Joins("JOIN tasks ON tasks.id = comments.task_id").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Joins("JOIN organizations ON organizations.id = projects.organization_id").
		Where("comments.task_id = ? AND organizations.slug = ?", taskID, organizationSlug).
		Order("comments.created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByTaskIDs returns the number of comments per task in one grouped query
func (r *GormCommentRepository) CountByTaskIDs(taskIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(taskIDs))
	if len(taskIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TaskID uint64
		Count  int64
	}
	err := r.db.Model(&models.Comment{}).
		Select("task_id, COUNT(*) AS count").
		Where("task_id IN ?", taskIDs).
		Group("task_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TaskID] = row.Count
	}
	return counts, nil
}
