package repository

import (
	"time"

	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindScoped finds a task by ID under the organization identified by slug.
// The ancestor chain (task -> project -> organization) is resolved inside the
// query; a foreign tenant's ID is reported as not found.
func (r *GormTaskRepository) FindScoped(id uint64, organizationSlug string) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Joins("JOIN organizations ON organizations.id = projects.organization_id").
		Where("tasks.id = ? AND organizations.slug = ?", id, organizationSlug).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks matching the filter, most recently created first
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	query := r.db.
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Joins("JOIN organizations ON organizations.id = projects.organization_id").
		Where("tasks.project_id = ? AND organizations.slug = ?", filter.ProjectID, filter.OrganizationSlug)

	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}

	var tasks []models.Task
	if err := query.Order("tasks.created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByProjectID retrieves every task of a project, most recently created first
func (r *GormTaskRepository) ListByProjectID(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByOrganizationID retrieves every task transitively under an organization
func (r *GormTaskRepository) ListByOrganizationID(organizationID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.organization_id = ?", organizationID).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListOverdue retrieves overdue tasks under the organization, ascending by due
// date, with the parent project preloaded
func (r *GormTaskRepository) ListOverdue(organizationSlug string, now time.Time) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Joins("JOIN organizations ON organizations.id = projects.organization_id").
		Where("organizations.slug = ?", organizationSlug).
		Where("tasks.due_date IS NOT NULL AND tasks.due_date < ?", now.UTC()).
		Where("tasks.status <> ?", models.TaskStatusDone).
		Order("tasks.due_date ASC").
		Preload("Project").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete deletes a task and its comments in a transaction
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{}, id).Error
	})
}
