package repository

import (
	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindScoped finds a project by ID under the organization identified by slug.
// The tenant check happens in the query itself, so an ID belonging to another
// organization yields gorm.ErrRecordNotFound exactly like a missing ID.
func (r *GormProjectRepository) FindScoped(id uint64, organizationSlug string) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Joins("JOIN organizations ON organizations.id = projects.organization_id").
		Where("projects.id = ? AND organizations.slug = ?", id, organizationSlug).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves projects matching the filter, most recently created first
func (r *GormProjectRepository) List(filter ProjectFilter) ([]models.Project, error) {
	query := r.db.
		Joins("JOIN organizations ON organizations.id = projects.organization_id").
		Where("organizations.slug = ?", filter.OrganizationSlug)

	if filter.Status != nil {
		query = query.Where("projects.status = ?", *filter.Status)
	}

	var projects []models.Project
	if err := query.Order("projects.created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListByOrganizationID retrieves every project of an organization
func (r *GormProjectRepository) ListByOrganizationID(organizationID uint64) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project, its tasks, and their comments in a transaction
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&models.Task{}).
			Select("tasks.id").
			Where("tasks.project_id = ?", id)

		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, id).Error
	})
}
