package repository

import (
	"time"

	"github.com/yukikurage/project-tracker-api/internal/models"
)

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// Create creates a new organization
	Create(org *models.Organization) error

	// FindByID finds an organization by ID
	FindByID(id uint64) (*models.Organization, error)

	// FindBySlug finds an organization by its slug (exact match)
	FindBySlug(slug string) (*models.Organization, error)

	// List retrieves all organizations, most recently created first
	List() ([]models.Organization, error)

	// Update updates an organization
	Update(org *models.Organization) error

	// Delete deletes an organization and everything under it
	Delete(id uint64) error

	// SlugTaken reports whether a different organization already holds the slug.
	// excludeID is ignored when zero.
	SlugTaken(slug string, excludeID uint64) (bool, error)
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	OrganizationSlug string
	Status           *models.ProjectStatus
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindScoped finds a project by ID within the organization identified by
	// slug; an ID under another tenant is indistinguishable from a missing ID
	FindScoped(id uint64, organizationSlug string) (*models.Project, error)

	// List retrieves projects matching the filter, most recently created first
	List(filter ProjectFilter) ([]models.Project, error)

	// ListByOrganizationID retrieves every project of an organization
	ListByOrganizationID(organizationID uint64) ([]models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete deletes a project, its tasks, and their comments
	Delete(id uint64) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	ProjectID        uint64
	OrganizationSlug string
	Status           *models.TaskStatus
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindScoped finds a task by ID within the organization identified by slug
	FindScoped(id uint64, organizationSlug string) (*models.Task, error)

	// List retrieves tasks matching the filter, most recently created first
	List(filter TaskFilter) ([]models.Task, error)

	// ListByProjectID retrieves every task of a project, most recently created first
	ListByProjectID(projectID uint64) ([]models.Task, error)

	// ListByOrganizationID retrieves every task transitively under an organization
	ListByOrganizationID(organizationID uint64) ([]models.Task, error)

	// ListOverdue retrieves tasks under the organization whose due date is
	// before now and whose status is not DONE, ascending by due date, with
	// the parent project preloaded
	ListOverdue(organizationSlug string, now time.Time) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task and its comments
	Delete(id uint64) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// ListScoped retrieves the comments of a task within the organization
	// identified by slug, oldest first
	ListScoped(taskID uint64, organizationSlug string) ([]models.Comment, error)

	// CountByTaskIDs returns the number of comments per task for the given task IDs
	CountByTaskIDs(taskIDs []uint64) (map[uint64]int64, error)
}
