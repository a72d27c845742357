// Package resolver implements the query and mutation operations of the
// project-tracking graph. Every operation re-derives tenant membership through
// the organization -> project -> task -> comment chain; a bare numeric ID is
// never trusted on its own.
package resolver

import (
	"fmt"
	"time"

	"github.com/yukikurage/project-tracker-api/internal/dto"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/repository"
	"github.com/yukikurage/project-tracker-api/internal/stats"
)

// Resolver holds the repositories every operation reads and writes through.
// It is stateless between requests.
type Resolver struct {
	orgs     repository.OrganizationRepository
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	comments repository.CommentRepository
}

// New creates a new Resolver
func New(
	orgs repository.OrganizationRepository,
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
	comments repository.CommentRepository,
) *Resolver {
	return &Resolver{
		orgs:     orgs,
		projects: projects,
		tasks:    tasks,
		comments: comments,
	}
}

// organizationStats fetches one snapshot of an organization's projects and
// tasks and computes the roll-up from it.
func (r *Resolver) organizationStats(organizationID uint64) (stats.OrganizationStats, error) {
	projects, err := r.projects.ListByOrganizationID(organizationID)
	if err != nil {
		return stats.OrganizationStats{}, fmt.Errorf("failed to list projects: %w", err)
	}

	tasks, err := r.tasks.ListByOrganizationID(organizationID)
	if err != nil {
		return stats.OrganizationStats{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return stats.ForOrganization(projects, tasks), nil
}

// taskDTOs converts a task snapshot to DTOs, resolving comment counts in a
// single grouped query and deriving overdue flags against one shared now.
func (r *Resolver) taskDTOs(tasks []models.Task, now time.Time) ([]dto.TaskDTO, error) {
	ids := make([]uint64, len(tasks))
	for i := range tasks {
		ids[i] = tasks[i].ID
	}

	counts, err := r.comments.CountByTaskIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	result := make([]dto.TaskDTO, len(tasks))
	for i, task := range tasks {
		result[i] = dto.ToTaskDTO(task, counts[task.ID], now)
	}
	return result, nil
}
