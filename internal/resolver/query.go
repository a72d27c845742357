package resolver

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/project-tracker-api/internal/dto"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/repository"
	"github.com/yukikurage/project-tracker-api/internal/stats"
	"gorm.io/gorm"
)

// OrganizationArgs identifies an organization by its slug
type OrganizationArgs struct {
	Slug string `json:"slug"`
}

// OrganizationByIDArgs identifies an organization by its ID
type OrganizationByIDArgs struct {
	ID uint64 `json:"id"`
}

// ProjectsByOrganizationArgs filters the project list of an organization
type ProjectsByOrganizationArgs struct {
	OrganizationSlug string  `json:"organization_slug"`
	Status           *string `json:"status"`
}

// ProjectArgs identifies a project within an organization
type ProjectArgs struct {
	ID               uint64 `json:"id"`
	OrganizationSlug string `json:"organization_slug"`
}

// TasksByProjectArgs filters the task list of a project
type TasksByProjectArgs struct {
	ProjectID        uint64  `json:"project_id"`
	OrganizationSlug string  `json:"organization_slug"`
	Status           *string `json:"status"`
}

// TaskArgs identifies a task within an organization
type TaskArgs struct {
	ID               uint64 `json:"id"`
	OrganizationSlug string `json:"organization_slug"`
}

// OverdueTasksArgs identifies an organization for the overdue roll-up
type OverdueTasksArgs struct {
	OrganizationSlug string `json:"organization_slug"`
}

// CommentsByTaskArgs identifies a task within an organization
type CommentsByTaskArgs struct {
	TaskID           uint64 `json:"task_id"`
	OrganizationSlug string `json:"organization_slug"`
}

// AllOrganizations returns every organization with its roll-up, most recently
// created first.
func (r *Resolver) AllOrganizations() ([]dto.OrganizationDTO, error) {
	orgs, err := r.orgs.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	result := make([]dto.OrganizationDTO, len(orgs))
	for i, org := range orgs {
		st, err := r.organizationStats(org.ID)
		if err != nil {
			return nil, err
		}
		result[i] = dto.ToOrganizationDTOWithStats(org, st)
	}
	return result, nil
}

// Organization returns the organization with the given slug, or nil when no
// such organization exists.
func (r *Resolver) Organization(args OrganizationArgs) (*dto.OrganizationDTO, error) {
	org, err := r.orgs.FindBySlug(args.Slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	st, err := r.organizationStats(org.ID)
	if err != nil {
		return nil, err
	}

	result := dto.ToOrganizationDTOWithStats(*org, st)
	return &result, nil
}

// OrganizationByID returns the organization with the given ID, or nil when no
// such organization exists.
func (r *Resolver) OrganizationByID(args OrganizationByIDArgs) (*dto.OrganizationDTO, error) {
	org, err := r.orgs.FindByID(args.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	st, err := r.organizationStats(org.ID)
	if err != nil {
		return nil, err
	}

	result := dto.ToOrganizationDTOWithStats(*org, st)
	return &result, nil
}

// ProjectsByOrganization returns the organization's projects, newest first,
// optionally filtered by status (case-insensitive).
func (r *Resolver) ProjectsByOrganization(args ProjectsByOrganizationArgs) ([]dto.ProjectDTO, error) {
	filter := repository.ProjectFilter{OrganizationSlug: args.OrganizationSlug}
	if args.Status != nil && *args.Status != "" {
		status := models.ProjectStatus(models.NormalizeStatus(*args.Status))
		filter.Status = &status
	}

	projects, err := r.projects.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		return []dto.ProjectDTO{}, nil
	}

	// One task snapshot for the whole organization feeds every project's stats
	now := time.Now()
	tasks, err := r.tasks.ListByOrganizationID(projects[0].OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	byProject := make(map[uint64][]models.Task)
	for _, task := range tasks {
		byProject[task.ProjectID] = append(byProject[task.ProjectID], task)
	}

	result := make([]dto.ProjectDTO, len(projects))
	for i, project := range projects {
		result[i] = dto.ToProjectDTOWithStats(project, stats.ForProject(byProject[project.ID], now))
	}
	return result, nil
}

// Project returns a single tenant-scoped project with its stats and tasks, or
// nil when the ID does not resolve under the given organization.
func (r *Resolver) Project(args ProjectArgs) (*dto.ProjectDTO, error) {
	project, err := r.projects.FindScoped(args.ID, args.OrganizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	now := time.Now()
	tasks, err := r.tasks.ListByProjectID(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	result := dto.ToProjectDTOWithStats(*project, stats.ForProject(tasks, now))
	result.Tasks, err = r.taskDTOs(tasks, now)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// TasksByProject returns a project's tasks, newest first, optionally filtered
// by status (case-insensitive).
func (r *Resolver) TasksByProject(args TasksByProjectArgs) ([]dto.TaskDTO, error) {
	filter := repository.TaskFilter{
		ProjectID:        args.ProjectID,
		OrganizationSlug: args.OrganizationSlug,
	}
	if args.Status != nil && *args.Status != "" {
		status := models.TaskStatus(models.NormalizeStatus(*args.Status))
		filter.Status = &status
	}

	tasks, err := r.tasks.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return r.taskDTOs(tasks, time.Now())
}

// Task returns a single tenant-scoped task with its comments, or nil when the
// ID does not resolve under the given organization.
func (r *Resolver) Task(args TaskArgs) (*dto.TaskDTO, error) {
	task, err := r.tasks.FindScoped(args.ID, args.OrganizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	comments, err := r.comments.ListScoped(task.ID, args.OrganizationSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	result := dto.ToTaskDTO(*task, int64(len(comments)), time.Now())
	result.Comments = make([]dto.CommentDTO, len(comments))
	for i, comment := range comments {
		result.Comments[i] = dto.ToCommentDTO(comment)
	}
	return &result, nil
}

// OverdueTasks returns the organization's overdue tasks, ascending by due
// date, each with its parent project.
func (r *Resolver) OverdueTasks(args OverdueTasksArgs) ([]dto.TaskDTO, error) {
	now := time.Now()
	tasks, err := r.tasks.ListOverdue(args.OrganizationSlug, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue tasks: %w", err)
	}

	return r.taskDTOs(tasks, now)
}

// CommentsByTask returns a task's comments, oldest first.
func (r *Resolver) CommentsByTask(args CommentsByTaskArgs) ([]dto.CommentDTO, error) {
	comments, err := r.comments.ListScoped(args.TaskID, args.OrganizationSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	result := make([]dto.CommentDTO, len(comments))
	for i, comment := range comments {
		result[i] = dto.ToCommentDTO(comment)
	}
	return result, nil
}
