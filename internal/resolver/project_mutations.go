package resolver

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/project-tracker-api/internal/dto"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// CreateProjectArgs represents input for creating a project
type CreateProjectArgs struct {
	OrganizationSlug string     `json:"organization_slug"`
	Name             string     `json:"name"`
	Description      *string    `json:"description"`
	Status           *string    `json:"status"`
	DueDate          *time.Time `json:"due_date"`
}

// UpdateProjectArgs represents input for updating a project.
// Nil fields are left unchanged.
type UpdateProjectArgs struct {
	ID               uint64     `json:"id"`
	OrganizationSlug string     `json:"organization_slug"`
	Name             *string    `json:"name"`
	Description      *string    `json:"description"`
	Status           *string    `json:"status"`
	DueDate          *time.Time `json:"due_date"`
}

// DeleteProjectArgs identifies the project to delete
type DeleteProjectArgs struct {
	ID               uint64 `json:"id"`
	OrganizationSlug string `json:"organization_slug"`
}

// CreateProject creates a project under the organization identified by slug.
func (r *Resolver) CreateProject(args CreateProjectArgs) ProjectPayload {
	org, err := r.orgs.FindBySlug(args.OrganizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return projectFailure("Organization not found", notFoundError("organization_slug", "Organization not found"))
		}
		return projectFailure(err.Error())
	}

	status := models.ProjectStatusActive
	if args.Status != nil && *args.Status != "" {
		status, err = models.ValidateProjectStatus(*args.Status)
		if err != nil {
			return projectFailure("Project could not be created", FieldError{Field: "status", Message: err.Error()})
		}
	}

	project := &models.Project{
		OrganizationID: org.ID,
		Name:           args.Name,
		Status:         status,
		DueDate:        args.DueDate,
	}
	if args.Description != nil {
		project.Description = *args.Description
	}

	if err := r.projects.Create(project); err != nil {
		return projectFailure(err.Error())
	}

	return projectSuccess(dto.ToProjectDTO(*project), "Project created successfully")
}

// UpdateProject patches the supplied fields of a tenant-scoped project.
func (r *Resolver) UpdateProject(args UpdateProjectArgs) ProjectPayload {
	project, err := r.projects.FindScoped(args.ID, args.OrganizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return projectFailure("Project not found", notFoundError("id", "Project not found"))
		}
		return projectFailure(err.Error())
	}

	if args.Status != nil && *args.Status != "" {
		status, err := models.ValidateProjectStatus(*args.Status)
		if err != nil {
			return projectFailure("Project could not be updated", FieldError{Field: "status", Message: err.Error()})
		}
		project.Status = status
	}
	if args.Name != nil {
		project.Name = *args.Name
	}
	if args.Description != nil {
		project.Description = *args.Description
	}
	if args.DueDate != nil {
		project.DueDate = args.DueDate
	}

	if err := r.projects.Update(project); err != nil {
		return projectFailure(err.Error())
	}

	return projectSuccess(dto.ToProjectDTO(*project), "Project updated successfully")
}

// DeleteProject deletes a tenant-scoped project, cascading to its tasks and
// their comments.
func (r *Resolver) DeleteProject(args DeleteProjectArgs) ProjectPayload {
	project, err := r.projects.FindScoped(args.ID, args.OrganizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return projectFailure("Project not found", notFoundError("id", "Project not found"))
		}
		return projectFailure(err.Error())
	}

	if err := r.projects.Delete(project.ID); err != nil {
		return projectFailure(err.Error())
	}

	return ProjectPayload{
		Success: true,
		Message: fmt.Sprintf("Project '%s' deleted successfully", project.Name),
		Errors:  []FieldError{},
	}
}
