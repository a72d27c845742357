package dto

import (
	"time"

	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/stats"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	DueDate     *time.Time           `json:"due_date"`
	CreatedAt   time.Time            `json:"created_at"`
	TaskCount   int                  `json:"task_count"`
	Stats       *stats.ProjectStats  `json:"stats,omitempty"`
	Tasks       []TaskDTO            `json:"tasks,omitempty"`
}

// ProjectRefDTO is a minimal reference to a parent project
type ProjectRefDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		DueDate:     project.DueDate,
		CreatedAt:   project.CreatedAt,
	}
}

// ToProjectDTOWithStats converts a Project model and a computed roll-up to a
// DTO carrying derived fields
func ToProjectDTOWithStats(project models.Project, st stats.ProjectStats) ProjectDTO {
	dto := ToProjectDTO(project)
	dto.TaskCount = st.TotalTasks
	dto.Stats = &st
	return dto
}

// ToProjectRefDTO converts a Project model to its minimal reference form
func ToProjectRefDTO(project models.Project) ProjectRefDTO {
	return ProjectRefDTO{
		ID:   project.ID,
		Name: project.Name,
	}
}
