package dto

import (
	"time"

	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/stats"
)

// OrganizationDTO represents an organization in API responses
type OrganizationDTO struct {
	ID           uint64                   `json:"id"`
	Name         string                   `json:"name"`
	Slug         string                   `json:"slug"`
	ContactEmail string                   `json:"contact_email"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
	ProjectCount int                      `json:"project_count"`
	Stats        *stats.OrganizationStats `json:"stats,omitempty"`
}

// ToOrganizationDTO converts an Organization model to OrganizationDTO
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		ContactEmail: org.ContactEmail,
		CreatedAt:    org.CreatedAt,
		UpdatedAt:    org.UpdatedAt,
	}
}

// ToOrganizationDTOWithStats converts an Organization model and a computed
// roll-up to a DTO carrying derived fields
func ToOrganizationDTOWithStats(org models.Organization, st stats.OrganizationStats) OrganizationDTO {
	dto := ToOrganizationDTO(org)
	dto.ProjectCount = st.TotalProjects
	dto.Stats = &st
	return dto
}
