package resolver

import (
	"errors"
	"fmt"

	"github.com/yukikurage/project-tracker-api/internal/dto"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"gorm.io/gorm"
)

// CreateOrganizationArgs represents input for creating an organization
type CreateOrganizationArgs struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ContactEmail string `json:"contact_email"`
}

// UpdateOrganizationArgs represents input for updating an organization.
// Nil fields are left unchanged.
type UpdateOrganizationArgs struct {
	ID           uint64  `json:"id"`
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	ContactEmail *string `json:"contact_email"`
}

// DeleteOrganizationArgs identifies the organization to delete
type DeleteOrganizationArgs struct {
	ID uint64 `json:"id"`
}

// CreateOrganization creates an organization after checking slug uniqueness.
// A concurrent create that slips past the pre-check is rejected by the store's
// unique constraint and surfaced as the same slug error.
func (r *Resolver) CreateOrganization(args CreateOrganizationArgs) OrganizationPayload {
	taken, err := r.orgs.SlugTaken(args.Slug, 0)
	if err != nil {
		return organizationFailure(err.Error())
	}
	if taken {
		return organizationFailure("Organization could not be created", slugTakenError())
	}

	org := &models.Organization{
		Name:         args.Name,
		Slug:         args.Slug,
		ContactEmail: args.ContactEmail,
	}
	if err := r.orgs.Create(org); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return organizationFailure("Organization could not be created", slugTakenError())
		}
		return organizationFailure(err.Error())
	}

	return organizationSuccess(dto.ToOrganizationDTO(*org), "Organization created successfully")
}

// UpdateOrganization patches the supplied fields of an organization. Changing
// the slug re-checks uniqueness against other organizations.
func (r *Resolver) UpdateOrganization(args UpdateOrganizationArgs) OrganizationPayload {
	org, err := r.orgs.FindByID(args.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return organizationFailure("Organization not found", notFoundError("id", "Organization not found"))
		}
		return organizationFailure(err.Error())
	}

	if args.Slug != nil && *args.Slug != org.Slug {
		taken, err := r.orgs.SlugTaken(*args.Slug, org.ID)
		if err != nil {
			return organizationFailure(err.Error())
		}
		if taken {
			return organizationFailure("Organization could not be updated", slugTakenError())
		}
		org.Slug = *args.Slug
	}
	if args.Name != nil {
		org.Name = *args.Name
	}
	if args.ContactEmail != nil {
		org.ContactEmail = *args.ContactEmail
	}

	if err := r.orgs.Update(org); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return organizationFailure("Organization could not be updated", slugTakenError())
		}
		return organizationFailure(err.Error())
	}

	return organizationSuccess(dto.ToOrganizationDTO(*org), "Organization updated successfully")
}

// DeleteOrganization deletes an organization, cascading to all of its
// projects, tasks, and comments.
func (r *Resolver) DeleteOrganization(args DeleteOrganizationArgs) OrganizationPayload {
	org, err := r.orgs.FindByID(args.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return organizationFailure("Organization not found", notFoundError("id", "Organization not found"))
		}
		return organizationFailure(err.Error())
	}

	if err := r.orgs.Delete(org.ID); err != nil {
		return organizationFailure(err.Error())
	}

	return OrganizationPayload{
		Success: true,
		Message: fmt.Sprintf("Organization '%s' deleted successfully", org.Name),
		Errors:  []FieldError{},
	}
}
