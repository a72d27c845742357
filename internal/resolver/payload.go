package resolver

import (
	"github.com/yukikurage/project-tracker-api/internal/dto"
)

// FieldError names the offending field of a rejected mutation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OrganizationPayload is the mutation envelope for organization operations
type OrganizationPayload struct {
	Organization *dto.OrganizationDTO `json:"organization"`
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	Errors       []FieldError         `json:"errors"`
}

// ProjectPayload is the mutation envelope for project operations
type ProjectPayload struct {
	Project *dto.ProjectDTO `json:"project"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  []FieldError    `json:"errors"`
}

// TaskPayload is the mutation envelope for task operations
type TaskPayload struct {
	Task    *dto.TaskDTO `json:"task"`
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// CommentPayload is the mutation envelope for comment operations
type CommentPayload struct {
	Comment *dto.CommentDTO `json:"comment"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  []FieldError    `json:"errors"`
}

func organizationSuccess(org dto.OrganizationDTO, message string) OrganizationPayload {
	return OrganizationPayload{Organization: &org, Success: true, Message: message, Errors: []FieldError{}}
}

func organizationFailure(message string, errs ...FieldError) OrganizationPayload {
	return OrganizationPayload{Success: false, Message: message, Errors: fieldErrors(errs)}
}

func projectSuccess(project dto.ProjectDTO, message string) ProjectPayload {
	return ProjectPayload{Project: &project, Success: true, Message: message, Errors: []FieldError{}}
}

func projectFailure(message string, errs ...FieldError) ProjectPayload {
	return ProjectPayload{Success: false, Message: message, Errors: fieldErrors(errs)}
}

func taskSuccess(task dto.TaskDTO, message string) TaskPayload {
	return TaskPayload{Task: &task, Success: true, Message: message, Errors: []FieldError{}}
}

func taskFailure(message string, errs ...FieldError) TaskPayload {
	return TaskPayload{Success: false, Message: message, Errors: fieldErrors(errs)}
}

func commentSuccess(comment dto.CommentDTO, message string) CommentPayload {
	return CommentPayload{Comment: &comment, Success: true, Message: message, Errors: []FieldError{}}
}

func commentFailure(message string, errs ...FieldError) CommentPayload {
	return CommentPayload{Success: false, Message: message, Errors: fieldErrors(errs)}
}

func fieldErrors(errs []FieldError) []FieldError {
	if errs == nil {
		return []FieldError{}
	}
	return errs
}

func notFoundError(field, message string) FieldError {
	return FieldError{Field: field, Message: message}
}

func slugTakenError() FieldError {
	return FieldError{Field: "slug", Message: "An organization with this slug already exists"}
}
