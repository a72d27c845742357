// Package graph exposes the resolver operations as a catalog keyed by
// operation name. The catalog is built once at process start; the query engine
// (or the bundled HTTP handler) hands it a name and an argument bag and gets
// back a plain structured value.
package graph

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yukikurage/project-tracker-api/internal/resolver"
)

var (
	// ErrUnknownOperation is returned for operation names the catalog does not carry
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrInvalidArguments is returned when an argument bag cannot be decoded
	ErrInvalidArguments = errors.New("invalid arguments")
)

type operationFunc func(args json.RawMessage) (any, error)

// Catalog maps operation names to their resolver entry points
type Catalog struct {
	operations map[string]operationFunc
}

// NewCatalog builds the full operation catalog over a resolver
func NewCatalog(r *resolver.Resolver) *Catalog {
	c := &Catalog{operations: make(map[string]operationFunc)}

	// Queries
	c.register("allOrganizations", func(_ json.RawMessage) (any, error) {
		return r.AllOrganizations()
	})
	c.register("organization", func(raw json.RawMessage) (any, error) {
		var args resolver.OrganizationArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.Organization(args)
	})
	c.register("organizationById", func(raw json.RawMessage) (any, error) {
		var args resolver.OrganizationByIDArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.OrganizationByID(args)
	})
	c.register("projectsByOrganization", func(raw json.RawMessage) (any, error) {
		var args resolver.ProjectsByOrganizationArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.ProjectsByOrganization(args)
	})
	c.register("project", func(raw json.RawMessage) (any, error) {
		var args resolver.ProjectArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.Project(args)
	})
	c.register("tasksByProject", func(raw json.RawMessage) (any, error) {
		var args resolver.TasksByProjectArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.TasksByProject(args)
	})
	c.register("task", func(raw json.RawMessage) (any, error) {
		var args resolver.TaskArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.Task(args)
	})
	c.register("overdueTasks", func(raw json.RawMessage) (any, error) {
		var args resolver.OverdueTasksArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.OverdueTasks(args)
	})
	c.register("commentsByTask", func(raw json.RawMessage) (any, error) {
		var args resolver.CommentsByTaskArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.CommentsByTask(args)
	})

	// Mutations resolve every failure into their payload, so they never
	// return an error past the decode step
	c.register("createOrganization", func(raw json.RawMessage) (any, error) {
		var args resolver.CreateOrganizationArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.CreateOrganization(args), nil
	})
	c.register("updateOrganization", func(raw json.RawMessage) (any, error) {
		var args resolver.UpdateOrganizationArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.UpdateOrganization(args), nil
	})
	c.register("deleteOrganization", func(raw json.RawMessage) (any, error) {
		var args resolver.DeleteOrganizationArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.DeleteOrganization(args), nil
	})
	c.register("createProject", func(raw json.RawMessage) (any, error) {
		var args resolver.CreateProjectArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.CreateProject(args), nil
	})
	c.register("updateProject", func(raw json.RawMessage) (any, error) {
		var args resolver.UpdateProjectArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.UpdateProject(args), nil
	})
	c.register("deleteProject", func(raw json.RawMessage) (any, error) {
		var args resolver.DeleteProjectArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.DeleteProject(args), nil
	})
	c.register("createTask", func(raw json.RawMessage) (any, error) {
		var args resolver.CreateTaskArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.CreateTask(args), nil
	})
	c.register("updateTask", func(raw json.RawMessage) (any, error) {
		var args resolver.UpdateTaskArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.UpdateTask(args), nil
	})
	c.register("deleteTask", func(raw json.RawMessage) (any, error) {
		var args resolver.DeleteTaskArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.DeleteTask(args), nil
	})
	c.register("addComment", func(raw json.RawMessage) (any, error) {
		var args resolver.AddCommentArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.AddComment(args), nil
	})

	return c
}

func (c *Catalog) register(name string, fn operationFunc) {
	c.operations[name] = fn
}

// Execute dispatches a named operation with its raw argument bag
func (c *Catalog) Execute(operation string, args json.RawMessage) (any, error) {
	fn, ok := c.operations[operation]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
	}
	return fn(args)
}

func decodeArgs(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}
