// Package stats derives project and organization roll-ups from stored state.
// All functions are pure: they operate on a snapshot the caller has already
// fetched (or preloaded) so every figure in one result comes from the same
// consistent view of the data. Nothing here is cached.
package stats

import (
	"math"
	"time"

	"github.com/yukikurage/project-tracker-api/internal/models"
)

// ProjectStats aggregates the tasks of a single project.
type ProjectStats struct {
	TotalTasks           int     `json:"total_tasks"`
	CompletedTasks       int     `json:"completed_tasks"`
	InProgressTasks      int     `json:"in_progress_tasks"`
	TodoTasks            int     `json:"todo_tasks"`
	OverdueTasks         int     `json:"overdue_tasks"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// OrganizationStats aggregates the projects of an organization and all tasks
// transitively under it.
type OrganizationStats struct {
	TotalProjects     int `json:"total_projects"`
	ActiveProjects    int `json:"active_projects"`
	CompletedProjects int `json:"completed_projects"`
	TotalTasks        int `json:"total_tasks"`
	CompletedTasks    int `json:"completed_tasks"`
}

// ForProject computes project statistics over one snapshot of its tasks.
func ForProject(tasks []models.Task, now time.Time) ProjectStats {
	st := ProjectStats{TotalTasks: len(tasks)}

	for i := range tasks {
		switch tasks[i].Status {
		case models.TaskStatusDone:
			st.CompletedTasks++
		case models.TaskStatusInProgress:
			st.InProgressTasks++
		case models.TaskStatusTodo:
			st.TodoTasks++
		}
		if tasks[i].IsOverdue(now) {
			st.OverdueTasks++
		}
	}

	if st.TotalTasks > 0 {
		pct := float64(st.CompletedTasks) / float64(st.TotalTasks) * 100
		st.CompletionPercentage = math.Round(pct*100) / 100
	}

	return st
}

// ForOrganization computes organization statistics over snapshots of its
// projects and of every task transitively under it.
func ForOrganization(projects []models.Project, tasks []models.Task) OrganizationStats {
	st := OrganizationStats{
		TotalProjects: len(projects),
		TotalTasks:    len(tasks),
	}

	for i := range projects {
		switch projects[i].Status {
		case models.ProjectStatusActive:
			st.ActiveProjects++
		case models.ProjectStatusCompleted:
			st.CompletedProjects++
		}
	}

	for i := range tasks {
		if tasks[i].Status == models.TaskStatusDone {
			st.CompletedTasks++
		}
	}

	return st
}
