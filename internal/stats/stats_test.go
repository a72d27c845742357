package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/project-tracker-api/internal/models"
)

func TestForProject(t *testing.T) {
	now := time.Now()
	tasks := []models.Task{
		{Status: models.TaskStatusDone},
		{Status: models.TaskStatusDone},
		{Status: models.TaskStatusTodo},
		{Status: models.TaskStatusInProgress},
	}

	st := ForProject(tasks, now)

	assert.Equal(t, 4, st.TotalTasks)
	assert.Equal(t, 2, st.CompletedTasks)
	assert.Equal(t, 1, st.TodoTasks)
	assert.Equal(t, 1, st.InProgressTasks)
	assert.Equal(t, 0, st.OverdueTasks)
	assert.Equal(t, 50.0, st.CompletionPercentage)
}

func TestForProject_Empty(t *testing.T) {
	st := ForProject(nil, time.Now())

	assert.Equal(t, 0, st.TotalTasks)
	assert.Equal(t, 0.0, st.CompletionPercentage)
}

func TestForProject_Rounding(t *testing.T) {
	tasks := []models.Task{
		{Status: models.TaskStatusDone},
		{Status: models.TaskStatusTodo},
		{Status: models.TaskStatusTodo},
	}

	st := ForProject(tasks, time.Now())

	// 1/3 rounds to two decimals
	assert.Equal(t, 33.33, st.CompletionPercentage)
}

func TestForProject_Overdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	tasks := []models.Task{
		{Status: models.TaskStatusTodo, DueDate: &past},
		{Status: models.TaskStatusDone, DueDate: &past},
		{Status: models.TaskStatusTodo},
	}

	st := ForProject(tasks, now)

	assert.Equal(t, 1, st.OverdueTasks)
}

func TestForOrganization(t *testing.T) {
	projects := []models.Project{
		{Status: models.ProjectStatusActive},
		{Status: models.ProjectStatusActive},
		{Status: models.ProjectStatusCompleted},
		{Status: models.ProjectStatusOnHold},
	}
	tasks := []models.Task{
		{Status: models.TaskStatusDone},
		{Status: models.TaskStatusTodo},
		{Status: models.TaskStatusInProgress},
	}

	st := ForOrganization(projects, tasks)

	assert.Equal(t, 4, st.TotalProjects)
	assert.Equal(t, 2, st.ActiveProjects)
	assert.Equal(t, 1, st.CompletedProjects)
	assert.Equal(t, 3, st.TotalTasks)
	assert.Equal(t, 1, st.CompletedTasks)
}
