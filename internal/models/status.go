package models

import (
	"fmt"
	"strings"
)

var (
	projectStatuses = []ProjectStatus{ProjectStatusActive, ProjectStatusCompleted, ProjectStatusOnHold}
	taskStatuses    = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}
)

// NormalizeStatus upper-cases a candidate status value. Status input is
// case-insensitive everywhere; only the upper form is ever stored.
func NormalizeStatus(candidate string) string {
	return strings.ToUpper(strings.TrimSpace(candidate))
}

// ValidateProjectStatus normalizes a candidate and checks it against the
// project status vocabulary.
func ValidateProjectStatus(candidate string) (ProjectStatus, error) {
	normalized := NormalizeStatus(candidate)
	for _, s := range projectStatuses {
		if ProjectStatus(normalized) == s {
			return s, nil
		}
	}
	return "", statusError(projectStatusNames())
}

// ValidateTaskStatus normalizes a candidate and checks it against the task
// status vocabulary.
func ValidateTaskStatus(candidate string) (TaskStatus, error) {
	normalized := NormalizeStatus(candidate)
	for _, s := range taskStatuses {
		if TaskStatus(normalized) == s {
			return s, nil
		}
	}
	return "", statusError(taskStatusNames())
}

func statusError(allowed []string) error {
	return fmt.Errorf("Invalid status. Must be one of: %s", strings.Join(allowed, ", "))
}

func projectStatusNames() []string {
	names := make([]string, len(projectStatuses))
	for i, s := range projectStatuses {
		names[i] = string(s)
	}
	return names
}

func taskStatusNames() []string {
	names := make([]string, len(taskStatuses))
	for i, s := range taskStatuses {
		names[i] = string(s)
	}
	return names
}
