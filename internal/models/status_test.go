package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProjectStatus(t *testing.T) {
	status, err := ValidateProjectStatus("on_hold")
	assert.NoError(t, err)
	assert.Equal(t, ProjectStatusOnHold, status)

	status, err = ValidateProjectStatus("Active")
	assert.NoError(t, err)
	assert.Equal(t, ProjectStatusActive, status)

	_, err = ValidateProjectStatus("SHIPPED")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ACTIVE, COMPLETED, ON_HOLD")
}

func TestValidateTaskStatus(t *testing.T) {
	status, err := ValidateTaskStatus("in_progress")
	assert.NoError(t, err)
	assert.Equal(t, TaskStatusInProgress, status)

	_, err = ValidateTaskStatus("BLOCKED")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TODO, IN_PROGRESS, DONE")
}
