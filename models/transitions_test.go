package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

func TestValidateSessionTransition(t *testing.T) {
	assert.NoError(t, models.ValidateSessionTransition(models.SessionStatusPending, models.SessionStatusActive))
	assert.NoError(t, models.ValidateSessionTransition(models.SessionStatusPending, models.SessionStatusCancelled))
	assert.NoError(t, models.ValidateSessionTransition(models.SessionStatusActive, models.SessionStatusCompleted))
	assert.NoError(t, models.ValidateSessionTransition(models.SessionStatusActive, models.SessionStatusCancelled))

	// a completed session may be reopened by the mentor, but a reopened
	// session can never go back to pending
	assert.NoError(t, models.ValidateSessionTransition(models.SessionStatusCompleted, models.SessionStatusActive))
	assert.Error(t, models.ValidateSessionTransition(models.SessionStatusActive, models.SessionStatusPending))
}

func TestValidateSessionTransitionCancelledIsTerminal(t *testing.T) {
	for _, to := range models.SessionStatuses {
		err := models.ValidateSessionTransition(models.SessionStatusCancelled, to)
		assert.Error(t, err)
	}
}

func TestValidateSessionTransitionErrorMessage(t *testing.T) {
	err := models.ValidateSessionTransition(models.SessionStatusPending, models.SessionStatusCompleted)
	assert.EqualError(t, err, "invalid transition from 'pending' to 'completed'")
}

func TestIsSessionStatus(t *testing.T) {
	assert.True(t, models.IsSessionStatus("active"))
	assert.False(t, models.IsSessionStatus("paused"))
}

func TestValidateProjectTransition(t *testing.T) {
	assert.NoError(t, models.ValidateProjectTransition(models.ProjectStatusPendingApproval, models.ProjectStatusActive))
	assert.NoError(t, models.ValidateProjectTransition(models.ProjectStatusPendingApproval, models.ProjectStatusDeclined))
	assert.NoError(t, models.ValidateProjectTransition(models.ProjectStatusActive, models.ProjectStatusCompleted))

	// declined and completed projects never move again
	assert.Error(t, models.ValidateProjectTransition(models.ProjectStatusDeclined, models.ProjectStatusActive))
	assert.Error(t, models.ValidateProjectTransition(models.ProjectStatusCompleted, models.ProjectStatusActive))
	assert.Error(t, models.ValidateProjectTransition(models.ProjectStatusActive, models.ProjectStatusPendingApproval))
}
