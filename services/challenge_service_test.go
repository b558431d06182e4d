package services

import (
	"testing"
	"time"

	"github.com/varad16/fittrack-pro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLeaveRequiresMembership(t *testing.T) {
	db := newTestDB(t)
	svc := NewChallengeService(db)

	ch := models.Challenge{
		Name:      "March Miles",
		Type:      models.ChallengeDistance,
		GoalValue: 50,
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&ch).Error)
	p := models.ChallengeParticipant{ChallengeID: ch.ID, UserID: 1, JoinedAt: time.Now()}
	require.NoError(t, db.Create(&p).Error)

	// never joined
	assert.ErrorIs(t, svc.Leave(2, ch.ID), gorm.ErrRecordNotFound)

	require.NoError(t, svc.Leave(1, ch.ID))

	// already left
	assert.ErrorIs(t, svc.Leave(1, ch.ID), gorm.ErrRecordNotFound)
}
