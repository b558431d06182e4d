package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joined(day int) time.Time {
	return time.Date(2024, 5, day, 12, 0, 0, 0, time.UTC)
}

func TestComputeLeaderboard(t *testing.T) {
	entries, err := ComputeLeaderboard(100, []ParticipantProgress{
		{UserID: 1, Progress: 150, JoinedAt: joined(1)},
		{UserID: 2, Progress: 50, JoinedAt: joined(2)},
	})

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, uint(1), entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 100.0, entries[0].ProgressPercentage) // clamped
	assert.True(t, entries[0].IsCompleted)

	assert.Equal(t, uint(2), entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 50.0, entries[1].ProgressPercentage)
	assert.False(t, entries[1].IsCompleted)
}

func TestComputeLeaderboardEmptyParticipants(t *testing.T) {
	entries, err := ComputeLeaderboard(100, nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestComputeLeaderboardRejectsNonPositiveGoal(t *testing.T) {
	_, err := ComputeLeaderboard(0, nil)
	assert.ErrorIs(t, err, ErrInvalidGoal)

	_, err = ComputeLeaderboard(-5, nil)
	assert.ErrorIs(t, err, ErrInvalidGoal)
}

func TestTieBrokenByEarlierJoin(t *testing.T) {
	entries, err := ComputeLeaderboard(100, []ParticipantProgress{
		{UserID: 1, Progress: 40, JoinedAt: joined(20)},
		{UserID: 2, Progress: 40, JoinedAt: joined(3)},
		{UserID: 3, Progress: 40, JoinedAt: joined(10)},
	})

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, uint(2), entries[0].UserID) // joined first
	assert.Equal(t, uint(3), entries[1].UserID)
	assert.Equal(t, uint(1), entries[2].UserID)
}

// Every participant gets a unique rank 1..N, even across ties.
func TestRanksAreUniqueAndSequential(t *testing.T) {
	parts := []ParticipantProgress{
		{UserID: 1, Progress: 10, JoinedAt: joined(1)},
		{UserID: 2, Progress: 10, JoinedAt: joined(2)},
		{UserID: 3, Progress: 10, JoinedAt: joined(3)},
		{UserID: 4, Progress: 99, JoinedAt: joined(4)},
		{UserID: 5, Progress: 0, JoinedAt: joined(5)},
	}

	entries, err := ComputeLeaderboard(50, parts)
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, e := range entries {
		assert.False(t, seen[e.Rank], "duplicate rank %d", e.Rank)
		seen[e.Rank] = true
	}
	for want := 1; want <= len(parts); want++ {
		assert.True(t, seen[want], "missing rank %d", want)
	}
}

func TestPercentageClampedForLargeOvershoot(t *testing.T) {
	entries, err := ComputeLeaderboard(10, []ParticipantProgress{
		{UserID: 1, Progress: 100000, JoinedAt: joined(1)},
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, entries[0].ProgressPercentage)
	assert.True(t, entries[0].IsCompleted)
}

func TestParticipantWithNoActivityRanksLast(t *testing.T) {
	entries, err := ComputeLeaderboard(100, []ParticipantProgress{
		{UserID: 1, Progress: 0, JoinedAt: joined(1)},
		{UserID: 2, Progress: 5, JoinedAt: joined(2)},
	})

	require.NoError(t, err)
	last := entries[len(entries)-1]
	assert.Equal(t, uint(1), last.UserID)
	assert.Equal(t, 2, last.Rank)
	assert.Equal(t, 0.0, last.Progress)
	assert.False(t, last.IsCompleted)

	// Exact completion counts as completed.
	entries, err = ComputeLeaderboard(100, []ParticipantProgress{
		{UserID: 3, Progress: 100, JoinedAt: joined(1)},
	})
	require.NoError(t, err)
	assert.True(t, entries[0].IsCompleted)
}
