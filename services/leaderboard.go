package services

import (
	"errors"
	"sort"
	"time"
)

// ---------- Leaderboard ranking ----------
//
// Pure ranking over already-computed progress values. Recomputed on every
// request; nothing here is cached or persisted.

var ErrInvalidGoal = errors.New("challenge goal value must be positive")

// ParticipantProgress is one participant's computed progress plus the
// join time used for tie-breaking.
type ParticipantProgress struct {
	UserID   uint
	FullName string
	Progress float64
	JoinedAt time.Time
}

type LeaderboardEntry struct {
	UserID             uint    `json:"user_id"`
	FullName           string  `json:"full_name,omitempty"`
	Progress           float64 `json:"progress"`
	ProgressPercentage float64 `json:"progress_percentage"`
	Rank               int     `json:"rank"`
	IsCompleted        bool    `json:"is_completed"`
}

// ComputeLeaderboard ranks participants against the goal.
//
// Order: descending progress, ties broken by earlier JoinedAt (first to
// join wins the tie). Ranks are unique 1..N. Percentage is clamped to
// [0,100] no matter how far past the goal a participant is.
func ComputeLeaderboard(goalValue float64, participants []ParticipantProgress) ([]LeaderboardEntry, error) {
	if goalValue <= 0 {
		return nil, ErrInvalidGoal
	}

	sorted := make([]ParticipantProgress, len(participants))
	copy(sorted, participants)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Progress != sorted[j].Progress {
			return sorted[i].Progress > sorted[j].Progress
		}
		return sorted[i].JoinedAt.Before(sorted[j].JoinedAt)
	})

	out := make([]LeaderboardEntry, 0, len(sorted))
	for i, p := range sorted {
		progress := p.Progress
		if progress < 0 {
			progress = 0
		}
		out = append(out, LeaderboardEntry{
			UserID:             p.UserID,
			FullName:           p.FullName,
			Progress:           round2(progress),
			ProgressPercentage: pct(progress, goalValue),
			Rank:               i + 1,
			IsCompleted:        progress >= goalValue,
		})
	}
	return out, nil
}
