package models

import (
    "time"

    "gorm.io/gorm"
)

type ChallengeType string

const (
    ChallengeDistance     ChallengeType = "distance"      // km from GPS activities
    ChallengeWorkoutCount ChallengeType = "workout_count" // workouts logged
    ChallengeWeightLoss   ChallengeType = "weight_loss"   // kg lost since start
    ChallengeSteps        ChallengeType = "steps"         // daily step logs
)

type Challenge struct {
    gorm.Model
    Name        string        `gorm:"not null"`
    Description string        `gorm:"type:text"`
    Type        ChallengeType `gorm:"type:varchar(20);not null"`
    GoalValue   float64       `gorm:"not null"` // > 0
    StartDate   time.Time     `gorm:"not null"`
    EndDate     time.Time     `gorm:"not null"` // >= StartDate
    CreatorID   uint          `gorm:"index"`

    Participants []ChallengeParticipant
}

// ChallengeParticipant is unique per (challenge, user).
type ChallengeParticipant struct {
    gorm.Model
    ChallengeID uint      `gorm:"uniqueIndex:idx_challenge_user;not null"`
    UserID      uint      `gorm:"uniqueIndex:idx_challenge_user;not null"`
    JoinedAt    time.Time `gorm:"not null"`
    // Set once when the user first crosses the goal, so the completion
    // alert fires a single time. Leaderboards never read it back.
    CompletedAt *time.Time
}
