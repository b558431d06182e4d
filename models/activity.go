package models

import (
    "time"

    "gorm.io/gorm"
)

// Activity is one recorded GPS session (run, ride, walk, hike).
// The summary metrics are derived once at upload from the route points.
type Activity struct {
    gorm.Model
    ShareID string    `gorm:"type:varchar(36);uniqueIndex;not null"` // uuid for share links
    UserID  uint      `gorm:"index;not null"`
    Type    string    `gorm:"not null"` // "running" | "cycling" | "walking" | "hiking"
    Title   string
    StartedAt time.Time `gorm:"index;not null"`
    EndedAt   time.Time

    DurationSeconds   float64
    DistanceKm        float64
    AvgPaceMinPerKm   float64
    ElevationGainM    float64
    EstimatedCalories float64

    Points []RoutePoint
    Pauses []ActivityPause
}

// RoutePoint is one GPS fix, ordered by Seq within the activity.
type RoutePoint struct {
    gorm.Model
    ActivityID      uint `gorm:"index;not null"`
    Seq             int  `gorm:"not null"`
    Latitude        float64
    Longitude       float64
    AltitudeM       *float64 // nil when the receiver had no altitude fix
    TimestampMillis int64
}

// ActivityPause is one paused interval of the recording timer.
type ActivityPause struct {
    gorm.Model
    ActivityID uint `gorm:"index;not null"`
    PausedAt   time.Time
    ResumedAt  time.Time
}
