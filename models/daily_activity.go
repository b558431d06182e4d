package models

import (
    "time"

    "gorm.io/gorm"
)

// DailyActivityLog is one row per (user, UTC day): step count and active
// minutes as reported by the client's pedometer sync.
type DailyActivityLog struct {
    gorm.Model
    UserID        uint      `gorm:"index;not null"`
    Date          time.Time `gorm:"index;not null"` // truncated to UTC midnight
    Steps         float64
    ActiveMinutes float64
}
