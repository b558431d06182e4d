package models

import (
    "time"

    "gorm.io/gorm"
)

type Workout struct {
    gorm.Model
    UserID          uint   `gorm:"index;not null"`
    Name            string `gorm:"not null"`
    Type            string // "strength" | "cardio" | "flexibility" | ...
    DurationMinutes float64
    CaloriesBurned  float64
    PerformedAt     time.Time `gorm:"index;not null"`
    Notes           string    `gorm:"type:text"`
}
