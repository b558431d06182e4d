package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email         string `gorm:"uniqueIndex;not null"`
    Password      string `gorm:"not null"`
    FullName      string
    Bio           string
    AvatarURL     string
    HeightCm      float64
    Sex           string
    Birthday      time.Time
    FitnessGoal   string // "lose_weight" | "build_muscle" | "endurance" | ...
    MFAEnabled    bool
    MFACode       string
    ResetToken    string
    ResetTokenExp time.Time
}
