package models

import (
    "time"

    "gorm.io/gorm"
)

// One Meal (breakfast/lunch/…)
type Meal struct {
    gorm.Model
    UserID  uint      `gorm:"index;not null"`
    Type    string    // "breakfast" | "lunch" | "dinner" | "snack"
    AteAt   time.Time `gorm:"index"`
    Entries []FoodEntry

    // Running totals maintained on write. Treated as a cache only:
    // read paths recompute from Entries.
    TotalCalories float64
    TotalProtein  float64
    TotalCarbs    float64
    TotalFats     float64
}

// FoodEntry stores a macro snapshot per unit at logging time, so later
// catalog edits never rewrite history.
type FoodEntry struct {
    gorm.Model
    MealID     uint `gorm:"index;not null"`
    FoodItemID uint
    FoodName   string

    Quantity        float64 // units of FoodItem.Unit, > 0
    CaloriesPerUnit float64
    ProteinPerUnit  float64
    CarbsPerUnit    float64
    FatsPerUnit     float64
}
