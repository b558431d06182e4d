package models

import "gorm.io/gorm"

// FoodItem is a catalog entry. Macro values are per single unit
// (one serving, one gram, whatever Unit says).
type FoodItem struct {
    gorm.Model
    Name            string `gorm:"index;not null"`
    Brand           string
    Unit            string  // "g" | "serving" | "ml"
    CaloriesPerUnit float64
    ProteinPerUnit  float64
    CarbsPerUnit    float64
    FatsPerUnit     float64
    Source          string // "custom" | "openfoodfacts" | "photo"
    CreatedByID     uint   `gorm:"index"` // 0 for shared catalog entries
}
