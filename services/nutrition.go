package services

import (
	"errors"
	"math"

	"github.com/varad16/fittrack-pro/models"
)

// ---------- Nutrition rollup ----------
//
// Meals keep running totals on the row, but those are a cache that can
// drift (entry deleted mid-request, manual DB edits, old bugs). Everything
// user-facing recomputes from the entries.

var ErrNegativeQuantity = errors.New("food entry quantity must not be negative")

// FoodLine is the macro snapshot of one logged entry: quantity × per-unit.
type FoodLine struct {
	Quantity        float64
	CaloriesPerUnit float64
	ProteinPerUnit  float64
	CarbsPerUnit    float64
	FatsPerUnit     float64
}

type MealTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// SumFoodLines computes MealTotals for one meal's entries.
func SumFoodLines(lines []FoodLine) (MealTotals, error) {
	var t MealTotals
	for _, l := range lines {
		if l.Quantity < 0 {
			return MealTotals{}, ErrNegativeQuantity
		}
		t.Calories += l.Quantity * l.CaloriesPerUnit
		t.Protein += l.Quantity * l.ProteinPerUnit
		t.Carbs += l.Quantity * l.CarbsPerUnit
		t.Fats += l.Quantity * l.FatsPerUnit
	}
	return t, nil
}

// SumMealTotals rolls per-meal totals up into a day (or range) total.
func SumMealTotals(totals []MealTotals) MealTotals {
	var t MealTotals
	for _, m := range totals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fats += m.Fats
	}
	return t
}

// AveragePerLoggedDay averages daily totals over the days that actually
// have meals. Days without a single logged meal are absent from the map
// and therefore never dilute the average.
func AveragePerLoggedDay(byDay map[string]MealTotals) MealTotals {
	n := len(byDay)
	if n == 0 {
		return MealTotals{}
	}
	var sum MealTotals
	for _, d := range byDay {
		sum.Calories += d.Calories
		sum.Protein += d.Protein
		sum.Carbs += d.Carbs
		sum.Fats += d.Fats
	}
	div := float64(n)
	return MealTotals{
		Calories: sum.Calories / div,
		Protein:  sum.Protein / div,
		Carbs:    sum.Carbs / div,
		Fats:     sum.Fats / div,
	}
}

// Rounded returns a copy for the JSON boundary. Internal sums stay
// unrounded.
func (t MealTotals) Rounded() MealTotals {
	return MealTotals{
		Calories: round2(t.Calories),
		Protein:  round2(t.Protein),
		Carbs:    round2(t.Carbs),
		Fats:     round2(t.Fats),
	}
}

func foodLinesFromEntries(entries []models.FoodEntry) []FoodLine {
	lines := make([]FoodLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, FoodLine{
			Quantity:        e.Quantity,
			CaloriesPerUnit: e.CaloriesPerUnit,
			ProteinPerUnit:  e.ProteinPerUnit,
			CarbsPerUnit:    e.CarbsPerUnit,
			FatsPerUnit:     e.FatsPerUnit,
		})
	}
	return lines
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// pct clamps actual/goal to [0,100]; a zero goal yields 0 so a missing
// target never shows as progress.
func pct(actual, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := actual / goal * 100.0
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return round2(p)
}
