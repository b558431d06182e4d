package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumFoodLines(t *testing.T) {
	lines := []FoodLine{
		{Quantity: 2, CaloriesPerUnit: 100, ProteinPerUnit: 10, CarbsPerUnit: 5, FatsPerUnit: 2},
		{Quantity: 1, CaloriesPerUnit: 50, ProteinPerUnit: 3, CarbsPerUnit: 8, FatsPerUnit: 1},
	}

	totals, err := SumFoodLines(lines)

	require.NoError(t, err)
	assert.Equal(t, 250.0, totals.Calories)
	assert.Equal(t, 23.0, totals.Protein)
	assert.Equal(t, 18.0, totals.Carbs)
	assert.Equal(t, 5.0, totals.Fats)
}

func TestSumFoodLinesEmpty(t *testing.T) {
	totals, err := SumFoodLines(nil)
	require.NoError(t, err)
	assert.Equal(t, MealTotals{}, totals)
}

func TestSumFoodLinesRejectsNegativeQuantity(t *testing.T) {
	_, err := SumFoodLines([]FoodLine{{Quantity: -1, CaloriesPerUnit: 100}})
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestSumMealTotals(t *testing.T) {
	day := SumMealTotals([]MealTotals{
		{Calories: 400, Protein: 25, Carbs: 40, Fats: 12},
		{Calories: 650, Protein: 40, Carbs: 70, Fats: 20},
		{Calories: 200, Protein: 5, Carbs: 30, Fats: 8},
	})

	assert.Equal(t, 1250.0, day.Calories)
	assert.Equal(t, 70.0, day.Protein)
	assert.Equal(t, 140.0, day.Carbs)
	assert.Equal(t, 40.0, day.Fats)
}

// A ten-day range with meals on only two days averages over two days:
// unlogged days are not zeros.
func TestAveragePerLoggedDayIgnoresUnloggedDays(t *testing.T) {
	byDay := map[string]MealTotals{
		"2024-03-01": {Calories: 2000, Protein: 100},
		"2024-03-07": {Calories: 1000, Protein: 50},
	}

	avg := AveragePerLoggedDay(byDay)

	assert.Equal(t, 1500.0, avg.Calories)
	assert.Equal(t, 75.0, avg.Protein)
}

func TestAveragePerLoggedDayEmpty(t *testing.T) {
	assert.Equal(t, MealTotals{}, AveragePerLoggedDay(nil))
}

func TestPctClamped(t *testing.T) {
	assert.Equal(t, 50.0, pct(50, 100))
	assert.Equal(t, 100.0, pct(350, 100)) // overshoot clamps
	assert.Equal(t, 0.0, pct(50, 0))      // no goal, no progress shown
	assert.Equal(t, 0.0, pct(-10, 100))
}

func TestMealTotalsRounded(t *testing.T) {
	got := MealTotals{Calories: 123.456, Protein: 9.999, Carbs: 1.004, Fats: 0.005}.Rounded()
	assert.Equal(t, MealTotals{Calories: 123.46, Protein: 10, Carbs: 1, Fats: 0.01}, got)
}
