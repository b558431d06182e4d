package services

import (
	"testing"
	"time"

	"github.com/varad16/fittrack-pro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDeleteMealRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(nil)

	meal := models.Meal{UserID: 1, Type: "lunch", AteAt: time.Now()}
	require.NoError(t, db.Create(&meal).Error)
	entries := []models.FoodEntry{
		{MealID: meal.ID, FoodName: "rice", Quantity: 2, CaloriesPerUnit: 100},
		{MealID: meal.ID, FoodName: "beans", Quantity: 1, CaloriesPerUnit: 50},
	}
	require.NoError(t, db.Create(&entries).Error)

	// another user must not be able to touch the meal or its entries
	err := svc.DeleteMeal(2, meal.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&models.FoodEntry{}).
		Where("meal_id = ?", meal.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	require.NoError(t, svc.DeleteMeal(1, meal.ID))

	require.NoError(t, db.Model(&models.FoodEntry{}).
		Where("meal_id = ?", meal.ID).Count(&count).Error)
	assert.Zero(t, count)
	err = db.First(&models.Meal{}, meal.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
