package services

import (
	"errors"
	"time"

	"github.com/varad16/fittrack-pro/config"
	"github.com/varad16/fittrack-pro/models"
)

var ErrNegativeDuration = errors.New("workout duration must not be negative")

type WorkoutRequest struct {
	Name            string    `json:"name" binding:"required"`
	Type            string    `json:"type"`
	DurationMinutes float64   `json:"duration_minutes"`
	CaloriesBurned  float64   `json:"calories_burned"`
	PerformedAt     time.Time `json:"performed_at" binding:"required"`
	Notes           string    `json:"notes"`
}

func AddWorkout(userID uint, req WorkoutRequest) (*models.Workout, error) {
	if req.DurationMinutes < 0 {
		return nil, ErrNegativeDuration
	}

	w := models.Workout{
		UserID:          userID,
		Name:            req.Name,
		Type:            req.Type,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		PerformedAt:     req.PerformedAt,
		Notes:           req.Notes,
	}
	if err := config.DB.Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func UpdateWorkout(userID, workoutID uint, req WorkoutRequest) (*models.Workout, error) {
	if req.DurationMinutes < 0 {
		return nil, ErrNegativeDuration
	}

	var w models.Workout
	if err := config.DB.
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&w).Error; err != nil {
		return nil, err
	}

	w.Name = req.Name
	w.Type = req.Type
	w.DurationMinutes = req.DurationMinutes
	w.CaloriesBurned = req.CaloriesBurned
	w.PerformedAt = req.PerformedAt
	w.Notes = req.Notes

	if err := config.DB.Save(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func DeleteWorkout(userID, workoutID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", workoutID, userID).
		Delete(&models.Workout{}).Error
}

func ListWorkouts(userID uint, from, to *time.Time) ([]models.Workout, error) {
	q := config.DB.
		Where("user_id = ?", userID).
		Order("performed_at DESC")
	if from != nil && to != nil {
		q = q.Where("performed_at >= ? AND performed_at < ?", *from, *to)
	}

	var workouts []models.Workout
	err := q.Find(&workouts).Error
	return workouts, err
}

// WorkoutSeries buckets workouts into day or week buckets summing count,
// minutes and calories, for the workout history chart.
func WorkoutSeries(userID uint, from, to time.Time, g BucketGranularity) ([]SeriesBucket, error) {
	fromPtr, toPtr := from, to.AddDate(0, 0, 1)
	workouts, err := ListWorkouts(userID, &fromPtr, &toPtr)
	if err != nil {
		return nil, err
	}

	points := make([]TimePoint, 0, len(workouts))
	for _, w := range workouts {
		points = append(points, TimePoint{
			Date: w.PerformedAt,
			Values: map[string]float64{
				"count":    1,
				"minutes":  w.DurationMinutes,
				"calories": w.CaloriesBurned,
			},
		})
	}
	return BucketSeries(points, g), nil
}

// CountWorkoutsInWindow is the progress source for workout challenges.
func CountWorkoutsInWindow(userID uint, from, to time.Time) (int64, error) {
	var n int64
	err := config.DB.Model(&models.Workout{}).
		Where("user_id = ? AND performed_at >= ? AND performed_at < ?", userID, from, to).
		Count(&n).Error
	return n, err
}
