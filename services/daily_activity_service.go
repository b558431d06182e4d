package services

import (
	"time"

	"github.com/varad16/fittrack-pro/config"
	"github.com/varad16/fittrack-pro/models"

	"gorm.io/gorm"
)

// UpsertDailyActivity records the client's pedometer sync for one UTC day.
func UpsertDailyActivity(userID uint, day time.Time, steps, activeMinutes float64) error {
	start := dayStartUTC(day)

	entry := models.DailyActivityLog{
		UserID:        userID,
		Date:          start,
		Steps:         steps,
		ActiveMinutes: activeMinutes,
	}

	return config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(entry).
		FirstOrCreate(&entry).Error
}

func GetDailyActivity(userID uint, day time.Time) (steps, activeMinutes float64, err error) {
	start := dayStartUTC(day)

	var entry models.DailyActivityLog
	err = config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&entry).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	return entry.Steps, entry.ActiveMinutes, nil
}

// SumStepsInWindow is the progress source for step challenges.
func SumStepsInWindow(userID uint, from, to time.Time) (float64, error) {
	var logs []models.DailyActivityLog
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStartUTC(from), dayStartUTC(to).AddDate(0, 0, 1)).
		Find(&logs).Error
	if err != nil {
		return 0, err
	}

	var total float64
	for _, l := range logs {
		total += l.Steps
	}
	return total, nil
}

// StepSeries is the daily step chart.
func StepSeries(userID uint, from, to time.Time) ([]SeriesBucket, error) {
	var logs []models.DailyActivityLog
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStartUTC(from), dayStartUTC(to).AddDate(0, 0, 1)).
		Order("date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	points := make([]TimePoint, 0, len(logs))
	for _, l := range logs {
		points = append(points, TimePoint{
			Date:   l.Date,
			Values: map[string]float64{"steps": l.Steps, "active_minutes": l.ActiveMinutes},
		})
	}
	return BucketSeries(points, BucketDaily), nil
}
