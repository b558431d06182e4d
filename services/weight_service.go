package services

import (
	"errors"
	"time"

	"github.com/varad16/fittrack-pro/config"
	"github.com/varad16/fittrack-pro/models"
	"github.com/varad16/fittrack-pro/utils"

	"gorm.io/gorm"
)

var ErrNonPositiveWeight = errors.New("weight must be positive")

func LogWeight(userID uint, weightKg float64, loggedAt time.Time) (*models.WeightLog, error) {
	if weightKg <= 0 {
		return nil, ErrNonPositiveWeight
	}

	w := models.WeightLog{UserID: userID, WeightKg: weightKg, LoggedAt: loggedAt}
	if err := config.DB.Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func DeleteWeightLog(userID, logID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.WeightLog{}).Error
}

func ListWeightLogs(userID uint, from, to *time.Time) ([]models.WeightLog, error) {
	q := config.DB.
		Where("user_id = ?", userID).
		Order("logged_at ASC")
	if from != nil && to != nil {
		q = q.Where("logged_at >= ? AND logged_at < ?", *from, *to)
	}

	var logs []models.WeightLog
	err := q.Find(&logs).Error
	return logs, err
}

// WeightTrend buckets logs by day or week. Multiple logs in one bucket are
// averaged (a sum of weights means nothing on a chart).
func WeightTrend(userID uint, from, to time.Time, g BucketGranularity) ([]SeriesBucket, error) {
	fromPtr, toPtr := from, to.AddDate(0, 0, 1)
	logs, err := ListWeightLogs(userID, &fromPtr, &toPtr)
	if err != nil {
		return nil, err
	}

	points := make([]TimePoint, 0, len(logs))
	for _, l := range logs {
		points = append(points, TimePoint{
			Date:   l.LoggedAt,
			Values: map[string]float64{"weight_kg": l.WeightKg, "samples": 1},
		})
	}

	series := BucketSeries(points, g)
	for _, b := range series {
		if n := b.Values["samples"]; n > 0 {
			b.Values["weight_kg"] = round2(b.Values["weight_kg"] / n)
		}
		delete(b.Values, "samples")
	}
	return series, nil
}

// WeightLossInWindow is the progress source for weight-loss challenges:
// baseline (last log at or before the window start, or the first one
// inside it) minus the latest log in the window, floored at zero.
func WeightLossInWindow(userID uint, from, to time.Time) (float64, error) {
	var baseline models.WeightLog
	err := config.DB.
		Where("user_id = ? AND logged_at <= ?", userID, from).
		Order("logged_at DESC").
		First(&baseline).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = config.DB.
			Where("user_id = ? AND logged_at > ? AND logged_at <= ?", userID, from, to).
			Order("logged_at ASC").
			First(&baseline).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil // never weighed in; no progress
	}
	if err != nil {
		return 0, err
	}

	var latest models.WeightLog
	err = config.DB.
		Where("user_id = ? AND logged_at <= ?", userID, to).
		Order("logged_at DESC").
		First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	loss := baseline.WeightKg - latest.WeightKg
	if loss < 0 {
		return 0, nil
	}
	return loss, nil
}

type MeasurementRequest struct {
	LoggedAt time.Time `json:"logged_at" binding:"required"`
	ChestCm  float64   `json:"chest_cm"`
	WaistCm  float64   `json:"waist_cm"`
	HipsCm   float64   `json:"hips_cm"`
	BicepsCm float64   `json:"biceps_cm"`
	ThighsCm float64   `json:"thighs_cm"`
}

func LogMeasurement(userID uint, req MeasurementRequest) (*models.BodyMeasurement, error) {
	m := models.BodyMeasurement{
		UserID:   userID,
		LoggedAt: req.LoggedAt,
		ChestCm:  req.ChestCm,
		WaistCm:  req.WaistCm,
		HipsCm:   req.HipsCm,
		BicepsCm: req.BicepsCm,
		ThighsCm: req.ThighsCm,
	}
	if err := config.DB.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func DeleteMeasurement(userID, measurementID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", measurementID, userID).
		Delete(&models.BodyMeasurement{}).Error
}

func ListMeasurements(userID uint) ([]models.BodyMeasurement, error) {
	var ms []models.BodyMeasurement
	err := config.DB.
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&ms).Error
	return ms, err
}

// BodyStats is the profile card: latest weight plus BMI from profile height.
type BodyStats struct {
	WeightKg    float64 `json:"weight_kg,omitempty"`
	BMI         float64 `json:"bmi,omitempty"`
	BMICategory string  `json:"bmi_category,omitempty"`
}

func GetBodyStats(userID uint) (*BodyStats, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	latest, err := LatestWeight(userID)
	if err != nil {
		return nil, err
	}

	stats := &BodyStats{}
	if latest == nil {
		return stats, nil
	}
	stats.WeightKg = latest.WeightKg

	if user.HeightCm > 0 {
		bmi, err := utils.CalculateBMI(user.HeightCm, latest.WeightKg)
		if err == nil {
			stats.BMI = round2(bmi)
			stats.BMICategory = utils.BMICategory(bmi)
		}
	}
	return stats, nil
}
