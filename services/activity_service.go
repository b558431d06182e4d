package services

import (
	"errors"
	"time"

	"github.com/varad16/fittrack-pro/config"
	"github.com/varad16/fittrack-pro/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidRecordingWindow = errors.New("activity end must be after start")

type RecordActivityRequest struct {
	Type      string          `json:"type" binding:"required"`
	Title     string          `json:"title"`
	StartedAt time.Time       `json:"started_at" binding:"required"`
	EndedAt   time.Time       `json:"ended_at" binding:"required"`
	Fixes     []GpsFix        `json:"fixes"`
	Pauses    []PauseInterval `json:"pauses"`
}

// RouteData is a GeoJSON LineString: [longitude, latitude, altitude?]
// triples, validated and typed instead of passed through as a raw blob.
type RouteData struct {
	Type        string      `json:"type"` // always "LineString"
	Coordinates [][]float64 `json:"coordinates"`
}

type ActivityResponse struct {
	models.Activity
	Route *RouteData `json:"route,omitempty"`
}

// RecordActivity validates the upload, derives the summary metrics and
// persists the session with its route. An empty route is allowed: the
// timer still ran, it just records a zero-distance session.
func RecordActivity(userID uint, req RecordActivityRequest) (*ActivityResponse, error) {
	if !req.EndedAt.After(req.StartedAt) {
		return nil, ErrInvalidRecordingWindow
	}
	if err := ValidateFixes(req.Fixes); err != nil {
		return nil, err
	}

	metrics := ComputeActivityMetrics(req.Type, req.Fixes, req.StartedAt, req.EndedAt, req.Pauses)

	activity := models.Activity{
		ShareID:           uuid.NewString(),
		UserID:            userID,
		Type:              req.Type,
		Title:             req.Title,
		StartedAt:         req.StartedAt,
		EndedAt:           req.EndedAt,
		DurationSeconds:   metrics.DurationSeconds,
		DistanceKm:        round2(metrics.DistanceKm),
		AvgPaceMinPerKm:   round2(metrics.AvgPaceMinPerKm),
		ElevationGainM:    round2(metrics.ElevationGainM),
		EstimatedCalories: round2(metrics.EstimatedCalories),
	}
	if err := config.DB.Create(&activity).Error; err != nil {
		return nil, err
	}

	for i, f := range req.Fixes {
		point := models.RoutePoint{
			ActivityID:      activity.ID,
			Seq:             i,
			Latitude:        f.Latitude,
			Longitude:       f.Longitude,
			AltitudeM:       f.AltitudeM,
			TimestampMillis: f.TimestampMillis,
		}
		if err := config.DB.Create(&point).Error; err != nil {
			return nil, err
		}
	}
	for _, p := range req.Pauses {
		pause := models.ActivityPause{
			ActivityID: activity.ID,
			PausedAt:   p.PausedAt,
			ResumedAt:  p.ResumedAt,
		}
		if err := config.DB.Create(&pause).Error; err != nil {
			return nil, err
		}
	}

	return loadActivity(activity.ID)
}

func loadActivity(id uint) (*ActivityResponse, error) {
	var activity models.Activity
	err := config.DB.
		Preload("Points", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &ActivityResponse{Activity: activity, Route: routeFromPoints(activity.Points)}, nil
}

func routeFromPoints(points []models.RoutePoint) *RouteData {
	if len(points) == 0 {
		return nil
	}
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		c := []float64{p.Longitude, p.Latitude}
		if p.AltitudeM != nil {
			c = append(c, *p.AltitudeM)
		}
		coords = append(coords, c)
	}
	return &RouteData{Type: "LineString", Coordinates: coords}
}

func GetActivity(userID, activityID uint) (*ActivityResponse, error) {
	var activity models.Activity
	err := config.DB.
		Where("id = ? AND user_id = ?", activityID, userID).
		First(&activity).Error
	if err != nil {
		return nil, err
	}
	return loadActivity(activity.ID)
}

// GetSharedActivity resolves a public share link (no auth).
func GetSharedActivity(shareID string) (*ActivityResponse, error) {
	var activity models.Activity
	err := config.DB.
		Where("share_id = ?", shareID).
		First(&activity).Error
	if err != nil {
		return nil, err
	}
	return loadActivity(activity.ID)
}

func ListActivities(userID uint) ([]models.Activity, error) {
	var activities []models.Activity
	err := config.DB.
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&activities).Error
	return activities, err
}

func DeleteActivity(userID, activityID uint) error {
	var activity models.Activity
	if err := config.DB.
		Where("id = ? AND user_id = ?", activityID, userID).
		First(&activity).Error; err != nil {
		return err
	}

	if err := config.DB.Where("activity_id = ?", activity.ID).Delete(&models.RoutePoint{}).Error; err != nil {
		return err
	}
	if err := config.DB.Where("activity_id = ?", activity.ID).Delete(&models.ActivityPause{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&activity).Error
}

// SumDistanceInWindow is the progress source for distance challenges.
func SumDistanceInWindow(userID uint, from, to time.Time) (float64, error) {
	var activities []models.Activity
	err := config.DB.
		Where("user_id = ? AND started_at >= ? AND started_at < ?", userID, from, to).
		Find(&activities).Error
	if err != nil {
		return 0, err
	}

	var total float64
	for _, a := range activities {
		total += a.DistanceKm
	}
	return total, nil
}

// ActivitySeries is the distance/elevation chart for the history view.
func ActivitySeries(userID uint, from, to time.Time, g BucketGranularity) ([]SeriesBucket, error) {
	var activities []models.Activity
	err := config.DB.
		Where("user_id = ? AND started_at >= ? AND started_at < ?", userID, from, to.AddDate(0, 0, 1)).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}

	points := make([]TimePoint, 0, len(activities))
	for _, a := range activities {
		points = append(points, TimePoint{
			Date: a.StartedAt,
			Values: map[string]float64{
				"distance_km":      a.DistanceKm,
				"duration_seconds": a.DurationSeconds,
				"elevation_gain_m": a.ElevationGainM,
				"calories":         a.EstimatedCalories,
			},
		})
	}
	return BucketSeries(points, g), nil
}
