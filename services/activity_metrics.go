package services

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ---------- GPS activity metrics ----------

const (
	earthRadiusKm = 6371.0
	// Consecutive fixes closer than this are receiver jitter, not
	// movement, and are dropped from the distance accumulator.
	gpsNoiseMinMeters = 5.0
)

// kcal burned per km by activity type; linear in distance.
var caloriesPerKm = map[string]float64{
	"running": 60,
	"cycling": 30,
	"walking": 50,
	"hiking":  55,
}

const defaultCaloriesPerKm = 50

var ErrInvalidCoordinate = errors.New("latitude must be in [-90,90] and longitude in [-180,180]")

// GpsFix is one recorded location sample.
type GpsFix struct {
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	AltitudeM       *float64 `json:"altitude,omitempty"`
	TimestampMillis int64    `json:"timestamp_millis"`
}

// PauseInterval is a stretch where the recording timer was stopped.
type PauseInterval struct {
	PausedAt  time.Time `json:"paused_at"`
	ResumedAt time.Time `json:"resumed_at"`
}

// ActivityMetrics is everything derived from a recorded route.
type ActivityMetrics struct {
	DistanceKm        float64 `json:"distance_km"`
	DurationSeconds   float64 `json:"duration_seconds"`
	AvgPaceMinPerKm   float64 `json:"avg_pace_min_per_km"`
	ElevationGainM    float64 `json:"elevation_gain_m"`
	EstimatedCalories float64 `json:"estimated_calories"`
}

// HaversineKm is the great-circle distance between two points.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// ValidateFixes rejects out-of-range coordinates before anything is
// computed or stored.
func ValidateFixes(fixes []GpsFix) error {
	for i, f := range fixes {
		if f.Latitude < -90 || f.Latitude > 90 || f.Longitude < -180 || f.Longitude > 180 {
			return fmt.Errorf("fix %d: %w", i, ErrInvalidCoordinate)
		}
	}
	return nil
}

// RouteDistanceKm accumulates haversine distance over consecutive fixes,
// skipping sub-threshold steps. The result is a lower bound that ignores
// GPS dithering: a fix inserted within 5 m of its predecessor does not
// change the total.
func RouteDistanceKm(fixes []GpsFix) float64 {
	var total float64
	if len(fixes) < 2 {
		return 0
	}
	prev := fixes[0]
	for _, f := range fixes[1:] {
		step := HaversineKm(prev.Latitude, prev.Longitude, f.Latitude, f.Longitude)
		if step*1000 < gpsNoiseMinMeters {
			continue // jitter; keep prev as the anchor
		}
		total += step
		prev = f
	}
	return total
}

// ElevationGainMeters sums positive altitude deltas. A step with a missing
// altitude on either end contributes 0.
func ElevationGainMeters(fixes []GpsFix) float64 {
	var gain float64
	for i := 1; i < len(fixes); i++ {
		a, b := fixes[i-1].AltitudeM, fixes[i].AltitudeM
		if a == nil || b == nil {
			continue
		}
		if d := *b - *a; d > 0 {
			gain += d
		}
	}
	return gain
}

// ActiveDuration is end−start minus paused time. Pauses are clamped to the
// recording window; inverted or zero-length intervals count nothing.
func ActiveDuration(start, end time.Time, pauses []PauseInterval) time.Duration {
	if !end.After(start) {
		return 0
	}
	total := end.Sub(start)
	for _, p := range pauses {
		from, to := p.PausedAt, p.ResumedAt
		if from.Before(start) {
			from = start
		}
		if to.After(end) {
			to = end
		}
		if to.After(from) {
			total -= to.Sub(from)
		}
	}
	if total < 0 {
		return 0
	}
	return total
}

// ComputeActivityMetrics derives the full summary for one recording. An
// empty route is not an error: everything comes back zero and the caller
// decides whether to reject.
func ComputeActivityMetrics(activityType string, fixes []GpsFix, start, end time.Time, pauses []PauseInterval) ActivityMetrics {
	distance := RouteDistanceKm(fixes)
	duration := ActiveDuration(start, end, pauses).Seconds()

	var pace float64
	if distance > 0 {
		pace = (duration / 60) / distance
	}

	perKm, ok := caloriesPerKm[activityType]
	if !ok {
		perKm = defaultCaloriesPerKm
	}

	return ActivityMetrics{
		DistanceKm:        distance,
		DurationSeconds:   duration,
		AvgPaceMinPerKm:   pace,
		ElevationGainM:    ElevationGainMeters(fixes),
		EstimatedCalories: distance * perKm,
	}
}
