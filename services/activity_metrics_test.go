package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ~0.0009° of latitude ≈ 100 m.
const lat100m = 0.0009

func fix(lat, lon float64) GpsFix {
	return GpsFix{Latitude: lat, Longitude: lon}
}

func altFix(lat, lon, alt float64) GpsFix {
	return GpsFix{Latitude: lat, Longitude: lon, AltitudeM: &alt}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Paris → London is roughly 344 km.
	d := HaversineKm(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 344, d, 5)
}

func TestRouteDistanceFewerThanTwoFixes(t *testing.T) {
	assert.Equal(t, 0.0, RouteDistanceKm(nil))
	assert.Equal(t, 0.0, RouteDistanceKm([]GpsFix{fix(0, 0)}))
}

func TestRouteDistanceRightTriangle(t *testing.T) {
	// Two ~100 m legs at the equator.
	fixes := []GpsFix{
		fix(0, 0),
		fix(lat100m, 0),
		fix(lat100m, lat100m),
	}

	d := RouteDistanceKm(fixes)
	assert.InDelta(t, 0.2, d, 0.005)
}

// Inserting a fix within 5 m of its predecessor must not change the total.
func TestNoiseFilterIdempotence(t *testing.T) {
	base := []GpsFix{fix(0, 0), fix(lat100m, 0)}
	jittered := []GpsFix{
		fix(0, 0),
		fix(0.00002, 0), // ~2 m of dither
		fix(lat100m, 0),
	}

	assert.InDelta(t, RouteDistanceKm(base), RouteDistanceKm(jittered), 1e-9)
}

func TestRouteDistanceAllJitterIsZero(t *testing.T) {
	fixes := []GpsFix{
		fix(0, 0),
		fix(0.00001, 0),
		fix(0.00002, 0),
		fix(0.00003, 0),
	}
	assert.Equal(t, 0.0, RouteDistanceKm(fixes))
}

func TestElevationGainSumsPositiveDeltas(t *testing.T) {
	fixes := []GpsFix{
		altFix(0, 0, 100),
		altFix(lat100m, 0, 130),         // +30
		altFix(2*lat100m, 0, 110),       // downhill, ignored
		altFix(3*lat100m, 0, 150),       // +40
	}
	assert.Equal(t, 70.0, ElevationGainMeters(fixes))
}

func TestElevationGainMissingAltitudeContributesZero(t *testing.T) {
	fixes := []GpsFix{
		altFix(0, 0, 100),
		fix(lat100m, 0), // no altitude: both adjacent steps skipped
		altFix(2*lat100m, 0, 200),
	}
	assert.Equal(t, 0.0, ElevationGainMeters(fixes))
}

func TestActiveDurationExcludesPauses(t *testing.T) {
	start := time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	pauses := []PauseInterval{
		{PausedAt: start.Add(10 * time.Minute), ResumedAt: start.Add(15 * time.Minute)},
	}

	d := ActiveDuration(start, end, pauses)
	assert.Equal(t, 25*time.Minute, d)
}

func TestActiveDurationClampsPauseToWindow(t *testing.T) {
	start := time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC)
	end := start.Add(10 * time.Minute)
	pauses := []PauseInterval{
		// Starts before the recording and an inverted interval.
		{PausedAt: start.Add(-5 * time.Minute), ResumedAt: start.Add(2 * time.Minute)},
		{PausedAt: start.Add(8 * time.Minute), ResumedAt: start.Add(6 * time.Minute)},
	}

	assert.Equal(t, 8*time.Minute, ActiveDuration(start, end, pauses))
}

func TestActiveDurationEndBeforeStart(t *testing.T) {
	now := time.Now()
	assert.Equal(t, time.Duration(0), ActiveDuration(now, now.Add(-time.Minute), nil))
}

func TestComputeMetricsEmptyRouteIsZeroNotError(t *testing.T) {
	start := time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC)
	m := ComputeActivityMetrics("running", nil, start, start.Add(time.Minute), nil)

	assert.Equal(t, 0.0, m.DistanceKm)
	assert.Equal(t, 60.0, m.DurationSeconds)
	assert.Equal(t, 0.0, m.AvgPaceMinPerKm) // no division by zero leaks out
	assert.Equal(t, 0.0, m.EstimatedCalories)
}

func TestComputeMetricsTriangleRun(t *testing.T) {
	start := time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC)
	fixes := []GpsFix{
		fix(0, 0),
		fix(lat100m, 0),
		fix(lat100m, lat100m),
	}

	m := ComputeActivityMetrics("running", fixes, start, start.Add(60*time.Second), nil)

	require.InDelta(t, 0.2, m.DistanceKm, 0.005)
	assert.Equal(t, 60.0, m.DurationSeconds)
	// 1 minute over ~0.2 km ≈ 5 min/km.
	assert.InDelta(t, 5.0, m.AvgPaceMinPerKm, 0.15)
	// running burns 60 kcal/km
	assert.InDelta(t, 12.0, m.EstimatedCalories, 0.5)
}

func TestEstimatedCaloriesByActivityType(t *testing.T) {
	start := time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC)
	fixes := []GpsFix{fix(0, 0), fix(10*lat100m, 0)} // ~1 km

	cases := []struct {
		activityType string
		perKm        float64
	}{
		{"running", 60},
		{"cycling", 30},
		{"walking", 50},
		{"hiking", 55},
		{"rollerblading", defaultCaloriesPerKm},
	}
	for _, tc := range cases {
		m := ComputeActivityMetrics(tc.activityType, fixes, start, start.Add(time.Minute), nil)
		assert.InDelta(t, tc.perKm*m.DistanceKm, m.EstimatedCalories, 1e-9, tc.activityType)
	}
}

func TestValidateFixes(t *testing.T) {
	require.NoError(t, ValidateFixes([]GpsFix{fix(45, 90), fix(-45, -90)}))

	err := ValidateFixes([]GpsFix{fix(0, 0), fix(91, 0)})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	err = ValidateFixes([]GpsFix{fix(0, -181)})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}
