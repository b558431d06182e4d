package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tp(ts string, values map[string]float64) TimePoint {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return TimePoint{Date: t, Values: values}
}

func TestBucketSumsByDay(t *testing.T) {
	points := []TimePoint{
		tp("2024-03-10T08:00:00Z", map[string]float64{"calories": 400, "protein": 20}),
		tp("2024-03-10T19:30:00Z", map[string]float64{"calories": 600, "protein": 35}),
		tp("2024-03-11T12:00:00Z", map[string]float64{"calories": 500}),
	}

	sums := BucketSums(points, BucketDaily)

	require.Len(t, sums, 2)
	assert.Equal(t, 1000.0, sums["2024-03-10"]["calories"])
	assert.Equal(t, 55.0, sums["2024-03-10"]["protein"])
	assert.Equal(t, 500.0, sums["2024-03-11"]["calories"])
}

// Bucketing then summing all buckets must equal the input sum: no record
// lost, none double-counted.
func TestBucketSumsConserveTotal(t *testing.T) {
	points := []TimePoint{
		tp("2024-01-01T00:00:00Z", map[string]float64{"v": 1}),
		tp("2024-01-01T23:59:59Z", map[string]float64{"v": 2}),
		tp("2024-01-02T00:00:00Z", map[string]float64{"v": 3}),
		tp("2024-02-29T10:00:00Z", map[string]float64{"v": 4}),
	}

	for _, g := range []BucketGranularity{BucketDaily, BucketWeekly} {
		var total float64
		for _, bucket := range BucketSums(points, g) {
			total += bucket["v"]
		}
		assert.Equal(t, 10.0, total, "granularity %s", g)
	}
}

// Keys come from the stored timestamp converted to UTC, never from a
// re-derived local date. 23:30 EST is already the next UTC day.
func TestDayBucketKeyUsesUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	late := time.Date(2024, 3, 10, 23, 30, 0, 0, est)

	assert.Equal(t, "2024-03-11", BucketKey(late, BucketDaily))
}

func TestWeekBucketStartsOnSunday(t *testing.T) {
	// 2024-03-13 is a Wednesday; its week starts Sunday 2024-03-10.
	wed := time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-10", BucketKey(wed, BucketWeekly))

	// A Sunday is its own week start.
	sun := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-10", BucketKey(sun, BucketWeekly))
}

func TestBucketSumsNilValuesContributeZero(t *testing.T) {
	points := []TimePoint{
		tp("2024-03-10T08:00:00Z", nil),
		tp("2024-03-10T09:00:00Z", map[string]float64{"calories": 250}),
	}

	sums := BucketSums(points, BucketDaily)

	require.Contains(t, sums, "2024-03-10")
	assert.Equal(t, 250.0, sums["2024-03-10"]["calories"])
}

func TestBucketSumsEmptyInput(t *testing.T) {
	assert.Empty(t, BucketSums(nil, BucketDaily))
	assert.Empty(t, BucketSeries(nil, BucketWeekly))
}

func TestBucketSeriesSortedAscending(t *testing.T) {
	points := []TimePoint{
		tp("2024-03-15T10:00:00Z", map[string]float64{"v": 1}),
		tp("2024-01-02T10:00:00Z", map[string]float64{"v": 2}),
		tp("2024-12-30T10:00:00Z", map[string]float64{"v": 3}),
	}

	series := BucketSeries(points, BucketDaily)

	require.Len(t, series, 3)
	assert.Equal(t, "2024-01-02", series[0].Key)
	assert.Equal(t, "2024-03-15", series[1].Key)
	assert.Equal(t, "2024-12-30", series[2].Key)
}
