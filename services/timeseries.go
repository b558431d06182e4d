package services

import (
	"sort"
	"time"
)

// ---------- Time bucketing ----------
//
// Every chart and summary endpoint funnels through these helpers. Bucket
// keys are always derived from the stored timestamp in UTC; mixing local
// wall-clock truncation with UTC storage shifts records across midnight.

type BucketGranularity string

const (
	BucketDaily  BucketGranularity = "day"
	BucketWeekly BucketGranularity = "week" // weeks start on Sunday
)

// TimePoint is one dated record with named numeric fields.
type TimePoint struct {
	Date   time.Time
	Values map[string]float64
}

func dayStartUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStartUTC returns the Sunday beginning the week that contains t.
func weekStartUTC(t time.Time) time.Time {
	d := dayStartUTC(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// BucketKey formats the bucket a timestamp falls into: "2006-01-02" of the
// day, or of the week's Sunday.
func BucketKey(t time.Time, g BucketGranularity) string {
	if g == BucketWeekly {
		return weekStartUTC(t).Format("2006-01-02")
	}
	return dayStartUTC(t).Format("2006-01-02")
}

// BucketSums groups points into buckets and sums each field per bucket.
// Only buckets with at least one contributing point appear. A point with a
// nil Values map contributes nothing beyond creating its bucket.
func BucketSums(points []TimePoint, g BucketGranularity) map[string]map[string]float64 {
	out := make(map[string]map[string]float64)
	for _, p := range points {
		key := BucketKey(p.Date, g)
		bucket := out[key]
		if bucket == nil {
			bucket = make(map[string]float64)
			out[key] = bucket
		}
		for field, v := range p.Values {
			bucket[field] += v
		}
	}
	return out
}

// SeriesBucket is one element of an ordered time series.
type SeriesBucket struct {
	Key    string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

// BucketSeries is BucketSums with the buckets sorted ascending by key,
// ready for chart endpoints. Keys are ISO dates so lexicographic order is
// chronological order.
func BucketSeries(points []TimePoint, g BucketGranularity) []SeriesBucket {
	sums := BucketSums(points, g)
	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]SeriesBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, SeriesBucket{Key: k, Values: sums[k]})
	}
	return out
}
