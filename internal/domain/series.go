package domain

import (
	"sort"
	"time"
)

// DayFormat is the layout of DailyPoint.Date.
const DayFormat = "2006-01-02"

// BucketStart returns the start of the bucket t falls into: the same UTC
// hour with the minute floored to a multiple of bucketMinutes.
func BucketStart(t time.Time, bucketMinutes int) time.Time {
	t = t.UTC()
	minute := (t.Minute() / bucketMinutes) * bucketMinutes
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, time.UTC)
}

// DailyWindowStart returns 00:00 UTC of the first day in a window of days
// calendar days ending today.
func DailyWindowStart(now time.Time, days int) time.Time {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -(days - 1))
}

type accumulator struct {
	sum   float64
	count int
	icon  string
	seen  bool
}

func (a *accumulator) add(o Observation) {
	if !a.seen {
		a.icon = ExtractIcon(o.Raw)
		a.seen = true
	}
	if o.TempC != nil {
		a.sum += *o.TempC
		a.count++
	}
}

func (a *accumulator) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// AggregateBuckets groups observations into time buckets. The icon of a
// bucket comes from its first member in input order, so callers pass
// observations sorted by time. Observations without a temperature count
// toward the icon but not the mean. The result is sorted ascending.
func AggregateBuckets(obs []Observation, bucketMinutes int) []SeriesPoint {
	groups := make(map[time.Time]*accumulator)
	for _, o := range obs {
		key := BucketStart(o.ObservationTime, bucketMinutes)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
		}
		acc.add(o)
	}

	points := make([]SeriesPoint, 0, len(groups))
	for ts, acc := range groups {
		points = append(points, SeriesPoint{Timestamp: ts, AvgTempC: acc.mean(), Icon: acc.icon})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Timestamp.Before(points[j].Timestamp) })
	return points
}

// AggregateDaily groups observations by UTC calendar day, with the same
// mean and icon rules as AggregateBuckets.
func AggregateDaily(obs []Observation) []DailyPoint {
	groups := make(map[string]*accumulator)
	for _, o := range obs {
		key := o.ObservationTime.UTC().Format(DayFormat)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
		}
		acc.add(o)
	}

	points := make([]DailyPoint, 0, len(groups))
	for day, acc := range groups {
		points = append(points, DailyPoint{Date: day, AvgTempC: acc.mean(), Icon: acc.icon})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// RawSeries turns observations into one point each, for ranges where
// aggregation produced nothing. Missing temperatures become 0.
func RawSeries(obs []Observation) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(obs))
	for _, o := range obs {
		var temp float64
		if o.TempC != nil {
			temp = *o.TempC
		}
		points = append(points, SeriesPoint{Timestamp: o.ObservationTime.UTC(), AvgTempC: temp})
	}
	return points
}
