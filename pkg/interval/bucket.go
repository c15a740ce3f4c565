package interval

import (
	"time"
)

// CalculateBucketTime returns the start of the bucket containing timestamp.
// Daily buckets start at midnight in the timestamp's location, the rest are
// aligned on the unix epoch.
func (i Interval) CalculateBucketTime(timestamp time.Time) time.Time {
	if i.Name == Interval1d.Name {
		return time.Date(timestamp.Year(), timestamp.Month(), timestamp.Day(), 0, 0, 0, 0, timestamp.Location())
	}
	return timestamp.Truncate(i.Duration)
}

// GetBucketRange returns the start and end time of the interval bucket
func (i Interval) GetBucketRange(timestamp time.Time) (start, end time.Time) {
	start = i.CalculateBucketTime(timestamp)
	end = start.Add(i.Duration)
	return start, end
}

// IsInBucket checks if a timestamp falls within the same bucket as another timestamp
func (i Interval) IsInBucket(timestamp1, timestamp2 time.Time) bool {
	return i.CalculateBucketTime(timestamp1).Equal(i.CalculateBucketTime(timestamp2))
}
