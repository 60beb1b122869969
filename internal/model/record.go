package model

import "time"

// DateLayout is the calendar-date format used as the aggregation bucket key.
const DateLayout = "2006-01-02"

// TimeRecord represents one tracked session, open or closed.
//
// EndTime and Duration are nil exactly when the record is open. Date is the
// calendar date of StartTime at creation and never changes, even when a
// session spans midnight.
type TimeRecord struct {
	ID         string     `json:"id"`
	ActivityID string     `json:"activityId"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
	// Duration is in seconds; fractional values are kept in storage and only
	// truncated by the formatting layer.
	Duration *float64 `json:"duration"`
	Date     string   `json:"date"`
	Notes    string   `json:"notes,omitempty"`
}

// NewTimeRecord creates an open record starting at the given time.
func NewTimeRecord(id, activityID string, start time.Time) TimeRecord {
	return TimeRecord{
		ID:         id,
		ActivityID: activityID,
		StartTime:  start,
		Date:       start.Format(DateLayout),
	}
}

// IsOpen returns true if the record has not been stopped yet.
func (r *TimeRecord) IsOpen() bool {
	return r.EndTime == nil
}

// Close sets the end time and computes the duration in seconds.
func (r *TimeRecord) Close(end time.Time) {
	d := end.Sub(r.StartTime).Seconds()
	if d < 0 {
		d = 0
	}
	r.EndTime = &end
	r.Duration = &d
}

// Seconds returns the closed duration, or zero for open records.
func (r *TimeRecord) Seconds() float64 {
	if r.Duration == nil {
		return 0
	}
	return *r.Duration
}

// Elapsed returns the time tracked so far: the stored duration for closed
// records, or the distance from StartTime to now for open ones.
func (r *TimeRecord) Elapsed(now time.Time) time.Duration {
	if r.EndTime != nil {
		return r.EndTime.Sub(r.StartTime)
	}
	return now.Sub(r.StartTime)
}
