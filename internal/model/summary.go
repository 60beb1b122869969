package model

// DailySummary aggregates closed records for one calendar date.
// It is derived data and never persisted.
type DailySummary struct {
	Date string `json:"date"`
	// TotalTime is the sum of all per-activity totals, in seconds.
	TotalTime float64 `json:"totalTime"`
	// Activities maps activity id to tracked seconds on this date.
	Activities map[string]float64 `json:"activities"`
}

// WeeklySummary aggregates closed records for a Monday-to-Sunday window.
type WeeklySummary struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	TotalTime float64 `json:"totalTime"`
	// DailyTotals maps calendar date to tracked seconds.
	DailyTotals map[string]float64 `json:"dailyTotals"`
	// Activities maps activity id to tracked seconds in the window.
	Activities map[string]float64 `json:"activities"`
}

// Streak is the longest run of consecutive calendar dates with at least one
// closed record for an activity.
type Streak struct {
	ActivityID string `json:"activityId"`
	Length     int    `json:"length"`
}

// ActivityAverage is the mean closed-record duration for an activity.
type ActivityAverage struct {
	ActivityID string  `json:"activityId"`
	AvgSeconds float64 `json:"avgSeconds"`
}
