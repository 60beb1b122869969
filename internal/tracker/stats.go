package tracker

import (
	"sort"
	"time"

	"github.com/cronozapp/cronoz/internal/model"
)

// The aggregation engine. Pure functions that fold the record log into
// derived summaries; only closed records contribute.

// DailySummary sums closed records whose bucket date matches the given
// calendar date.
func DailySummary(records []model.TimeRecord, date string) model.DailySummary {
	summary := model.DailySummary{
		Date:       date,
		Activities: make(map[string]float64),
	}
	for _, rec := range records {
		if rec.IsOpen() || rec.Date != date {
			continue
		}
		summary.Activities[rec.ActivityID] += rec.Seconds()
		summary.TotalTime += rec.Seconds()
	}
	return summary
}

// WeekBounds returns the Monday and Sunday calendar dates of the week
// containing now. Weeks start on Monday.
func WeekBounds(now time.Time) (start, end string) {
	offset := (int(now.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	monday := now.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(model.DateLayout), sunday.Format(model.DateLayout)
}

// WeeklySummary sums closed records dated inside the Monday-to-Sunday week
// containing now, inclusive on both ends.
func WeeklySummary(records []model.TimeRecord, now time.Time) model.WeeklySummary {
	start, end := WeekBounds(now)
	summary := model.WeeklySummary{
		StartDate:   start,
		EndDate:     end,
		DailyTotals: make(map[string]float64),
		Activities:  make(map[string]float64),
	}
	for _, rec := range records {
		if rec.IsOpen() || rec.Date < start || rec.Date > end {
			continue
		}
		summary.Activities[rec.ActivityID] += rec.Seconds()
		summary.DailyTotals[rec.Date] += rec.Seconds()
		summary.TotalTime += rec.Seconds()
	}
	return summary
}

// Streaks computes, per activity, the longest run of consecutive calendar
// dates with at least one closed record. Activities with no closed records
// are excluded. Results follow the order of the activities argument.
func Streaks(records []model.TimeRecord, activities []model.Activity) []model.Streak {
	dates := make(map[string]map[string]struct{})
	for _, rec := range records {
		if rec.IsOpen() {
			continue
		}
		if dates[rec.ActivityID] == nil {
			dates[rec.ActivityID] = make(map[string]struct{})
		}
		dates[rec.ActivityID][rec.Date] = struct{}{}
	}

	var streaks []model.Streak
	for _, a := range activities {
		set := dates[a.ID]
		if len(set) == 0 {
			continue
		}
		streaks = append(streaks, model.Streak{
			ActivityID: a.ID,
			Length:     longestRun(set),
		})
	}
	return streaks
}

// longestRun finds the longest chain of dates exactly one day apart.
func longestRun(dateSet map[string]struct{}) int {
	days := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		t, err := time.Parse(model.DateLayout, d)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best, run := 0, 0
	var prev time.Time
	for i, day := range days {
		if i > 0 && prev.AddDate(0, 0, 1).Equal(day) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = day
	}
	return best
}

// AverageDurations computes the mean closed-record duration per activity.
// Activities with no closed records are excluded, so there is never a
// division by zero. Results follow the order of the activities argument.
func AverageDurations(records []model.TimeRecord, activities []model.Activity) []model.ActivityAverage {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.IsOpen() {
			continue
		}
		totals[rec.ActivityID] += rec.Seconds()
		counts[rec.ActivityID]++
	}

	var averages []model.ActivityAverage
	for _, a := range activities {
		if counts[a.ID] == 0 {
			continue
		}
		averages = append(averages, model.ActivityAverage{
			ActivityID: a.ID,
			AvgSeconds: totals[a.ID] / float64(counts[a.ID]),
		})
	}
	return averages
}

// HourlyDistribution counts closed-record starts per hour of day, using
// each record's local start hour. Hours with no starts are absent.
func HourlyDistribution(records []model.TimeRecord) map[int]int {
	hours := make(map[int]int)
	for _, rec := range records {
		if rec.IsOpen() {
			continue
		}
		hours[rec.StartTime.Local().Hour()]++
	}
	return hours
}
