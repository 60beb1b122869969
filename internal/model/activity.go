// Package model defines the domain models for Cronoz.
package model

import "time"

// Activity represents a trackable category of time.
type Activity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewActivity creates a new activity with the given display metadata.
// The icon and color are opaque keys resolved by the presentation layer.
func NewActivity(id, name, icon, color string, createdAt time.Time) Activity {
	return Activity{
		ID:        id,
		Name:      name,
		Icon:      icon,
		Color:     color,
		CreatedAt: createdAt,
	}
}

// ActivityUpdate carries a partial update for an activity.
// Nil fields are left unchanged.
type ActivityUpdate struct {
	Name  *string
	Icon  *string
	Color *string
}

// ActivityWithRecords joins an activity with its time records.
type ActivityWithRecords struct {
	Activity
	Records []TimeRecord `json:"records"`
	// TotalTime is the sum of closed-record durations, in seconds.
	TotalTime float64 `json:"totalTime"`
	// LastRecord is the most recent record by start time, nil when none exist.
	LastRecord *TimeRecord `json:"lastRecord,omitempty"`
}
