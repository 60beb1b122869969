package tracker

import (
	"time"

	"github.com/cronozapp/cronoz/internal/logging"
	"github.com/cronozapp/cronoz/internal/model"
	"github.com/cronozapp/cronoz/internal/storage"
)

// Tracker is the facade the UI layer talks to. It owns the registry and the
// ledger and enforces the one-active-record contract that the raw ledger
// deliberately leaves to its caller.
//
// Running/idle state is never stored; it is always derived from the
// presence of an open record in the ledger.
type Tracker struct {
	Registry *Registry
	Ledger   *Ledger

	store storage.Store
	now   func() time.Time
}

// New creates a tracker on the given store.
func New(store storage.Store) *Tracker {
	return &Tracker{
		Registry: NewRegistry(store),
		Ledger:   NewLedger(store),
		store:    store,
		now:      time.Now,
	}
}

// setClock pins the tracker and its sub-components to a fixed clock.
// Test hook only.
func (t *Tracker) setClock(now func() time.Time) {
	t.now = now
	t.Registry.now = now
	t.Ledger.now = now
}

// StartTracking opens a record for the activity, enforcing the global
// single-active-record contract:
//
//   - an open record for the same activity makes the call an idempotent
//     no-op returning that record;
//   - an open record for a different activity is stopped first, and the
//     closed record is returned alongside the new one.
func (t *Tracker) StartTracking(activityID string) (started, stopped *model.TimeRecord, err error) {
	active, err := t.Ledger.FindActive()
	if err != nil {
		return nil, nil, err
	}

	if active != nil {
		if active.ActivityID == activityID {
			return active, nil, nil
		}
		stopped, err = t.Ledger.Stop(active.ID)
		if err != nil {
			return nil, nil, err
		}
		logging.Debug("switched activity",
			logging.KeyActivity, activityID,
			"previous", stopped.ActivityID)
	}

	started, err = t.Ledger.Start(activityID)
	if err != nil {
		return nil, stopped, err
	}
	return started, stopped, nil
}

// StopTracking stops the active record if one exists. When the system is
// idle it returns nil without error.
func (t *Tracker) StopTracking() (*model.TimeRecord, error) {
	active, err := t.Ledger.FindActive()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, nil
	}
	return t.Ledger.Stop(active.ID)
}

// CancelTracking deletes the active record without closing it, discarding
// the session in progress. It returns the discarded record, or nil when
// the system was idle.
func (t *Tracker) CancelTracking() (*model.TimeRecord, error) {
	active, err := t.Ledger.FindActive()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, nil
	}
	if err := t.Ledger.Delete(active.ID); err != nil {
		return nil, err
	}
	return active, nil
}

// Active returns the open record, or nil when idle.
func (t *Tracker) Active() (*model.TimeRecord, error) {
	return t.Ledger.FindActive()
}

// DailySummary aggregates closed records for one calendar date. An empty
// date means today.
func (t *Tracker) DailySummary(date string) (model.DailySummary, error) {
	if date == "" {
		date = t.now().Format(model.DateLayout)
	}
	records, err := t.store.LoadRecords()
	if err != nil {
		return model.DailySummary{}, err
	}
	return DailySummary(records, date), nil
}

// WeeklySummary aggregates closed records for the Monday-to-Sunday week
// containing now.
func (t *Tracker) WeeklySummary() (model.WeeklySummary, error) {
	records, err := t.store.LoadRecords()
	if err != nil {
		return model.WeeklySummary{}, err
	}
	return WeeklySummary(records, t.now()), nil
}

// Streaks returns each activity's longest run of consecutive tracked days.
func (t *Tracker) Streaks() ([]model.Streak, error) {
	activities, records, err := t.loadBoth()
	if err != nil {
		return nil, err
	}
	return Streaks(records, activities), nil
}

// AverageDurations returns the mean closed-record duration per activity.
func (t *Tracker) AverageDurations() ([]model.ActivityAverage, error) {
	activities, records, err := t.loadBoth()
	if err != nil {
		return nil, err
	}
	return AverageDurations(records, activities), nil
}

// HourlyDistribution counts closed-record starts per local hour of day.
func (t *Tracker) HourlyDistribution() (map[int]int, error) {
	records, err := t.store.LoadRecords()
	if err != nil {
		return nil, err
	}
	return HourlyDistribution(records), nil
}

func (t *Tracker) loadBoth() ([]model.Activity, []model.TimeRecord, error) {
	activities, err := t.store.LoadActivities()
	if err != nil {
		return nil, nil, err
	}
	records, err := t.store.LoadRecords()
	if err != nil {
		return nil, nil, err
	}
	return activities, records, nil
}
