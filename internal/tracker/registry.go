// Package tracker implements the time-tracking core: the activity registry,
// the time record ledger, the start/stop contract on top of them, and the
// aggregation queries derived from the record log.
package tracker

import (
	"sort"
	"strings"
	"time"

	"github.com/cronozapp/cronoz/internal/errors"
	"github.com/cronozapp/cronoz/internal/id"
	"github.com/cronozapp/cronoz/internal/logging"
	"github.com/cronozapp/cronoz/internal/model"
	"github.com/cronozapp/cronoz/internal/storage"
	"github.com/cronozapp/cronoz/internal/validate"
)

// Registry provides CRUD operations over activities.
type Registry struct {
	store storage.Store
	now   func() time.Time
}

// NewRegistry creates an activity registry on the given store.
func NewRegistry(store storage.Store) *Registry {
	return &Registry{store: store, now: time.Now}
}

// Create validates and persists a new activity.
func (r *Registry) Create(name, icon, color string) (*model.Activity, error) {
	name = strings.TrimSpace(name)
	if err := validate.ActivityName(name); err != nil {
		return nil, err
	}
	if err := validate.HexColor(color); err != nil {
		return nil, err
	}

	activities, err := r.store.LoadActivities()
	if err != nil {
		return nil, err
	}

	activity := model.NewActivity(id.New(), name, icon, color, r.now())
	activities = append(activities, activity)
	if err := r.store.SaveActivities(activities); err != nil {
		return nil, err
	}

	logging.Debug("activity created", logging.KeyActivity, activity.ID)
	return &activity, nil
}

// Get returns the activity with the given id, or nil when absent.
func (r *Registry) Get(activityID string) (*model.Activity, error) {
	activities, err := r.store.LoadActivities()
	if err != nil {
		return nil, err
	}
	for i := range activities {
		if activities[i].ID == activityID {
			return &activities[i], nil
		}
	}
	return nil, nil
}

// Rename changes an activity's display name. Renaming to the current name is
// a no-op success; the stored state is not rewritten.
func (r *Registry) Rename(activityID, newName string) (*model.Activity, error) {
	newName = strings.TrimSpace(newName)
	if err := validate.ActivityName(newName); err != nil {
		return nil, err
	}

	activities, err := r.store.LoadActivities()
	if err != nil {
		return nil, err
	}

	for i := range activities {
		if activities[i].ID != activityID {
			continue
		}
		if activities[i].Name == newName {
			return &activities[i], nil
		}
		activities[i].Name = newName
		if err := r.store.SaveActivities(activities); err != nil {
			return nil, err
		}
		return &activities[i], nil
	}
	return nil, errors.ErrActivityNotFound
}

// Update merges the provided fields into an activity and persists it.
func (r *Registry) Update(activityID string, update model.ActivityUpdate) (*model.Activity, error) {
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if err := validate.ActivityName(trimmed); err != nil {
			return nil, err
		}
		update.Name = &trimmed
	}
	if update.Color != nil {
		if err := validate.HexColor(*update.Color); err != nil {
			return nil, err
		}
	}

	activities, err := r.store.LoadActivities()
	if err != nil {
		return nil, err
	}

	for i := range activities {
		if activities[i].ID != activityID {
			continue
		}
		if update.Name != nil {
			activities[i].Name = *update.Name
		}
		if update.Icon != nil {
			activities[i].Icon = *update.Icon
		}
		if update.Color != nil {
			activities[i].Color = *update.Color
		}
		if err := r.store.SaveActivities(activities); err != nil {
			return nil, err
		}
		return &activities[i], nil
	}
	return nil, errors.ErrActivityNotFound
}

// Delete removes an activity and cascades to all its time records. The two
// collection writes form one logical unit: if either fails, the error is
// surfaced and the caller must treat the operation as failed. An unknown id
// is a silent no-op.
func (r *Registry) Delete(activityID string) error {
	activities, err := r.store.LoadActivities()
	if err != nil {
		return err
	}
	kept := activities[:0]
	for _, a := range activities {
		if a.ID != activityID {
			kept = append(kept, a)
		}
	}
	if err := r.store.SaveActivities(kept); err != nil {
		return err
	}

	records, err := r.store.LoadRecords()
	if err != nil {
		return err
	}
	keptRecords := records[:0]
	for _, rec := range records {
		if rec.ActivityID != activityID {
			keptRecords = append(keptRecords, rec)
		}
	}
	if err := r.store.SaveRecords(keptRecords); err != nil {
		return err
	}

	logging.Debug("activity deleted",
		logging.KeyActivity, activityID,
		logging.KeyCount, len(records)-len(keptRecords))
	return nil
}

// List returns all activities in insertion order.
func (r *Registry) List() ([]model.Activity, error) {
	return r.store.LoadActivities()
}

// ListWithRecords joins every activity with its records, sorted by start
// time descending, along with the total closed time and the latest record.
func (r *Registry) ListWithRecords() ([]model.ActivityWithRecords, error) {
	activities, err := r.store.LoadActivities()
	if err != nil {
		return nil, err
	}
	records, err := r.store.LoadRecords()
	if err != nil {
		return nil, err
	}

	byActivity := make(map[string][]model.TimeRecord)
	for _, rec := range records {
		byActivity[rec.ActivityID] = append(byActivity[rec.ActivityID], rec)
	}

	result := make([]model.ActivityWithRecords, 0, len(activities))
	for _, a := range activities {
		recs := byActivity[a.ID]
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].StartTime.After(recs[j].StartTime)
		})

		var total float64
		for _, rec := range recs {
			if rec.Duration != nil {
				total += *rec.Duration
			}
		}

		entry := model.ActivityWithRecords{
			Activity:  a,
			Records:   recs,
			TotalTime: total,
		}
		if len(recs) > 0 {
			entry.LastRecord = &recs[0]
		}
		result = append(result, entry)
	}
	return result, nil
}
