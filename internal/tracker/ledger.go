package tracker

import (
	"time"

	"github.com/cronozapp/cronoz/internal/errors"
	"github.com/cronozapp/cronoz/internal/id"
	"github.com/cronozapp/cronoz/internal/logging"
	"github.com/cronozapp/cronoz/internal/model"
	"github.com/cronozapp/cronoz/internal/storage"
	"github.com/cronozapp/cronoz/internal/validate"
)

// Ledger provides CRUD operations over time records.
//
// The ledger does not enforce the single-active-record rule; that contract
// lives in Tracker. Start never inspects other records, and it does not
// verify the referenced activity still exists, so orphaned records are
// possible when the registry's deletion cascade is bypassed.
type Ledger struct {
	store storage.Store
	now   func() time.Time
}

// NewLedger creates a time record ledger on the given store.
func NewLedger(store storage.Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// Start creates and persists an open record for the activity, with the
// start time and its calendar date fixed at creation.
func (l *Ledger) Start(activityID string) (*model.TimeRecord, error) {
	records, err := l.store.LoadRecords()
	if err != nil {
		return nil, err
	}

	record := model.NewTimeRecord(id.New(), activityID, l.now())
	records = append(records, record)
	if err := l.store.SaveRecords(records); err != nil {
		return nil, err
	}

	logging.Debug("record opened",
		logging.KeyRecord, record.ID,
		logging.KeyActivity, activityID)
	return &record, nil
}

// Stop closes the record: sets the end time and computes the duration in
// seconds. Stopping an already-closed record is a no-op that returns the
// record unchanged, so a double stop cannot rewrite the duration.
func (l *Ledger) Stop(recordID string) (*model.TimeRecord, error) {
	records, err := l.store.LoadRecords()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID != recordID {
			continue
		}
		if !records[i].IsOpen() {
			return &records[i], nil
		}
		records[i].Close(l.now())
		if err := l.store.SaveRecords(records); err != nil {
			return nil, err
		}
		logging.Debug("record closed",
			logging.KeyRecord, recordID,
			"seconds", records[i].Seconds())
		return &records[i], nil
	}
	return nil, errors.ErrRecordNotFound
}

// FindActive returns the first open record in storage order, or nil when
// every record is closed.
func (l *Ledger) FindActive() (*model.TimeRecord, error) {
	records, err := l.store.LoadRecords()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].IsOpen() {
			return &records[i], nil
		}
	}
	return nil, nil
}

// Get returns the record with the given id, or nil when absent.
func (l *Ledger) Get(recordID string) (*model.TimeRecord, error) {
	records, err := l.store.LoadRecords()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == recordID {
			return &records[i], nil
		}
	}
	return nil, nil
}

// SetNotes replaces the free-text notes on a record.
func (l *Ledger) SetNotes(recordID, notes string) (*model.TimeRecord, error) {
	if err := validate.Notes(notes); err != nil {
		return nil, err
	}

	records, err := l.store.LoadRecords()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID != recordID {
			continue
		}
		records[i].Notes = notes
		if err := l.store.SaveRecords(records); err != nil {
			return nil, err
		}
		return &records[i], nil
	}
	return nil, errors.ErrRecordNotFound
}

// Delete removes one record unconditionally. Deleting an open record
// silently discards the session in progress. An unknown id is a no-op.
func (l *Ledger) Delete(recordID string) error {
	records, err := l.store.LoadRecords()
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.ID != recordID {
			kept = append(kept, rec)
		}
	}
	return l.store.SaveRecords(kept)
}

// List returns all records in storage order.
func (l *Ledger) List() ([]model.TimeRecord, error) {
	return l.store.LoadRecords()
}

// ListByActivity returns the records attributed to one activity.
func (l *Ledger) ListByActivity(activityID string) ([]model.TimeRecord, error) {
	records, err := l.store.LoadRecords()
	if err != nil {
		return nil, err
	}
	filtered := make([]model.TimeRecord, 0, len(records))
	for _, rec := range records {
		if rec.ActivityID == activityID {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}
