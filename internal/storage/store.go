package storage

import (
	"encoding/json"

	apperrors "github.com/cronozapp/cronoz/internal/errors"
	"github.com/cronozapp/cronoz/internal/model"
)

// Collection keys. Each collection is stored as one JSON array under a
// fixed key and rewritten whole on every save.
const (
	KeyActivities  = "activities"
	KeyTimeRecords = "time-records"
)

// Store is the persistence port for the tracking core.
//
// Saves overwrite the entire collection; there are no partial updates and no
// transactions across the two keys. Loading an absent key yields an empty
// slice. Stored data that cannot be decoded into the expected shape is a
// corruption error and is propagated, not repaired.
//
// The contract assumes a single writer. Badger's directory lock already
// keeps a second process out of the same database; concurrent writers
// within one process must be serialized by the caller or one write's
// read-modify-save cycle can be lost.
type Store interface {
	LoadActivities() ([]model.Activity, error)
	SaveActivities(activities []model.Activity) error
	LoadRecords() ([]model.TimeRecord, error)
	SaveRecords(records []model.TimeRecord) error
}

// KVStore implements Store on top of the Badger-backed DB.
type KVStore struct {
	db *DB
}

// NewKVStore creates a Store backed by the given database.
func NewKVStore(db *DB) *KVStore {
	return &KVStore{db: db}
}

// LoadActivities loads the activity collection.
func (s *KVStore) LoadActivities() ([]model.Activity, error) {
	return loadCollection[model.Activity](s.db, KeyActivities)
}

// SaveActivities overwrites the activity collection.
func (s *KVStore) SaveActivities(activities []model.Activity) error {
	return saveCollection(s.db, KeyActivities, activities)
}

// LoadRecords loads the time record collection.
func (s *KVStore) LoadRecords() ([]model.TimeRecord, error) {
	return loadCollection[model.TimeRecord](s.db, KeyTimeRecords)
}

// SaveRecords overwrites the time record collection.
func (s *KVStore) SaveRecords(records []model.TimeRecord) error {
	return saveCollection(s.db, KeyTimeRecords, records)
}

func loadCollection[T any](db *DB, key string) ([]T, error) {
	data, err := db.GetBytes(key)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return []T{}, nil
		}
		return nil, apperrors.NewSystemErrorWithOp("load "+key, "database read failed", err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, apperrors.Corruption(key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func saveCollection[T any](db *DB, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return apperrors.NewSystemErrorWithOp("save "+key, "encode failed", err)
	}
	if err := db.SetBytes(key, data); err != nil {
		return apperrors.NewSystemErrorWithOp("save "+key, "database write failed", err)
	}
	return nil
}
