package storage

import (
	"encoding/json"

	apperrors "github.com/cronozapp/cronoz/internal/errors"
	"github.com/cronozapp/cronoz/internal/model"
)

// MemStore is an in-memory Store for tests. It round-trips collections
// through JSON so tests observe the exact payloads a real store would
// write, and so corrupt seed data fails the same way.
type MemStore struct {
	data map[string][]byte

	// SaveCounts tracks how many times each collection was written.
	SaveCounts map[string]int

	// FailSaves forces every save to fail when set, for error-path tests.
	FailSaves bool
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		data:       make(map[string][]byte),
		SaveCounts: make(map[string]int),
	}
}

// Seed stores a raw payload under a collection key, bypassing the typed
// save path. Useful for corruption tests.
func (s *MemStore) Seed(key string, payload []byte) {
	s.data[key] = payload
}

// Payload returns the last-written raw payload for a collection key.
func (s *MemStore) Payload(key string) []byte {
	return s.data[key]
}

// LoadActivities loads the activity collection.
func (s *MemStore) LoadActivities() ([]model.Activity, error) {
	return memLoad[model.Activity](s, KeyActivities)
}

// SaveActivities overwrites the activity collection.
func (s *MemStore) SaveActivities(activities []model.Activity) error {
	return s.memSave(KeyActivities, activities)
}

// LoadRecords loads the time record collection.
func (s *MemStore) LoadRecords() ([]model.TimeRecord, error) {
	return memLoad[model.TimeRecord](s, KeyTimeRecords)
}

// SaveRecords overwrites the time record collection.
func (s *MemStore) SaveRecords(records []model.TimeRecord) error {
	return s.memSave(KeyTimeRecords, records)
}

func memLoad[T any](s *MemStore, key string) ([]T, error) {
	data, ok := s.data[key]
	if !ok {
		return []T{}, nil
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

func (s *MemStore) memSave(key string, items any) error {
	if s.FailSaves {
		return apperrors.NewSystemErrorWithOp("save "+key, "simulated write failure", nil)
	}
	data, err := json.Marshal(items)
	if err != nil {
		return apperrors.NewSystemErrorWithOp("save "+key, "encode failed", err)
	}
	s.data[key] = data
	s.SaveCounts[key]++
	return nil
}
