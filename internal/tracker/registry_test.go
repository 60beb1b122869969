package tracker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cronozapp/cronoz/internal/errors"
	"github.com/cronozapp/cronoz/internal/model"
	"github.com/cronozapp/cronoz/internal/storage"
)

func newTestRegistry(t *testing.T) (*Registry, *storage.MemStore, *fakeClock) {
	t.Helper()
	store := storage.NewMemStore()
	clock := &fakeClock{t: time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)}
	registry := NewRegistry(store)
	registry.now = clock.Now
	return registry, store, clock
}

func TestRegistryCreate(t *testing.T) {
	registry, store, clock := newTestRegistry(t)

	activity, err := registry.Create("Focus", "brain", "#8FD694")
	require.NoError(t, err)

	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, "Focus", activity.Name)
	assert.Equal(t, "brain", activity.Icon)
	assert.Equal(t, "#8FD694", activity.Color)
	assert.Equal(t, clock.Now(), activity.CreatedAt)

	// The stored payload is one JSON array under the activities key.
	var stored []model.Activity
	require.NoError(t, json.Unmarshal(store.Payload(storage.KeyActivities), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, activity.ID, stored[0].ID)
}

func TestRegistryCreateTrimsName(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	activity, err := registry.Create("  Focus  ", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Focus", activity.Name)
}

func TestRegistryCreateRejectsEmptyName(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := registry.Create(name, "", "")
		require.Error(t, err)
		var userErr *errors.UserError
		assert.ErrorAs(t, err, &userErr)
	}
}

func TestRegistryCreateRejectsBadColor(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := registry.Create("Focus", "", "green")
	require.Error(t, err)
	var userErr *errors.UserError
	assert.ErrorAs(t, err, &userErr)
}

func TestRegistryGet(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	activity, err := registry.Create("Focus", "", "")
	require.NoError(t, err)

	found, err := registry.Get(activity.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, activity.ID, found.ID)

	// Lookup misses are an absent value, not an error.
	missing, err := registry.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRegistryRename(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	activity, err := registry.Create("Focus", "", "")
	require.NoError(t, err)

	renamed, err := registry.Rename(activity.ID, "Deep Work")
	require.NoError(t, err)
	assert.Equal(t, "Deep Work", renamed.Name)

	found, err := registry.Get(activity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deep Work", found.Name)
}

func TestRegistryRenameSameNameIsNoop(t *testing.T) {
	registry, store, _ := newTestRegistry(t)

	activity, err := registry.Create("Focus", "", "")
	require.NoError(t, err)
	savesBefore := store.SaveCounts[storage.KeyActivities]

	payloadBefore := append([]byte(nil), store.Payload(storage.KeyActivities)...)

	// Renaming to the current name twice leaves the stored state
	// byte-identical and writes nothing.
	for i := 0; i < 2; i++ {
		renamed, err := registry.Rename(activity.ID, "Focus")
		require.NoError(t, err)
		assert.Equal(t, "Focus", renamed.Name)
	}

	assert.Equal(t, savesBefore, store.SaveCounts[storage.KeyActivities])
	assert.Equal(t, payloadBefore, store.Payload(storage.KeyActivities))
}

func TestRegistryRenameNotFound(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := registry.Rename("missing", "Focus")
	assert.ErrorIs(t, err, errors.ErrActivityNotFound)
}

func TestRegistryUpdateMergesFields(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	activity, err := registry.Create("Focus", "brain", "#8FD694")
	require.NoError(t, err)

	newColor := "#EF4444"
	updated, err := registry.Update(activity.ID, model.ActivityUpdate{Color: &newColor})
	require.NoError(t, err)

	assert.Equal(t, "Focus", updated.Name)
	assert.Equal(t, "brain", updated.Icon)
	assert.Equal(t, "#EF4444", updated.Color)
}

func TestRegistryUpdateNotFound(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	name := "Focus"
	_, err := registry.Update("missing", model.ActivityUpdate{Name: &name})
	assert.ErrorIs(t, err, errors.ErrActivityNotFound)
}

func TestRegistryListKeepsInsertionOrder(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	names := []string{"Focus", "Reading", "Chess"}
	for _, name := range names {
		_, err := registry.Create(name, "", "")
		require.NoError(t, err)
	}

	activities, err := registry.List()
	require.NoError(t, err)
	require.Len(t, activities, len(names))
	for i, name := range names {
		assert.Equal(t, name, activities[i].Name)
	}
}

func TestRegistryDeleteCascades(t *testing.T) {
	registry, store, _ := newTestRegistry(t)
	ledger := NewLedger(store)

	focus, err := registry.Create("Focus", "", "")
	require.NoError(t, err)
	reading, err := registry.Create("Reading", "", "")
	require.NoError(t, err)

	focusRec, err := ledger.Start(focus.ID)
	require.NoError(t, err)
	_, err = ledger.Stop(focusRec.ID)
	require.NoError(t, err)
	readingRec, err := ledger.Start(reading.ID)
	require.NoError(t, err)
	_, err = ledger.Stop(readingRec.ID)
	require.NoError(t, err)

	require.NoError(t, registry.Delete(focus.ID))

	activities, err := registry.List()
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, reading.ID, activities[0].ID)

	records, err := ledger.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, reading.ID, records[0].ActivityID)
}

func TestRegistryDeleteSurfacesWriteFailure(t *testing.T) {
	registry, store, _ := newTestRegistry(t)

	activity, err := registry.Create("Focus", "", "")
	require.NoError(t, err)

	store.FailSaves = true
	assert.Error(t, registry.Delete(activity.ID))
}

func TestRegistryListWithRecords(t *testing.T) {
	registry, store, clock := newTestRegistry(t)
	ledger := NewLedger(store)
	ledger.now = clock.Now

	focus, err := registry.Create("Focus", "", "")
	require.NoError(t, err)

	// Two closed records and one open; totals only count closed ones.
	first, err := ledger.Start(focus.ID)
	require.NoError(t, err)
	clock.Advance(10 * time.Minute)
	_, err = ledger.Stop(first.ID)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	second, err := ledger.Start(focus.ID)
	require.NoError(t, err)
	clock.Advance(20 * time.Minute)
	_, err = ledger.Stop(second.ID)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	open, err := ledger.Start(focus.ID)
	require.NoError(t, err)

	joined, err := registry.ListWithRecords()
	require.NoError(t, err)
	require.Len(t, joined, 1)

	entry := joined[0]
	assert.InDelta(t, 1800, entry.TotalTime, 0.001)
	require.Len(t, entry.Records, 3)

	// Records are sorted by start time, newest first.
	assert.Equal(t, open.ID, entry.Records[0].ID)
	assert.Equal(t, second.ID, entry.Records[1].ID)
	assert.Equal(t, first.ID, entry.Records[2].ID)

	require.NotNil(t, entry.LastRecord)
	assert.Equal(t, open.ID, entry.LastRecord.ID)

	// TotalTime equals the sum of closed durations for the activity.
	var sum float64
	for _, rec := range entry.Records {
		sum += rec.Seconds()
	}
	assert.InDelta(t, sum, entry.TotalTime, 0.001)
}

func TestRegistryListWithRecordsEmptyActivity(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := registry.Create("Focus", "", "")
	require.NoError(t, err)

	joined, err := registry.ListWithRecords()
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Zero(t, joined[0].TotalTime)
	assert.Empty(t, joined[0].Records)
	assert.Nil(t, joined[0].LastRecord)
}
