package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cronozapp/cronoz/internal/errors"
	"github.com/cronozapp/cronoz/internal/storage"
)

func newTestLedger(t *testing.T) (*Ledger, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 5, 15, 22, 30, 0, 0, time.Local)}
	ledger := NewLedger(storage.NewMemStore())
	ledger.now = clock.Now
	return ledger, clock
}

func TestLedgerStartCreatesOpenRecord(t *testing.T) {
	ledger, clock := newTestLedger(t)

	record, err := ledger.Start("activity-1")
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "activity-1", record.ActivityID)
	assert.Equal(t, clock.Now(), record.StartTime)
	assert.Nil(t, record.EndTime)
	assert.Nil(t, record.Duration)
	assert.Equal(t, "2024-05-15", record.Date)
}

func TestLedgerDateFixedAtCreation(t *testing.T) {
	ledger, clock := newTestLedger(t)

	record, err := ledger.Start("activity-1")
	require.NoError(t, err)

	// Session spans midnight; the bucket date must not move.
	clock.Advance(3 * time.Hour)
	stopped, err := ledger.Stop(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-15", stopped.Date)
	assert.Equal(t, "2024-05-16", stopped.EndTime.Format("2006-01-02"))
}

func TestLedgerStopComputesDuration(t *testing.T) {
	ledger, clock := newTestLedger(t)

	record, err := ledger.Start("activity-1")
	require.NoError(t, err)

	clock.Advance(42*time.Second + 500*time.Millisecond)
	stopped, err := ledger.Stop(record.ID)
	require.NoError(t, err)

	require.NotNil(t, stopped.EndTime)
	require.NotNil(t, stopped.Duration)
	assert.InDelta(t, 42.5, *stopped.Duration, 0.001)
	assert.InDelta(t, stopped.EndTime.Sub(stopped.StartTime).Seconds(), *stopped.Duration, 0.001)
	assert.GreaterOrEqual(t, *stopped.Duration, 0.0)
}

func TestLedgerStopIsIdempotent(t *testing.T) {
	ledger, clock := newTestLedger(t)

	record, err := ledger.Start("activity-1")
	require.NoError(t, err)

	clock.Advance(time.Minute)
	first, err := ledger.Stop(record.ID)
	require.NoError(t, err)

	// A second stop against a later "now" must not rewrite the duration.
	clock.Advance(time.Hour)
	second, err := ledger.Stop(record.ID)
	require.NoError(t, err)

	assert.Equal(t, *first.Duration, *second.Duration)
	assert.True(t, first.EndTime.Equal(*second.EndTime))
}

func TestLedgerStopNotFound(t *testing.T) {
	ledger, _ := newTestLedger(t)

	_, err := ledger.Stop("missing")
	assert.ErrorIs(t, err, errors.ErrRecordNotFound)
}

func TestLedgerFindActive(t *testing.T) {
	ledger, _ := newTestLedger(t)

	active, err := ledger.FindActive()
	require.NoError(t, err)
	assert.Nil(t, active)

	record, err := ledger.Start("activity-1")
	require.NoError(t, err)

	active, err = ledger.FindActive()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, record.ID, active.ID)

	_, err = ledger.Stop(record.ID)
	require.NoError(t, err)

	active, err = ledger.FindActive()
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestLedgerStartDoesNotCloseOtherOpenRecords(t *testing.T) {
	ledger, _ := newTestLedger(t)

	// The raw ledger leaves the single-active-record rule to Tracker.
	_, err := ledger.Start("activity-1")
	require.NoError(t, err)
	_, err = ledger.Start("activity-2")
	require.NoError(t, err)

	records, err := ledger.List()
	require.NoError(t, err)
	open := 0
	for _, rec := range records {
		if rec.IsOpen() {
			open++
		}
	}
	assert.Equal(t, 2, open)
}

func TestLedgerDeleteOpenRecord(t *testing.T) {
	ledger, _ := newTestLedger(t)

	record, err := ledger.Start("activity-1")
	require.NoError(t, err)

	require.NoError(t, ledger.Delete(record.ID))

	records, err := ledger.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLedgerDeleteUnknownIDIsNoop(t *testing.T) {
	ledger, _ := newTestLedger(t)

	_, err := ledger.Start("activity-1")
	require.NoError(t, err)

	require.NoError(t, ledger.Delete("missing"))

	records, err := ledger.List()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLedgerSetNotes(t *testing.T) {
	ledger, _ := newTestLedger(t)

	record, err := ledger.Start("activity-1")
	require.NoError(t, err)

	updated, err := ledger.SetNotes(record.ID, "deep work on the parser")
	require.NoError(t, err)
	assert.Equal(t, "deep work on the parser", updated.Notes)

	_, err = ledger.SetNotes("missing", "x")
	assert.ErrorIs(t, err, errors.ErrRecordNotFound)
}

func TestLedgerListByActivity(t *testing.T) {
	ledger, clock := newTestLedger(t)

	a, err := ledger.Start("activity-1")
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = ledger.Stop(a.ID)
	require.NoError(t, err)

	_, err = ledger.Start("activity-2")
	require.NoError(t, err)

	records, err := ledger.ListByActivity("activity-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, a.ID, records[0].ID)
}
