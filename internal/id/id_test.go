package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsValidUUID(t *testing.T) {
	got := New()
	_, err := uuid.Parse(got)
	require.NoError(t, err)
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		got := New()
		_, dup := seen[got]
		assert.False(t, dup, "duplicate id %s", got)
		seen[got] = struct{}{}
	}
}

func TestNewSortsByCreationTime(t *testing.T) {
	// The v7 time prefix makes later ids compare greater.
	first := New()
	second := New()
	if first == second {
		t.Fatal("consecutive ids are identical")
	}
	assert.LessOrEqual(t, first, second)
}
