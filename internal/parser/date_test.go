package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cronozapp/cronoz/internal/errors"
)

func TestParseDateKeywords(t *testing.T) {
	now := time.Date(2024, 5, 15, 14, 30, 0, 0, time.Local)

	for _, input := range []string{"", "today", "Today", "  today  "} {
		got, err := ParseDate(input, now)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, "2024-05-15", got, "input %q", input)
	}

	got, err := ParseDate("yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-14", got)
}

func TestParseDateExactForm(t *testing.T) {
	now := time.Date(2024, 5, 15, 14, 30, 0, 0, time.Local)

	got, err := ParseDate("2024-01-09", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-09", got)
}

func TestParseDateNaturalLanguage(t *testing.T) {
	// Wednesday; "last monday" resolves relative to it.
	now := time.Date(2024, 5, 15, 14, 30, 0, 0, time.Local)

	got, err := ParseDate("last monday", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-13", got)
}

func TestParseDateRejectsGarbage(t *testing.T) {
	now := time.Date(2024, 5, 15, 14, 30, 0, 0, time.Local)

	_, err := ParseDate("not a date at all xyzzy", now)
	require.Error(t, err)

	var userErr *errors.UserError
	assert.ErrorAs(t, err, &userErr)
	assert.Equal(t, "date", userErr.Field)
}
