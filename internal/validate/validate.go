// Package validate provides input validation helpers for Cronoz.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cronozapp/cronoz/internal/errors"
)

const (
	// MaxNameLength is the maximum length for an activity name.
	MaxNameLength = 64
	// MaxNotesLength is the maximum length for record notes.
	MaxNotesLength = 4096
)

// hexColorRegex matches the #RRGGBB color format.
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ActivityName validates an activity display name.
// Names that are empty after trimming are rejected.
func ActivityName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewUserError("Activity name cannot be empty", "Provide a non-empty name")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.NewUserErrorWithField("name", name,
			"Activity name too long",
			"Activity names must be 64 characters or fewer")
	}
	return nil
}

// HexColor validates a hex color key. Empty means no color and is allowed.
func HexColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return errors.NewUserErrorWithField("color", color,
			"Invalid color format",
			"Use hex format like '#8FD694'")
	}
	return nil
}

// Notes validates free-text notes on a time record.
func Notes(notes string) error {
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return errors.NewUserError(
			"Notes too long",
			"Notes must be 4096 characters or fewer")
	}
	return nil
}
