// Package id generates unique identifiers for new entities.
package id

import "github.com/google/uuid"

// New returns a unique string identifier. UUIDv7 keeps a time-based prefix so
// identifiers created later sort later, with a random suffix for uniqueness.
// Not cryptographically secure; collision is a theoretical failure mode.
func New() string {
	v7, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source does; fall back to v4.
		return uuid.NewString()
	}
	return v7.String()
}
