// Package id provides UUIDv7 identifiers for stored records (users,
// books, purchase rows). UUIDv7 is time-ordered, so ids sort by
// creation time.
package id

import (
	"github.com/google/uuid"
)

// ID is the identifier type shared by every stored record.
type ID = uuid.UUID

// New generates a new UUIDv7 (RFC 9562). The leading 48 bits carry the
// Unix timestamp, so id order follows insert order and primary-key
// B-trees in PostgreSQL stay compact.
func New() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// V7 only fails when the entropy source does; fall back to V4.
		return uuid.New()
	}
	return id
}

// Parse converts string to ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts string to ID, panics on error.
// Use only for constants and tests.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns zero-value UUID.
func Nil() ID {
	return uuid.Nil
}

// IsNil checks if ID is zero-value.
func IsNil(id ID) bool {
	return id == uuid.Nil
}
