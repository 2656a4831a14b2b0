// Package numerator provides domain contracts for invoice auto-numbering.
// Implementations live in infrastructure layer.
package numerator

import (
	"context"
	"time"
)

// Generator generates sequential invoice numbers.
// This is the domain contract - implementations live in infrastructure layer.
type Generator interface {
	// NextNumber allocates the next invoice number for the given period.
	// Pattern: PREFIX-YYYYMMDD-NNNN (e.g., INV-20240601-0001).
	//
	// The increment-and-persist step must be a single atomic read-modify-write
	// in the backing store; concurrent callers on the same period must never
	// observe the same counter value.
	NextNumber(ctx context.Context, cfg Config, period time.Time) (string, error)

	// SetNextNumber sets the counter value for a period (for migration purposes).
	SetNextNumber(ctx context.Context, cfg Config, period time.Time, value int64) error
}
