package purchase

import (
	"context"

	"uniboks/internal/core/id"
)

// Repository defines the interface for purchase persistence.
type Repository interface {
	// CreateBatch inserts all rows of one checkout. Callers wrap
	// this in a transaction so the checkout is all-or-nothing.
	CreateBatch(ctx context.Context, purchases []*Purchase) error

	// ListByUser returns a user's purchases, newest first.
	ListByUser(ctx context.Context, userID id.ID) ([]*Purchase, error)

	// SummaryByUser aggregates total spend and book count. A user
	// with no purchases gets a zero summary, not an error.
	SummaryByUser(ctx context.Context, userID id.ID) (*Summary, error)
}
