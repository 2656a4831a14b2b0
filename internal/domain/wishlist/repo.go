package wishlist

import (
	"context"

	"uniboks/internal/core/id"
	"uniboks/internal/domain/book"
)

// Repository defines the interface for wishlist persistence.
type Repository interface {
	// Exists reports whether the pair is already on the wishlist.
	Exists(ctx context.Context, userID, bookID id.ID) (bool, error)

	// Add inserts a wishlist entry.
	Add(ctx context.Context, item *Item) error

	// Remove deletes a wishlist entry. Removing an absent pair is
	// not an error.
	Remove(ctx context.Context, userID, bookID id.ID) error

	// ListBooks returns the user's wishlisted books joined to the
	// catalog.
	ListBooks(ctx context.Context, userID id.ID) ([]*book.Book, error)
}
