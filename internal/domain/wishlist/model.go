// Package wishlist lets users bookmark catalog entries. A wishlist is a
// plain (user, book) pair set; listing joins back to the catalog.
package wishlist

import (
	"time"

	"uniboks/internal/core/id"
)

// Item is one wishlist entry.
type Item struct {
	UserID    id.ID     `db:"user_id" json:"userId"`
	BookID    id.ID     `db:"book_id" json:"bookId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
