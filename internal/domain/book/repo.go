package book

import (
	"context"

	"uniboks/internal/core/id"
	"uniboks/internal/core/types"
)

// SortOrder selects how list queries are ordered.
type SortOrder string

const (
	SortNewest    SortOrder = "newest"     // created_at DESC
	SortTopRated  SortOrder = "top_rated"  // rating DESC
	SortMostViews SortOrder = "most_views" // views DESC
)

// Repository defines the interface for catalog persistence.
type Repository interface {
	// Create inserts a new book (used by seeding).
	Create(ctx context.Context, b *Book) error

	// GetByID retrieves a book by internal ID.
	GetByID(ctx context.Context, bookID id.ID) (*Book, error)

	// GetByCode retrieves a book by catalog code.
	GetByCode(ctx context.Context, code string) (*Book, error)

	// List returns books ordered by the given sort, up to limit
	// (0 means no limit).
	List(ctx context.Context, sort SortOrder, limit int) ([]*Book, error)

	// ListByDepartments returns books belonging to any of the
	// given departments.
	ListByDepartments(ctx context.Context, departments []string) ([]*Book, error)

	// ListCheaperThan returns books priced strictly below the cap.
	ListCheaperThan(ctx context.Context, cap types.Money) ([]*Book, error)
}
