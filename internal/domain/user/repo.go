package user

import (
	"context"

	"uniboks/internal/core/id"
)

// Repository defines the interface for User persistence.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, u *User) error

	// Update rewrites the mutable profile fields.
	Update(ctx context.Context, u *User) error

	// GetByID retrieves a user by internal ID.
	GetByID(ctx context.Context, userID id.ID) (*User, error)

	// GetByEmail retrieves a user by email (unique).
	GetByEmail(ctx context.Context, email string) (*User, error)
}
