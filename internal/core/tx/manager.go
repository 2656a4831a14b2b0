// Package tx defines the transaction contracts the storefront services
// depend on. The pgx-backed implementation lives in
// infrastructure/storage/postgres; services never see a driver type.
package tx

import (
	"context"
)

// Manager runs a function inside a database transaction.
type Manager interface {
	// RunInTransaction executes fn within a transaction: commit when
	// fn returns nil, roll back otherwise. Nested calls reuse the
	// transaction already carried in ctx, so a checkout that spans
	// several repositories still commits or rolls back as one unit.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager extends Manager for multi-query reads, like the
// storefront shelves, that should observe one consistent snapshot.
type ReadOnlyManager interface {
	Manager

	// ReadOnly executes fn in a read-only transaction. Writes inside
	// fn fail at the database.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
