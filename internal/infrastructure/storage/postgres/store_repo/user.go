// Package store_repo provides PostgreSQL implementations for the
// storefront repositories (users, books, wishlists, purchases).
package store_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/id"
	"uniboks/internal/domain/user"
	"uniboks/internal/infrastructure/storage/postgres"
)

// builder returns a squirrel builder with PostgreSQL placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// UserRepo persists users in the users table.
type UserRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

var _ user.Repository = (*UserRepo)(nil)

// NewUserRepo creates a user repository.
func NewUserRepo(txManager *postgres.TxManager) *UserRepo {
	return &UserRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[user.User](),
	}
}

// Create inserts a new user using its "db" tags.
func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	data := postgres.StructToMap(u)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in user")
	}

	sql, args, err := builder().
		Insert("users").
		SetMap(data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		if postgres.IsUniqueViolation(err) {
			return apperror.NewDuplicate("user", "email", u.Email)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update rewrites the mutable profile fields.
func (r *UserRepo) Update(ctx context.Context, u *user.User) error {
	data := postgres.StructToMap(u)
	delete(data, "id")
	delete(data, "created_at")

	sql, args, err := builder().
		Update("users").
		SetMap(data).
		Where(squirrel.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("user", u.ID.String())
	}
	return nil
}

// GetByID retrieves a user by internal ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*user.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": userID}, userID.String())
}

// GetByEmail retrieves a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, email)
}

func (r *UserRepo) getOne(ctx context.Context, where squirrel.Eq, key string) (*user.User, error) {
	sql, args, err := builder().
		Select(r.selectCols...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u := &user.User{}
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", key)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
