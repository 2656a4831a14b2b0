package store_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/id"
	"uniboks/internal/domain/book"
	"uniboks/internal/domain/wishlist"
	"uniboks/internal/infrastructure/storage/postgres"
)

// WishlistRepo persists wishlist pairs in the wishlists table.
type WishlistRepo struct {
	txManager *postgres.TxManager
	bookCols  []string
}

var _ wishlist.Repository = (*WishlistRepo)(nil)

// NewWishlistRepo creates a wishlist repository.
func NewWishlistRepo(txManager *postgres.TxManager) *WishlistRepo {
	cols := postgres.ExtractDBColumns[book.Book]()
	qualified := make([]string, len(cols))
	for i, c := range cols {
		qualified[i] = "b." + c
	}
	return &WishlistRepo{txManager: txManager, bookCols: qualified}
}

// Exists reports whether the pair is already on the wishlist.
func (r *WishlistRepo) Exists(ctx context.Context, userID, bookID id.ID) (bool, error) {
	sql, args, err := builder().
		Select("1").
		From("wishlists").
		Where(squirrel.Eq{"user_id": userID, "book_id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &one, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check wishlist: %w", err)
	}
	return true, nil
}

// Add inserts a wishlist entry.
func (r *WishlistRepo) Add(ctx context.Context, item *wishlist.Item) error {
	data := postgres.StructToMap(item)

	sql, args, err := builder().
		Insert("wishlists").
		SetMap(data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		if postgres.IsUniqueViolation(err) {
			return apperror.NewConflict("book already on wishlist").
				WithDetail("bookId", item.BookID.String()).
				WithCause(err)
		}
		return fmt.Errorf("insert wishlist item: %w", err)
	}
	return nil
}

// Remove deletes a wishlist entry. Removing an absent pair is a no-op.
func (r *WishlistRepo) Remove(ctx context.Context, userID, bookID id.ID) error {
	sql, args, err := builder().
		Delete("wishlists").
		Where(squirrel.Eq{"user_id": userID, "book_id": bookID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	return nil
}

// ListBooks returns the user's wishlisted books joined to the catalog.
func (r *WishlistRepo) ListBooks(ctx context.Context, userID id.ID) ([]*book.Book, error) {
	sql, args, err := builder().
		Select(r.bookCols...).
		From("wishlists w").
		Join("books b ON b.id = w.book_id").
		Where(squirrel.Eq{"w.user_id": userID}).
		OrderBy("w.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var books []*book.Book
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &books, sql, args...); err != nil {
		return nil, fmt.Errorf("list wishlist books: %w", err)
	}
	return books, nil
}
