package store_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/id"
	"uniboks/internal/core/types"
	"uniboks/internal/domain/book"
	"uniboks/internal/infrastructure/storage/postgres"
)

// BookRepo persists catalog entries in the books table.
type BookRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

var _ book.Repository = (*BookRepo)(nil)

// NewBookRepo creates a book repository.
func NewBookRepo(txManager *postgres.TxManager) *BookRepo {
	return &BookRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[book.Book](),
	}
}

// Create inserts a new book.
func (r *BookRepo) Create(ctx context.Context, b *book.Book) error {
	data := postgres.StructToMap(b)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in book")
	}

	sql, args, err := builder().
		Insert("books").
		SetMap(data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		if postgres.IsUniqueViolation(err) {
			return apperror.NewDuplicate("book", "code", b.Code)
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// GetByID retrieves a book by internal ID.
func (r *BookRepo) GetByID(ctx context.Context, bookID id.ID) (*book.Book, error) {
	return r.getOne(ctx, squirrel.Eq{"id": bookID}, bookID.String())
}

// GetByCode retrieves a book by catalog code.
func (r *BookRepo) GetByCode(ctx context.Context, code string) (*book.Book, error) {
	return r.getOne(ctx, squirrel.Eq{"code": code}, code)
}

func (r *BookRepo) getOne(ctx context.Context, where squirrel.Eq, key string) (*book.Book, error) {
	sql, args, err := builder().
		Select(r.selectCols...).
		From("books").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	b := &book.Book{}
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, b, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("book", key)
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

// List returns books in the given order, up to limit (0 = all).
func (r *BookRepo) List(ctx context.Context, sort book.SortOrder, limit int) ([]*book.Book, error) {
	q := builder().
		Select(r.selectCols...).
		From("books").
		OrderBy(orderClause(sort))
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return r.selectMany(ctx, q)
}

// ListByDepartments returns books from any of the given departments.
func (r *BookRepo) ListByDepartments(ctx context.Context, departments []string) ([]*book.Book, error) {
	q := builder().
		Select(r.selectCols...).
		From("books").
		Where(squirrel.Eq{"department": departments}).
		OrderBy("created_at DESC")
	return r.selectMany(ctx, q)
}

// ListCheaperThan returns books priced strictly below the cap.
func (r *BookRepo) ListCheaperThan(ctx context.Context, cap types.Money) ([]*book.Book, error) {
	q := builder().
		Select(r.selectCols...).
		From("books").
		Where(squirrel.Lt{"price": cap}).
		OrderBy("price ASC")
	return r.selectMany(ctx, q)
}

func (r *BookRepo) selectMany(ctx context.Context, q squirrel.SelectBuilder) ([]*book.Book, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var books []*book.Book
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &books, sql, args...); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func orderClause(sort book.SortOrder) string {
	switch sort {
	case book.SortTopRated:
		return "rating DESC"
	case book.SortMostViews:
		return "views DESC"
	default:
		return "created_at DESC"
	}
}
