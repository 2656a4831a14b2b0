package store_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"uniboks/internal/core/id"
	"uniboks/internal/core/types"
	"uniboks/internal/domain/purchase"
	"uniboks/internal/infrastructure/storage/postgres"
)

// PurchaseRepo persists checkout rows in the purchases table.
type PurchaseRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

var _ purchase.Repository = (*PurchaseRepo)(nil)

// NewPurchaseRepo creates a purchase repository.
func NewPurchaseRepo(txManager *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[purchase.Purchase](),
	}
}

// CreateBatch inserts all rows of one checkout in a single statement.
func (r *PurchaseRepo) CreateBatch(ctx context.Context, purchases []*purchase.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}

	q := builder().
		Insert("purchases").
		Columns(r.selectCols...)
	for _, p := range purchases {
		data := postgres.StructToMap(p)
		row := make([]any, len(r.selectCols))
		for i, col := range r.selectCols {
			row[i] = data[col]
		}
		q = q.Values(row...)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert purchases: %w", err)
	}
	return nil
}

// ListByUser returns a user's purchases, newest first.
func (r *PurchaseRepo) ListByUser(ctx context.Context, userID id.ID) ([]*purchase.Purchase, error) {
	sql, args, err := builder().
		Select(r.selectCols...).
		From("purchases").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date_purchased DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var purchases []*purchase.Purchase
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &purchases, sql, args...); err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return purchases, nil
}

// SummaryByUser aggregates total spend and book count.
func (r *PurchaseRepo) SummaryByUser(ctx context.Context, userID id.ID) (*purchase.Summary, error) {
	sql, args, err := builder().
		Select(
			"COALESCE(SUM(total_price), 0) AS total_sum",
			"COUNT(book_code) AS total_books",
		).
		From("purchases").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row struct {
		TotalSum   types.Money `db:"total_sum"`
		TotalBooks int         `db:"total_books"`
	}
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		return nil, fmt.Errorf("purchase summary: %w", err)
	}

	return &purchase.Summary{TotalSum: row.TotalSum, TotalBooks: row.TotalBooks}, nil
}
