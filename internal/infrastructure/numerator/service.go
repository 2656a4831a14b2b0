// Package numerator provides the PostgreSQL implementation of invoice auto-numbering.
// This is the infrastructure layer - it implements core/numerator.Generator.
package numerator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	corenumerator "uniboks/internal/core/numerator"
)

// Querier interface for database operations.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Service provides invoice numbering backed by the invoice_counters table.
// One row per (prefix, period); the counter is advanced with a single
// INSERT ... ON CONFLICT ... RETURNING so the read-modify-write is atomic
// at the database level. Concurrent checkouts on the same day serialize on
// the row and can never mint the same number.
type Service struct {
	querier Querier
}

// Ensure compile-time interface compliance.
var _ corenumerator.Generator = (*Service)(nil)

// New creates a new numerator service.
func New(querier Querier) *Service {
	return &Service{querier: querier}
}

// NextNumber allocates the next invoice number.
// Pattern: PREFIX-YYYYMMDD-NNNN (e.g., INV-20240601-0001).
func (s *Service) NextNumber(ctx context.Context, cfg corenumerator.Config, period time.Time) (string, error) {
	if s == nil || s.querier == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}

	key := s.buildKey(cfg, period)

	var num int64
	err := s.querier.QueryRow(ctx, `
        INSERT INTO invoice_counters (counter_key, last_counter)
        VALUES ($1, 1)
        ON CONFLICT (counter_key) DO UPDATE SET last_counter = invoice_counters.last_counter + 1
        RETURNING last_counter
	`, key).Scan(&num)
	if err != nil {
		return "", fmt.Errorf("next counter for %s: %w", key, err)
	}

	return s.formatNumber(cfg, period, num), nil
}

// SetNextNumber sets the counter so the next allocation yields value (for migration purposes).
func (s *Service) SetNextNumber(ctx context.Context, cfg corenumerator.Config, period time.Time, value int64) error {
	key := s.buildKey(cfg, period)

	var result int64
	err := s.querier.QueryRow(ctx, `
		INSERT INTO invoice_counters (counter_key, last_counter)
		VALUES ($1, $2)
		ON CONFLICT (counter_key) DO UPDATE SET last_counter = $2
		RETURNING last_counter
	`, key, value-1).Scan(&result)
	if err != nil {
		return fmt.Errorf("set counter for %s: %w", key, err)
	}
	return nil
}

// buildKey creates the counter key based on config and period.
func (s *Service) buildKey(cfg corenumerator.Config, period time.Time) string {
	switch cfg.ResetPeriod {
	case "day":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("20060102"))
	case "month":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("200601"))
	default:
		return cfg.Prefix
	}
}

// formatNumber creates the final number string.
// The pad width is a minimum: counters past 9999 widen instead of wrapping.
func (s *Service) formatNumber(cfg corenumerator.Config, period time.Time, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 4
	}
	return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, period.Format("20060102"), padWidth, num)
}

// ParseCounter extracts the numeric counter from a formatted invoice number
// (the segment after the last dash). Returns -1 if parsing fails.
func ParseCounter(formatted string) int64 {
	idx := strings.LastIndex(formatted, "-")
	if idx < 0 || idx == len(formatted)-1 {
		return -1
	}
	num, err := strconv.ParseInt(formatted[idx+1:], 10, 64)
	if err != nil {
		return -1
	}
	return num
}
