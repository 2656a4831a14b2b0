// Package analytics records storefront usage events (logins, profile
// updates, purchases, errors). Recording is best-effort: a failed write
// is logged and never fails the business operation that triggered it.
package analytics

import (
	"context"
	"encoding/json"
	"time"

	"uniboks/internal/core/id"
	"uniboks/pkg/logger"
)

// Well-known event names.
const (
	EventLogin         = "Login"
	EventSignup        = "Signup"
	EventProfileUpdate = "Update"
	EventPurchase      = "Purchase"
	EventWishlistAdd   = "WishlistAdd"
	EventError         = "error"
)

// Event is one recorded usage event. Metadata is free-form JSON; large
// payloads are stored compressed.
type Event struct {
	ID        id.ID           `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"userId"`
	Event     string          `db:"event" json:"event"`
	Metadata  json.RawMessage `db:"metadata" json:"metadata,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// Recorder is the write-side contract for event logging.
type Recorder interface {
	// Record stores one event. Metadata is marshalled to JSON;
	// nil metadata is allowed.
	Record(ctx context.Context, userID, event string, metadata any) error
}

// RecordQuiet records an event, logging failures instead of returning
// them. Use on paths where analytics must never affect the request outcome.
func RecordQuiet(ctx context.Context, r Recorder, userID, event string, metadata any) {
	if r == nil {
		return
	}
	if err := r.Record(ctx, userID, event, metadata); err != nil {
		logger.Warn(ctx, "event not recorded", "event", event, "user_id", userID, "error", err)
	}
}
