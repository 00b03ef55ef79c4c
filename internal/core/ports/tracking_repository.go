package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the append-only
// tracking ledger. Events are inserted and listed, never updated or
// deleted; replayed vendor deliveries produce duplicate rows by design.
type TrackingRepository interface {
	// Append inserts one ledger event.
	Append(ctx context.Context, event tracking.Event) error

	// ListByOrderID returns an order's events in received order.
	ListByOrderID(ctx context.Context, orderID kernel.UUID) ([]tracking.Event, error)
}
