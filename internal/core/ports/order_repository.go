package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are owned by the storefront; the order-to-cash core reads them
// and writes back only the delivered lifecycle cascade.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
