package ports

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. The one-shipment-per-order rule mirrors the invoice rule:
// Add relies on a storage-level uniqueness constraint on the order
// reference and translates its violation into a ConflictError.
type ShipmentRepository interface {
	// Add persists a new shipment. Returns a ConflictError when a
	// shipment already exists for the same order.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetByOrderID retrieves the shipment linked to an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by the vendor-assigned
	// tracking number, the external lookup key.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error)

	// CancelByVendorID sets every row carrying the vendor-assigned
	// shipment id to cancelled. The vendor id is not unique-enforced
	// locally, so this is a bulk update by design.
	CancelByVendorID(ctx context.Context, vendorShipmentID string, now time.Time) error

	// GetAllUndelivered retrieves shipments not yet in a terminal or
	// cancelled state, for the periodic tracking refresh.
	GetAllUndelivered(ctx context.Context) ([]*shipment.Shipment, error)
}
