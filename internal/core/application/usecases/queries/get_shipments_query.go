package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetShipmentsQueryIsNotConstructed = errors.New(
	"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
)

// GetShipmentsQuery lists all shipments, optionally narrowed to one
// status string.
type GetShipmentsQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a shipment listing query. An empty status
// lists everything.
func NewGetShipmentsQuery(status string) GetShipmentsQuery {
	return GetShipmentsQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentsQueryIsNotConstructed if validation fails.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// Status returns the status filter, empty for no filter.
func (q GetShipmentsQuery) Status() string {
	return q.status
}

// GetShipmentsQueryResponse is one shipment row of the listing.
type GetShipmentsQueryResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	VendorShipmentID string
	TrackingNumber   string
	Status           string
	LabelURL         string
	Weight           decimal.Decimal
	LastStatusUpdate time.Time
	ErrorMessage     *string
	RetryCount       int
}
