package queries

import (
	"errors"
	"time"

	"shop/internal/pkg/guard"
)

var (
	ErrGetShipmentByTrackingNumberQueryIsNotConstructed = errors.New(
		"GetShipmentByTrackingNumberQuery must be created via NewGetShipmentByTrackingNumberQuery constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// GetShipmentByTrackingNumberQuery retrieves one shipment by the
// vendor-assigned tracking number, the external lookup key, together
// with the owning order's tracking history.
type GetShipmentByTrackingNumberQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetShipmentByTrackingNumberQuery creates a shipment detail query.
func NewGetShipmentByTrackingNumberQuery(trackingNumber string) (GetShipmentByTrackingNumberQuery, error) {
	if trackingNumber == "" {
		return GetShipmentByTrackingNumberQuery{}, ErrTrackingNumberIsRequired
	}

	return GetShipmentByTrackingNumberQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentByTrackingNumberQueryIsNotConstructed if validation fails.
func (q GetShipmentByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingNumberQueryIsNotConstructed)
}

// TrackingNumber returns the vendor-assigned tracking number.
func (q GetShipmentByTrackingNumberQuery) TrackingNumber() string {
	return q.trackingNumber
}

// GetTrackingEventResponse is one ledger event of the shipment's order.
type GetTrackingEventResponse struct {
	Status    string
	Message   string
	Location  string
	Source    string
	CreatedAt time.Time
}

// GetShipmentByTrackingNumberQueryResponse is the shipment detail plus
// the order's tracking history in received order.
type GetShipmentByTrackingNumberQueryResponse struct {
	GetShipmentsQueryResponse

	Events []GetTrackingEventResponse
}
