package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentByTrackingNumberQueryHandler retrieves one shipment with
// the owning order's ledger history.
type GetShipmentByTrackingNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByTrackingNumberQueryHandler creates a handler for
// shipment detail queries. Requires a GORM database connection for query
// execution.
func NewGetShipmentByTrackingNumberQueryHandler(db *gorm.DB) GetShipmentByTrackingNumberQueryHandler {
	return GetShipmentByTrackingNumberQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no
// shipment carries the tracking number.
func (h GetShipmentByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByTrackingNumberQuery,
) (GetShipmentByTrackingNumberQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentByTrackingNumberQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			vendor_shipment_id,
			tracking_number,
			status,
			label_url,
			weight,
			last_status_update,
			error_message,
			retry_count
		FROM shipments
		WHERE tracking_number = ?
	`, query.TrackingNumber()).Rows()
	if err != nil {
		return GetShipmentByTrackingNumberQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetShipmentByTrackingNumberQueryResponse{}, err
		}
		return GetShipmentByTrackingNumberQueryResponse{},
			errs.NewObjectNotFoundError("shipment", query.TrackingNumber())
	}

	shipmentRow, err := scanShipmentRow(rows)
	if err != nil {
		return GetShipmentByTrackingNumberQueryResponse{}, err
	}
	rows.Close()

	resp := GetShipmentByTrackingNumberQueryResponse{GetShipmentsQueryResponse: shipmentRow}
	if resp.Events, err = h.loadEvents(ctx, shipmentRow.OrderID); err != nil {
		return GetShipmentByTrackingNumberQueryResponse{}, err
	}

	return resp, nil
}

func (h GetShipmentByTrackingNumberQueryHandler) loadEvents(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetTrackingEventResponse, error) {
	events := make([]GetTrackingEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			message,
			location,
			source,
			created_at
		FROM tracking_events
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetTrackingEventResponse
		err = rows.Scan(
			&event.Status,
			&event.Message,
			&event.Location,
			&event.Source,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
