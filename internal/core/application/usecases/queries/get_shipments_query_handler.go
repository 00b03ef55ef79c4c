package queries

import (
	"context"
	"database/sql"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentsQueryHandler lists shipments from the database.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment listing
// queries. Requires a GORM database connection for query execution.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by the latest status
// update first.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) ([]GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetShipmentsQueryResponse, 0)

	sqlText := `
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
	`
	args := make([]any, 0, 1)
	if query.Status() != "" {
		sqlText += " WHERE status = ?"
		args = append(args, query.Status())
	}
	sqlText += " ORDER BY last_status_update DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanShipmentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

func scanShipmentRow(rows *sql.Rows) (GetShipmentsQueryResponse, error) {
	var resp GetShipmentsQueryResponse
	var id, orderID uuid.UUID

	err := rows.Scan(
		&id,
		&orderID,
		&resp.VendorShipmentID,
		&resp.TrackingNumber,
		&resp.Status,
		&resp.LabelURL,
		&resp.Weight,
		&resp.LastStatusUpdate,
		&resp.ErrorMessage,
		&resp.RetryCount,
	)
	if err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetShipmentsQueryResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	return resp, nil
}
