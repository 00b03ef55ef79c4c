package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInvoiceQueryHandler retrieves one invoice from the database as a
// plain read model, bypassing the aggregate.
type GetInvoiceQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceQueryHandler creates a handler for invoice detail queries.
// Requires a GORM database connection for query execution.
func NewGetInvoiceQueryHandler(db *gorm.DB) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no
// invoice exists for the identifier.
func (h GetInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceQuery,
) (GetInvoiceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	resp, err := h.loadInvoice(ctx, query.InvoiceID())
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	if resp.Items, err = h.loadItems(ctx, query.InvoiceID()); err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	if resp.AuditLog, err = h.loadAuditLog(ctx, query.InvoiceID()); err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	return resp, nil
}

func (h GetInvoiceQueryHandler) loadInvoice(ctx context.Context, invoiceID kernel.UUID) (GetInvoiceQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			number,
			doc_type,
			status,
			subtotal,
			tax_rate,
			tax,
			shipping_cost,
			discount,
			total_amount,
			payment_method,
			payment_status,
			customer_name,
			customer_email,
			customer_phone,
			customer_address,
			customer_organization,
			issued_at,
			due_date,
			paid_at,
			terms_conditions
		FROM invoices
		WHERE id = ?
	`, invoiceID.Bytes()).Rows()
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetInvoiceQueryResponse{}, err
		}
		return GetInvoiceQueryResponse{}, errs.NewObjectNotFoundError("invoice", invoiceID)
	}

	var resp GetInvoiceQueryResponse
	var id, orderID uuid.UUID

	err = rows.Scan(
		&id,
		&orderID,
		&resp.Number,
		&resp.Type,
		&resp.Status,
		&resp.Subtotal,
		&resp.TaxRate,
		&resp.Tax,
		&resp.ShippingCost,
		&resp.Discount,
		&resp.TotalAmount,
		&resp.PaymentMethod,
		&resp.PaymentStatus,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&resp.CustomerPhone,
		&resp.CustomerAddress,
		&resp.CustomerOrganization,
		&resp.IssuedAt,
		&resp.DueDate,
		&resp.PaidAt,
		&resp.TermsConditions,
	)
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetInvoiceQueryResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	return resp, nil
}

func (h GetInvoiceQueryHandler) loadItems(ctx context.Context, invoiceID kernel.UUID) ([]GetInvoiceItemResponse, error) {
	items := make([]GetInvoiceItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_name,
			description,
			quantity,
			unit_price,
			total
		FROM invoice_items
		WHERE invoice_id = ?
		ORDER BY id
	`, invoiceID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetInvoiceItemResponse
		err = rows.Scan(
			&item.ProductName,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.Total,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetInvoiceQueryHandler) loadAuditLog(ctx context.Context, invoiceID kernel.UUID) ([]GetInvoiceAuditResponse, error) {
	entries := make([]GetInvoiceAuditResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			action,
			details,
			performed_by,
			created_at
		FROM invoice_audit_logs
		WHERE invoice_id = ?
		ORDER BY id
	`, invoiceID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetInvoiceAuditResponse
		err = rows.Scan(
			&entry.Action,
			&entry.Details,
			&entry.PerformedBy,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
