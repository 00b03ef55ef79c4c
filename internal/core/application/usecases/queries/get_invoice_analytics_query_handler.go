package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetInvoiceAnalyticsQueryHandler aggregates invoices in the database.
type GetInvoiceAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceAnalyticsQueryHandler creates a handler for the analytics
// query. Requires a GORM database connection for query execution.
func NewGetInvoiceAnalyticsQueryHandler(db *gorm.DB) GetInvoiceAnalyticsQueryHandler {
	return GetInvoiceAnalyticsQueryHandler{db: db}
}

// Handle executes the aggregation.
func (h GetInvoiceAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceAnalyticsQuery,
) (GetInvoiceAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInvoiceAnalyticsQueryResponse{}, err
	}

	resp := GetInvoiceAnalyticsQueryResponse{
		CountByStatus: make(map[string]int),
		CountByType:   make(map[string]int),
		PaidAmount:    decimal.Zero,
		PendingAmount: decimal.Zero,
	}

	if err := h.countByColumn(ctx, "status", resp.CountByStatus); err != nil {
		return GetInvoiceAnalyticsQueryResponse{}, err
	}
	for _, count := range resp.CountByStatus {
		resp.TotalInvoices += count
	}

	if err := h.countByColumn(ctx, "doc_type", resp.CountByType); err != nil {
		return GetInvoiceAnalyticsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN status = 'paid' THEN total_amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status IN ('draft', 'issued', 'overdue') THEN total_amount ELSE 0 END), 0)
		FROM invoices
	`).Rows()
	if err != nil {
		return GetInvoiceAnalyticsQueryResponse{}, err
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&resp.PaidAmount, &resp.PendingAmount); err != nil {
			return GetInvoiceAnalyticsQueryResponse{}, err
		}
	}
	if err = rows.Err(); err != nil {
		return GetInvoiceAnalyticsQueryResponse{}, err
	}

	return resp, nil
}

func (h GetInvoiceAnalyticsQueryHandler) countByColumn(ctx context.Context, column string, into map[string]int) error {
	// column is one of two fixed identifiers, never user input
	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT " + column + ", COUNT(*) FROM invoices GROUP BY " + column,
	).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err = rows.Scan(&key, &count); err != nil {
			return err
		}
		into[key] = count
	}

	return rows.Err()
}
