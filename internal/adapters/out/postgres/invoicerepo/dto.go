// Package invoicerepo provides data transfer objects and mapping
// functions for invoice persistence. The unique index on the order
// reference is the concurrency guard: two generation calls for the same
// order race to insert and the loser gets a conflict.
package invoicerepo

import (
	"time"

	"shop/internal/core/domain/model/invoice"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates.
type InvoiceDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Number               string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	DocType              string          `gorm:"type:varchar(16);not null"`
	Status               string          `gorm:"type:varchar(32);not null;index"`
	Subtotal             decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TaxRate              decimal.Decimal `gorm:"type:decimal(6,4);not null"`
	Tax                  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	ShippingCost         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Discount             decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TotalAmount          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PaymentMethod        string          `gorm:"type:varchar(32);not null"`
	PaymentStatus        string          `gorm:"type:varchar(32);not null"`
	CustomerName         string          `gorm:"type:varchar(255);not null"`
	CustomerEmail        string          `gorm:"type:varchar(255);not null"`
	CustomerPhone        string          `gorm:"type:varchar(64)"`
	CustomerAddress      string          `gorm:"type:varchar(512)"`
	CustomerOrganization string          `gorm:"type:varchar(255)"`
	IssuedAt             time.Time       `gorm:"not null"`
	DueDate              time.Time       `gorm:"not null;index"`
	PaidAt               *time.Time
	TermsConditions      string
	Items                []InvoiceItemDTO `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// InvoiceItemDTO represents one invoiced line with its price snapshot.
type InvoiceItemDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Description string
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName specifies the database table name for invoice line items.
func (InvoiceItemDTO) TableName() string {
	return "invoice_items"
}

// AuditLogDTO represents one append-only row of an invoice's audit
// trail. Rows are only ever inserted.
type AuditLogDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Action      string    `gorm:"type:varchar(32);not null"`
	Details     string
	PerformedBy string    `gorm:"type:varchar(128);not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for invoice audit entries.
func (AuditLogDTO) TableName() string {
	return "invoice_audit_logs"
}

// fromDomain converts an invoice domain aggregate to its database
// representation. Pending audit entries are mapped separately because
// they append to an existing trail instead of replacing it.
func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	invoiceID := aggregate.ID().Bytes()
	items := make([]InvoiceItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, InvoiceItemDTO{
			InvoiceID:   invoiceID,
			ProductName: item.ProductName(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Total:       item.Total(),
		})
	}

	customer := aggregate.Customer()
	return InvoiceDTO{
		ID:                   invoiceID,
		OrderID:              aggregate.OrderID().Bytes(),
		Number:               aggregate.Number(),
		DocType:              aggregate.Type().String(),
		Status:               aggregate.Status().String(),
		Subtotal:             aggregate.Subtotal(),
		TaxRate:              aggregate.TaxRate(),
		Tax:                  aggregate.Tax(),
		ShippingCost:         aggregate.ShippingCost(),
		Discount:             aggregate.Discount(),
		TotalAmount:          aggregate.TotalAmount(),
		PaymentMethod:        aggregate.PaymentMethod(),
		PaymentStatus:        aggregate.PaymentStatus().String(),
		CustomerName:         customer.Name(),
		CustomerEmail:        customer.Email(),
		CustomerPhone:        customer.Phone(),
		CustomerAddress:      customer.Address(),
		CustomerOrganization: customer.Organization(),
		IssuedAt:             aggregate.IssuedAt(),
		DueDate:              aggregate.DueDate(),
		PaidAt:               aggregate.PaidAt(),
		TermsConditions:      aggregate.TermsConditions(),
		Items:                items,
	}
}

// auditEntriesFromDomain maps the aggregate's pending audit entries to
// insertable rows.
func auditEntriesFromDomain(aggregate *invoice.Invoice) []AuditLogDTO {
	pending := aggregate.PendingAuditEntries()
	rows := make([]AuditLogDTO, 0, len(pending))
	for _, entry := range pending {
		rows = append(rows, AuditLogDTO{
			InvoiceID:   aggregate.ID().Bytes(),
			Action:      entry.Action(),
			Details:     entry.Details(),
			PerformedBy: entry.PerformedBy(),
			CreatedAt:   entry.CreatedAt(),
		})
	}
	return rows
}

// toDomain converts a database DTO to an invoice domain aggregate using
// RestoreInvoice.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	docType, err := invoice.ParseDocumentType(dto.DocType)
	if err != nil {
		return nil, err
	}

	status, err := invoice.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]invoice.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		items = append(items, invoice.RestoreLineItem(
			itemDTO.ProductName, itemDTO.Description, itemDTO.Quantity,
			itemDTO.UnitPrice, itemDTO.Total,
		))
	}

	customer := invoice.RestoreCustomerSnapshot(
		dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone,
		dto.CustomerAddress, dto.CustomerOrganization,
	)

	return invoice.RestoreInvoice(
		id, orderID,
		dto.Number,
		docType,
		status,
		dto.Subtotal, dto.Tax, dto.TaxRate, dto.Discount, dto.ShippingCost, dto.TotalAmount,
		dto.PaymentMethod,
		paymentStatus,
		dto.IssuedAt, dto.DueDate,
		dto.PaidAt,
		customer,
		dto.TermsConditions,
		items,
	)
}
