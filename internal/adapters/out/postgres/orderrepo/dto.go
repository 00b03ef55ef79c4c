// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Orders are owned by the storefront; this
// repository reads them for invoicing and shipping and writes back only
// lifecycle changes.
package orderrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number               string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerName         string    `gorm:"type:varchar(255);not null"`
	CustomerEmail        string    `gorm:"type:varchar(255);not null"`
	CustomerPhone        string    `gorm:"type:varchar(64)"`
	CustomerOrganization string    `gorm:"type:varchar(255)"`
	ShippingAddress      string    `gorm:"type:varchar(512);not null"`
	ShippingCity         string    `gorm:"type:varchar(128)"`
	ShippingPhone        string    `gorm:"type:varchar(64)"`
	Notes                string
	PaymentMethod        string         `gorm:"type:varchar(32);not null"`
	PaymentStatus        string         `gorm:"type:varchar(32);not null"`
	Status               int            `gorm:"index"`
	Items                []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one ordered line with its price snapshot.
type OrderItemDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Description string
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     orderID,
			ProductName: item.ProductName(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	customer := aggregate.Customer()
	return OrderDTO{
		ID:                   orderID,
		Number:               aggregate.Number(),
		CustomerName:         customer.Name(),
		CustomerEmail:        customer.Email(),
		CustomerPhone:        customer.Phone(),
		CustomerOrganization: customer.Organization(),
		ShippingAddress:      aggregate.ShippingAddress(),
		ShippingCity:         aggregate.ShippingCity(),
		ShippingPhone:        aggregate.ShippingPhone(),
		Notes:                aggregate.Notes(),
		PaymentMethod:        aggregate.PaymentMethod(),
		PaymentStatus:        string(aggregate.PaymentStatus()),
		Status:               int(aggregate.Status()),
		Items:                items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone, dto.CustomerOrganization,
	)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(
			itemDTO.ProductName, itemDTO.Description, itemDTO.Quantity, itemDTO.UnitPrice,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, dto.Number, customer,
		dto.ShippingAddress, dto.ShippingCity, dto.ShippingPhone, dto.Notes,
		dto.PaymentMethod, paymentStatus,
		order.Status(dto.Status),
		items,
	)
}
