// Package shipmentrepo provides data transfer objects and mapping
// functions for shipment persistence. The unique index on the order
// reference enforces one shipment per order at the storage level.
package shipmentrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The vendor shipment id and tracking number are empty for
// rows that never completed registration with the courier.
type ShipmentDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	VendorShipmentID string          `gorm:"type:varchar(64);index"`
	TrackingNumber   string          `gorm:"type:varchar(64);index"`
	Status           string          `gorm:"type:varchar(32);not null;index"`
	LabelURL         string          `gorm:"type:varchar(512)"`
	Weight           decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	LastStatusUpdate time.Time       `gorm:"not null"`
	ErrorMessage     *string
	RetryCount       int `gorm:"not null"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database
// representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		VendorShipmentID: aggregate.VendorShipmentID(),
		TrackingNumber:   aggregate.TrackingNumber(),
		Status:           aggregate.Status().String(),
		LabelURL:         aggregate.LabelURL(),
		Weight:           aggregate.Weight(),
		LastStatusUpdate: aggregate.LastStatusUpdate(),
		ErrorMessage:     aggregate.ErrorMessage(),
		RetryCount:       aggregate.RetryCount(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id, orderID,
		dto.VendorShipmentID, dto.TrackingNumber,
		status,
		dto.LabelURL,
		dto.Weight,
		dto.LastStatusUpdate,
		dto.ErrorMessage,
		dto.RetryCount,
	)
}
