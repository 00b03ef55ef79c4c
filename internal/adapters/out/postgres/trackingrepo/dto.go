// Package trackingrepo persists the append-only tracking ledger. Rows
// are only ever inserted; duplicates from replayed courier callbacks are
// kept verbatim.
package trackingrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO represents one ledger row. The autoincrement id doubles as
// the received order within an order's history.
type EventDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(32);not null"`
	Message   string
	Location  string    `gorm:"type:varchar(255)"`
	Source    string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for tracking events.
func (EventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a ledger event to its database representation.
func fromDomain(event tracking.Event) EventDTO {
	return EventDTO{
		OrderID:   event.OrderID().Bytes(),
		Status:    event.Status(),
		Message:   event.Message(),
		Location:  event.Location(),
		Source:    string(event.Source()),
		CreatedAt: event.CreatedAt(),
	}
}

// toDomain converts a database DTO to a ledger event.
func toDomain(dto EventDTO) (tracking.Event, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return tracking.Event{}, err
	}

	return tracking.NewEvent(
		orderID,
		dto.Status,
		dto.Message,
		dto.Location,
		tracking.Source(dto.Source),
		dto.CreatedAt,
	)
}
