package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/shipment"
	"shop/internal/core/domain/model/tracking"
)

// ApplyTrackingUpdateCommandHandler applies one vendor tracking callback.
//
// Delivery is at-least-once and not deduplicated: a replayed callback
// produces a second ledger row and an idempotent status write. Callbacks
// carry no ordering guarantee either; the shipment row is last-write-wins
// while the ledger preserves the literal received order.
type ApplyTrackingUpdateCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewApplyTrackingUpdateCommandHandler creates a handler for vendor
// tracking callbacks. Requires a ShipmentUoWFactory for transactional
// persistence.
func NewApplyTrackingUpdateCommandHandler(uowFactory ShipmentUoWFactory) ApplyTrackingUpdateCommandHandler {
	return ApplyTrackingUpdateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one tracking callback.
// Maps the vendor status through the fixed dictionary, updates the
// shipment, appends the vendor event verbatim and cascades a delivered
// status onto the order.
func (h *ApplyTrackingUpdateCommandHandler) Handle(ctx context.Context, cmd ApplyTrackingUpdateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	occurredAt := cmd.OccurredAt()
	if occurredAt.IsZero() {
		occurredAt = now
	}

	mapped := shipment.MapVendorStatus(cmd.VendorStatus())
	if err = s.ApplyVendorStatus(mapped, now); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		s.OrderID(),
		mapped.String(),
		cmd.Message(),
		cmd.Location(),
		tracking.SourceVendor,
		occurredAt,
	)
	if err != nil {
		return err
	}

	if err = uow.TrackingRepository().Append(ctx, event); err != nil {
		return err
	}

	if mapped == shipment.StatusDelivered {
		if err = cascadeOrderDelivered(ctx, uow, s); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
