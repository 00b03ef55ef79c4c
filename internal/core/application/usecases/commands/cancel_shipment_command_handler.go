package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/shipment"
	"shop/internal/core/domain/model/tracking"
	"shop/internal/core/ports"
)

// CancelShipmentCommandHandler cancels a shipment with the courier vendor
// and marks the local rows cancelled.
//
// The vendor shipment id is not unique-enforced locally, so after the
// vendor accepts the cancellation every row carrying that id is updated
// in bulk. A shipment whose creation never succeeded has no vendor id and
// is cancelled locally without a vendor call.
type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	courier    ports.CourierClient
	settings   ports.CourierSettingsProvider
}

// NewCancelShipmentCommandHandler creates a handler for shipment
// cancellation.
func NewCancelShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	courier ports.CourierClient,
	settings ports.CourierSettingsProvider,
) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		courier:    courier,
		settings:   settings,
	}
}

// Handle processes the cancellation command.
func (h *CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
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
	if s.VendorShipmentID() == "" {
		s.Cancel(now)
		if err = shipmentRepo.Update(ctx, s); err != nil {
			return err
		}
	} else {
		settings, settingsErr := h.settings.Load(ctx)
		if settingsErr != nil {
			return settingsErr
		}
		if err = settings.EnsureConfigured(); err != nil {
			return err
		}

		if err = h.courier.CancelShipment(ctx, settings, s.VendorShipmentID()); err != nil {
			return err
		}

		if err = shipmentRepo.CancelByVendorID(ctx, s.VendorShipmentID(), now); err != nil {
			return err
		}
	}

	event, err := tracking.NewEvent(
		s.OrderID(),
		shipment.StatusCancelled.String(),
		"shipment cancelled",
		"",
		tracking.SourceInternal,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.TrackingRepository().Append(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
