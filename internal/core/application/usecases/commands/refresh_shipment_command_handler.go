package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/shipment"
	"shop/internal/core/domain/model/tracking"
	"shop/internal/core/ports"
)

// RefreshShipmentCommandHandler pulls the vendor's current view of a
// shipment and applies it locally, mirroring what a webhook delivery for
// the same status would do.
type RefreshShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	courier    ports.CourierClient
	settings   ports.CourierSettingsProvider
}

// NewRefreshShipmentCommandHandler creates a handler for tracking
// refreshes.
func NewRefreshShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	courier ports.CourierClient,
	settings ports.CourierSettingsProvider,
) RefreshShipmentCommandHandler {
	return RefreshShipmentCommandHandler{
		uowFactory: uowFactory,
		courier:    courier,
		settings:   settings,
	}
}

// Handle processes the refresh command.
// Queries the vendor, maps the reported status through the fixed
// dictionary and applies it last-write-wins. A delivered status cascades
// onto the order's lifecycle.
func (h *RefreshShipmentCommandHandler) Handle(ctx context.Context, cmd RefreshShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	settings, err := h.settings.Load(ctx)
	if err != nil {
		return err
	}
	if err = settings.EnsureConfigured(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	info, err := h.courier.TrackShipment(ctx, settings, s.TrackingNumber())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	mapped := shipment.MapVendorStatus(info.Status)
	if err = s.ApplyVendorStatus(mapped, now); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		s.OrderID(),
		mapped.String(),
		"status refreshed from courier",
		info.Location,
		tracking.SourceVendor,
		now,
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

// cascadeOrderDelivered moves the linked order to delivered. This is the
// one place the shipment side reaches across to the order lifecycle.
func cascadeOrderDelivered(ctx context.Context, uow ShipmentUoW, s *shipment.Shipment) error {
	orderRepo := uow.OrderRepository()
	deliveredOrder, err := orderRepo.Get(ctx, s.OrderID())
	if err != nil {
		return err
	}

	if err = deliveredOrder.MarkDelivered(); err != nil {
		return err
	}

	return orderRepo.Update(ctx, deliveredOrder)
}
