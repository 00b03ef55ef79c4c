package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/shipment"
	"shop/internal/core/domain/model/tracking"
	"shop/internal/core/ports"
)

// RetryShipmentCommandHandler re-invokes vendor creation for a failed
// shipment. The retry ceiling is a hard bound of three attempts; once it
// is reached the call is rejected without touching the shipment and a
// fourth attempt needs operator intervention outside this system.
type RetryShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	courier    ports.CourierClient
	settings   ports.CourierSettingsProvider
}

// NewRetryShipmentCommandHandler creates a handler for shipment retries.
func NewRetryShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	courier ports.CourierClient,
	settings ports.CourierSettingsProvider,
) RetryShipmentCommandHandler {
	return RetryShipmentCommandHandler{
		uowFactory: uowFactory,
		courier:    courier,
		settings:   settings,
	}
}

// Handle processes the retry command.
// Checks the retry bound, re-invokes the vendor and either completes the
// retry or records another failure. Both outcomes are persisted; only the
// rejected-at-the-bound call leaves the shipment untouched.
func (h *RetryShipmentCommandHandler) Handle(ctx context.Context, cmd RetryShipmentCommand) error {
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
	s, err := shipmentRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = s.EnsureRetryable(); err != nil {
		return err
	}

	sourceOrder, err := uow.OrderRepository().Get(ctx, s.OrderID())
	if err != nil {
		return err
	}

	if err = settings.EnsureChannelEnabled(sourceOrder.Customer().IsOrganization()); err != nil {
		return err
	}

	now := time.Now().UTC()
	result, vendorErr := h.courier.CreateShipment(ctx, settings, buildCreateRequest(sourceOrder, s.Weight(), 1))
	if vendorErr != nil {
		s.RecordFailure(vendorErr.Error(), now)
		if err = shipmentRepo.Update(ctx, s); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}
		return vendorErr
	}

	if err = s.CompleteRetry(result.ShipmentID, result.TrackingNumber, now); err != nil {
		return err
	}

	if result.LabelURL != "" {
		if err = s.AttachLabel(result.LabelURL); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		s.OrderID(),
		shipment.StatusCreated.String(),
		"shipment re-registered with courier",
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
