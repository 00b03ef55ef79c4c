package commands

import (
	"context"
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/shipment"
	"shop/internal/core/domain/model/tracking"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateShipmentCommandHandler registers an order's shipment with the
// courier vendor and persists the local shipment row.
//
// The vendor call and the local insert are not atomic: the vendor may
// accept a shipment whose local row then fails on the one-per-order
// uniqueness constraint. There is no reconciliation here; the conflict
// surfaces to the caller who resolves it against the vendor.
//
// A rejected vendor call records the failure on the order's existing
// shipment row when one exists. When none exists the order is left
// without a shipment and the caller must invoke creation again.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	courier    ports.CourierClient
	settings   ports.CourierSettingsProvider
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a ShipmentUoWFactory for transactional persistence, the courier
// client and the settings provider consulted on every call.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	courier ports.CourierClient,
	settings ports.CourierSettingsProvider,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		courier:    courier,
		settings:   settings,
	}
}

// Handle processes the shipment creation command.
// Loads fresh courier settings, checks the channel for the buyer kind,
// invokes the vendor and persists the shipment with its first ledger
// entry.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	sourceOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = settings.EnsureChannelEnabled(sourceOrder.Customer().IsOrganization()); err != nil {
		return err
	}

	now := time.Now().UTC()
	result, vendorErr := h.courier.CreateShipment(ctx, settings, buildCreateRequest(sourceOrder, cmd.Weight(), cmd.Pieces()))
	if vendorErr != nil {
		if err = h.recordFailure(ctx, uow, cmd.OrderID(), vendorErr.Error(), now); err != nil {
			return err
		}
		return vendorErr
	}

	newShipment, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.OrderID(),
		result.ShipmentID, result.TrackingNumber,
		cmd.Weight(), now,
	)
	if err != nil {
		return err
	}

	if result.LabelURL != "" {
		if err = newShipment.AttachLabel(result.LabelURL); err != nil {
			return err
		}
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		cmd.OrderID(),
		shipment.StatusCreated.String(),
		"shipment registered with courier",
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

// recordFailure marks the order's existing shipment row failed with the
// vendor's message. Without an existing row nothing is persisted and the
// original vendor error is all the caller sees.
func (h *CreateShipmentCommandHandler) recordFailure(
	ctx context.Context,
	uow ShipmentUoW,
	orderID kernel.UUID,
	message string,
	now time.Time,
) error {
	shipmentRepo := uow.ShipmentRepository()
	existing, err := shipmentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	existing.RecordFailure(message, now)
	if err = shipmentRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func buildCreateRequest(sourceOrder *order.Order, weight decimal.Decimal, pieces int) ports.CreateShipmentRequest {
	phone := sourceOrder.ShippingPhone()
	if phone == "" {
		phone = sourceOrder.Customer().Phone()
	}

	subtotal := sourceOrder.Subtotal()
	codAmount := decimal.Zero
	if sourceOrder.PaymentMethod() == "cod" && sourceOrder.PaymentStatus() != order.PaymentPaid {
		codAmount = subtotal
	}

	return ports.CreateShipmentRequest{
		RecipientName:  sourceOrder.Customer().Name(),
		RecipientPhone: phone,
		Address:        sourceOrder.ShippingAddress(),
		City:           sourceOrder.ShippingCity(),
		Pieces:         pieces,
		Weight:         weight,
		DeclaredValue:  subtotal,
		CODAmount:      codAmount,
		Reference:      sourceOrder.Number(),
	}
}
