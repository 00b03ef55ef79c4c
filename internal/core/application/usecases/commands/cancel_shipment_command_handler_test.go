package commands_test

import (
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sourceOrder := newTestOrder(t)
	s := newTestShipment(t, sourceOrder.ID())
	cmd, _ := commands.NewCancelShipmentCommand(s.TrackingNumber())

	settings := new(MockSettingsProvider)
	settings.On("Load", mock.Anything).Return(enabledSettings(), nil).Once()

	courier := new(MockCourierClient)
	courier.On("CancelShipment", mock.Anything, enabledSettings(), s.VendorShipmentID()).Return(nil).Once()

	shipmentRepo := new(MockShipmentRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByTrackingNumber", mock.Anything, s.TrackingNumber()).Return(s, nil).Once(),
		shipmentRepo.On("CancelByVendorID", mock.Anything, s.VendorShipmentID(), mock.AnythingOfType("time.Time")).
			Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Append", mock.Anything, mock.AnythingOfType("tracking.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelShipmentCommandHandler(factory, courier, settings)
	require.NoError(t, h.Handle(ctx, cmd))
	courier.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelShipmentCommandHandler_Handle_VendorError(t *testing.T) {
	ctx := t.Context()
	sourceOrder := newTestOrder(t)
	s := newTestShipment(t, sourceOrder.ID())
	cmd, _ := commands.NewCancelShipmentCommand(s.TrackingNumber())

	settings := new(MockSettingsProvider)
	settings.On("Load", mock.Anything).Return(enabledSettings(), nil).Once()

	vendorErr := errs.NewExternalServiceErrorWithCause("courier", "cancel", errors.New("409"))
	courier := new(MockCourierClient)
	courier.On("CancelShipment", mock.Anything, enabledSettings(), s.VendorShipmentID()).
		Return(vendorErr).Once()

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("GetByTrackingNumber", mock.Anything, s.TrackingNumber()).Return(s, nil).Once()

	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelShipmentCommandHandler(factory, courier, settings)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrExternalService)
	shipmentRepo.AssertNotCalled(t, "CancelByVendorID", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelShipmentCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelShipmentCommand("TRK-MISSING")

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("GetByTrackingNumber", mock.Anything, "TRK-MISSING").
		Return(nil, errs.NewObjectNotFoundError("shipment", "TRK-MISSING")).Once()

	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelShipmentCommandHandler(factory, new(MockCourierClient), new(MockSettingsProvider))
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}
