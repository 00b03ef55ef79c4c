package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/invoice"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/shipment"
	"shop/internal/core/domain/model/tracking"
	"shop/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}
func (m *MockInvoiceRepository) GetByOrderID(_ context.Context, _ kernel.UUID) (*invoice.Invoice, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockInvoiceRepository) GetAllIssuedBefore(ctx context.Context, dueBefore time.Time) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, dueBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) CancelByVendorID(ctx context.Context, vendorShipmentID string, now time.Time) error {
	args := m.Called(ctx, vendorShipmentID, now)
	return args.Error(0)
}
func (m *MockShipmentRepository) GetAllUndelivered(_ context.Context) ([]*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Append(ctx context.Context, event tracking.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockTrackingRepository) ListByOrderID(_ context.Context, _ kernel.UUID) ([]tracking.Event, error) {
	return nil, errors.New("not implemented in mock")
}

type MockTemplateRepository struct{ mock.Mock }

func (m *MockTemplateRepository) GetActiveDefault(ctx context.Context, docType invoice.DocumentType) (*invoice.Template, error) {
	args := m.Called(ctx, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Template), args.Error(1)
}

type MockCourierClient struct{ mock.Mock }

func (m *MockCourierClient) CreateShipment(
	ctx context.Context, settings ports.CourierSettings, req ports.CreateShipmentRequest,
) (*ports.CreateShipmentResult, error) {
	args := m.Called(ctx, settings, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.CreateShipmentResult), args.Error(1)
}
func (m *MockCourierClient) TrackShipment(
	ctx context.Context, settings ports.CourierSettings, trackingNumber string,
) (*ports.TrackingInfo, error) {
	args := m.Called(ctx, settings, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.TrackingInfo), args.Error(1)
}
func (m *MockCourierClient) GetLabel(
	ctx context.Context, settings ports.CourierSettings, vendorShipmentID string,
) (string, error) {
	args := m.Called(ctx, settings, vendorShipmentID)
	return args.String(0), args.Error(1)
}
func (m *MockCourierClient) CalculateRate(
	ctx context.Context, settings ports.CourierSettings, fromCity, toCity string, weight, itemValue decimal.Decimal,
) (*ports.RateQuote, error) {
	args := m.Called(ctx, settings, fromCity, toCity, weight, itemValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.RateQuote), args.Error(1)
}
func (m *MockCourierClient) CancelShipment(
	ctx context.Context, settings ports.CourierSettings, vendorShipmentID string,
) error {
	args := m.Called(ctx, settings, vendorShipmentID)
	return args.Error(0)
}

type MockSettingsProvider struct{ mock.Mock }

func (m *MockSettingsProvider) Load(ctx context.Context) (ports.CourierSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.CourierSettings), args.Error(1)
}

type MockInvoiceUoW struct{ mock.Mock }

func (m *MockInvoiceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInvoiceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInvoiceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInvoiceUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockInvoiceUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockShipmentUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

func enabledSettings() ports.CourierSettings {
	return ports.CourierSettings{
		APIKey:        "key",
		APISecret:     "secret",
		HubID:         "hub-1",
		WebhookSecret: "whsec",
		EnableB2C:     true,
		EnableB2B:     true,
		IsEnabled:     true,
	}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Jane Smith", "jane@example.com", "+15550001", "")
	require.NoError(t, err)

	item, err := order.NewLineItem("Desk Lamp", "", 2, decimal.NewFromInt(1200))
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "SO-1001", customer,
		"12 Main St", "Springfield", "+15550002", "",
		"card", order.PaymentPending,
		[]order.LineItem{item},
	)
	require.NoError(t, err)
	return o
}

func newTestShipment(t *testing.T, orderID kernel.UUID) *shipment.Shipment {
	t.Helper()

	s, err := shipment.NewShipment(
		kernel.NewUUID(), orderID,
		"VND-42", "TRK-42",
		decimal.NewFromFloat(1.5), time.Now().UTC(),
	)
	require.NoError(t, err)
	return s
}
