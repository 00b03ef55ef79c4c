package queries_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/shipmentrepo"
	"shop/internal/adapters/out/postgres/trackingrepo"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/shipment"
	"shop/internal/core/domain/model/tracking"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetShipmentsQueryHandlerTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	listHandler   queries.GetShipmentsQueryHandler
	detailHandler queries.GetShipmentByTrackingNumberQueryHandler
	shipmentRepo  *shipmentrepo.GormShipmentRepository
	trackingRepo  *trackingrepo.GormTrackingRepository
}

func (suite *GetShipmentsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &trackingrepo.EventDTO{})
	suite.Require().NoError(err)

	suite.listHandler = queries.NewGetShipmentsQueryHandler(db)
	suite.detailHandler = queries.NewGetShipmentByTrackingNumberQueryHandler(db)
	suite.shipmentRepo = shipmentrepo.NewGormShipmentRepository(db, &mockAggregateTracker{})
	suite.trackingRepo = trackingrepo.NewGormTrackingRepository(db)
}

func (suite *GetShipmentsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetShipmentsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, tracking_events").Error
	suite.Require().NoError(err)
}

func (suite *GetShipmentsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetShipmentsQuery("")

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetShipmentsQueryHandlerTestSuite) TestHandle_ListsLatestUpdateFirst() {
	now := time.Now()
	suite.seedShipment("TRK-OLD", shipment.StatusCreated, now.Add(-2*time.Hour))
	suite.seedShipment("TRK-MID", shipment.StatusInTransit, now.Add(-time.Hour))
	suite.seedShipment("TRK-NEW", shipment.StatusDelivered, now)

	query := queries.NewGetShipmentsQuery("")

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("TRK-NEW", result[0].TrackingNumber)
	suite.Equal("TRK-MID", result[1].TrackingNumber)
	suite.Equal("TRK-OLD", result[2].TrackingNumber)
}

func (suite *GetShipmentsQueryHandlerTestSuite) TestHandle_StatusFilter() {
	now := time.Now()
	suite.seedShipment("TRK-1", shipment.StatusInTransit, now)
	suite.seedShipment("TRK-2", shipment.StatusDelivered, now)
	suite.seedShipment("TRK-3", shipment.StatusInTransit, now)

	query := queries.NewGetShipmentsQuery("in_transit")

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, row := range result {
		suite.Equal("in_transit", row.Status)
	}
}

func (suite *GetShipmentsQueryHandlerTestSuite) TestHandle_UnknownStatusFilter_ReturnsEmptySlice() {
	suite.seedShipment("TRK-1", shipment.StatusInTransit, time.Now())

	query := queries.NewGetShipmentsQuery("teleporting")

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetShipmentsQueryHandlerTestSuite) TestDetailHandle_ReturnsShipmentWithHistory() {
	ctx := context.Background()

	seeded := suite.seedShipment("TRK-42", shipment.StatusInTransit, time.Now())

	events := []struct {
		status, message, location string
		source                    tracking.Source
	}{
		{"created", "shipment registered with courier", "", tracking.SourceInternal},
		{"in_transit", "departed sorting facility", "Utrecht", tracking.SourceVendor},
	}
	for _, e := range events {
		event, err := tracking.NewEvent(seeded.OrderID(), e.status, e.message, e.location, e.source, time.Now())
		suite.Require().NoError(err)
		suite.Require().NoError(suite.trackingRepo.Append(ctx, event))
	}

	query, err := queries.NewGetShipmentByTrackingNumberQuery("TRK-42")
	suite.Require().NoError(err)

	resp, err := suite.detailHandler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(seeded.ID(), resp.ID)
	suite.Equal(seeded.OrderID(), resp.OrderID)
	suite.Equal("TRK-42", resp.TrackingNumber)
	suite.Equal("in_transit", resp.Status)
	suite.True(seeded.Weight().Equal(resp.Weight))

	suite.Require().Len(resp.Events, 2)
	suite.Equal("created", resp.Events[0].Status)
	suite.Equal("internal", resp.Events[0].Source)
	suite.Equal("in_transit", resp.Events[1].Status)
	suite.Equal("Utrecht", resp.Events[1].Location)
}

func (suite *GetShipmentsQueryHandlerTestSuite) TestDetailHandle_NoEvents_ReturnsEmptyHistory() {
	suite.seedShipment("TRK-7", shipment.StatusCreated, time.Now())

	query, err := queries.NewGetShipmentByTrackingNumberQuery("TRK-7")
	suite.Require().NoError(err)

	resp, err := suite.detailHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(resp.Events)
	suite.Empty(resp.Events)
}

func (suite *GetShipmentsQueryHandlerTestSuite) TestDetailHandle_UnknownTrackingNumber_ReturnsNotFoundError() {
	query, err := queries.NewGetShipmentByTrackingNumberQuery("TRK-MISSING")
	suite.Require().NoError(err)

	_, err = suite.detailHandler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// seedShipment persists a shipment with the given status and update
// time.
func (suite *GetShipmentsQueryHandlerTestSuite) seedShipment(
	trackingNumber string, status shipment.Status, lastUpdate time.Time,
) *shipment.Shipment {
	seeded, err := shipment.RestoreShipment(
		kernel.NewUUID(), kernel.NewUUID(), "VND-1", trackingNumber,
		status, "", decimal.RequireFromString("1.750"), lastUpdate, nil, 0,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.shipmentRepo.Add(context.Background(), seeded))
	return seeded
}

func TestGetShipmentsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShipmentsQueryHandlerTestSuite))
}
