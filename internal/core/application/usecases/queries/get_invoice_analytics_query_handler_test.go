package queries_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/invoicerepo"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/invoice"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetInvoiceAnalyticsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetInvoiceAnalyticsQueryHandler
	repo      *invoicerepo.GormInvoiceRepository
}

func (suite *GetInvoiceAnalyticsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.InvoiceItemDTO{},
		&invoicerepo.AuditLogDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetInvoiceAnalyticsQueryHandler(db)
	suite.repo = invoicerepo.NewGormInvoiceRepository(db, &mockAggregateTracker{})
}

func (suite *GetInvoiceAnalyticsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetInvoiceAnalyticsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE invoices, invoice_items, invoice_audit_logs CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetInvoiceAnalyticsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsZeroes() {
	query := queries.NewGetInvoiceAnalyticsQuery()

	resp, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Zero(resp.TotalInvoices)
	suite.Empty(resp.CountByStatus)
	suite.Empty(resp.CountByType)
	suite.True(resp.PaidAmount.IsZero())
	suite.True(resp.PendingAmount.IsZero())
}

func (suite *GetInvoiceAnalyticsQueryHandlerTestSuite) TestHandle_AggregatesCountsAndAmounts() {
	ctx := context.Background()

	// Each invoice totals 115.00: 100.00 subtotal, 10% tax, 5.00 shipping.
	suite.seedInvoice(order.PaymentPaid, "")
	suite.seedInvoice(order.PaymentPending, "")
	overdue := suite.seedInvoice(order.PaymentPending, "Acme GmbH")

	restored, err := suite.repo.Get(ctx, overdue.ID())
	suite.Require().NoError(err)
	err = restored.UpdateStatus(invoice.StatusOverdue, "system", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Update(ctx, restored))

	query := queries.NewGetInvoiceAnalyticsQuery()

	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(3, resp.TotalInvoices)
	suite.Equal(1, resp.CountByStatus["paid"])
	suite.Equal(1, resp.CountByStatus["issued"])
	suite.Equal(1, resp.CountByStatus["overdue"])
	suite.Equal(2, resp.CountByType["b2c"])
	suite.Equal(1, resp.CountByType["b2b"])

	suite.True(resp.PaidAmount.Equal(decimal.RequireFromString("115.00")),
		"paid amount should be 115.00, got %s", resp.PaidAmount)
	suite.True(resp.PendingAmount.Equal(decimal.RequireFromString("230.00")),
		"pending amount should cover issued and overdue, got %s", resp.PendingAmount)
}

func (suite *GetInvoiceAnalyticsQueryHandlerTestSuite) TestHandle_CancelledExcludedFromAmounts() {
	ctx := context.Background()

	cancelled := suite.seedInvoice(order.PaymentPending, "")
	restored, err := suite.repo.Get(ctx, cancelled.ID())
	suite.Require().NoError(err)
	err = restored.UpdateStatus(invoice.StatusCancelled, "support", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Update(ctx, restored))

	query := queries.NewGetInvoiceAnalyticsQuery()

	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(1, resp.TotalInvoices)
	suite.Equal(1, resp.CountByStatus["cancelled"])
	suite.True(resp.PaidAmount.IsZero())
	suite.True(resp.PendingAmount.IsZero())
}

func (suite *GetInvoiceAnalyticsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetInvoiceAnalyticsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetInvoiceAnalyticsQuery constructor")
}

func (suite *GetInvoiceAnalyticsQueryHandlerTestSuite) seedInvoice(
	payment order.PaymentStatus, organization string,
) *invoice.Invoice {
	customer, err := order.NewCustomer("Dana Fox", "dana@example.com", "", organization)
	suite.Require().NoError(err)

	item, err := order.NewLineItem("Monitor Arm", "", 1, decimal.RequireFromString("100.00"))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "ORD-4001", customer,
		"9 Elm St", "Austin", "", "",
		"card", payment,
		[]order.LineItem{item},
	)
	suite.Require().NoError(err)

	policy := invoice.ChargePolicy{
		TaxRate:      decimal.RequireFromString("0.10"),
		ShippingCost: decimal.RequireFromString("5.00"),
		Discount:     decimal.Zero,
	}

	inv, err := invoice.GenerateFromOrder(kernel.NewUUID(), testOrder, policy, invoice.DefaultTerms, time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Add(context.Background(), inv))
	return inv
}

func TestGetInvoiceAnalyticsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetInvoiceAnalyticsQueryHandlerTestSuite))
}
