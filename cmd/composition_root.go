package cmd

import (
	"log/slog"
	"os"

	"shop/internal/adapters/in/http"
	"shop/internal/adapters/out/courier"
	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/invoicerepo"
	"shop/internal/adapters/out/postgres/settingsrepo"
	"shop/internal/adapters/out/render"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/invoice"
	"shop/internal/core/ports"
	"shop/internal/jobs"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	courierClient *courier.Client
	settings      ports.CourierSettingsProvider
	chargePolicy  invoice.ChargePolicy
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	courierClient, err := courier.NewClient(config.CourierAPIBaseURL)
	if err != nil {
		log.Fatalf("Invalid courier API base URL: %v", err)
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		courierClient: courierClient,
		settings:      settingsrepo.NewGormCourierSettingsProvider(gormDB),
		chargePolicy:  chargePolicyFromConfig(config),
		logger:        slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// chargePolicyFromConfig parses the pricing inputs. Empty values mean a
// zero rate, zero shipping and zero discount; a malformed value is a
// deployment error and stops startup.
func chargePolicyFromConfig(config Config) invoice.ChargePolicy {
	return invoice.ChargePolicy{
		TaxRate:      parseDecimal(config.InvoiceTaxRate, "INVOICE_TAX_RATE"),
		ShippingCost: parseDecimal(config.InvoiceShippingCost, "INVOICE_SHIPPING_COST"),
		Discount:     parseDecimal(config.InvoiceDiscount, "INVOICE_DISCOUNT"),
	}
}

func parseDecimal(value, name string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		log.Fatalf("Invalid %s: %v", name, err)
	}
	return parsed
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateGenerateInvoiceCommandHandler() commands.GenerateInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateInvoiceCommandHandler(
		f, invoicerepo.NewGormInvoiceTemplateRepository(c.gormDB), c.chargePolicy)
}

func (c *CompositionRoot) CreateUpdateInvoiceStatusCommandHandler() commands.UpdateInvoiceStatusCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateInvoiceStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOverdueInvoicesCommandHandler() commands.MarkOverdueInvoicesCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOverdueInvoicesCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(
		c.shipmentUoWFactory(), c.courierClient, c.settings)
}

func (c *CompositionRoot) CreateRetryShipmentCommandHandler() commands.RetryShipmentCommandHandler {
	return commands.NewRetryShipmentCommandHandler(
		c.shipmentUoWFactory(), c.courierClient, c.settings)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(
		c.shipmentUoWFactory(), c.courierClient, c.settings)
}

func (c *CompositionRoot) CreateRefreshShipmentCommandHandler() commands.RefreshShipmentCommandHandler {
	return commands.NewRefreshShipmentCommandHandler(
		c.shipmentUoWFactory(), c.courierClient, c.settings)
}

func (c *CompositionRoot) CreateApplyTrackingUpdateCommandHandler() commands.ApplyTrackingUpdateCommandHandler {
	return commands.NewApplyTrackingUpdateCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceAnalyticsQueryHandler() queries.GetInvoiceAnalyticsQueryHandler {
	return queries.NewGetInvoiceAnalyticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentByTrackingNumberQueryHandler() queries.GetShipmentByTrackingNumberQueryHandler {
	return queries.NewGetShipmentByTrackingNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	renderer, err := render.NewInvoiceHTMLRenderer()
	if err != nil {
		log.Fatalf("Invalid invoice template: %v", err)
	}

	return http.NewServer(
		c.CreateGenerateInvoiceCommandHandler(),
		c.CreateUpdateInvoiceStatusCommandHandler(),
		c.CreateCreateShipmentCommandHandler(),
		c.CreateRetryShipmentCommandHandler(),
		c.CreateCancelShipmentCommandHandler(),
		c.CreateRefreshShipmentCommandHandler(),
		c.CreateApplyTrackingUpdateCommandHandler(),
		c.CreateGetInvoiceQueryHandler(),
		c.CreateGetInvoiceAnalyticsQueryHandler(),
		c.CreateGetShipmentsQueryHandler(),
		c.CreateGetShipmentByTrackingNumberQueryHandler(),
		renderer,
		c.settings,
	)
}

func (c *CompositionRoot) CreateJobManager(schedules jobs.Schedules) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateMarkOverdueInvoicesCommandHandler(),
		c.CreateRefreshShipmentCommandHandler(),
		&c.uowFactory,
		schedules,
		c.logger,
	)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
