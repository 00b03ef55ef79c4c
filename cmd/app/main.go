package main

import (
	"fmt"
	"os"

	"shop/cmd"
	"shop/internal/adapters/out/postgres/invoicerepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/settingsrepo"
	"shop/internal/adapters/out/postgres/shipmentrepo"
	"shop/internal/adapters/out/postgres/trackingrepo"
	"shop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager(jobs.Schedules{
		OverdueInvoices: cronSpecOrDefault(configs.OverdueSweepCron, "0 0 * * * *"),
		TrackingRefresh: cronSpecOrDefault(configs.TrackingRefreshCron, "0 */10 * * * *"),
	})
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		CourierAPIBaseURL:   goDotEnvVariable("COURIER_API_BASE_URL"),
		InvoiceTaxRate:      goDotEnvVariable("INVOICE_TAX_RATE"),
		InvoiceShippingCost: goDotEnvVariable("INVOICE_SHIPPING_COST"),
		InvoiceDiscount:     goDotEnvVariable("INVOICE_DISCOUNT"),
		OverdueSweepCron:    goDotEnvVariable("OVERDUE_SWEEP_CRON"),
		TrackingRefreshCron: goDotEnvVariable("TRACKING_REFRESH_CRON"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustOpenDatabase opens the connection and migrates the schema.
// TranslateError turns driver unique-violations into gorm.ErrDuplicatedKey,
// which the repositories rely on for conflict detection.
func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.InvoiceItemDTO{},
		&invoicerepo.AuditLogDTO{},
		&invoicerepo.TemplateDTO{},
		&shipmentrepo.ShipmentDTO{},
		&trackingrepo.EventDTO{},
		&settingsrepo.CourierSettingsDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func cronSpecOrDefault(spec, fallback string) string {
	if spec == "" {
		return fallback
	}
	return spec
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
