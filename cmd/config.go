package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	CourierAPIBaseURL   string
	InvoiceTaxRate      string
	InvoiceShippingCost string
	InvoiceDiscount     string
	OverdueSweepCron    string
	TrackingRefreshCron string
}
