// Package http exposes the order-to-cash core over REST. Handlers stay
// thin: bind and validate the request, build a guarded command or query,
// dispatch, translate the error taxonomy to a status code.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/invoice"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// InvoiceRenderer produces the printable representation of an invoice
// read model. Branding and layout belong to an external collaborator.
type InvoiceRenderer interface {
	RenderHTML(inv queries.GetInvoiceQueryResponse) (string, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	generateInvoiceHandler     commands.GenerateInvoiceCommandHandler
	updateInvoiceStatusHandler commands.UpdateInvoiceStatusCommandHandler
	createShipmentHandler      commands.CreateShipmentCommandHandler
	retryShipmentHandler       commands.RetryShipmentCommandHandler
	cancelShipmentHandler      commands.CancelShipmentCommandHandler
	refreshShipmentHandler     commands.RefreshShipmentCommandHandler
	applyTrackingHandler       commands.ApplyTrackingUpdateCommandHandler

	// Query handlers
	getInvoiceHandler          queries.GetInvoiceQueryHandler
	getInvoiceAnalyticsHandler queries.GetInvoiceAnalyticsQueryHandler
	getShipmentsHandler        queries.GetShipmentsQueryHandler
	getShipmentDetailHandler   queries.GetShipmentByTrackingNumberQueryHandler

	renderer InvoiceRenderer
	settings ports.CourierSettingsProvider
}

// NewServer creates an HTTP server with the required command and query
// handlers. The settings provider supplies the webhook secret per
// delivery.
func NewServer(
	generateInvoiceHandler commands.GenerateInvoiceCommandHandler,
	updateInvoiceStatusHandler commands.UpdateInvoiceStatusCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	retryShipmentHandler commands.RetryShipmentCommandHandler,
	cancelShipmentHandler commands.CancelShipmentCommandHandler,
	refreshShipmentHandler commands.RefreshShipmentCommandHandler,
	applyTrackingHandler commands.ApplyTrackingUpdateCommandHandler,
	getInvoiceHandler queries.GetInvoiceQueryHandler,
	getInvoiceAnalyticsHandler queries.GetInvoiceAnalyticsQueryHandler,
	getShipmentsHandler queries.GetShipmentsQueryHandler,
	getShipmentDetailHandler queries.GetShipmentByTrackingNumberQueryHandler,
	renderer InvoiceRenderer,
	settings ports.CourierSettingsProvider,
) *Server {
	return &Server{
		generateInvoiceHandler:     generateInvoiceHandler,
		updateInvoiceStatusHandler: updateInvoiceStatusHandler,
		createShipmentHandler:      createShipmentHandler,
		retryShipmentHandler:       retryShipmentHandler,
		cancelShipmentHandler:      cancelShipmentHandler,
		refreshShipmentHandler:     refreshShipmentHandler,
		applyTrackingHandler:       applyTrackingHandler,
		getInvoiceHandler:          getInvoiceHandler,
		getInvoiceAnalyticsHandler: getInvoiceAnalyticsHandler,
		getShipmentsHandler:        getShipmentsHandler,
		getShipmentDetailHandler:   getShipmentDetailHandler,
		renderer:                   renderer,
		settings:                   settings,
	}
}

// RegisterRoutes mounts the API under /api/v1 and the vendor-facing
// webhook at the root.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}

	api := e.Group("/api/v1")
	api.POST("/invoices", s.CreateInvoice)
	api.PUT("/invoices/:id", s.UpdateInvoiceStatus)
	api.GET("/invoices/analytics", s.GetInvoiceAnalytics)
	api.GET("/invoices/:id", s.GetInvoice)
	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.GetShipments)
	api.GET("/shipments/:trackingNumber", s.GetShipment)
	api.POST("/shipments/:trackingNumber", s.DispatchShipmentAction)

	e.POST("/webhooks/courier", s.ReceiveCourierWebhook)
	e.GET("/health", s.Health)
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// statusFor translates the application error taxonomy to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrRetryExhausted):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrExternalService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateInvoiceRequest is the body of POST /api/v1/invoices.
type CreateInvoiceRequest struct {
	OrderID string `json:"orderId" validate:"required,uuid"`
}

// CreateInvoiceResponse identifies the generated invoice.
type CreateInvoiceResponse struct {
	InvoiceID     string `json:"invoiceId"`
	InvoiceNumber string `json:"invoiceNumber"`
}

// CreateInvoice handles POST /api/v1/invoices. Generating twice for the
// same order is a client error per the invoice contract, so conflicts
// return 400 rather than 409 here.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var req CreateInvoiceRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "orderId must be a UUID")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "orderId must be a UUID")
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewGenerateInvoiceCommand(invoiceID, orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.generateInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "order not found")
		}
		if errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrValueIsInvalid) {
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		}
		return errorJSON(ctx, http.StatusInternalServerError, "failed to generate invoice")
	}

	query, err := queries.NewGetInvoiceQuery(invoiceID)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to load generated invoice")
	}
	generated, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to load generated invoice")
	}

	return ctx.JSON(http.StatusCreated, CreateInvoiceResponse{
		InvoiceID:     generated.ID.String(),
		InvoiceNumber: generated.Number,
	})
}

// UpdateInvoiceStatusRequest is the body of PUT /api/v1/invoices/{id}.
// Status tokens arrive uppercase from callers and are matched
// case-insensitively.
type UpdateInvoiceStatusRequest struct {
	Status      string `json:"status" validate:"required"`
	PerformedBy string `json:"performedBy"`
}

// UpdateInvoiceStatus handles PUT /api/v1/invoices/{id}.
func (s *Server) UpdateInvoiceStatus(ctx echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invoice id must be a UUID")
	}

	var req UpdateInvoiceStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "status is required")
	}

	status, err := invoice.ParseStatus(strings.ToLower(req.Status))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "unknown invoice status: "+req.Status)
	}

	cmd, err := commands.NewUpdateInvoiceStatusCommand(invoiceID, status, req.PerformedBy)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.updateInvoiceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, statusFor(err), err.Error())
	}

	query, err := queries.NewGetInvoiceQuery(invoiceID)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to load invoice")
	}
	updated, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, statusFor(err), "failed to load invoice")
	}

	return ctx.JSON(http.StatusOK, invoiceFromReadModel(updated))
}

// GetInvoice handles GET /api/v1/invoices/{id}. With ?format=html the
// printable document is returned instead of the structured invoice.
func (s *Server) GetInvoice(ctx echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invoice id must be a UUID")
	}

	query, err := queries.NewGetInvoiceQuery(invoiceID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	inv, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, statusFor(err), err.Error())
	}

	if ctx.QueryParam("format") == "html" {
		html, renderErr := s.renderer.RenderHTML(inv)
		if renderErr != nil {
			return errorJSON(ctx, http.StatusInternalServerError, "failed to render invoice")
		}
		return ctx.HTML(http.StatusOK, html)
	}

	return ctx.JSON(http.StatusOK, invoiceFromReadModel(inv))
}

// GetInvoiceAnalytics handles GET /api/v1/invoices/analytics.
func (s *Server) GetInvoiceAnalytics(ctx echo.Context) error {
	result, err := s.getInvoiceAnalyticsHandler.Handle(
		ctx.Request().Context(), queries.NewGetInvoiceAnalyticsQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to compute analytics")
	}

	return ctx.JSON(http.StatusOK, InvoiceAnalytics{
		TotalInvoices: result.TotalInvoices,
		CountByStatus: result.CountByStatus,
		CountByType:   result.CountByType,
		PaidAmount:    result.PaidAmount,
		PendingAmount: result.PendingAmount,
	})
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	OrderID string          `json:"orderId" validate:"required,uuid"`
	Weight  decimal.Decimal `json:"weight" validate:"required"`
	Pieces  int             `json:"pieces" validate:"required,min=1"`
}

// CreateShipmentResponse identifies the registered shipment.
type CreateShipmentResponse struct {
	ShipmentID string `json:"shipmentId"`
	OrderID    string `json:"orderId"`
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "orderId, positive weight and pieces are required")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "orderId must be a UUID")
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, orderID, req.Weight, req.Pieces)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, statusFor(err), err.Error())
	}

	return ctx.JSON(http.StatusCreated, CreateShipmentResponse{
		ShipmentID: shipmentID.String(),
		OrderID:    orderID.String(),
	})
}

// GetShipments handles GET /api/v1/shipments with an optional ?status
// filter.
func (s *Server) GetShipments(ctx echo.Context) error {
	query := queries.NewGetShipmentsQuery(ctx.QueryParam("status"))

	rows, err := s.getShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "failed to list shipments")
	}

	response := make([]Shipment, 0, len(rows))
	for _, row := range rows {
		response = append(response, shipmentFromReadModel(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/{trackingNumber}.
func (s *Server) GetShipment(ctx echo.Context) error {
	query, err := queries.NewGetShipmentByTrackingNumberQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	detail, err := s.getShipmentDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, statusFor(err), err.Error())
	}

	response := ShipmentDetail{Shipment: shipmentFromReadModel(detail.GetShipmentsQueryResponse)}
	for _, event := range detail.Events {
		response.Events = append(response.Events, TrackingEvent{
			Status:    event.Status,
			Message:   event.Message,
			Location:  event.Location,
			Source:    event.Source,
			CreatedAt: event.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ShipmentActionRequest is the body of POST /api/v1/shipments/{trackingNumber}.
type ShipmentActionRequest struct {
	Action string `json:"action" validate:"required,oneof=retry cancel refresh"`
}

// DispatchShipmentAction handles POST /api/v1/shipments/{trackingNumber},
// dispatching the requested courier action.
func (s *Server) DispatchShipmentAction(ctx echo.Context) error {
	trackingNumber := ctx.Param("trackingNumber")

	var req ShipmentActionRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "action must be retry, cancel or refresh")
	}

	var err error
	switch req.Action {
	case "retry":
		err = s.retryShipment(ctx, trackingNumber)
	case "cancel":
		err = s.cancelShipment(ctx, trackingNumber)
	case "refresh":
		err = s.refreshShipment(ctx, trackingNumber)
	}
	if err != nil {
		return errorJSON(ctx, statusFor(err), err.Error())
	}

	return ctx.JSON(http.StatusOK, map[string]string{"action": req.Action, "result": "ok"})
}

// retryShipment resolves the owning order first: failed registrations
// are keyed by order, and a retry may replace the tracking number.
func (s *Server) retryShipment(ctx echo.Context, trackingNumber string) error {
	query, err := queries.NewGetShipmentByTrackingNumberQuery(trackingNumber)
	if err != nil {
		return err
	}
	detail, err := s.getShipmentDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRetryShipmentCommand(detail.OrderID)
	if err != nil {
		return err
	}
	return s.retryShipmentHandler.Handle(ctx.Request().Context(), cmd)
}

func (s *Server) cancelShipment(ctx echo.Context, trackingNumber string) error {
	cmd, err := commands.NewCancelShipmentCommand(trackingNumber)
	if err != nil {
		return err
	}
	return s.cancelShipmentHandler.Handle(ctx.Request().Context(), cmd)
}

func (s *Server) refreshShipment(ctx echo.Context, trackingNumber string) error {
	cmd, err := commands.NewRefreshShipmentCommand(trackingNumber)
	if err != nil {
		return err
	}
	return s.refreshShipmentHandler.Handle(ctx.Request().Context(), cmd)
}

// Invoice is the structured invoice returned to API callers.
type Invoice struct {
	ID                   string          `json:"id"`
	OrderID              string          `json:"orderId"`
	Number               string          `json:"number"`
	Type                 string          `json:"type"`
	Status               string          `json:"status"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	TaxRate              decimal.Decimal `json:"taxRate"`
	Tax                  decimal.Decimal `json:"tax"`
	ShippingCost         decimal.Decimal `json:"shippingCost"`
	Discount             decimal.Decimal `json:"discount"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	PaymentMethod        string          `json:"paymentMethod"`
	PaymentStatus        string          `json:"paymentStatus"`
	CustomerName         string          `json:"customerName"`
	CustomerEmail        string          `json:"customerEmail"`
	CustomerPhone        string          `json:"customerPhone,omitempty"`
	CustomerAddress      string          `json:"customerAddress"`
	CustomerOrganization string          `json:"customerOrganization,omitempty"`
	IssuedAt             time.Time       `json:"issuedAt"`
	DueDate              time.Time       `json:"dueDate"`
	PaidAt               *time.Time      `json:"paidAt"`
	TermsConditions      string          `json:"termsConditions"`
	Items                []InvoiceItem   `json:"items"`
	AuditLog             []AuditEntry    `json:"auditLog"`
}

// InvoiceItem is one invoiced line.
type InvoiceItem struct {
	ProductName string          `json:"productName"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// AuditEntry is one row of the invoice audit trail.
type AuditEntry struct {
	Action      string    `json:"action"`
	Details     string    `json:"details"`
	PerformedBy string    `json:"performedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InvoiceAnalytics carries the aggregate invoice counts and sums.
type InvoiceAnalytics struct {
	TotalInvoices int             `json:"totalInvoices"`
	CountByStatus map[string]int  `json:"countByStatus"`
	CountByType   map[string]int  `json:"countByType"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
}

// Shipment is one shipment row returned to API callers.
type Shipment struct {
	ID               string          `json:"id"`
	OrderID          string          `json:"orderId"`
	VendorShipmentID string          `json:"vendorShipmentId,omitempty"`
	TrackingNumber   string          `json:"trackingNumber,omitempty"`
	Status           string          `json:"status"`
	LabelURL         string          `json:"labelUrl,omitempty"`
	Weight           decimal.Decimal `json:"weight"`
	LastStatusUpdate time.Time       `json:"lastStatusUpdate"`
	ErrorMessage     *string         `json:"errorMessage,omitempty"`
	RetryCount       int             `json:"retryCount"`
}

// TrackingEvent is one ledger event of the shipment's order.
type TrackingEvent struct {
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	Location  string    `json:"location,omitempty"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShipmentDetail is the shipment plus its order's tracking history.
type ShipmentDetail struct {
	Shipment

	Events []TrackingEvent `json:"events"`
}

func invoiceFromReadModel(inv queries.GetInvoiceQueryResponse) Invoice {
	items := make([]InvoiceItem, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, InvoiceItem{
			ProductName: item.ProductName,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	audit := make([]AuditEntry, 0, len(inv.AuditLog))
	for _, entry := range inv.AuditLog {
		audit = append(audit, AuditEntry{
			Action:      entry.Action,
			Details:     entry.Details,
			PerformedBy: entry.PerformedBy,
			CreatedAt:   entry.CreatedAt,
		})
	}

	return Invoice{
		ID:                   inv.ID.String(),
		OrderID:              inv.OrderID.String(),
		Number:               inv.Number,
		Type:                 inv.Type,
		Status:               inv.Status,
		Subtotal:             inv.Subtotal,
		TaxRate:              inv.TaxRate,
		Tax:                  inv.Tax,
		ShippingCost:         inv.ShippingCost,
		Discount:             inv.Discount,
		TotalAmount:          inv.TotalAmount,
		PaymentMethod:        inv.PaymentMethod,
		PaymentStatus:        inv.PaymentStatus,
		CustomerName:         inv.CustomerName,
		CustomerEmail:        inv.CustomerEmail,
		CustomerPhone:        inv.CustomerPhone,
		CustomerAddress:      inv.CustomerAddress,
		CustomerOrganization: inv.CustomerOrganization,
		IssuedAt:             inv.IssuedAt,
		DueDate:              inv.DueDate,
		PaidAt:               inv.PaidAt,
		TermsConditions:      inv.TermsConditions,
		Items:                items,
		AuditLog:             audit,
	}
}

func shipmentFromReadModel(row queries.GetShipmentsQueryResponse) Shipment {
	return Shipment{
		ID:               row.ID.String(),
		OrderID:          row.OrderID.String(),
		VendorShipmentID: row.VendorShipmentID,
		TrackingNumber:   row.TrackingNumber,
		Status:           row.Status,
		LabelURL:         row.LabelURL,
		Weight:           row.Weight,
		LastStatusUpdate: row.LastStatusUpdate,
		ErrorMessage:     row.ErrorMessage,
		RetryCount:       row.RetryCount,
	}
}
