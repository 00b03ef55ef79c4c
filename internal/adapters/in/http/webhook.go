package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"shop/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// SignatureHeader carries the vendor's HMAC-SHA256 hex digest of the raw
// request body.
const SignatureHeader = "X-Courier-Signature"

// courierWebhookPayload is the vendor callback body. The timestamp is
// kept as a string: vendors have sent empty and non-RFC3339 values, and
// an unusable timestamp must not reject the delivery.
type courierWebhookPayload struct {
	ShipmentID     string `json:"shipment_id"`
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
	Location       string `json:"location"`
	Message        string `json:"message"`
	Timestamp      string `json:"timestamp"`
}

// ReceiveCourierWebhook handles POST /webhooks/courier. Deliveries are
// at-least-once and not deduplicated; replays append duplicate ledger
// rows by design. Responses carry status codes only: this endpoint is
// unauthenticated beyond the signature and must not leak configuration
// state. A 5xx tells the vendor to redeliver per its own retry policy.
func (s *Server) ReceiveCourierWebhook(ctx echo.Context) error {
	raw, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.NoContent(http.StatusBadRequest)
	}

	settings, err := s.settings.Load(ctx.Request().Context())
	if err != nil {
		return ctx.NoContent(http.StatusInternalServerError)
	}

	if settings.WebhookSecret != "" {
		if !signatureValid(raw, ctx.Request().Header.Get(SignatureHeader), settings.WebhookSecret) {
			return ctx.NoContent(http.StatusUnauthorized)
		}
	}

	var payload courierWebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ctx.NoContent(http.StatusBadRequest)
	}
	if payload.TrackingNumber == "" || payload.Status == "" {
		return ctx.NoContent(http.StatusBadRequest)
	}

	var occurredAt time.Time
	if parsed, parseErr := time.Parse(time.RFC3339, payload.Timestamp); parseErr == nil {
		occurredAt = parsed
	}

	cmd, err := commands.NewApplyTrackingUpdateCommand(
		payload.TrackingNumber, payload.Status, payload.Message, payload.Location, occurredAt)
	if err != nil {
		return ctx.NoContent(http.StatusBadRequest)
	}

	// An unknown tracking number is a 500 like any other processing
	// failure: the vendor call and the local insert are not atomic, so a
	// delivery can race a shipment row that is still on its way. A 5xx
	// keeps the vendor redelivering until the row catches up; a 404
	// would drop the event for good.
	if err := s.applyTrackingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.NoContent(http.StatusInternalServerError)
	}

	return ctx.NoContent(http.StatusOK)
}

// signatureValid compares the vendor signature against the HMAC-SHA256
// of the exact raw body in constant time.
func signatureValid(body []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
