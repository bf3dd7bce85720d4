package handlers

import (
	"encoding/json"
	"net/http"

	"veranera/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// StripeWebhookHandler consumes asynchronous payment events from Stripe.
// Delivery is at-least-once and unauthenticated, so the signature is
// verified over the raw body before anything is parsed.
type StripeWebhookHandler struct {
	Payments      booking.PaymentService
	WebhookSecret string
	Logger        *zap.Logger
}

func NewStripeWebhookHandler(payments booking.PaymentService, secret string, logger *zap.Logger) *StripeWebhookHandler {
	return &StripeWebhookHandler{Payments: payments, WebhookSecret: secret, Logger: logger}
}

// HandleEvent verifies and dispatches one webhook delivery. Once the
// signature and metadata check out, the response is always 200: the
// provider must not keep retrying conditions that are already handled or
// that retries cannot fix.
func (h *StripeWebhookHandler) HandleEvent(c *gin.Context) {
	if h.WebhookSecret == "" {
		h.Logger.Error("stripe webhook: secret not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing signature"})
		return
	}

	event, err := webhook.ConstructEvent(payload, signature, h.WebhookSecret)
	if err != nil {
		h.Logger.Warn("stripe webhook: signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	if event.Type == "checkout.session.completed" {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			h.Logger.Error("stripe webhook: failed to parse session object", zap.Error(err))
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		bookingID := session.Metadata["bookingId"]
		if bookingID == "" {
			// Acknowledged so Stripe stops retrying, but surfaced for
			// operator follow-up: this event can never be matched.
			h.Logger.Error("stripe webhook: completed session missing bookingId metadata",
				zap.String("sessionID", session.ID))
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		if err := h.Payments.ConfirmSessionCompleted(c.Request.Context(), bookingID); err != nil {
			h.Logger.Error("stripe webhook: failed to confirm booking",
				zap.String("bookingID", bookingID),
				zap.String("sessionID", session.ID),
				zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
