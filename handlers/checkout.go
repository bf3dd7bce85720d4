package handlers

import (
	"errors"
	"net/http"

	"veranera/models"
	"veranera/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler serves the customer-facing checkout endpoint.
type CheckoutHandler struct {
	Service booking.CheckoutService
	Logger  *zap.Logger
}

func NewCheckoutHandler(service booking.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Service: service, Logger: logger}
}

// Checkout validates the cart, creates a pending booking and returns the
// hosted payment page URL.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body JSON inválido"})
		return
	}

	result, err := h.Service.Checkout(c.Request.Context(), req)
	if err != nil {
		status := booking.HTTPStatus(err)
		var se *booking.Error
		if errors.As(err, &se) && status < http.StatusInternalServerError {
			c.JSON(status, gin.H{"error": se.Message})
			return
		}
		h.Logger.Error("checkout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo iniciar el pago"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": result.URL})
}
