package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"veranera/config"
	"veranera/models"
	"veranera/services/booking"
	"veranera/services/retreat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the back-office surface: retreat CRUD, booking
// management and auth checks. Everything here sits behind the admin
// bearer-token middleware.
type AdminHandler struct {
	Retreats retreat.RetreatService
	Bookings booking.BookingService
	Logger   *zap.Logger
}

func NewAdminHandler(retreats retreat.RetreatService, bookings booking.BookingService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Retreats: retreats, Bookings: bookings, Logger: logger}
}

// AuthCheck verifies an admin password out-of-band so the dashboard can
// validate credentials before storing them.
func (h *AdminHandler) AuthCheck(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	secret := config.AppConfig.AdminAPIToken
	if secret == "" || subtle.ConstantTimeCompare([]byte(req.Password), []byte(secret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Bookings ---

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Bookings.GetAll(c.Request.Context())
	if err != nil {
		h.serviceError(c, err, "failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *AdminHandler) GetBooking(c *gin.Context) {
	b, err := h.Bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err, "failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingStatus applies a manual status change (e.g. cancelling a
// pending booking to release its inventory).
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	b, err := h.Bookings.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.serviceError(c, err, "failed to update booking status")
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateManualBooking records an offline sale (phone, bank transfer)
// without going through the payment provider.
func (h *AdminHandler) CreateManualBooking(c *gin.Context) {
	var req models.ManualBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	b, err := h.Bookings.CreateManual(c.Request.Context(), req)
	if err != nil {
		h.serviceError(c, err, "failed to create manual booking")
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	if err := h.Bookings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.serviceError(c, err, "failed to delete booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ResendBookingEmail re-enqueues the confirmation email for a booking.
func (h *AdminHandler) ResendBookingEmail(c *gin.Context) {
	if err := h.Bookings.ResendConfirmation(c.Request.Context(), c.Param("id")); err != nil {
		h.serviceError(c, err, "failed to resend confirmation email")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// serviceError maps booking service errors onto HTTP responses.
func (h *AdminHandler) serviceError(c *gin.Context, err error, logMsg string) {
	status := booking.HTTPStatus(err)
	var se *booking.Error
	if errors.As(err, &se) && status < http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": se.Message})
		return
	}
	h.Logger.Error(logMsg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// --- Retreats ---

func (h *AdminHandler) ListRetreats(c *gin.Context) {
	retreats, err := h.Retreats.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list retreats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, retreats)
}

func (h *AdminHandler) CreateRetreat(c *gin.Context) {
	var rt models.Retreat
	if err := c.ShouldBindJSON(&rt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.Retreats.Create(c.Request.Context(), &rt); err != nil {
		h.retreatError(c, err, "failed to create retreat")
		return
	}
	c.JSON(http.StatusCreated, rt)
}

func (h *AdminHandler) GetRetreat(c *gin.Context) {
	rt, err := h.Retreats.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.retreatError(c, err, "failed to fetch retreat")
		return
	}
	c.JSON(http.StatusOK, rt)
}

func (h *AdminHandler) UpdateRetreat(c *gin.Context) {
	var rt models.Retreat
	if err := c.ShouldBindJSON(&rt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.Retreats.Update(c.Request.Context(), c.Param("slug"), &rt)
	if err != nil {
		h.retreatError(c, err, "failed to update retreat")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteRetreat(c *gin.Context) {
	if err := h.Retreats.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		h.retreatError(c, err, "failed to delete retreat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PublishRetreat toggles a retreat's visibility on the public catalogue.
func (h *AdminHandler) PublishRetreat(c *gin.Context) {
	var req struct {
		Published bool `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.Retreats.SetPublished(c.Request.Context(), c.Param("slug"), req.Published); err != nil {
		h.retreatError(c, err, "failed to publish retreat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// retreatError maps catalogue sentinel errors onto HTTP responses.
func (h *AdminHandler) retreatError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, retreat.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Retreat not found"})
	case errors.Is(err, retreat.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, retreat.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.Logger.Error(logMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
