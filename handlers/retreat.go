package handlers

import (
	"errors"
	"net/http"

	"veranera/services/booking"
	"veranera/services/retreat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RetreatHandler serves the public retreat catalogue and availability.
type RetreatHandler struct {
	Retreats  retreat.RetreatService
	Inventory booking.InventoryService
	Bookings  booking.BookingService
	Logger    *zap.Logger
}

func NewRetreatHandler(retreats retreat.RetreatService, inventory booking.InventoryService, bookings booking.BookingService, logger *zap.Logger) *RetreatHandler {
	return &RetreatHandler{Retreats: retreats, Inventory: inventory, Bookings: bookings, Logger: logger}
}

// ListRetreats returns the published catalogue.
func (h *RetreatHandler) ListRetreats(c *gin.Context) {
	retreats, err := h.Retreats.GetPublished(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list retreats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching retreats"})
		return
	}
	c.JSON(http.StatusOK, retreats)
}

// GetRetreat returns one published retreat by slug.
func (h *RetreatHandler) GetRetreat(c *gin.Context) {
	slug := c.Param("slug")
	rt, err := h.Retreats.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, retreat.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Retreat not found"})
			return
		}
		h.Logger.Error("failed to fetch retreat", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching retreat"})
		return
	}
	if !rt.Published {
		c.JSON(http.StatusNotFound, gin.H{"error": "Retreat not found"})
		return
	}
	c.JSON(http.StatusOK, rt)
}

// RetreatAvailability returns the retreat's room types with remaining
// units. Always computed, never cached.
func (h *RetreatHandler) RetreatAvailability(c *gin.Context) {
	slug := c.Param("slug")
	roomTypes, err := h.Inventory.AvailabilityForRetreat(c.Request.Context(), slug)
	if err != nil {
		h.availabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, roomTypes)
}

// RoomTypeAvailability returns remaining units for one room type.
func (h *RetreatHandler) RoomTypeAvailability(c *gin.Context) {
	id := c.Param("id")
	available, err := h.Inventory.Available(c.Request.Context(), id)
	if err != nil {
		h.availabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

func (h *RetreatHandler) availabilityError(c *gin.Context, err error) {
	if booking.IsCode(err, booking.CodeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
		return
	}
	h.Logger.Error("failed to compute availability", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching availability"})
}

// GetBookingBySession returns a booking by its payment session id, for
// the post-payment thank-you page. Only non-sensitive fields are exposed.
func (h *RetreatHandler) GetBookingBySession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	b, err := h.Bookings.GetByStripeSessionID(c.Request.Context(), sessionID)
	if err != nil {
		if booking.IsCode(err, booking.CodeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		h.Logger.Error("failed to fetch booking by session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            b.ID,
		"status":        b.Status,
		"customerEmail": b.CustomerEmail,
		"customerName":  b.CustomerName,
	})
}
