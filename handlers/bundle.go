package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single argument.
type HandlerBundle struct {
	// Public catalogue and availability.
	ListRetreatsHandler         gin.HandlerFunc
	GetRetreatHandler           gin.HandlerFunc
	RetreatAvailabilityHandler  gin.HandlerFunc
	RoomTypeAvailabilityHandler gin.HandlerFunc
	GetBookingBySessionHandler  gin.HandlerFunc

	// Checkout and payment events.
	CheckoutHandler      gin.HandlerFunc
	StripeWebhookHandler gin.HandlerFunc

	// Admin surface.
	AdminAuthCheckHandler      gin.HandlerFunc
	AdminListBookingsHandler   gin.HandlerFunc
	AdminGetBookingHandler     gin.HandlerFunc
	AdminUpdateBookingHandler  gin.HandlerFunc
	AdminCreateBookingHandler  gin.HandlerFunc
	AdminDeleteBookingHandler  gin.HandlerFunc
	AdminResendEmailHandler    gin.HandlerFunc
	AdminListRetreatsHandler   gin.HandlerFunc
	AdminCreateRetreatHandler  gin.HandlerFunc
	AdminGetRetreatHandler     gin.HandlerFunc
	AdminUpdateRetreatHandler  gin.HandlerFunc
	AdminDeleteRetreatHandler  gin.HandlerFunc
	AdminPublishRetreatHandler gin.HandlerFunc

	// Media storage.
	UploadImageHandler gin.HandlerFunc
	DeleteImageHandler gin.HandlerFunc
}
