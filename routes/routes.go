package routes

import (
	"net/http"
	"time"

	"veranera/config"
	"veranera/handlers"
	"veranera/middleware"
	"veranera/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the customer-facing catalogue, checkout
// and post-payment endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/retreats", hb.ListRetreatsHandler)
		api.GET("/retreats/room-types/:id/availability", hb.RoomTypeAvailabilityHandler)
		api.GET("/retreats/:slug", hb.GetRetreatHandler)
		api.GET("/retreats/:slug/availability", hb.RetreatAvailabilityHandler)
		api.GET("/bookings/session/:sessionID", hb.GetBookingBySessionHandler)

		api.POST("/checkout", middleware.RateLimitMiddleware(), hb.CheckoutHandler)
	}
}

// RegisterWebhookRoutes registers payment-provider callbacks. These are
// authenticated by signature, not by session, and must never sit behind
// the rate limiter.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/webhooks/stripe", hb.StripeWebhookHandler)
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/auth", hb.AdminAuthCheckHandler)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware(config.AppConfig.AdminAPIToken))

		adminGroup.GET("/bookings", hb.AdminListBookingsHandler)
		adminGroup.POST("/bookings", hb.AdminCreateBookingHandler)
		adminGroup.GET("/bookings/:id", hb.AdminGetBookingHandler)
		adminGroup.PATCH("/bookings/:id", hb.AdminUpdateBookingHandler)
		adminGroup.DELETE("/bookings/:id", hb.AdminDeleteBookingHandler)
		adminGroup.POST("/bookings/:id/send-email", hb.AdminResendEmailHandler)

		adminGroup.GET("/retreats", hb.AdminListRetreatsHandler)
		adminGroup.POST("/retreats", hb.AdminCreateRetreatHandler)
		adminGroup.GET("/retreats/:slug", hb.AdminGetRetreatHandler)
		adminGroup.PUT("/retreats/:slug", hb.AdminUpdateRetreatHandler)
		adminGroup.DELETE("/retreats/:slug", hb.AdminDeleteRetreatHandler)
		adminGroup.PUT("/retreats/:slug/publish", hb.AdminPublishRetreatHandler)

		adminGroup.POST("/images", hb.UploadImageHandler)
		adminGroup.DELETE("/images", hb.DeleteImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"mongo":     status.Mongo,
			"redis":     status.Redis,
			"checkedAt": status.CheckedAt,
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
