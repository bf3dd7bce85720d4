package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"veranera/config"
	"veranera/cron"
	"veranera/database"
	bookingRepo "veranera/database/repository/booking"
	retreatRepo "veranera/database/repository/retreat"
	"veranera/handlers"
	"veranera/routes"
	"veranera/services/booking"
	"veranera/services/notification"
	"veranera/services/retreat"
	"veranera/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// Background email queue: the API process enqueues, the embedded
	// worker drains.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	mailer := notification.NewResendMailer(
		config.AppConfig.ResendAPIKey,
		config.AppConfig.ResendFromEmail,
	)
	cron.InitEmailWorker(mailer, logger)

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	retreats := retreatRepo.NewMongoRetreatRepo()

	// Services.
	emailEnqueuer := notification.NewAsynqEnqueuer(asynqClient)

	inventoryService := &booking.DefaultInventoryService{
		Bookings: bookings,
		Retreats: retreats,
	}
	checkoutService := &booking.DefaultCheckoutService{
		Retreats:  retreats,
		Bookings:  bookings,
		Inventory: inventoryService,
		Gateway:   booking.NewStripeGateway(config.AppConfig.Currency),
		BaseURL:   config.AppConfig.BaseURL,
		Logger:    logger,
	}
	paymentService := &booking.DefaultPaymentService{
		Bookings: bookings,
		Retreats: retreats,
		Emails:   emailEnqueuer,
		Logger:   logger,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings: bookings,
		Retreats: retreats,
		Emails:   emailEnqueuer,
		Logger:   logger,
	}
	retreatService := &retreat.DefaultRetreatService{
		Repo:   retreats,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}

	// Handlers.
	retreatHandler := handlers.NewRetreatHandler(retreatService, inventoryService, bookingService, logger)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, logger)
	webhookHandler := handlers.NewStripeWebhookHandler(paymentService, config.AppConfig.StripeWebhookSecret, logger)
	adminHandler := handlers.NewAdminHandler(retreatService, bookingService, logger)
	storageHandler := handlers.NewStorageHandler(storageService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Public catalogue and availability.
		ListRetreatsHandler:         retreatHandler.ListRetreats,
		GetRetreatHandler:           retreatHandler.GetRetreat,
		RetreatAvailabilityHandler:  retreatHandler.RetreatAvailability,
		RoomTypeAvailabilityHandler: retreatHandler.RoomTypeAvailability,
		GetBookingBySessionHandler:  retreatHandler.GetBookingBySession,

		// Checkout and payment events.
		CheckoutHandler:      checkoutHandler.Checkout,
		StripeWebhookHandler: webhookHandler.HandleEvent,

		// Admin surface.
		AdminAuthCheckHandler:      adminHandler.AuthCheck,
		AdminListBookingsHandler:   adminHandler.ListBookings,
		AdminGetBookingHandler:     adminHandler.GetBooking,
		AdminUpdateBookingHandler:  adminHandler.UpdateBookingStatus,
		AdminCreateBookingHandler:  adminHandler.CreateManualBooking,
		AdminDeleteBookingHandler:  adminHandler.DeleteBooking,
		AdminResendEmailHandler:    adminHandler.ResendBookingEmail,
		AdminListRetreatsHandler:   adminHandler.ListRetreats,
		AdminCreateRetreatHandler:  adminHandler.CreateRetreat,
		AdminGetRetreatHandler:     adminHandler.GetRetreat,
		AdminUpdateRetreatHandler:  adminHandler.UpdateRetreat,
		AdminDeleteRetreatHandler:  adminHandler.DeleteRetreat,
		AdminPublishRetreatHandler: adminHandler.PublishRetreat,

		// Media storage.
		UploadImageHandler: storageHandler.UploadImage,
		DeleteImageHandler: storageHandler.DeleteImage,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := asynqClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close task queue client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
