package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"veranera/config"
	"veranera/models"
	"veranera/services/notification"
	"veranera/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitEmailWorker runs the async email worker in background.
func InitEmailWorker(mailer notification.Mailer, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleBookingConfirmation(mailer, logger))

	go func() {
		log.Println("[EmailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingConfirmation(mailer notification.Mailer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("email worker: invalid payload", zap.Error(err))
			return err
		}

		if err := mailer.SendBookingConfirmation(ctx, p); err != nil {
			// Surfaced for operator follow-up; asynq retries up to the
			// task's MaxRetry and the failure never reaches a customer.
			logger.Error("email worker: failed to send confirmation",
				zap.String("bookingID", p.BookingID),
				zap.String("to", p.To),
				zap.Error(err))
			return err
		}

		logger.Info("email worker: confirmation sent",
			zap.String("bookingID", p.BookingID),
			zap.String("to", p.To))
		return nil
	}
}
