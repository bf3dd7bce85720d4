package tasks

import (
	"encoding/json"

	"veranera/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "email:booking_confirmation"

// NewBookingConfirmationTask wraps the confirmation payload as a queue
// task. The queue retries on handler error, so the mailer only has to be
// idempotent per payload.
func NewBookingConfirmationTask(payload models.BookingConfirmationPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmation, b, asynq.MaxRetry(3)), nil
}
