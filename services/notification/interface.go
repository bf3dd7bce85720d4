package notification

import (
	"context"

	"veranera/models"
)

// Mailer sends transactional email.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, payload models.BookingConfirmationPayload) error
}

// Enqueuer submits email work to the background queue. Enqueue failures
// are the caller's to log; they must never fail the request that
// triggered the email.
type Enqueuer interface {
	EnqueueBookingConfirmation(ctx context.Context, payload models.BookingConfirmationPayload) error
}
