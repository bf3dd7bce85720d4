package notification

import (
	"context"
	"fmt"

	"veranera/models"
	"veranera/services/tasks"

	"github.com/hibiken/asynq"
)

// AsynqEnqueuer submits email tasks to the Redis-backed queue. The queue
// is the email path's isolated failure domain: a broken mailer or Redis
// outage never propagates into the webhook response.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

func NewAsynqEnqueuer(client *asynq.Client) *AsynqEnqueuer {
	return &AsynqEnqueuer{Client: client}
}

func (e *AsynqEnqueuer) EnqueueBookingConfirmation(ctx context.Context, payload models.BookingConfirmationPayload) error {
	task, err := tasks.NewBookingConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}
	if _, err := e.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}
