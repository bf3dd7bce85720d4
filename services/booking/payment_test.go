package booking

import (
	"context"
	"testing"

	"veranera/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type paymentFixture struct {
	svc      *DefaultPaymentService
	enqueuer *mockEnqueuer
	store    map[string]*models.Booking
}

// newPaymentFixture backs the payment service with an in-memory booking
// store so Transition really is conditional on the current status.
func newPaymentFixture(bookings ...*models.Booking) *paymentFixture {
	f := &paymentFixture{
		enqueuer: &mockEnqueuer{},
		store:    map[string]*models.Booking{},
	}
	for _, b := range bookings {
		f.store[b.ID] = b
	}

	retreat := testRetreat()
	f.svc = &DefaultPaymentService{
		Bookings: &mockBookingRepo{
			GetByIDFn: func(id string) (*models.Booking, error) {
				return f.store[id], nil
			},
			TransitionFn: func(id string, from, to models.BookingStatus) (bool, error) {
				b, ok := f.store[id]
				if !ok || b.Status != from {
					return false, nil
				}
				b.Status = to
				return true, nil
			},
		},
		Retreats: &mockRetreatRepo{
			GetByIDFn: func(id string) (*models.Retreat, error) {
				if retreat.ID == id {
					return retreat, nil
				}
				return nil, nil
			},
		},
		Emails: f.enqueuer,
		Logger: zap.NewNop(),
	}
	return f
}

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:            "bk-1",
		RetreatID:     "ret-1",
		CustomerEmail: "ana@example.com",
		CustomerName:  "Ana",
		Status:        models.BookingStatusPending,
		RoomSlots: []models.RoomSlot{
			{RoomTypeID: "room-1", Name: "Habitación doble", Quantity: 2, PriceCents: 10000},
		},
		TotalCents: 20000,
	}
}

func TestConfirmMarksPendingBookingPaid(t *testing.T) {
	f := newPaymentFixture(pendingBooking())

	err := f.svc.ConfirmSessionCompleted(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPaid, f.store["bk-1"].Status)

	require.Len(t, f.enqueuer.Enqueued, 1)
	payload := f.enqueuer.Enqueued[0]
	assert.Equal(t, "bk-1", payload.BookingID)
	assert.Equal(t, "ana@example.com", payload.To)
	assert.Equal(t, "Retiro Sierra Norte", payload.RetreatTitle)
	assert.Equal(t, "Habitación doble", payload.RoomType)
	assert.Equal(t, int64(20000), payload.TotalCents)
}

func TestConfirmIsIdempotentAcrossRedeliveries(t *testing.T) {
	f := newPaymentFixture(pendingBooking())

	for i := 0; i < 3; i++ {
		err := f.svc.ConfirmSessionCompleted(context.Background(), "bk-1")
		require.NoError(t, err)
	}

	assert.Equal(t, models.BookingStatusPaid, f.store["bk-1"].Status)
	// Exactly one confirmation email for three deliveries.
	assert.Len(t, f.enqueuer.Enqueued, 1)
}

func TestConfirmCancelledBookingConflicts(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingStatusCancelled
	f := newPaymentFixture(b)

	err := f.svc.ConfirmSessionCompleted(context.Background(), "bk-1")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeConflictingTransition))
	assert.Equal(t, models.BookingStatusCancelled, f.store["bk-1"].Status)
	assert.Empty(t, f.enqueuer.Enqueued)
}

func TestConfirmUnknownBooking(t *testing.T) {
	f := newPaymentFixture()

	err := f.svc.ConfirmSessionCompleted(context.Background(), "bk-missing")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestConfirmSucceedsWhenEmailEnqueueFails(t *testing.T) {
	f := newPaymentFixture(pendingBooking())
	f.enqueuer.Err = errBackend

	// Email is fire-and-forget; the confirmation itself must not fail.
	err := f.svc.ConfirmSessionCompleted(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPaid, f.store["bk-1"].Status)
}

func TestConfirmationPayloadDefaultsWhenRetreatMissing(t *testing.T) {
	b := pendingBooking()
	b.RetreatID = "ret-deleted"
	f := newPaymentFixture(b)

	err := f.svc.ConfirmSessionCompleted(context.Background(), "bk-1")
	require.NoError(t, err)

	require.Len(t, f.enqueuer.Enqueued, 1)
	assert.Equal(t, "Retiro", f.enqueuer.Enqueued[0].RetreatTitle)
}
