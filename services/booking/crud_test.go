package booking

import (
	"context"
	"testing"

	"veranera/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type crudFixture struct {
	svc      *DefaultBookingService
	enqueuer *mockEnqueuer
	store    map[string]*models.Booking
}

func newCrudFixture(bookings ...*models.Booking) *crudFixture {
	f := &crudFixture{
		enqueuer: &mockEnqueuer{},
		store:    map[string]*models.Booking{},
	}
	for _, b := range bookings {
		f.store[b.ID] = b
	}

	retreat := testRetreat()
	f.svc = &DefaultBookingService{
		Bookings: &mockBookingRepo{
			CreateFn: func(b *models.Booking) error {
				f.store[b.ID] = b
				return nil
			},
			GetByIDFn: func(id string) (*models.Booking, error) {
				return f.store[id], nil
			},
			GetAllFn: func() ([]models.Booking, error) {
				out := make([]models.Booking, 0, len(f.store))
				for _, b := range f.store {
					out = append(out, *b)
				}
				return out, nil
			},
			DeleteFn: func(id string) error {
				delete(f.store, id)
				return nil
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

func TestUpdateStatusCancelsPendingBooking(t *testing.T) {
	f := newCrudFixture(pendingBooking())

	b, err := f.svc.UpdateStatus(context.Background(), "bk-1", models.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, b.Status)
}

func TestUpdateStatusRejectsLeavingTerminalState(t *testing.T) {
	paid := pendingBooking()
	paid.Status = models.BookingStatusPaid
	f := newCrudFixture(paid)

	_, err := f.svc.UpdateStatus(context.Background(), "bk-1", models.BookingStatusPending)
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeConflictingTransition))
	// Refused transitions leave the booking untouched.
	assert.Equal(t, models.BookingStatusPaid, f.store["bk-1"].Status)
}

func TestUpdateStatusSameStatusIsNoOp(t *testing.T) {
	f := newCrudFixture(pendingBooking())

	b, err := f.svc.UpdateStatus(context.Background(), "bk-1", models.BookingStatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newCrudFixture(pendingBooking())

	_, err := f.svc.UpdateStatus(context.Background(), "bk-1", "refunded")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeValidation))
}

func TestCreateManualPricesFromRetreat(t *testing.T) {
	f := newCrudFixture()

	b, err := f.svc.CreateManual(context.Background(), models.ManualBookingRequest{
		RetreatID:     "ret-1",
		RoomTypeID:    "room-1",
		RoomQuantity:  2,
		CustomerEmail: "ana@example.com",
		Status:        models.BookingStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPaid, b.Status)
	assert.Equal(t, int64(20000), b.TotalCents)
	assert.NotEmpty(t, b.ID)
}

func TestCreateManualDefaultsToPending(t *testing.T) {
	f := newCrudFixture()

	b, err := f.svc.CreateManual(context.Background(), models.ManualBookingRequest{
		RetreatID:     "ret-1",
		RoomTypeID:    "room-1",
		RoomQuantity:  1,
		CustomerEmail: "ana@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b.Status)
}

func TestCreateManualRejectsCancelled(t *testing.T) {
	f := newCrudFixture()

	_, err := f.svc.CreateManual(context.Background(), models.ManualBookingRequest{
		RetreatID:     "ret-1",
		RoomTypeID:    "room-1",
		RoomQuantity:  1,
		CustomerEmail: "ana@example.com",
		Status:        models.BookingStatusCancelled,
	})
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeValidation))
}

func TestCreateManualRejectsForeignRoomType(t *testing.T) {
	f := newCrudFixture()

	_, err := f.svc.CreateManual(context.Background(), models.ManualBookingRequest{
		RetreatID:     "ret-1",
		RoomTypeID:    "room-elsewhere",
		RoomQuantity:  1,
		CustomerEmail: "ana@example.com",
	})
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeInvalidReference))
}

func TestDeleteMissingBooking(t *testing.T) {
	f := newCrudFixture()

	err := f.svc.Delete(context.Background(), "bk-missing")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestResendConfirmationEnqueuesEmail(t *testing.T) {
	paid := pendingBooking()
	paid.Status = models.BookingStatusPaid
	f := newCrudFixture(paid)

	err := f.svc.ResendConfirmation(context.Background(), "bk-1")
	require.NoError(t, err)
	require.Len(t, f.enqueuer.Enqueued, 1)
	assert.Equal(t, "bk-1", f.enqueuer.Enqueued[0].BookingID)
}
