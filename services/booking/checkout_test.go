package booking

import (
	"context"
	"testing"

	"veranera/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type checkoutFixture struct {
	svc      *DefaultCheckoutService
	gateway  *mockGateway
	created  []*models.Booking
	sessions map[string]string
}

// newCheckoutFixture wires a checkout service over one retreat with the
// given remaining availability for room-1.
func newCheckoutFixture(retreat *models.Retreat, available int) *checkoutFixture {
	f := &checkoutFixture{
		gateway:  &mockGateway{},
		sessions: map[string]string{},
	}

	bookings := &mockBookingRepo{
		CreateFn: func(b *models.Booking) error {
			f.created = append(f.created, b)
			return nil
		},
		SetStripeSessionIDFn: func(id, sessionID string) error {
			f.sessions[id] = sessionID
			return nil
		},
	}
	retreats := &mockRetreatRepo{
		GetByIDFn: func(id string) (*models.Retreat, error) {
			if retreat != nil && retreat.ID == id {
				return retreat, nil
			}
			return nil, nil
		},
	}
	f.svc = &DefaultCheckoutService{
		Retreats: retreats,
		Bookings: bookings,
		Inventory: newInventoryService(retreat,
			map[string]int{"room-1": retreat.RoomTypes[0].MaxQuantity - available}),
		Gateway: f.gateway,
		BaseURL: "https://veranera.test",
		Logger:  zap.NewNop(),
	}
	return f
}

func validCheckoutRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		RetreatID:     "ret-1",
		Slug:          "sierra-norte",
		RoomTypeID:    "room-1",
		RoomQuantity:  2,
		CustomerEmail: "ana@example.com",
		CustomerName:  "Ana",
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	f := newCheckoutFixture(testRetreat(), 5)

	result, err := f.svc.Checkout(context.Background(), validCheckoutRequest())
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.test/cs_test_123", result.URL)

	require.Len(t, f.created, 1)
	b := f.created[0]
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, "ret-1", b.RetreatID)
	require.Len(t, b.RoomSlots, 1)
	assert.Equal(t, 2, b.RoomSlots[0].Quantity)
	assert.Equal(t, int64(20000), b.TotalCents)

	// Session id recorded against the created booking.
	assert.Equal(t, "cs_test_123", f.sessions[b.ID])

	// Session metadata carries the booking id and the redirect URLs point
	// at the retreat's pages.
	require.Len(t, f.gateway.Calls, 1)
	params := f.gateway.Calls[0]
	assert.Equal(t, b.ID, params.BookingID)
	assert.Equal(t, "https://veranera.test/retreats/sierra-norte/book/thank-you?session_id={CHECKOUT_SESSION_ID}", params.SuccessURL)
	assert.Equal(t, "https://veranera.test/retreats/sierra-norte/book", params.CancelURL)
}

func TestCheckoutServerSidePricing(t *testing.T) {
	f := newCheckoutFixture(testRetreat(), 5)

	req := validCheckoutRequest()
	req.RoomQuantity = 1
	req.Extras = []models.ExtraSelection{
		{ID: "extra-1", Quantity: 2},
		{ID: "extra-2", Quantity: 3}, // single-purchase, clamps to 1
	}

	_, err := f.svc.Checkout(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, f.created, 1)
	b := f.created[0]
	require.Len(t, b.Extras, 2)
	assert.Equal(t, 2, b.Extras[0].Quantity)
	assert.Equal(t, 1, b.Extras[1].Quantity)
	// 1x10000 + 2x4500 + 1x2000
	assert.Equal(t, int64(21000), b.TotalCents)
}

func TestCheckoutDropsUnknownExtras(t *testing.T) {
	f := newCheckoutFixture(testRetreat(), 5)

	req := validCheckoutRequest()
	req.RoomQuantity = 1
	req.Extras = []models.ExtraSelection{
		{ID: "extra-1", Quantity: 1},
		{ID: "extra-from-other-retreat", Quantity: 1},
		{ID: "extra-2", Quantity: 0},
	}

	_, err := f.svc.Checkout(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, f.created, 1)
	require.Len(t, f.created[0].Extras, 1)
	assert.Equal(t, "extra-1", f.created[0].Extras[0].ExtraID)
}

func TestCheckoutMissingFields(t *testing.T) {
	f := newCheckoutFixture(testRetreat(), 5)

	for _, mutate := range []func(*models.CheckoutRequest){
		func(r *models.CheckoutRequest) { r.RetreatID = "" },
		func(r *models.CheckoutRequest) { r.Slug = "" },
		func(r *models.CheckoutRequest) { r.RoomTypeID = "" },
		func(r *models.CheckoutRequest) { r.RoomQuantity = 0 },
		func(r *models.CheckoutRequest) { r.CustomerEmail = "  " },
	} {
		req := validCheckoutRequest()
		mutate(&req)

		_, err := f.svc.Checkout(context.Background(), req)
		require.Error(t, err)
		assert.True(t, IsCode(err, CodeValidation))
	}
	assert.Empty(t, f.created)
}

func TestCheckoutRoomTypeFromWrongRetreat(t *testing.T) {
	f := newCheckoutFixture(testRetreat(), 5)

	req := validCheckoutRequest()
	req.RoomTypeID = "room-belonging-elsewhere"

	_, err := f.svc.Checkout(context.Background(), req)
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeInvalidReference))
	assert.Empty(t, f.created)
	assert.Empty(t, f.gateway.Calls)
}

func TestCheckoutInsufficientInventory(t *testing.T) {
	f := newCheckoutFixture(testRetreat(), 1)

	req := validCheckoutRequest()
	req.RoomQuantity = 2

	_, err := f.svc.Checkout(context.Background(), req)
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeInsufficientInventory))

	// Refusal happens before any write: no pending booking, no session.
	assert.Empty(t, f.created)
	assert.Empty(t, f.gateway.Calls)
}

func TestCheckoutGatewayFailureLeavesPendingBookingWithoutSession(t *testing.T) {
	f := newCheckoutFixture(testRetreat(), 5)
	f.gateway.CreateCheckoutSessionFn = func(ctx context.Context, params SessionParams) (*SessionInfo, error) {
		return nil, errBackend
	}

	_, err := f.svc.Checkout(context.Background(), validCheckoutRequest())
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeDownstream))

	// The pending booking was written but never got a session id; it can
	// never be confirmed.
	require.Len(t, f.created, 1)
	assert.Empty(t, f.sessions)
}
