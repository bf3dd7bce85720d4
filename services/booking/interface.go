package booking

import (
	"context"

	"veranera/models"
)

// InventoryService is the ledger of remaining sellable capacity. It is a
// pure derived read over paid bookings; there is no mutable counter to
// keep in sync.
type InventoryService interface {
	// Available returns how many units of the room type remain sellable:
	// capacity minus the summed quantity of paid room slots, floored at
	// zero. A room type with no paid slots has its full capacity
	// available; an unknown room type is a notFound error.
	Available(ctx context.Context, roomTypeID string) (int, error)

	// AvailabilityForRetreat returns every room type of the retreat with
	// its remaining units, for the public booking page.
	AvailabilityForRetreat(ctx context.Context, slug string) ([]models.RoomTypeAvailability, error)
}

// CheckoutService turns a cart into a pending booking plus a hosted
// payment session.
type CheckoutService interface {
	Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResult, error)
}

// PaymentService consumes verified payment-provider completion events and
// finalizes bookings. Delivery is at-least-once; confirmation must be
// idempotent.
type PaymentService interface {
	ConfirmSessionCompleted(ctx context.Context, bookingID string) error
}

// BookingService is the admin-facing surface over the booking store. It
// goes through the same create/transition/delete contracts as the
// customer path, never around them.
type BookingService interface {
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByStripeSessionID(ctx context.Context, sessionID string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id string, to models.BookingStatus) (*models.Booking, error)
	CreateManual(ctx context.Context, req models.ManualBookingRequest) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	ResendConfirmation(ctx context.Context, id string) error
}

// PaymentGateway abstracts the external payment provider's hosted
// checkout. Line amounts are integer minor-currency units.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params SessionParams) (*SessionInfo, error)
}

// SessionLine is one priced line on a payment session.
type SessionLine struct {
	Name            string
	UnitAmountCents int64
	Quantity        int64
}

// SessionParams describes the payment session to create. BookingID is
// attached as opaque metadata so the completion callback can find the
// booking back.
type SessionParams struct {
	BookingID     string
	CustomerEmail string
	Lines         []SessionLine
	SuccessURL    string
	CancelURL     string
}

// SessionInfo is the created session: its provider id and the hosted
// payment page URL.
type SessionInfo struct {
	ID  string
	URL string
}
