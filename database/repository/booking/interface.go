package bookingRepo

import (
	"veranera/models"
)

// BookingRepository is the only writer of booking aggregates. The
// aggregate (booking + room slots + extra lines) lives in a single
// document, so creates and deletes are atomic by construction.
type BookingRepository interface {
	// Create inserts the full aggregate. The booking id must be set.
	Create(booking *models.Booking) error

	// GetByID returns the booking, or nil if it does not exist.
	GetByID(id string) (*models.Booking, error)

	// GetByStripeSessionID returns the booking holding the given payment
	// session id, or nil if none does.
	GetByStripeSessionID(sessionID string) (*models.Booking, error)

	// GetAll returns all bookings, newest first.
	GetAll() ([]models.Booking, error)

	// Delete removes the aggregate. Line items are embedded, so no orphan
	// is ever visible.
	Delete(id string) error

	// Transition applies from -> to as a conditional update with the
	// current status as precondition. It reports whether the update was
	// actually applied; false means the booking was missing or not in the
	// from status.
	Transition(id string, from, to models.BookingStatus) (bool, error)

	// SetStripeSessionID records the payment session id on a booking that
	// does not have one yet. The field carries a unique sparse index and
	// is set at most once.
	SetStripeSessionID(id, sessionID string) error

	// SoldUnits returns the summed room-slot quantity across paid
	// bookings, per room type id, for the given room type ids. Room types
	// with no paid slots are absent from the map.
	SoldUnits(roomTypeIDs []string) (map[string]int, error)
}
