package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusPaid, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> to is legal.
// Only pending -> paid and pending -> cancelled are allowed; paid and
// cancelled are terminal.
func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	return s == BookingStatusPending &&
		(to == BookingStatusPaid || to == BookingStatusCancelled)
}

// RoomSlot is a room line item on a booking. Name and PriceCents are
// denormalized from the room type at checkout time so paid bookings keep
// the price they were sold at.
type RoomSlot struct {
	RoomTypeID string `bson:"roomTypeId" json:"roomTypeId"`
	Name       string `bson:"name" json:"name"`
	Quantity   int    `bson:"quantity" json:"quantity"`
	PriceCents int64  `bson:"priceCents" json:"priceCents"`
}

// ExtraLine is an extra-activity line item on a booking.
type ExtraLine struct {
	ExtraID    string `bson:"extraId" json:"extraId"`
	Name       string `bson:"name" json:"name"`
	Quantity   int    `bson:"quantity" json:"quantity"`
	PriceCents int64  `bson:"priceCents" json:"priceCents"`
}

// Booking is the aggregate root for a single purchase attempt. Room slots
// and extra lines are embedded so the whole aggregate is written and
// deleted atomically as one document.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	RetreatID       string        `bson:"retreatId" json:"retreatId"`
	StripeSessionID string        `bson:"stripeSessionId,omitempty" json:"stripeSessionId,omitempty"`
	CustomerEmail   string        `bson:"customerEmail" json:"customerEmail"`
	CustomerName    string        `bson:"customerName,omitempty" json:"customerName,omitempty"`
	Status          BookingStatus `bson:"status" json:"status"`
	RoomSlots       []RoomSlot    `bson:"roomSlots" json:"roomSlots"`
	Extras          []ExtraLine   `bson:"extras" json:"extras"`
	TotalCents      int64         `bson:"totalCents" json:"totalCents"`
	CreatedAt       time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Total recomputes the booking total from its line items.
func (b *Booking) Total() int64 {
	var total int64
	for _, s := range b.RoomSlots {
		total += int64(s.Quantity) * s.PriceCents
	}
	for _, e := range b.Extras {
		total += int64(e.Quantity) * e.PriceCents
	}
	return total
}
