package models

// ExtraSelection is one (extra id, quantity) pair in a checkout request.
type ExtraSelection struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CheckoutRequest is the customer-facing checkout payload. Prices are
// never read from the client; they are resolved server-side.
type CheckoutRequest struct {
	RetreatID     string           `json:"retreatId"`
	Slug          string           `json:"slug"`
	RoomTypeID    string           `json:"roomTypeId"`
	RoomQuantity  int              `json:"roomQuantity"`
	Extras        []ExtraSelection `json:"extras"`
	CustomerEmail string           `json:"customerEmail"`
	CustomerName  string           `json:"customerName"`
}

// CheckoutResult is returned on a successful checkout: the pending
// booking's id and the hosted payment page to redirect to.
type CheckoutResult struct {
	BookingID string `json:"bookingId"`
	URL       string `json:"url"`
}

// ManualBookingRequest is an admin-created booking, bypassing the payment
// provider. Status may be "pending" or "paid".
type ManualBookingRequest struct {
	RetreatID     string           `json:"retreatId"`
	RoomTypeID    string           `json:"roomTypeId"`
	RoomQuantity  int              `json:"roomQuantity"`
	Extras        []ExtraSelection `json:"extras"`
	CustomerEmail string           `json:"customerEmail"`
	CustomerName  string           `json:"customerName"`
	Status        BookingStatus    `json:"status"`
}
