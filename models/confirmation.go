package models

import "time"

// ConfirmationExtra is one extra line on a confirmation email.
type ConfirmationExtra struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// BookingConfirmationPayload is the task payload for a confirmation
// email, carried through the queue as JSON.
type BookingConfirmationPayload struct {
	BookingID    string              `json:"bookingId"`
	To           string              `json:"to"`
	CustomerName string              `json:"customerName"`
	RetreatTitle string              `json:"retreatTitle"`
	RetreatSlug  string              `json:"retreatSlug"`
	RoomType     string              `json:"roomType"`
	RoomQuantity int                 `json:"roomQuantity"`
	Extras       []ConfirmationExtra `json:"extras"`
	TotalCents   int64               `json:"totalCents"`
	BookingDate  time.Time           `json:"bookingDate"`
}
