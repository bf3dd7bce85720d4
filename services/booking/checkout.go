package booking

import (
	"context"
	"fmt"
	"strings"

	bookingRepo "veranera/database/repository/booking"
	retreatRepo "veranera/database/repository/retreat"
	"veranera/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCheckoutService orchestrates checkout: validate the cart against
// the ledger, persist a pending booking, open a payment session.
//
// The availability check and the pending write are deliberately not
// serialized against concurrent checkouts: pending bookings never consume
// capacity, so two racing customers can both reach the payment page when
// one unit is left. Overselling is prevented at the pending -> paid
// transition, which is a conditional single-document update.
type DefaultCheckoutService struct {
	Retreats  retreatRepo.RetreatRepository
	Bookings  bookingRepo.BookingRepository
	Inventory InventoryService
	Gateway   PaymentGateway
	BaseURL   string
	Logger    *zap.Logger
}

func (s *DefaultCheckoutService) Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.CustomerName = strings.TrimSpace(req.CustomerName)

	if req.RetreatID == "" || req.Slug == "" || req.RoomTypeID == "" ||
		req.RoomQuantity < 1 || req.CustomerEmail == "" {
		return nil, NewValidationError("Faltan datos requeridos (retiro, habitación, email)")
	}

	// The room type must belong to the stated retreat; the client is not
	// trusted to pair them correctly.
	retreat, err := s.Retreats.GetByID(req.RetreatID)
	if err != nil {
		return nil, NewDownstreamError(fmt.Sprintf("failed to load retreat: %v", err))
	}
	if retreat == nil {
		return nil, NewInvalidReferenceError("Tipo de habitación no válido para este retiro")
	}
	roomType := retreat.RoomTypeByID(req.RoomTypeID)
	if roomType == nil {
		return nil, NewInvalidReferenceError("Tipo de habitación no válido para este retiro")
	}

	available, err := s.Inventory.Available(ctx, req.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if req.RoomQuantity > available {
		return nil, NewInsufficientInventoryError("No hay suficientes plazas disponibles para esa habitación")
	}

	slots, extraLines := buildLineItems(retreat, roomType, req.RoomQuantity, req.Extras)

	booking := &models.Booking{
		ID:            uuid.New().String(),
		RetreatID:     retreat.ID,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		Status:        models.BookingStatusPending,
		RoomSlots:     slots,
		Extras:        extraLines,
	}
	booking.TotalCents = booking.Total()

	if err := s.Bookings.Create(booking); err != nil {
		return nil, NewDownstreamError(fmt.Sprintf("failed to persist booking: %v", err))
	}

	session, err := s.Gateway.CreateCheckoutSession(ctx, s.sessionParams(booking, req.Slug))
	if err != nil {
		// The pending booking stays behind with no session id; it is
		// never completed and can be swept by an operational process.
		s.Logger.Error("checkout: payment session creation failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return nil, NewDownstreamError("failed to create payment session")
	}

	if err := s.Bookings.SetStripeSessionID(booking.ID, session.ID); err != nil {
		s.Logger.Error("checkout: failed to persist session id",
			zap.String("bookingID", booking.ID),
			zap.String("sessionID", session.ID), zap.Error(err))
		return nil, NewDownstreamError("failed to persist payment session")
	}

	s.Logger.Info("checkout: pending booking created",
		zap.String("bookingID", booking.ID),
		zap.String("retreat", req.Slug),
		zap.Int64("totalCents", booking.TotalCents))

	return &models.CheckoutResult{BookingID: booking.ID, URL: session.URL}, nil
}

func (s *DefaultCheckoutService) sessionParams(booking *models.Booking, slug string) SessionParams {
	lines := make([]SessionLine, 0, len(booking.RoomSlots)+len(booking.Extras))
	for _, slot := range booking.RoomSlots {
		lines = append(lines, SessionLine{
			Name:            slot.Name,
			UnitAmountCents: slot.PriceCents,
			Quantity:        int64(slot.Quantity),
		})
	}
	for _, extra := range booking.Extras {
		lines = append(lines, SessionLine{
			Name:            extra.Name,
			UnitAmountCents: extra.PriceCents,
			Quantity:        int64(extra.Quantity),
		})
	}

	return SessionParams{
		BookingID:     booking.ID,
		CustomerEmail: booking.CustomerEmail,
		Lines:         lines,
		SuccessURL:    fmt.Sprintf("%s/retreats/%s/book/thank-you?session_id={CHECKOUT_SESSION_ID}", s.BaseURL, slug),
		CancelURL:     fmt.Sprintf("%s/retreats/%s/book", s.BaseURL, slug),
	}
}
