package booking

import (
	"context"
	"fmt"

	bookingRepo "veranera/database/repository/booking"
	retreatRepo "veranera/database/repository/retreat"
	"veranera/models"
	"veranera/services/notification"

	"go.uber.org/zap"
)

// DefaultPaymentService finalizes bookings when the payment provider
// reports a completed session. It is the gatekeeper of committed
// inventory: only the pending -> paid transition it applies makes a
// booking count against capacity.
type DefaultPaymentService struct {
	Bookings bookingRepo.BookingRepository
	Retreats retreatRepo.RetreatRepository
	Emails   notification.Enqueuer
	Logger   *zap.Logger
}

// ConfirmSessionCompleted idempotently marks the booking paid. The
// provider delivers completion events at least once; a replay against an
// already-paid booking is a silent no-op, and exactly one confirmation
// email is enqueued per booking (on the delivery that wins the
// transition).
func (s *DefaultPaymentService) ConfirmSessionCompleted(ctx context.Context, bookingID string) error {
	applied, err := s.Bookings.Transition(bookingID, models.BookingStatusPending, models.BookingStatusPaid)
	if err != nil {
		return NewDownstreamError(fmt.Sprintf("failed to transition booking: %v", err))
	}

	if !applied {
		booking, err := s.Bookings.GetByID(bookingID)
		if err != nil {
			return NewDownstreamError(fmt.Sprintf("failed to load booking: %v", err))
		}
		if booking == nil {
			return NewNotFoundError(fmt.Sprintf("booking %s not found", bookingID))
		}
		if booking.Status == models.BookingStatusPaid {
			// Replayed completion event.
			s.Logger.Info("payment: booking already paid, ignoring replay",
				zap.String("bookingID", bookingID))
			return nil
		}
		return NewConflictingTransitionError(
			fmt.Sprintf("booking %s is %s, cannot mark paid", bookingID, booking.Status))
	}

	s.Logger.Info("payment: booking marked paid", zap.String("bookingID", bookingID))
	s.enqueueConfirmation(ctx, bookingID)
	return nil
}

// enqueueConfirmation hands the confirmation email to the queue. Email is
// fire-and-forget: any failure here is logged and swallowed.
func (s *DefaultPaymentService) enqueueConfirmation(ctx context.Context, bookingID string) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil || booking == nil {
		s.Logger.Error("payment: failed to load booking for confirmation email",
			zap.String("bookingID", bookingID), zap.Error(err))
		return
	}

	payload, err := confirmationPayload(booking, s.Retreats)
	if err != nil {
		s.Logger.Error("payment: failed to build confirmation email",
			zap.String("bookingID", bookingID), zap.Error(err))
		return
	}

	if err := s.Emails.EnqueueBookingConfirmation(ctx, payload); err != nil {
		s.Logger.Error("payment: failed to enqueue confirmation email",
			zap.String("bookingID", bookingID), zap.Error(err))
	}
}

// confirmationPayload assembles the email payload from the booking and
// its retreat.
func confirmationPayload(booking *models.Booking, retreats retreatRepo.RetreatRepository) (models.BookingConfirmationPayload, error) {
	retreat, err := retreats.GetByID(booking.RetreatID)
	if err != nil {
		return models.BookingConfirmationPayload{}, fmt.Errorf("failed to load retreat: %w", err)
	}
	title, slug := "Retiro", ""
	if retreat != nil {
		title, slug = retreat.Title, retreat.Slug
	}

	roomType, roomQuantity := "Habitación", 1
	if len(booking.RoomSlots) > 0 {
		roomType = booking.RoomSlots[0].Name
		roomQuantity = booking.RoomSlots[0].Quantity
	}

	extras := make([]models.ConfirmationExtra, 0, len(booking.Extras))
	for _, e := range booking.Extras {
		extras = append(extras, models.ConfirmationExtra{Name: e.Name, Quantity: e.Quantity})
	}

	return models.BookingConfirmationPayload{
		BookingID:    booking.ID,
		To:           booking.CustomerEmail,
		CustomerName: booking.CustomerName,
		RetreatTitle: title,
		RetreatSlug:  slug,
		RoomType:     roomType,
		RoomQuantity: roomQuantity,
		Extras:       extras,
		TotalCents:   booking.Total(),
		BookingDate:  booking.CreatedAt,
	}, nil
}
