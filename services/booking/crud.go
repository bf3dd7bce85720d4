package booking

import (
	"context"
	"fmt"
	"strings"

	bookingRepo "veranera/database/repository/booking"
	retreatRepo "veranera/database/repository/retreat"
	"veranera/models"
	"veranera/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the admin-facing surface over the booking
// store. Transitions run through the same conditional-update guard as the
// payment path, but a refused transition is surfaced as a conflict rather
// than treated as a benign replay.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Retreats retreatRepo.RetreatRepository
	Emails   notification.Enqueuer
	Logger   *zap.Logger
}

func (s *DefaultBookingService) GetAll(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Bookings.GetAll()
	if err != nil {
		return nil, NewDownstreamError(fmt.Sprintf("failed to list bookings: %v", err))
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, NewDownstreamError(fmt.Sprintf("failed to load booking: %v", err))
	}
	if booking == nil {
		return nil, NewNotFoundError("booking not found")
	}
	return booking, nil
}

func (s *DefaultBookingService) GetByStripeSessionID(ctx context.Context, sessionID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByStripeSessionID(sessionID)
	if err != nil {
		return nil, NewDownstreamError(fmt.Sprintf("failed to load booking: %v", err))
	}
	if booking == nil {
		return nil, NewNotFoundError("booking not found")
	}
	return booking, nil
}

// UpdateStatus applies an admin status change through the transition
// guard. Illegal moves (out of a terminal state, or into pending) fail
// with a conflict and leave the booking untouched.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id string, to models.BookingStatus) (*models.Booking, error) {
	if !to.Valid() {
		return nil, NewValidationError("Invalid status value")
	}

	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == to {
		return booking, nil
	}
	if !booking.Status.CanTransitionTo(to) {
		return nil, NewConflictingTransitionError(
			fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, to))
	}

	applied, err := s.Bookings.Transition(id, booking.Status, to)
	if err != nil {
		return nil, NewDownstreamError(fmt.Sprintf("failed to transition booking: %v", err))
	}
	if !applied {
		// Lost a race with a concurrent transition.
		return nil, NewConflictingTransitionError(
			fmt.Sprintf("booking %s changed state concurrently", id))
	}

	s.Logger.Info("admin: booking status updated",
		zap.String("bookingID", id), zap.String("status", string(to)))
	return s.GetByID(ctx, id)
}

// CreateManual creates a booking directly in pending or paid state,
// bypassing the payment provider. Prices still come from the retreat
// document, never from the request.
func (s *DefaultBookingService) CreateManual(ctx context.Context, req models.ManualBookingRequest) (*models.Booking, error) {
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	if req.RetreatID == "" || req.RoomTypeID == "" || req.RoomQuantity < 1 || req.CustomerEmail == "" {
		return nil, NewValidationError("retreatId, roomTypeId, roomQuantity and customerEmail are required")
	}
	if req.Status == "" {
		req.Status = models.BookingStatusPending
	}
	if req.Status != models.BookingStatusPending && req.Status != models.BookingStatusPaid {
		return nil, NewValidationError("manual bookings must be pending or paid")
	}

	retreat, err := s.Retreats.GetByID(req.RetreatID)
	if err != nil {
		return nil, NewDownstreamError(fmt.Sprintf("failed to load retreat: %v", err))
	}
	if retreat == nil {
		return nil, NewInvalidReferenceError("retreat not found")
	}
	roomType := retreat.RoomTypeByID(req.RoomTypeID)
	if roomType == nil {
		return nil, NewInvalidReferenceError("room type does not belong to this retreat")
	}

	slots, extraLines := buildLineItems(retreat, roomType, req.RoomQuantity, req.Extras)
	booking := &models.Booking{
		ID:            uuid.New().String(),
		RetreatID:     retreat.ID,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Status:        req.Status,
		RoomSlots:     slots,
		Extras:        extraLines,
	}
	booking.TotalCents = booking.Total()

	if err := s.Bookings.Create(booking); err != nil {
		return nil, NewDownstreamError(fmt.Sprintf("failed to persist booking: %v", err))
	}

	s.Logger.Info("admin: manual booking created",
		zap.String("bookingID", booking.ID), zap.String("status", string(booking.Status)))
	return booking, nil
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return NewDownstreamError(fmt.Sprintf("failed to load booking: %v", err))
	}
	if booking == nil {
		return NewNotFoundError("booking not found")
	}
	if err := s.Bookings.Delete(id); err != nil {
		return NewDownstreamError(fmt.Sprintf("failed to delete booking: %v", err))
	}
	s.Logger.Info("admin: booking deleted", zap.String("bookingID", id))
	return nil
}

// ResendConfirmation re-enqueues the confirmation email for a booking.
func (s *DefaultBookingService) ResendConfirmation(ctx context.Context, id string) error {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	payload, err := confirmationPayload(booking, s.Retreats)
	if err != nil {
		return NewDownstreamError(fmt.Sprintf("failed to build confirmation email: %v", err))
	}
	if err := s.Emails.EnqueueBookingConfirmation(ctx, payload); err != nil {
		return NewDownstreamError(fmt.Sprintf("failed to enqueue confirmation email: %v", err))
	}
	return nil
}
