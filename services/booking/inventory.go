package booking

import (
	"context"
	"fmt"

	bookingRepo "veranera/database/repository/booking"
	retreatRepo "veranera/database/repository/retreat"

	"veranera/models"
)

// DefaultInventoryService computes remaining capacity from the booking
// documents on every call.
type DefaultInventoryService struct {
	Bookings bookingRepo.BookingRepository
	Retreats retreatRepo.RetreatRepository
}

// Available returns max(0, capacity - sold) for one room type.
func (s *DefaultInventoryService) Available(ctx context.Context, roomTypeID string) (int, error) {
	retreat, err := s.Retreats.GetByRoomTypeID(roomTypeID)
	if err != nil {
		return 0, NewDownstreamError(fmt.Sprintf("failed to look up room type: %v", err))
	}
	if retreat == nil {
		return 0, NewNotFoundError("room type not found")
	}
	roomType := retreat.RoomTypeByID(roomTypeID)

	sold, err := s.Bookings.SoldUnits([]string{roomTypeID})
	if err != nil {
		return 0, NewDownstreamError(fmt.Sprintf("failed to aggregate sold units: %v", err))
	}
	return remaining(roomType.MaxQuantity, sold[roomTypeID]), nil
}

// AvailabilityForRetreat returns all of a retreat's room types with their
// remaining units, using one aggregation for the whole set.
func (s *DefaultInventoryService) AvailabilityForRetreat(ctx context.Context, slug string) ([]models.RoomTypeAvailability, error) {
	retreat, err := s.Retreats.GetBySlug(slug)
	if err != nil {
		return nil, NewDownstreamError(fmt.Sprintf("failed to look up retreat: %v", err))
	}
	if retreat == nil {
		return nil, NewNotFoundError("retreat not found")
	}

	ids := make([]string, len(retreat.RoomTypes))
	for i, rt := range retreat.RoomTypes {
		ids[i] = rt.ID
	}

	sold := map[string]int{}
	if len(ids) > 0 {
		sold, err = s.Bookings.SoldUnits(ids)
		if err != nil {
			return nil, NewDownstreamError(fmt.Sprintf("failed to aggregate sold units: %v", err))
		}
	}

	out := make([]models.RoomTypeAvailability, len(retreat.RoomTypes))
	for i, rt := range retreat.RoomTypes {
		out[i] = models.RoomTypeAvailability{
			RoomType:  rt,
			Available: remaining(rt.MaxQuantity, sold[rt.ID]),
		}
	}
	return out, nil
}

func remaining(capacity, sold int) int {
	if sold >= capacity {
		return 0
	}
	return capacity - sold
}
