package bookingRepo

import (
	"fmt"
	"time"

	"veranera/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SoldUnits aggregates committed capacity per room type: the sum of room
// slot quantities across bookings whose status is paid. Pending and
// cancelled bookings never count. Computed as a single pipeline read so
// the ledger cannot drift from the booking documents.
func (r *MongoBookingRepo) SoldUnits(roomTypeIDs []string) (map[string]int, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": models.BookingStatusPaid}}},
		bson.D{{Key: "$unwind", Value: "$roomSlots"}},
		bson.D{{Key: "$match", Value: bson.M{"roomSlots.roomTypeId": bson.M{"$in": roomTypeIDs}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":  "$roomSlots.roomTypeId",
			"sold": bson.M{"$sum": "$roomSlots.quantity"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sold units: %w", err)
	}
	defer cursor.Close(ctx)

	sold := make(map[string]int, len(roomTypeIDs))
	for cursor.Next(ctx) {
		var row struct {
			RoomTypeID string `bson:"_id"`
			Sold       int    `bson:"sold"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode sold units row: %w", err)
		}
		sold[row.RoomTypeID] = row.Sold
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("sold units cursor failed: %w", err)
	}
	return sold, nil
}
