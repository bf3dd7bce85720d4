package booking

import (
	"veranera/models"
)

// buildLineItems resolves the requested cart against the retreat's
// authoritative prices. Client-submitted prices are never consulted.
// Extras with quantity <= 0 or ids not belonging to the retreat are
// silently dropped; extras are enhancements, not the transaction's core
// commitment.
func buildLineItems(retreat *models.Retreat, roomType *models.RoomType, roomQuantity int, extras []models.ExtraSelection) ([]models.RoomSlot, []models.ExtraLine) {
	slots := []models.RoomSlot{{
		RoomTypeID: roomType.ID,
		Name:       roomType.Name,
		Quantity:   roomQuantity,
		PriceCents: roomType.PriceCents,
	}}

	var lines []models.ExtraLine
	for _, sel := range extras {
		if sel.Quantity <= 0 {
			continue
		}
		extra := retreat.ExtraByID(sel.ID)
		if extra == nil {
			continue
		}
		qty := sel.Quantity
		if !extra.AllowMultiple && qty > 1 {
			qty = 1
		}
		if extra.MaxQuantity != nil && qty > *extra.MaxQuantity {
			qty = *extra.MaxQuantity
		}
		lines = append(lines, models.ExtraLine{
			ExtraID:    extra.ID,
			Name:       extra.Name,
			Quantity:   qty,
			PriceCents: extra.PriceCents,
		})
	}
	return slots, lines
}
