package notification

import (
	"fmt"
	"strings"

	"veranera/models"
)

// renderBookingConfirmation builds the confirmation email body. Amounts
// are formatted from integer cents.
func renderBookingConfirmation(p models.BookingConfirmationPayload) string {
	name := p.CustomerName
	if name == "" {
		name = "Viajero"
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">`)
	fmt.Fprintf(&b, "<h1>¡Reserva confirmada!</h1>")
	fmt.Fprintf(&b, "<p>Hola %s,</p>", name)
	fmt.Fprintf(&b, "<p>Tu plaza en <strong>%s</strong> está confirmada.</p>", p.RetreatTitle)

	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li>%s × %d</li>", p.RoomType, p.RoomQuantity)
	for _, extra := range p.Extras {
		fmt.Fprintf(&b, "<li>%s × %d</li>", extra.Name, extra.Quantity)
	}
	b.WriteString("</ul>")

	fmt.Fprintf(&b, "<p><strong>Total: %s</strong></p>", FormatEuros(p.TotalCents))
	fmt.Fprintf(&b, "<p>Fecha de reserva: %s</p>", p.BookingDate.Format("02/01/2006"))
	b.WriteString("<p>Nos vemos pronto.</p></div>")
	return b.String()
}

// FormatEuros renders integer cents as a euro amount.
func FormatEuros(cents int64) string {
	return fmt.Sprintf("%d,%02d €", cents/100, cents%100)
}
