package booking

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeGateway creates hosted Stripe Checkout sessions. The global
// stripe.Key is set once at startup.
type StripeGateway struct {
	Currency string
}

func NewStripeGateway(currency string) *StripeGateway {
	return &StripeGateway{Currency: currency}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p SessionParams) (*SessionInfo, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(p.Lines))
	for _, line := range p.Lines {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(line.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(g.Currency),
				UnitAmount: stripe.Int64(line.UnitAmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(line.Name),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:     lineItems,
		CustomerEmail: stripe.String(p.CustomerEmail),
		SuccessURL:    stripe.String(p.SuccessURL),
		CancelURL:     stripe.String(p.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("bookingId", p.BookingID)

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}
	return &SessionInfo{ID: sess.ID, URL: sess.URL}, nil
}
