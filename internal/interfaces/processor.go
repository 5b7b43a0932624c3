package interfaces

import (
	"context"

	"github.com/stripe/stripe-go/v72"
)

// SessionAPI defines the contract for the payment processor's checkout-session
// endpoints. The service depends on this rather than the Stripe client directly
// so tests can verify exactly what reaches the processor.
type SessionAPI interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}
