package service

import (
	"context"
	"strings"

	"github.com/stripe/stripe-go/v72"
	"go.uber.org/zap"

	"github.com/ticketbay/checkout-gateway/internal/config"
	"github.com/ticketbay/checkout-gateway/internal/interfaces"
	"github.com/ticketbay/checkout-gateway/internal/models"
	"github.com/ticketbay/checkout-gateway/internal/telemetry"
)

const fallbackItemName = "Ticket"

// CheckoutManager owns the checkout-session lifecycle: it validates purchase
// requests, delegates session creation to the processor, and normalizes the
// processor's session record for client consumption. It holds no per-request
// state beyond the injected configuration.
type CheckoutManager struct {
	api interfaces.SessionAPI
	cfg *config.Config
}

func NewCheckoutManager(api interfaces.SessionAPI, cfg *config.Config) *CheckoutManager {
	return &CheckoutManager{api: api, cfg: cfg}
}

// CreateSession validates the purchase, creates a hosted checkout session at
// the processor and returns only its URL. Validation failures never reach the
// processor; processor failures are logged in full and surfaced generically.
func (m *CheckoutManager) CreateSession(ctx context.Context, req *models.PurchaseRequest) (string, error) {
	if req.PriceCents == nil || *req.PriceCents <= 0 {
		return "", models.InvalidRequest("price_cents required")
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	name := req.Name
	if name == "" {
		name = fallbackItemName
	}

	successBase := m.redirectBase(m.cfg.SuccessURL)
	cancelBase := m.redirectBase(m.cfg.CancelURL)

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(*req.PriceCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
				},
				Quantity: stripe.Int64(quantity),
			},
		},
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		// {CHECKOUT_SESSION_ID} is substituted by Stripe on redirect.
		SuccessURL: stripe.String(successBase + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(cancelBase + "/cancel"),
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	ctx, span := telemetry.Tracer.Start(ctx, "checkout.session.create")
	defer span.End()

	sess, err := m.api.CreateCheckoutSession(ctx, params)
	if err != nil {
		telemetry.Logger.Error("stripe checkout session create failed",
			zap.String("currency", currency),
			zap.Int64("unit_amount", *req.PriceCents),
			zap.Error(err),
		)
		telemetry.ProcessorFailures.WithLabelValues("create").Inc()
		return "", models.ProcessorFailure("unable to create checkout session", err)
	}

	telemetry.SessionsCreated.Inc()
	return sess.URL, nil
}

// GetSessionStatus fetches the session from the processor with line items and
// product detail expanded, then projects it into the client-facing view.
func (m *CheckoutManager) GetSessionStatus(ctx context.Context, sessionID string) (*models.SessionStatus, error) {
	if sessionID == "" {
		return nil, models.InvalidRequest("session_id required")
	}

	params := &stripe.CheckoutSessionParams{}
	params.AddExpand("line_items")
	params.AddExpand("line_items.data.price.product")

	ctx, span := telemetry.Tracer.Start(ctx, "checkout.session.retrieve")
	defer span.End()

	sess, err := m.api.RetrieveCheckoutSession(ctx, sessionID, params)
	if err != nil {
		telemetry.Logger.Error("stripe checkout session retrieve failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		telemetry.ProcessorFailures.WithLabelValues("retrieve").Inc()
		return nil, models.ProcessorFailure("unable to retrieve session status", err)
	}

	telemetry.StatusLookups.Inc()
	return normalizeSession(sess), nil
}

// redirectBase resolves the base URL for post-payment redirects: an explicit
// override wins, then the configured frontend origin. Trailing slashes are
// stripped so appended paths never produce double slashes.
func (m *CheckoutManager) redirectBase(override string) string {
	base := override
	if base == "" {
		base = m.cfg.FrontendOrigin
	}
	if base == "" {
		base = config.DefaultFrontendOrigin
	}
	return strings.TrimRight(base, "/")
}

func normalizeSession(sess *stripe.CheckoutSession) *models.SessionStatus {
	view := &models.SessionStatus{
		Status: string(sess.PaymentStatus),
	}
	if sess.CustomerDetails != nil {
		view.CustomerEmail = sess.CustomerDetails.Email
	}
	if sess.LineItems != nil {
		for _, item := range sess.LineItems.Data {
			view.LineItems = append(view.LineItems, models.LineItemView{
				Description: itemDescription(item),
			})
		}
	}
	if len(view.LineItems) == 0 {
		view.LineItems = []models.LineItemView{{Description: fallbackItemName}}
	}
	return view
}

// itemDescription prefers the line item's own description, then the product's
// display name, then the literal fallback.
func itemDescription(item *stripe.LineItem) string {
	if item.Description != "" {
		return item.Description
	}
	if item.Price != nil && item.Price.Product != nil && item.Price.Product.Name != "" {
		return item.Price.Product.Name
	}
	return fallbackItemName
}
