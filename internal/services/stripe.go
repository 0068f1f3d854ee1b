package services

import (
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/paymentmethod"
	"github.com/stripe/stripe-go/v81/webhook"

	"seat-ticketing-platform/internal/config"
)

// StripeService implements PaymentProcessor on top of the Stripe API
type StripeService struct {
	config *config.StripeConfig
}

// NewStripeService creates a new Stripe payment service and sets the global
// API key used by the stripe-go client packages
func NewStripeService(cfg *config.StripeConfig) *StripeService {
	stripe.Key = cfg.SecretKey
	return &StripeService{config: cfg}
}

// CreateCheckoutSession opens a hosted checkout session for the given line items
func (s *StripeService) CreateCheckoutSession(req *CheckoutSessionRequest) (*CheckoutSessionResult, error) {
	if len(req.LineItems) == 0 {
		return nil, fmt.Errorf("checkout session requires at least one line item")
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(req.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutSessionResult{SessionID: sess.ID, URL: sess.URL}, nil
}

// GetSession retrieves a checkout session with its payment intent expanded
func (s *StripeService) GetSession(sessionID string) (*SessionDetails, error) {
	params := &stripe.CheckoutSessionParams{}
	params.AddExpand("payment_intent")

	sess, err := session.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session %s: %w", sessionID, err)
	}

	return SessionDetailsFromStripe(sess), nil
}

// SessionDetailsFromStripe maps a Stripe checkout session onto the
// processor-neutral SessionDetails used by the fulfillment layer
func SessionDetailsFromStripe(sess *stripe.CheckoutSession) *SessionDetails {
	details := &SessionDetails{
		SessionID:     sess.ID,
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Metadata:      sess.Metadata,
	}
	if sess.PaymentIntent != nil {
		details.PaymentIntentID = sess.PaymentIntent.ID
	}
	if sess.CustomerDetails != nil {
		details.CustomerEmail = sess.CustomerDetails.Email
		details.CustomerName = sess.CustomerDetails.Name
	}
	if details.CustomerEmail == "" {
		details.CustomerEmail = sess.CustomerEmail
	}
	if len(sess.PaymentMethodTypes) > 0 {
		details.PaymentType = sess.PaymentMethodTypes[0]
	}
	return details
}

// CardBrand resolves the card brand behind a payment intent. Lookups happen
// after the payment already settled, so any failure degrades to "other".
func (s *StripeService) CardBrand(paymentIntentID string) string {
	if paymentIntentID == "" {
		return "other"
	}

	intent, err := paymentintent.Get(paymentIntentID, nil)
	if err != nil || intent.PaymentMethod == nil {
		return "other"
	}

	method := intent.PaymentMethod
	if method.Card == nil {
		// The expanded intent may carry only the payment method id
		method, err = paymentmethod.Get(intent.PaymentMethod.ID, nil)
		if err != nil || method.Card == nil {
			return "other"
		}
	}

	return string(method.Card.Brand)
}

// WebhookVerifier checks webhook signatures and decodes events. The real
// implementation delegates to Stripe; tests substitute their own.
type WebhookVerifier interface {
	ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

// ConstructEvent verifies the Stripe-Signature header against the configured
// webhook secret and returns the decoded event
func (s *StripeService) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, s.config.WebhookSecret)
}
