package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/stripe/stripe-go/v81"

	"seat-ticketing-platform/internal/services"
)

// Stripe webhook payloads are small; anything larger is not from Stripe.
const webhookMaxBodyBytes = 65536

// WebhookHandler receives payment processor event notifications
type WebhookHandler struct {
	verifier    services.WebhookVerifier
	fulfillment services.FulfillmentServiceInterface
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(verifier services.WebhookVerifier, fulfillment services.FulfillmentServiceInterface) *WebhookHandler {
	return &WebhookHandler{
		verifier:    verifier,
		fulfillment: fulfillment,
	}
}

// HandleWebhook handles POST /api/stripe/webhook. The signature is checked
// against the raw body before anything else happens; an unverifiable payload
// causes no side effects at all. Processing errors return a non-2xx status so
// the processor redelivers, which the idempotent fulfillment absorbs.
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, webhookMaxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	event, err := h.verifier.ConstructEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		log.Printf("webhook: signature verification failed: %v", err)
		writeError(w, http.StatusBadRequest, "invalid signature")
		return
	}

	if err := h.dispatch(event); err != nil {
		log.Printf("webhook: failed to process %s event %s: %v", event.Type, event.ID, err)
		writeError(w, http.StatusInternalServerError, "event processing failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *WebhookHandler) dispatch(event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return err
		}
		return h.fulfillment.HandleCheckoutCompleted(services.SessionDetailsFromStripe(&sess))

	case "checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return err
		}
		return h.fulfillment.HandleSessionExpired(sess.ID)

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return err
		}
		return h.handlePaymentFailed(&intent)

	default:
		log.Printf("webhook: ignoring unhandled event type %s", event.Type)
		return nil
	}
}

// handlePaymentFailed cancels the movement named in the intent's metadata.
// Intents from hosted checkout carry no movement id until materialization has
// stamped one, so a missing id is acknowledged rather than retried.
func (h *WebhookHandler) handlePaymentFailed(intent *stripe.PaymentIntent) error {
	movementID, err := strconv.Atoi(intent.Metadata["movement_id"])
	if err != nil || movementID <= 0 {
		log.Printf("webhook: payment_intent %s failed without a movement reference", intent.ID)
		return nil
	}

	reason := "payment failed"
	if intent.LastPaymentError != nil && intent.LastPaymentError.Msg != "" {
		reason = intent.LastPaymentError.Msg
	}
	return h.fulfillment.HandlePaymentFailed(movementID, reason)
}
