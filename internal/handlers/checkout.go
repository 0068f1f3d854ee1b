package handlers

import (
	"net/http"

	"seat-ticketing-platform/internal/config"
	"seat-ticketing-platform/internal/services"
)

// CheckoutHandler handles checkout session creation and payment verification
type CheckoutHandler struct {
	checkoutService services.CheckoutServiceInterface
	stripeCfg       *config.StripeConfig
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService services.CheckoutServiceInterface, stripeCfg *config.StripeConfig) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		stripeCfg:       stripeCfg,
	}
}

// CreateCheckoutSession handles POST /api/stripe/create-checkout-session.
// The cart arrives in the request, but all money amounts are recomputed
// server-side before anything reaches the payment processor, so any
// subtotal/serviceCharge/total the client sends is accepted and ignored.
func (h *CheckoutHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req services.CheckoutRequest
	if err := decodeJSONLenient(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.checkoutService.CreateSession(&req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"sessionId": result.SessionID,
		"url":       result.URL,
	})
}

// VerifyPayment handles POST /api/stripe/verify-payment
func (h *CheckoutHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionId"`
	}
	if err := decodeJSON(r, &req); err != nil || req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	result, err := h.checkoutService.VerifyPayment(req.SessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetPublishableKey handles GET /api/stripe/config. The browser needs the
// publishable key to redirect into the hosted checkout.
func (h *CheckoutHandler) GetPublishableKey(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"publishableKey": h.stripeCfg.PublishableKey,
	})
}
