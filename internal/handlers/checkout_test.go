package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"seat-ticketing-platform/internal/config"
	"seat-ticketing-platform/internal/models"
	"seat-ticketing-platform/internal/services"
)

func TestCheckoutHandler_CreateCheckoutSession(t *testing.T) {
	checkoutService := &MockCheckoutService{}
	handler := NewCheckoutHandler(checkoutService, &config.StripeConfig{})

	checkoutService.On("CreateSession", mock.MatchedBy(func(req *services.CheckoutRequest) bool {
		return req.EventID == 7 && len(req.Items) == 1 && req.CustomerEmail == "buyer@example.com"
	})).Return(&services.CheckoutSessionResult{
		SessionID: "cs_test_123",
		URL:       "https://checkout.example.com/cs_test_123",
	}, nil)

	body := `{"eventId":7,"items":[{"id":"seat-10","kind":"seat","seat_id":10,"row":"A","seat":1,"zone":"platea","price":800,"quantity":1}],"customerEmail":"buyer@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/create-checkout-session", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateCheckoutSession(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "cs_test_123", resp["sessionId"])
	assert.NotEmpty(t, resp["url"])
}

func TestCheckoutHandler_CreateCheckoutSession_FullClientBody(t *testing.T) {
	checkoutService := &MockCheckoutService{}
	handler := NewCheckoutHandler(checkoutService, &config.StripeConfig{})

	checkoutService.On("CreateSession", mock.MatchedBy(func(req *services.CheckoutRequest) bool {
		return len(req.Items) == 1 &&
			req.EventInfo != nil && req.EventInfo.ID == 7 &&
			req.CustomerData != nil && req.CustomerData.Email == "buyer@example.com"
	})).Return(&services.CheckoutSessionResult{
		SessionID: "cs_test_123",
		URL:       "https://checkout.example.com/cs_test_123",
	}, nil)

	// The full client body carries totals and redirect URLs the server
	// recomputes or configures itself; it must still be accepted.
	body := `{
		"items":[{"id":"seat-10","kind":"seat","seat_id":10,"row":"A","seat":1,"zone":"platea","price":800,"quantity":1}],
		"subtotal":800,
		"serviceCharge":144,
		"total":944,
		"eventInfo":{"id":7,"name":"Summer Concert"},
		"customerData":{"email":"buyer@example.com","name":"Buyer"},
		"successUrl":"https://client.example.com/success",
		"cancelUrl":"https://client.example.com/cancel",
		"currency":"usd"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/create-checkout-session", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateCheckoutSession(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "cs_test_123", resp["sessionId"])
}

func TestCheckoutHandler_CreateCheckoutSession_InvalidBody(t *testing.T) {
	checkoutService := &MockCheckoutService{}
	handler := NewCheckoutHandler(checkoutService, &config.StripeConfig{})

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/create-checkout-session", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	handler.CreateCheckoutSession(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	checkoutService.AssertNotCalled(t, "CreateSession", mock.Anything)
}

func TestCheckoutHandler_CreateCheckoutSession_SalesClosed(t *testing.T) {
	checkoutService := &MockCheckoutService{}
	handler := NewCheckoutHandler(checkoutService, &config.StripeConfig{})

	checkoutService.On("CreateSession", mock.Anything).Return(nil, models.ErrSalesClosed)

	body := `{"eventId":7,"items":[{"id":"g","kind":"general","zone":"general","price":200,"quantity":1}],"customerEmail":"buyer@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/create-checkout-session", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateCheckoutSession(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutHandler_VerifyPayment(t *testing.T) {
	checkoutService := &MockCheckoutService{}
	handler := NewCheckoutHandler(checkoutService, &config.StripeConfig{})

	checkoutService.On("VerifyPayment", "cs_test_123").Return(&services.PaymentResult{
		Success:    true,
		Status:     "paid",
		MovementID: 42,
		CardBrand:  "visa",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/verify-payment", strings.NewReader(`{"sessionId":"cs_test_123"}`))
	rec := httptest.NewRecorder()

	handler.VerifyPayment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp services.PaymentResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 42, resp.MovementID)
}

func TestCheckoutHandler_VerifyPayment_MissingSessionID(t *testing.T) {
	checkoutService := &MockCheckoutService{}
	handler := NewCheckoutHandler(checkoutService, &config.StripeConfig{})

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/verify-payment", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.VerifyPayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	checkoutService.AssertNotCalled(t, "VerifyPayment", mock.Anything)
}

func TestCheckoutHandler_GetPublishableKey(t *testing.T) {
	handler := NewCheckoutHandler(&MockCheckoutService{}, &config.StripeConfig{PublishableKey: "pk_test_abc"})

	req := httptest.NewRequest(http.MethodGet, "/api/stripe/config", nil)
	rec := httptest.NewRecorder()

	handler.GetPublishableKey(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "pk_test_abc", resp["publishableKey"])
}
