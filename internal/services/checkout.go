package services

import (
	"errors"
	"fmt"
	"log"

	"seat-ticketing-platform/internal/config"
	"seat-ticketing-platform/internal/models"
)

// CheckoutService opens payment sessions for carts and verifies their outcome
type CheckoutService struct {
	processor   PaymentProcessor
	fulfillment FulfillmentServiceInterface
	eventRepo   EventRepository
	seats       SeatAvailability
	checkoutCfg *config.CheckoutConfig
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(processor PaymentProcessor, fulfillment FulfillmentServiceInterface, eventRepo EventRepository, seats SeatAvailability, checkoutCfg *config.CheckoutConfig) *CheckoutService {
	return &CheckoutService{
		processor:   processor,
		fulfillment: fulfillment,
		eventRepo:   eventRepo,
		seats:       seats,
		checkoutCfg: checkoutCfg,
	}
}

// CheckoutEventInfo identifies the event a cart belongs to
type CheckoutEventInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CheckoutCustomer carries the buyer's contact details
type CheckoutCustomer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CheckoutRequest is the client's request to start a checkout. Clients send
// either the flat fields or the nested eventInfo/customerData objects; any
// client-supplied totals are discarded and recomputed from the items.
type CheckoutRequest struct {
	EventID       int               `json:"eventId"`
	Items         []models.CartItem `json:"items"`
	CustomerEmail string            `json:"customerEmail"`
	CustomerName  string            `json:"customerName"`

	EventInfo    *CheckoutEventInfo `json:"eventInfo,omitempty"`
	CustomerData *CheckoutCustomer  `json:"customerData,omitempty"`
}

// normalize folds the nested request objects into the flat fields, which the
// rest of the service treats as canonical
func (req *CheckoutRequest) normalize() {
	if req.EventID == 0 && req.EventInfo != nil {
		req.EventID = req.EventInfo.ID
	}
	if req.CustomerData != nil {
		if req.CustomerEmail == "" {
			req.CustomerEmail = req.CustomerData.Email
		}
		if req.CustomerName == "" {
			req.CustomerName = req.CustomerData.Name
		}
	}
}

// PaymentResult reports the verified outcome of a checkout session
type PaymentResult struct {
	Success    bool   `json:"success"`
	Status     string `json:"status"`
	MovementID int    `json:"movementId,omitempty"`
	CardBrand  string `json:"cardBrand,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CreateSession validates the cart, recomputes its totals server-side and
// opens a hosted checkout session carrying the cart snapshot as metadata.
// Client-supplied prices never reach the processor directly.
func (s *CheckoutService) CreateSession(req *CheckoutRequest) (*CheckoutSessionResult, error) {
	req.normalize()
	if req.CustomerEmail == "" {
		return nil, fmt.Errorf("%w: customer email is required", models.ErrInvalidInput)
	}
	if err := models.ValidateItems(req.Items); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(req.EventID)
	if err != nil {
		return nil, err
	}
	if !event.CanSellOnline() {
		return nil, fmt.Errorf("%w: event %q is not selling online", models.ErrSalesClosed, event.Name)
	}

	summary := models.Summarize(req.Items)
	if summary.IsEmpty {
		return nil, fmt.Errorf("%w: cart is empty", models.ErrInvalidInput)
	}

	meta := &SessionMetadata{
		Items:         req.Items,
		EventID:       event.ID,
		EventName:     event.Name,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
	}

	// Seats already sold should fail here, before any money moves, not
	// after the payment settles.
	if seatIDs := meta.SeatIDs(); len(seatIDs) > 0 {
		available, err := s.seats.AllAvailable(seatIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to check seat availability: %w", err)
		}
		if !available {
			return nil, fmt.Errorf("%w: one or more selected seats have been sold", models.ErrSeatUnavailable)
		}
	}

	metadata, err := meta.Encode()
	if err != nil {
		return nil, err
	}

	sessionReq := &CheckoutSessionRequest{
		LineItems:     buildLineItems(event.Name, req.Items, summary.ServiceCharge),
		Currency:      s.checkoutCfg.Currency,
		CustomerEmail: req.CustomerEmail,
		SuccessURL:    s.checkoutCfg.SuccessURL,
		CancelURL:     s.checkoutCfg.CancelURL,
		Metadata:      metadata,
	}

	result, err := s.processor.CreateCheckoutSession(sessionReq)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkout session: %w", err)
	}

	return result, nil
}

// buildLineItems maps cart items onto processor line items. Seat items carry a
// quantity of one; general items carry the real quantity with the unit price
// untouched, so the processor does the multiplication exactly once. A positive
// service charge becomes its own synthetic line.
func buildLineItems(eventName string, items []models.CartItem, serviceCharge int) []CheckoutLineItem {
	lineItems := make([]CheckoutLineItem, 0, len(items)+1)
	for _, item := range items {
		name := eventName
		if desc := item.Description(); desc != "" {
			name = fmt.Sprintf("%s - %s", eventName, desc)
		}
		lineItems = append(lineItems, CheckoutLineItem{
			Name:       name,
			UnitAmount: int64(item.Price),
			Quantity:   int64(item.EffectiveQuantity()),
		})
	}
	if serviceCharge > 0 {
		lineItems = append(lineItems, CheckoutLineItem{
			Name:       "Service Charge",
			UnitAmount: int64(serviceCharge),
			Quantity:   1,
		})
	}
	return lineItems
}

// VerifyPayment checks a checkout session against the processor and, when the
// payment settled, makes sure the corresponding movement exists. Webhooks and
// verification race for the same session; the movement's session uniqueness
// makes the race harmless.
func (s *CheckoutService) VerifyPayment(sessionID string) (*PaymentResult, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", models.ErrInvalidInput)
	}

	details, err := s.processor.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	result := &PaymentResult{Status: details.PaymentStatus}
	if details.PaymentStatus != "paid" {
		return result, nil
	}
	result.Success = true
	result.CardBrand = s.processor.CardBrand(details.PaymentIntentID)

	meta, err := ParseSessionMetadata(details.Metadata)
	if err != nil {
		// The payment is real even when the snapshot is unreadable; the
		// client must still see success.
		log.Printf("verify-payment: session %s has unusable metadata: %v", sessionID, err)
		result.Error = "payment confirmed but order details could not be recovered"
		return result, nil
	}
	if details.CustomerEmail != "" {
		meta.CustomerEmail = details.CustomerEmail
	}
	if details.CustomerName != "" {
		meta.CustomerName = details.CustomerName
	}

	movementID, err := s.fulfillment.Materialize(meta, &PaymentInfo{
		SessionID:       sessionID,
		PaymentIntentID: details.PaymentIntentID,
		PaymentType:     details.PaymentType,
		CardBrand:       result.CardBrand,
	})
	result.MovementID = movementID
	if err != nil {
		// Never report a settled payment as failed: surface the
		// fulfillment problem alongside success instead.
		log.Printf("verify-payment: fulfillment for session %s failed: %v", sessionID, err)
		result.Error = "payment confirmed but order processing failed; support has been notified"
	}

	return result, nil
}

// IsNotFound reports whether err is one of the domain not-found sentinels
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrEventNotFound) ||
		errors.Is(err, models.ErrVenueNotFound) ||
		errors.Is(err, models.ErrUserNotFound) ||
		errors.Is(err, models.ErrMovementNotFound) ||
		errors.Is(err, models.ErrTicketNotFound) ||
		errors.Is(err, models.ErrSeatNotFound)
}
