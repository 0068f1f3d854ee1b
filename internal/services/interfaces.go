package services

import (
	"seat-ticketing-platform/internal/models"
)

// MovementRepository interface for movement data operations
type MovementRepository interface {
	CreateIfAbsent(req *models.MovementCreateRequest) (*models.Movement, bool, error)
	GetByID(id int) (*models.Movement, error)
	GetBySessionID(sessionID string) (*models.Movement, error)
	UpdateStatus(id int, status models.MovementStatus, failureReason string) error
	UpdatePaymentInfo(id int, paymentType, cardBrand, paymentIntentID string) error
}

// TicketRepository interface for ticket data operations
type TicketRepository interface {
	Create(req *models.TicketCreateRequest) (*models.Ticket, error)
	LinkToMovement(movementID, ticketID int) error
	GetByMovement(movementID int) ([]*models.Ticket, error)
}

// SeatRepository interface for seat inventory operations
type SeatRepository interface {
	GetByID(id int) (*models.Seat, error)
	GetByVenue(venueID int) ([]*models.Seat, error)
	Occupy(seatIDs []int) ([]int, error)
	Release(seatIDs []int) (int, error)
}

// SeatAvailability is the read-only seat check performed before a payment
// session is opened
type SeatAvailability interface {
	AllAvailable(seatIDs []int) (bool, error)
}

// UserRepository interface for user data operations
type UserRepository interface {
	Create(req *models.UserCreateRequest, passwordHash string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// EventRepository interface for event data operations
type EventRepository interface {
	GetByID(id int) (*models.Event, error)
}

// CheckoutLineItem is one line sent to the payment processor
type CheckoutLineItem struct {
	Name       string
	UnitAmount int64 // in cents; never price x quantity
	Quantity   int64
}

// CheckoutSessionRequest is the processor-facing session creation request
type CheckoutSessionRequest struct {
	LineItems     []CheckoutLineItem
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// CheckoutSessionResult is the processor's answer to session creation
type CheckoutSessionResult struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// SessionDetails describes a checkout session as reported by the processor
type SessionDetails struct {
	SessionID       string
	PaymentIntentID string
	PaymentStatus   string // "paid" when the payment settled
	PaymentType     string // e.g. "card"
	CardBrand       string
	CustomerEmail   string
	CustomerName    string
	AmountTotal     int64
	Metadata        map[string]string
}

// PaymentProcessor abstracts the external payment provider. The production
// implementation is StripeService; tests use MockPaymentProcessor.
type PaymentProcessor interface {
	CreateCheckoutSession(req *CheckoutSessionRequest) (*CheckoutSessionResult, error)
	GetSession(sessionID string) (*SessionDetails, error)
	// CardBrand resolves the card brand for a payment intent on a best-effort
	// basis; implementations return "other" when the lookup fails.
	CardBrand(paymentIntentID string) string
}

// CheckoutServiceInterface defines the checkout operations handlers consume
type CheckoutServiceInterface interface {
	CreateSession(req *CheckoutRequest) (*CheckoutSessionResult, error)
	VerifyPayment(sessionID string) (*PaymentResult, error)
}

// InventoryServiceInterface defines catalog and seat inventory operations
type InventoryServiceInterface interface {
	CreateEvent(req *models.EventCreateRequest) (*models.Event, error)
	GetEvent(id int) (*models.Event, error)
	ListEvents() ([]*models.Event, error)
	UpdateEvent(id int, req *models.EventUpdateRequest) (*models.Event, error)
	DeleteEvent(id int) error
	CreateVenue(req *models.VenueCreateRequest) (*models.Venue, error)
	GetVenue(id int) (*models.Venue, error)
	ListVenues() ([]*models.Venue, error)
	GetVenueSeats(venueID int) ([]*models.Seat, error)
	OccupySeats(seatIDs []int) error
	ReleaseSeats(seatIDs []int) error
}

// OrdersServiceInterface defines the read-side order and ticket queries
type OrdersServiceInterface interface {
	ListMovements(filters models.MovementSearchFilters) (*MovementPage, error)
	GetSalesStats() (*SalesStats, error)
	GetUserTickets(userID int) ([]*models.Ticket, error)
}

// PaymentInfo carries the confirmed payment identifiers into materialization
type PaymentInfo struct {
	SessionID       string
	PaymentIntentID string
	PaymentType     string
	CardBrand       string
}

// FulfillmentServiceInterface converts confirmed payments into durable
// movement/ticket/seat records
type FulfillmentServiceInterface interface {
	Materialize(meta *SessionMetadata, payment *PaymentInfo) (int, error)
	HandleCheckoutCompleted(details *SessionDetails) error
	HandleSessionExpired(sessionID string) error
	HandlePaymentFailed(movementID int, reason string) error
}

// EmailServiceInterface defines downstream fulfillment notifications.
// Failures here are logged, never escalated: payment and persistence are
// already final by the time a notification is attempted.
type EmailServiceInterface interface {
	SendTicketConfirmation(movement *models.Movement, tickets []*models.Ticket) error
}
