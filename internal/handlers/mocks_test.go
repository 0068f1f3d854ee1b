package handlers

import (
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"

	"seat-ticketing-platform/internal/models"
	"seat-ticketing-platform/internal/services"
)

// MockCheckoutService is a mock implementation of CheckoutServiceInterface
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) CreateSession(req *services.CheckoutRequest) (*services.CheckoutSessionResult, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CheckoutSessionResult), args.Error(1)
}

func (m *MockCheckoutService) VerifyPayment(sessionID string) (*services.PaymentResult, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PaymentResult), args.Error(1)
}

// MockInventoryService is a mock implementation of InventoryServiceInterface
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) CreateEvent(req *models.EventCreateRequest) (*models.Event, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockInventoryService) GetEvent(id int) (*models.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockInventoryService) ListEvents() ([]*models.Event, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *MockInventoryService) UpdateEvent(id int, req *models.EventUpdateRequest) (*models.Event, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockInventoryService) DeleteEvent(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockInventoryService) CreateVenue(req *models.VenueCreateRequest) (*models.Venue, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockInventoryService) GetVenue(id int) (*models.Venue, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockInventoryService) ListVenues() ([]*models.Venue, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Venue), args.Error(1)
}

func (m *MockInventoryService) GetVenueSeats(venueID int) ([]*models.Seat, error) {
	args := m.Called(venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Seat), args.Error(1)
}

func (m *MockInventoryService) OccupySeats(seatIDs []int) error {
	args := m.Called(seatIDs)
	return args.Error(0)
}

func (m *MockInventoryService) ReleaseSeats(seatIDs []int) error {
	args := m.Called(seatIDs)
	return args.Error(0)
}

// MockOrdersService is a mock implementation of OrdersServiceInterface
type MockOrdersService struct {
	mock.Mock
}

func (m *MockOrdersService) ListMovements(filters models.MovementSearchFilters) (*services.MovementPage, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.MovementPage), args.Error(1)
}

func (m *MockOrdersService) GetSalesStats() (*services.SalesStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SalesStats), args.Error(1)
}

func (m *MockOrdersService) GetUserTickets(userID int) ([]*models.Ticket, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Ticket), args.Error(1)
}

// MockWebhookVerifier is a mock implementation of WebhookVerifier
type MockWebhookVerifier struct {
	mock.Mock
}

func (m *MockWebhookVerifier) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	args := m.Called(payload, sigHeader)
	return args.Get(0).(stripe.Event), args.Error(1)
}

// MockFulfillmentService is a mock implementation of FulfillmentServiceInterface
type MockFulfillmentService struct {
	mock.Mock
}

func (m *MockFulfillmentService) Materialize(meta *services.SessionMetadata, payment *services.PaymentInfo) (int, error) {
	args := m.Called(meta, payment)
	return args.Int(0), args.Error(1)
}

func (m *MockFulfillmentService) HandleCheckoutCompleted(details *services.SessionDetails) error {
	args := m.Called(details)
	return args.Error(0)
}

func (m *MockFulfillmentService) HandleSessionExpired(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

func (m *MockFulfillmentService) HandlePaymentFailed(movementID int, reason string) error {
	args := m.Called(movementID, reason)
	return args.Error(0)
}
