package services

import (
	"github.com/stretchr/testify/mock"

	"seat-ticketing-platform/internal/models"
)

// MockMovementRepository is a mock implementation of MovementRepository
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) CreateIfAbsent(req *models.MovementCreateRequest) (*models.Movement, bool, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Movement), args.Bool(1), args.Error(2)
}

func (m *MockMovementRepository) GetByID(id int) (*models.Movement, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movement), args.Error(1)
}

func (m *MockMovementRepository) GetBySessionID(sessionID string) (*models.Movement, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movement), args.Error(1)
}

func (m *MockMovementRepository) UpdateStatus(id int, status models.MovementStatus, failureReason string) error {
	args := m.Called(id, status, failureReason)
	return args.Error(0)
}

func (m *MockMovementRepository) UpdatePaymentInfo(id int, paymentType, cardBrand, paymentIntentID string) error {
	args := m.Called(id, paymentType, cardBrand, paymentIntentID)
	return args.Error(0)
}

// MockTicketRepository is a mock implementation of TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(req *models.TicketCreateRequest) (*models.Ticket, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *MockTicketRepository) LinkToMovement(movementID, ticketID int) error {
	args := m.Called(movementID, ticketID)
	return args.Error(0)
}

func (m *MockTicketRepository) GetByMovement(movementID int) ([]*models.Ticket, error) {
	args := m.Called(movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Ticket), args.Error(1)
}

// MockSeatRepository is a mock implementation of SeatRepository
type MockSeatRepository struct {
	mock.Mock
}

func (m *MockSeatRepository) GetByID(id int) (*models.Seat, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seat), args.Error(1)
}

func (m *MockSeatRepository) GetByVenue(venueID int) ([]*models.Seat, error) {
	args := m.Called(venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Seat), args.Error(1)
}

func (m *MockSeatRepository) Occupy(seatIDs []int) ([]int, error) {
	args := m.Called(seatIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockSeatRepository) Release(seatIDs []int) (int, error) {
	args := m.Called(seatIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockSeatRepository) AllAvailable(seatIDs []int) (bool, error) {
	args := m.Called(seatIDs)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(req *models.UserCreateRequest, passwordHash string) (*models.User, error) {
	args := m.Called(req, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id int) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) GetByID(id int) (*models.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

// MockPaymentProcessor is a mock implementation of PaymentProcessor
type MockPaymentProcessor struct {
	mock.Mock
}

func (m *MockPaymentProcessor) CreateCheckoutSession(req *CheckoutSessionRequest) (*CheckoutSessionResult, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CheckoutSessionResult), args.Error(1)
}

func (m *MockPaymentProcessor) GetSession(sessionID string) (*SessionDetails, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SessionDetails), args.Error(1)
}

func (m *MockPaymentProcessor) CardBrand(paymentIntentID string) string {
	args := m.Called(paymentIntentID)
	return args.String(0)
}

// MockFulfillmentService is a mock implementation of FulfillmentServiceInterface
type MockFulfillmentService struct {
	mock.Mock
}

func (m *MockFulfillmentService) Materialize(meta *SessionMetadata, payment *PaymentInfo) (int, error) {
	args := m.Called(meta, payment)
	return args.Int(0), args.Error(1)
}

func (m *MockFulfillmentService) HandleCheckoutCompleted(details *SessionDetails) error {
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

// MockMovementQueryStore is a mock implementation of MovementQueryStore
type MockMovementQueryStore struct {
	mock.Mock
}

func (m *MockMovementQueryStore) Search(filters models.MovementSearchFilters) ([]*models.Movement, int, error) {
	args := m.Called(filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*models.Movement), args.Int(1), args.Error(2)
}

func (m *MockMovementQueryStore) GetMovementCount() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockMovementQueryStore) GetTotalRevenue() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockTicketQueryStore is a mock implementation of TicketQueryStore
type MockTicketQueryStore struct {
	mock.Mock
}

func (m *MockTicketQueryStore) GetByUser(userID int) ([]*models.Ticket, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Ticket), args.Error(1)
}

// MockEmailService is a mock implementation of EmailServiceInterface
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendTicketConfirmation(movement *models.Movement, tickets []*models.Ticket) error {
	args := m.Called(movement, tickets)
	return args.Error(0)
}
