package services

import (
	"fmt"

	"seat-ticketing-platform/internal/models"
)

// MovementQueryStore covers the movement read queries the orders views need
type MovementQueryStore interface {
	Search(filters models.MovementSearchFilters) ([]*models.Movement, int, error)
	GetMovementCount() (int, error)
	GetTotalRevenue() (int, error)
}

// TicketQueryStore covers ticket lookups by owner
type TicketQueryStore interface {
	GetByUser(userID int) ([]*models.Ticket, error)
}

// MovementPage is one page of a movement listing
type MovementPage struct {
	Movements []*models.Movement `json:"movements"`
	Total     int                `json:"total"`
}

// SalesStats aggregates sales across all movements
type SalesStats struct {
	MovementCount int `json:"movementCount"`
	TotalRevenue  int `json:"totalRevenue"` // in cents, paid movements only
}

// OrdersService answers read-side questions about past sales: movement
// listings for back-office screens and ticket listings for buyers
type OrdersService struct {
	movementStore MovementQueryStore
	ticketStore   TicketQueryStore
	userRepo      UserRepository
}

// NewOrdersService creates a new orders service
func NewOrdersService(movementStore MovementQueryStore, ticketStore TicketQueryStore, userRepo UserRepository) *OrdersService {
	return &OrdersService{
		movementStore: movementStore,
		ticketStore:   ticketStore,
		userRepo:      userRepo,
	}
}

// ListMovements returns a filtered, paginated movement listing
func (s *OrdersService) ListMovements(filters models.MovementSearchFilters) (*MovementPage, error) {
	movements, total, err := s.movementStore.Search(filters)
	if err != nil {
		return nil, err
	}
	if movements == nil {
		movements = []*models.Movement{}
	}
	return &MovementPage{Movements: movements, Total: total}, nil
}

// GetSalesStats returns the overall movement count and paid revenue
func (s *OrdersService) GetSalesStats() (*SalesStats, error) {
	count, err := s.movementStore.GetMovementCount()
	if err != nil {
		return nil, err
	}
	revenue, err := s.movementStore.GetTotalRevenue()
	if err != nil {
		return nil, err
	}
	return &SalesStats{MovementCount: count, TotalRevenue: revenue}, nil
}

// GetUserTickets returns all tickets owned by a user, newest first
func (s *OrdersService) GetUserTickets(userID int) ([]*models.Ticket, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", models.ErrInvalidInput)
	}
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, err
	}
	tickets, err := s.ticketStore.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []*models.Ticket{}
	}
	return tickets, nil
}
