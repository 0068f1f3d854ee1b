package services

import (
	"fmt"
	"log"

	"seat-ticketing-platform/internal/models"
)

// EventStore covers the event catalog operations InventoryService needs
type EventStore interface {
	Create(req *models.EventCreateRequest) (*models.Event, error)
	GetByID(id int) (*models.Event, error)
	List() ([]*models.Event, error)
	Update(id int, req *models.EventUpdateRequest) (*models.Event, error)
	Delete(id int) error
}

// VenueStore covers venue reference data operations
type VenueStore interface {
	Create(venue *models.Venue) (*models.Venue, error)
	GetByID(id int) (*models.Venue, error)
	List() ([]*models.Venue, error)
}

// SeatStore covers seat inventory operations
type SeatStore interface {
	Create(seat *models.Seat) (*models.Seat, error)
	GetByVenue(venueID int) ([]*models.Seat, error)
	Occupy(seatIDs []int) ([]int, error)
	Release(seatIDs []int) (int, error)
}

// InventoryService manages the event catalog and seat inventory
type InventoryService struct {
	eventStore EventStore
	venueStore VenueStore
	seatStore  SeatStore
}

// NewInventoryService creates a new inventory service
func NewInventoryService(eventStore EventStore, venueStore VenueStore, seatStore SeatStore) *InventoryService {
	return &InventoryService{
		eventStore: eventStore,
		venueStore: venueStore,
		seatStore:  seatStore,
	}
}

// CreateEvent validates and creates an event after checking its venue exists
func (s *InventoryService) CreateEvent(req *models.EventCreateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}
	if _, err := s.venueStore.GetByID(req.VenueID); err != nil {
		return nil, err
	}
	return s.eventStore.Create(req)
}

// GetEvent returns an event by id
func (s *InventoryService) GetEvent(id int) (*models.Event, error) {
	return s.eventStore.GetByID(id)
}

// ListEvents returns all events
func (s *InventoryService) ListEvents() ([]*models.Event, error) {
	return s.eventStore.List()
}

// UpdateEvent validates and applies an event update
func (s *InventoryService) UpdateEvent(id int, req *models.EventUpdateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}
	return s.eventStore.Update(id, req)
}

// DeleteEvent removes an event. The repository refuses to delete events that
// already have movements.
func (s *InventoryService) DeleteEvent(id int) error {
	return s.eventStore.Delete(id)
}

// CreateVenue creates a venue and, when the request carries a seat map, its
// seats. The venue is usable even if a later seat insert fails; the error
// reports how far setup got so the remaining seats can be re-posted.
func (s *InventoryService) CreateVenue(req *models.VenueCreateRequest) (*models.Venue, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}

	venue, err := s.venueStore.Create(&models.Venue{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
	})
	if err != nil {
		return nil, err
	}

	for i, sr := range req.Seats {
		_, err := s.seatStore.Create(&models.Seat{
			VenueID: venue.ID,
			Zone:    sr.Zone,
			Row:     sr.Row,
			Number:  sr.Number,
			Price:   sr.Price,
			Color:   sr.Color,
			PosX:    sr.PosX,
			PosY:    sr.PosY,
			Status:  models.SeatAvailable,
		})
		if err != nil {
			return nil, fmt.Errorf("venue %d created but seat %d of %d failed: %w", venue.ID, i+1, len(req.Seats), err)
		}
	}

	return venue, nil
}

// GetVenue returns a venue by id
func (s *InventoryService) GetVenue(id int) (*models.Venue, error) {
	return s.venueStore.GetByID(id)
}

// ListVenues returns all venues
func (s *InventoryService) ListVenues() ([]*models.Venue, error) {
	return s.venueStore.List()
}

// GetVenueSeats returns the seat map for a venue
func (s *InventoryService) GetVenueSeats(venueID int) ([]*models.Seat, error) {
	if _, err := s.venueStore.GetByID(venueID); err != nil {
		return nil, err
	}
	return s.seatStore.GetByVenue(venueID)
}

// OccupySeats marks the given seats occupied. Every requested seat must
// still be available; a partial claim releases exactly the seats this call
// transitioned and reports ErrSeatUnavailable. Seats that were already
// occupied before the call are never touched.
func (s *InventoryService) OccupySeats(seatIDs []int) error {
	if len(seatIDs) == 0 {
		return fmt.Errorf("%w: no seats selected", models.ErrInvalidInput)
	}

	claimed, err := s.seatStore.Occupy(seatIDs)
	if err != nil {
		return err
	}
	if len(claimed) != len(seatIDs) {
		if len(claimed) > 0 {
			if _, relErr := s.seatStore.Release(claimed); relErr != nil {
				log.Printf("inventory: failed to release partially claimed seats %v: %v", claimed, relErr)
			}
		}
		return fmt.Errorf("%w: %d of %d seats already taken", models.ErrSeatUnavailable, len(seatIDs)-len(claimed), len(seatIDs))
	}
	return nil
}

// ReleaseSeats marks the given seats available again
func (s *InventoryService) ReleaseSeats(seatIDs []int) error {
	if len(seatIDs) == 0 {
		return fmt.Errorf("%w: no seats selected", models.ErrInvalidInput)
	}
	_, err := s.seatStore.Release(seatIDs)
	return err
}
