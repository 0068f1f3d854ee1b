package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"seat-ticketing-platform/internal/models"
)

// MockEventStore is a mock implementation of EventStore
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) Create(req *models.EventCreateRequest) (*models.Event, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) GetByID(id int) (*models.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) List() ([]*models.Event, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *MockEventStore) Update(id int, req *models.EventUpdateRequest) (*models.Event, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockVenueStore is a mock implementation of VenueStore
type MockVenueStore struct {
	mock.Mock
}

func (m *MockVenueStore) Create(venue *models.Venue) (*models.Venue, error) {
	args := m.Called(venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockVenueStore) GetByID(id int) (*models.Venue, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockVenueStore) List() ([]*models.Venue, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Venue), args.Error(1)
}

// MockSeatStore is a mock implementation of SeatStore
type MockSeatStore struct {
	mock.Mock
}

func (m *MockSeatStore) Create(seat *models.Seat) (*models.Seat, error) {
	args := m.Called(seat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seat), args.Error(1)
}

func (m *MockSeatStore) GetByVenue(venueID int) ([]*models.Seat, error) {
	args := m.Called(venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Seat), args.Error(1)
}

func (m *MockSeatStore) Occupy(seatIDs []int) ([]int, error) {
	args := m.Called(seatIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockSeatStore) Release(seatIDs []int) (int, error) {
	args := m.Called(seatIDs)
	return args.Int(0), args.Error(1)
}

func newInventoryFixtures() (*InventoryService, *MockEventStore, *MockVenueStore, *MockSeatStore) {
	eventStore := &MockEventStore{}
	venueStore := &MockVenueStore{}
	seatStore := &MockSeatStore{}
	return NewInventoryService(eventStore, venueStore, seatStore), eventStore, venueStore, seatStore
}

func TestInventoryService_CreateEvent_RequiresExistingVenue(t *testing.T) {
	service, eventStore, venueStore, _ := newInventoryFixtures()

	venueStore.On("GetByID", 99).Return(nil, models.ErrVenueNotFound)

	_, err := service.CreateEvent(&models.EventCreateRequest{
		Name:       "Jazz Night",
		Date:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Time:       "20:00",
		VenueID:    99,
		SaleStatus: models.SalePresale,
	})

	assert.ErrorIs(t, err, models.ErrVenueNotFound)
	eventStore.AssertNotCalled(t, "Create", mock.Anything)
}

func TestInventoryService_CreateEvent_RejectsInvalidRequest(t *testing.T) {
	service, eventStore, _, _ := newInventoryFixtures()

	_, err := service.CreateEvent(&models.EventCreateRequest{Name: ""})

	assert.ErrorIs(t, err, models.ErrInvalidInput)
	eventStore.AssertNotCalled(t, "Create", mock.Anything)
}

func TestInventoryService_CreateVenue_WithSeatMap(t *testing.T) {
	service, _, venueStore, seatStore := newInventoryFixtures()

	venueStore.On("Create", mock.MatchedBy(func(v *models.Venue) bool {
		return v.Name == "Grand Theater" && v.City == "Lima"
	})).Return(&models.Venue{ID: 5, Name: "Grand Theater", City: "Lima"}, nil)
	seatStore.On("Create", mock.MatchedBy(func(s *models.Seat) bool {
		return s.VenueID == 5 && s.Status == models.SeatAvailable
	})).Return(&models.Seat{ID: 1}, nil).Twice()

	venue, err := service.CreateVenue(&models.VenueCreateRequest{
		Name: "Grand Theater",
		City: "Lima",
		Seats: []models.VenueSeatRequest{
			{Zone: "platea", Row: "A", Number: 1, Price: 800},
			{Zone: "platea", Row: "A", Number: 2, Price: 800},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 5, venue.ID)
	seatStore.AssertExpectations(t)
}

func TestInventoryService_CreateVenue_RejectsInvalidRequest(t *testing.T) {
	service, _, venueStore, _ := newInventoryFixtures()

	_, err := service.CreateVenue(&models.VenueCreateRequest{Name: ""})

	assert.ErrorIs(t, err, models.ErrInvalidInput)
	venueStore.AssertNotCalled(t, "Create", mock.Anything)
}

func TestInventoryService_OccupySeats(t *testing.T) {
	service, _, _, seatStore := newInventoryFixtures()

	seatStore.On("Occupy", []int{10, 11}).Return([]int{10, 11}, nil)

	require.NoError(t, service.OccupySeats([]int{10, 11}))
	seatStore.AssertExpectations(t)
}

func TestInventoryService_OccupySeats_Shortfall(t *testing.T) {
	service, _, _, seatStore := newInventoryFixtures()

	// Seat 11 was already occupied; only seat 10 transitions and must be
	// released again, alone.
	seatStore.On("Occupy", []int{10, 11}).Return([]int{10}, nil)
	seatStore.On("Release", []int{10}).Return(1, nil)

	err := service.OccupySeats([]int{10, 11})
	assert.ErrorIs(t, err, models.ErrSeatUnavailable)
	seatStore.AssertCalled(t, "Release", []int{10})
	seatStore.AssertNotCalled(t, "Release", []int{10, 11})
}

func TestInventoryService_OccupySeats_EmptySelection(t *testing.T) {
	service, _, _, seatStore := newInventoryFixtures()

	err := service.OccupySeats(nil)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	seatStore.AssertNotCalled(t, "Occupy", mock.Anything)
}

func TestInventoryService_GetVenueSeats(t *testing.T) {
	service, _, venueStore, seatStore := newInventoryFixtures()

	venueStore.On("GetByID", 1).Return(&models.Venue{ID: 1, Name: "Grand Theater"}, nil)
	seatStore.On("GetByVenue", 1).Return([]*models.Seat{
		{ID: 10, VenueID: 1, Zone: "platea", Row: "A", Number: 1, Status: models.SeatAvailable},
	}, nil)

	seats, err := service.GetVenueSeats(1)

	require.NoError(t, err)
	require.Len(t, seats, 1)
	assert.Equal(t, "A", seats[0].Row)
}

func TestInventoryService_GetVenueSeats_UnknownVenue(t *testing.T) {
	service, _, venueStore, seatStore := newInventoryFixtures()

	venueStore.On("GetByID", 99).Return(nil, models.ErrVenueNotFound)

	_, err := service.GetVenueSeats(99)
	assert.ErrorIs(t, err, models.ErrVenueNotFound)
	seatStore.AssertNotCalled(t, "GetByVenue", mock.Anything)
}
