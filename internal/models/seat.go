package models

import (
	"errors"
	"fmt"
	"time"
)

// SeatStatus represents the occupancy state of a seat
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatOccupied  SeatStatus = "occupied"
)

// Seat represents one inventory unit in a venue seat map. Seats are mutated
// to occupied only after a successful payment confirmation.
type Seat struct {
	ID        int        `json:"id" db:"id"`
	VenueID   int        `json:"venue_id" db:"venue_id"`
	Zone      string     `json:"zone" db:"zone"`
	Row       string     `json:"row" db:"row_label"`
	Number    int        `json:"number" db:"seat_number"`
	Price     int        `json:"price" db:"price"` // in cents
	Color     string     `json:"color" db:"color"`
	PosX      float64    `json:"pos_x" db:"pos_x"`
	PosY      float64    `json:"pos_y" db:"pos_y"`
	Status    SeatStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// Validate validates the seat data
func (s *Seat) Validate() error {
	if s.VenueID <= 0 {
		return errors.New("seat venue is required")
	}
	if s.Zone == "" {
		return errors.New("seat zone is required")
	}
	if s.Row == "" {
		return errors.New("seat row is required")
	}
	if s.Number <= 0 {
		return errors.New("seat number must be positive")
	}
	if s.Price < 0 {
		return errors.New("seat price cannot be negative")
	}
	switch s.Status {
	case SeatAvailable, SeatOccupied:
	default:
		return errors.New("invalid seat status")
	}
	return nil
}

// IsAvailable returns true if the seat can still be sold
func (s *Seat) IsAvailable() bool {
	return s.Status == SeatAvailable
}

// Label returns the display label for the seat, e.g. "A12"
func (s *Seat) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Number)
}
