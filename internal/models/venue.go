package models

import (
	"errors"
	"time"
)

// Venue represents immutable reference data describing where events happen
type Venue struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	City      string    `json:"city" db:"city"`
	State     string    `json:"state" db:"state"`
	Country   string    `json:"country" db:"country"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// VenueCreateRequest creates a venue together with its seat map
type VenueCreateRequest struct {
	Name    string             `json:"name"`
	Address string             `json:"address"`
	City    string             `json:"city"`
	State   string             `json:"state"`
	Country string             `json:"country"`
	Seats   []VenueSeatRequest `json:"seats,omitempty"`
}

// VenueSeatRequest describes one seat position in a new venue's seat map
type VenueSeatRequest struct {
	Zone   string  `json:"zone"`
	Row    string  `json:"row"`
	Number int     `json:"number"`
	Price  int     `json:"price"`
	Color  string  `json:"color"`
	PosX   float64 `json:"pos_x"`
	PosY   float64 `json:"pos_y"`
}

// Validate validates venue creation data
func (req *VenueCreateRequest) Validate() error {
	if req.Name == "" {
		return errors.New("venue name is required")
	}
	if req.City == "" {
		return errors.New("venue city is required")
	}
	for _, seat := range req.Seats {
		if seat.Zone == "" {
			return errors.New("seat zone is required")
		}
		if seat.Price < 0 {
			return errors.New("seat price cannot be negative")
		}
	}
	return nil
}
