package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TicketKind distinguishes reserved-seat tickets from general admission
type TicketKind string

const (
	TicketSeat    TicketKind = "seat"
	TicketGeneral TicketKind = "general"
)

// Ticket represents one sold admission unit. Tickets are linked to the
// movement that paid for them through a join record.
type Ticket struct {
	ID        int        `json:"id" db:"id"`
	Code      string     `json:"code" db:"code"`
	EventID   int        `json:"event_id" db:"event_id"`
	UserID    int        `json:"user_id" db:"user_id"`
	Kind      TicketKind `json:"kind" db:"kind"`
	Zone      string     `json:"zone" db:"zone"`
	Row       string     `json:"row,omitempty" db:"row_label"`
	Seat      int        `json:"seat,omitempty" db:"seat_number"`
	Price     int        `json:"price" db:"price"` // in cents
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// TicketCreateRequest represents the data needed to create a ticket
type TicketCreateRequest struct {
	EventID int        `json:"event_id"`
	UserID  int        `json:"user_id"`
	Kind    TicketKind `json:"kind"`
	Zone    string     `json:"zone"`
	Row     string     `json:"row"`
	Seat    int        `json:"seat"`
	Price   int        `json:"price"`
}

// Validate validates ticket creation data
func (req *TicketCreateRequest) Validate() error {
	if req.EventID <= 0 {
		return errors.New("ticket event is required")
	}
	if req.UserID <= 0 {
		return errors.New("ticket owner is required")
	}
	switch req.Kind {
	case TicketSeat:
		if req.Row == "" || req.Seat <= 0 {
			return errors.New("seat tickets require row and seat number")
		}
	case TicketGeneral:
	default:
		return errors.New("invalid ticket kind")
	}
	if req.Price < 0 {
		return errors.New("ticket price cannot be negative")
	}
	return nil
}

// GenerateTicketCode generates a unique ticket code for entry scanning
func GenerateTicketCode() string {
	return fmt.Sprintf("TKT-%s", uuid.NewString())
}

// IsSeat returns true for reserved-seat tickets
func (t *Ticket) IsSeat() bool {
	return t.Kind == TicketSeat
}
