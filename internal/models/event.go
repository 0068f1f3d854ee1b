package models

import (
	"errors"
	"strings"
	"time"
)

// EventSaleStatus represents where an event is in its sale lifecycle.
// The sale status gates whether checkout is permitted.
type EventSaleStatus string

const (
	SalePresale  EventSaleStatus = "presale"
	SaleActive   EventSaleStatus = "active"
	SaleSoldOut  EventSaleStatus = "soldout"
	SaleFinished EventSaleStatus = "finished"
)

// Event represents an event in the system
type Event struct {
	ID          int             `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Date        time.Time       `json:"date" db:"event_date"`
	Time        string          `json:"time" db:"event_time"` // display time, e.g. "20:00"
	VenueID     int             `json:"venue_id" db:"venue_id"`
	SaleStatus  EventSaleStatus `json:"sale_status" db:"sale_status"`
	OnlineSales bool            `json:"online_sales" db:"online_sales"`
	ImageURL    string          `json:"image_url" db:"image_url"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// EventCreateRequest represents the data needed to create a new event
type EventCreateRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Time        string          `json:"time"`
	VenueID     int             `json:"venue_id"`
	SaleStatus  EventSaleStatus `json:"sale_status"`
	OnlineSales bool            `json:"online_sales"`
	ImageURL    string          `json:"image_url"`
}

// EventUpdateRequest represents the data that can be updated for an event
type EventUpdateRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Time        string          `json:"time"`
	SaleStatus  EventSaleStatus `json:"sale_status"`
	OnlineSales bool            `json:"online_sales"`
	ImageURL    string          `json:"image_url"`
}

// Validate validates event creation data
func (req *EventCreateRequest) Validate() error {
	if err := validateEventName(req.Name); err != nil {
		return err
	}
	if req.VenueID <= 0 {
		return errors.New("event venue is required")
	}
	if req.Date.IsZero() {
		return errors.New("event date is required")
	}
	return validateSaleStatus(req.SaleStatus)
}

// Validate validates event update data
func (req *EventUpdateRequest) Validate() error {
	if err := validateEventName(req.Name); err != nil {
		return err
	}
	return validateSaleStatus(req.SaleStatus)
}

func validateEventName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("event name is required")
	}
	if len(name) > 255 {
		return errors.New("event name must be less than 255 characters")
	}
	return nil
}

func validateSaleStatus(status EventSaleStatus) error {
	switch status {
	case SalePresale, SaleActive, SaleSoldOut, SaleFinished:
		return nil
	default:
		return errors.New("invalid event sale status")
	}
}

// CanSellOnline returns true if online checkout is permitted for the event
func (e *Event) CanSellOnline() bool {
	return e.OnlineSales && e.SaleStatus == SaleActive
}

// IsFinished returns true if the event sale lifecycle has ended
func (e *Event) IsFinished() bool {
	return e.SaleStatus == SaleFinished
}
