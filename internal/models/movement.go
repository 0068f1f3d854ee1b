package models

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

// MovementStatus represents the fulfillment state of a movement. The ordered
// intermediate states make a partially materialized purchase resumable.
type MovementStatus string

const (
	MovementPending        MovementStatus = "pending"
	MovementTicketsCreated MovementStatus = "tickets_created"
	MovementSeatsReserved  MovementStatus = "seats_reserved"
	MovementPaid           MovementStatus = "paid"
	MovementCancelled      MovementStatus = "cancelled"
)

// Movement represents a persisted purchase record. At most one movement
// exists per payment-processor session id; the database enforces this with a
// unique constraint on SessionID.
type Movement struct {
	ID              int            `json:"id" db:"id"`
	Reference       string         `json:"reference" db:"reference"`
	UserID          int            `json:"user_id" db:"user_id"`
	EventID         int            `json:"event_id" db:"event_id"`
	Subtotal        int            `json:"subtotal" db:"subtotal"`               // in cents
	ServiceCharge   int            `json:"service_charge" db:"service_charge"`   // in cents
	Total           int            `json:"total" db:"total"`                     // in cents
	PaymentType     string         `json:"payment_type" db:"payment_type"`       // e.g. "card"
	CardBrand       string         `json:"card_brand" db:"card_brand"`           // e.g. "visa", "other"
	CustomerEmail   string         `json:"customer_email" db:"customer_email"`
	CustomerName    string         `json:"customer_name" db:"customer_name"`
	SessionID       string         `json:"session_id" db:"session_id"`
	PaymentIntentID string         `json:"payment_intent_id" db:"payment_intent_id"`
	Status          MovementStatus `json:"status" db:"status"`
	FailureReason   string         `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// MovementCreateRequest represents the data needed to create a new movement
type MovementCreateRequest struct {
	UserID          int            `json:"user_id"`
	EventID         int            `json:"event_id"`
	Subtotal        int            `json:"subtotal"`
	ServiceCharge   int            `json:"service_charge"`
	Total           int            `json:"total"`
	PaymentType     string         `json:"payment_type"`
	CardBrand       string         `json:"card_brand"`
	CustomerEmail   string         `json:"customer_email"`
	CustomerName    string         `json:"customer_name"`
	SessionID       string         `json:"session_id"`
	PaymentIntentID string         `json:"payment_intent_id"`
	Status          MovementStatus `json:"status"`
}

// MovementSearchFilters narrows and pages a movement listing. Zero-valued
// fields are ignored.
type MovementSearchFilters struct {
	UserID   int
	EventID  int
	Status   MovementStatus
	Limit    int
	Offset   int
	SortDesc bool
}

var (
	// Movement reference format: MOV-YYYYMMDD-XXXXXX (e.g., MOV-20240101-123456)
	movementReferenceRegex = regexp.MustCompile(`^MOV-\d{8}-\d{6}$`)
	// Email validation regex for movements
	movementEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Validate validates the movement data
func (m *Movement) Validate() error {
	if m.Reference == "" {
		return errors.New("movement reference is required")
	}
	if !movementReferenceRegex.MatchString(m.Reference) {
		return errors.New("movement reference format is invalid")
	}
	if err := validateMovementAmounts(m.Subtotal, m.ServiceCharge, m.Total); err != nil {
		return err
	}
	if err := validateMovementStatus(m.Status); err != nil {
		return err
	}
	return validateMovementCustomer(m.CustomerEmail, m.CustomerName)
}

// Validate validates movement creation data
func (req *MovementCreateRequest) Validate() error {
	if req.SessionID == "" {
		return errors.New("session id is required")
	}
	if err := validateMovementAmounts(req.Subtotal, req.ServiceCharge, req.Total); err != nil {
		return err
	}
	if err := validateMovementStatus(req.Status); err != nil {
		return err
	}
	return validateMovementCustomer(req.CustomerEmail, req.CustomerName)
}

func validateMovementAmounts(subtotal, serviceCharge, total int) error {
	if subtotal < 0 || serviceCharge < 0 || total < 0 {
		return errors.New("amounts cannot be negative")
	}
	if total != subtotal+serviceCharge {
		return errors.New("total must equal subtotal plus service charge")
	}
	return nil
}

func validateMovementStatus(status MovementStatus) error {
	switch status {
	case MovementPending, MovementTicketsCreated, MovementSeatsReserved, MovementPaid, MovementCancelled:
		return nil
	default:
		return errors.New("invalid movement status")
	}
}

func validateMovementCustomer(email, name string) error {
	if email == "" {
		return errors.New("customer email is required")
	}
	if len(email) > 255 {
		return errors.New("customer email must be less than 255 characters")
	}
	if !movementEmailRegex.MatchString(email) {
		return errors.New("customer email format is invalid")
	}
	if len(name) > 255 {
		return errors.New("customer name must be less than 255 characters")
	}
	if name != "" && strings.TrimSpace(name) == "" {
		return errors.New("customer name cannot be only whitespace")
	}
	return nil
}

// GenerateMovementReference generates a unique movement reference
func GenerateMovementReference() string {
	now := time.Now()
	dateStr := now.Format("20060102")

	// Generate a 6-digit random number using crypto/rand for better uniqueness
	max := big.NewInt(1000000)
	randomNum, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fallback to timestamp-based generation if crypto/rand fails
		return fmt.Sprintf("MOV-%s-%06d", dateStr, now.UnixNano()%1000000)
	}

	return fmt.Sprintf("MOV-%s-%06d", dateStr, randomNum.Int64())
}

// IsPaid returns true if the movement is fully materialized and paid
func (m *Movement) IsPaid() bool {
	return m.Status == MovementPaid
}

// IsCancelled returns true if the movement is cancelled
func (m *Movement) IsCancelled() bool {
	return m.Status == MovementCancelled
}

// IsTerminal returns true if no further status transitions are expected
func (m *Movement) IsTerminal() bool {
	return m.Status == MovementPaid || m.Status == MovementCancelled
}

// CanBeCancelled returns true if the movement can still be cancelled
func (m *Movement) CanBeCancelled() bool {
	return !m.IsTerminal()
}

// TotalInCurrency returns the total amount in major currency units
func (m *Movement) TotalInCurrency() float64 {
	return float64(m.Total) / 100.0
}

// GetStatusDisplayName returns a human-readable status name
func (m *Movement) GetStatusDisplayName() string {
	switch m.Status {
	case MovementPending:
		return "Pending Payment"
	case MovementTicketsCreated:
		return "Tickets Created"
	case MovementSeatsReserved:
		return "Seats Reserved"
	case MovementPaid:
		return "Paid"
	case MovementCancelled:
		return "Cancelled"
	default:
		return string(m.Status)
	}
}
