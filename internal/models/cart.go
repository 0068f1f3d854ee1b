package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ServiceChargeRate is the fraction of the subtotal charged as a service fee.
const ServiceChargeRate = 0.18

// CartItemKind distinguishes reserved-seat items from general admission
type CartItemKind string

const (
	CartItemSeat    CartItemKind = "seat"
	CartItemGeneral CartItemKind = "general"
)

// CartItem represents one purchasable unit in the shopping cart
type CartItem struct {
	ID       string       `json:"id"`
	Kind     CartItemKind `json:"kind"`
	SeatID   int          `json:"seat_id,omitempty"` // only for seat items
	Row      string       `json:"row,omitempty"`     // row letter, e.g. "A"
	Seat     int          `json:"seat,omitempty"`    // seat number within the row
	Zone     string       `json:"zone"`
	Price    int          `json:"price"` // unit price in cents
	Quantity int          `json:"quantity"`
}

// Cart represents a shopping cart bound to a single event
type Cart struct {
	EventID   int        `json:"event_id"`
	EventName string     `json:"event_name"`
	Items     []CartItem `json:"items"`
}

// CartSummary is the derived pricing breakdown for a set of cart items.
// It is never persisted; totals are always recomputed from the items.
type CartSummary struct {
	Subtotal      int  `json:"subtotal"`       // in cents
	ServiceCharge int  `json:"service_charge"` // in cents
	Total         int  `json:"total"`          // in cents
	TotalItems    int  `json:"total_items"`
	IsEmpty       bool `json:"is_empty"`
}

// Validate validates a cart item
func (i *CartItem) Validate() error {
	if i.ID == "" {
		return errors.New("cart item id is required")
	}

	switch i.Kind {
	case CartItemSeat:
		if i.Quantity != 1 {
			return errors.New("seat items always have quantity 1")
		}
		if i.SeatID <= 0 {
			return errors.New("seat item requires a seat reference")
		}
	case CartItemGeneral:
		if i.Quantity < 1 {
			return errors.New("general admission quantity must be at least 1")
		}
	default:
		return fmt.Errorf("invalid cart item kind: %s", i.Kind)
	}

	if i.Price < 0 {
		return errors.New("cart item price cannot be negative")
	}

	return nil
}

// EffectiveQuantity returns the quantity a cart item contributes. Seat items
// always count as one unit.
func (i *CartItem) EffectiveQuantity() int {
	if i.Kind == CartItemSeat {
		return 1
	}
	return i.Quantity
}

// Description returns a human-readable label for the item, used as the
// line-item name sent to the payment processor.
func (i *CartItem) Description() string {
	if i.Kind == CartItemSeat {
		return fmt.Sprintf("%s - Row %s Seat %d", i.Zone, i.Row, i.Seat)
	}
	return fmt.Sprintf("%s - General Admission", i.Zone)
}

// Summarize computes the pricing breakdown for a sequence of cart items.
// Pure function: no side effects, no I/O. Duplicate item ids are the caller's
// responsibility. The service charge is rounded half-up to the cent.
func Summarize(items []CartItem) CartSummary {
	if len(items) == 0 {
		return CartSummary{IsEmpty: true}
	}

	subtotal := 0
	totalItems := 0
	for _, item := range items {
		qty := item.EffectiveQuantity()
		subtotal += item.Price * qty
		totalItems += qty
	}

	serviceCharge := ComputeServiceCharge(subtotal)

	return CartSummary{
		Subtotal:      subtotal,
		ServiceCharge: serviceCharge,
		Total:         subtotal + serviceCharge,
		TotalItems:    totalItems,
	}
}

// ComputeServiceCharge returns the service charge in cents for a subtotal in
// cents, rounded half-up so the result is currency-safe.
func ComputeServiceCharge(subtotal int) int {
	charge := decimal.NewFromInt(int64(subtotal)).
		Mul(decimal.NewFromFloat(ServiceChargeRate)).
		Round(0)
	return int(charge.IntPart())
}

// ValidateItems validates every item in a cart and rejects duplicate ids
func ValidateItems(items []CartItem) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate cart item id: %s", item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}
