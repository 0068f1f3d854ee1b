package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"seat-ticketing-platform/internal/models"
)

// SessionMetadata is the cart snapshot attached to a checkout session. The
// processor echoes it back on webhooks and session lookups, so fulfillment can
// run from the session alone without any server-side cart state surviving.
type SessionMetadata struct {
	Items         []models.CartItem
	EventID       int
	EventName     string
	CustomerEmail string
	CustomerName  string
}

// Encode flattens the metadata into the string map the processor stores.
// Items are carried as a single JSON blob under "items".
func (m *SessionMetadata) Encode() (map[string]string, error) {
	itemsJSON, err := json.Marshal(m.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart items: %w", err)
	}

	return map[string]string{
		"items":          string(itemsJSON),
		"event_id":       strconv.Itoa(m.EventID),
		"event_name":     m.EventName,
		"customer_email": m.CustomerEmail,
		"customer_name":  m.CustomerName,
	}, nil
}

// ParseSessionMetadata reconstructs the cart snapshot from processor metadata
func ParseSessionMetadata(raw map[string]string) (*SessionMetadata, error) {
	if raw == nil {
		return nil, fmt.Errorf("session has no metadata")
	}

	itemsJSON, ok := raw["items"]
	if !ok || itemsJSON == "" {
		return nil, fmt.Errorf("session metadata is missing cart items")
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("session metadata has an empty cart")
	}

	eventID, err := strconv.Atoi(raw["event_id"])
	if err != nil || eventID <= 0 {
		return nil, fmt.Errorf("session metadata has an invalid event id %q", raw["event_id"])
	}

	meta := &SessionMetadata{
		Items:         items,
		EventID:       eventID,
		EventName:     raw["event_name"],
		CustomerEmail: raw["customer_email"],
		CustomerName:  raw["customer_name"],
	}
	if meta.CustomerEmail == "" {
		return nil, fmt.Errorf("session metadata is missing the customer email")
	}

	return meta, nil
}

// SeatIDs returns the seat ids referenced by seat items, in cart order
func (m *SessionMetadata) SeatIDs() []int {
	var ids []int
	for _, item := range m.Items {
		if item.Kind == models.CartItemSeat {
			ids = append(ids, item.SeatID)
		}
	}
	return ids
}
