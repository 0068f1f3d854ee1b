package handlers

import (
	"errors"
	"net/http"

	"seat-ticketing-platform/internal/models"
	"seat-ticketing-platform/internal/services"
)

// SeatHandler handles direct seat inventory updates
type SeatHandler struct {
	inventory services.InventoryServiceInterface
}

// NewSeatHandler creates a new seat handler
func NewSeatHandler(inventory services.InventoryServiceInterface) *SeatHandler {
	return &SeatHandler{inventory: inventory}
}

// UpdateSeats handles POST /api/seats/update, marking the selected seats
// occupied. The response shape is {"success": true} or
// {"success": false, "error": ...} whatever went wrong.
func (h *SeatHandler) UpdateSeats(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SelectedSeats []int `json:"selectedSeats"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	if err := h.inventory.OccupySeats(req.SelectedSeats); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, models.ErrInvalidInput):
			status = http.StatusBadRequest
		case errors.Is(err, models.ErrSeatUnavailable):
			status = http.StatusConflict
		}
		writeJSON(w, status, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
