package handlers

import (
	"net/http"

	"seat-ticketing-platform/internal/models"
	"seat-ticketing-platform/internal/services"
)

// VenueHandler handles venue reference data and seat maps
type VenueHandler struct {
	inventory services.InventoryServiceInterface
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(inventory services.InventoryServiceInterface) *VenueHandler {
	return &VenueHandler{inventory: inventory}
}

// CreateVenue handles POST /api/venues. The body may carry a seat map,
// which is created alongside the venue.
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req models.VenueCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	venue, err := h.inventory.CreateVenue(&req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, venue)
}

// ListVenues handles GET /api/venues
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.inventory.ListVenues()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, venues)
}

// GetVenue handles GET /api/venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid venue id")
		return
	}

	venue, err := h.inventory.GetVenue(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

// GetVenueSeats handles GET /api/venues/{id}/seats
func (h *VenueHandler) GetVenueSeats(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid venue id")
		return
	}

	seats, err := h.inventory.GetVenueSeats(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seats)
}
