package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"seat-ticketing-platform/internal/models"
	"seat-ticketing-platform/internal/services"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeError writes a JSON error body with the given status code
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps a service error onto an HTTP status
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case services.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrSalesClosed):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrSeatUnavailable):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrUnauthorized):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrDuplicateEntry):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON decodes a request body into dst, rejecting unknown fields
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// decodeJSONLenient decodes a request body into dst, ignoring fields the
// server does not use. For endpoints whose documented body carries values
// the server recomputes, such as client-side totals.
func decodeJSONLenient(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
