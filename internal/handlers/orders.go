package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"seat-ticketing-platform/internal/models"
	"seat-ticketing-platform/internal/services"
)

// OrdersHandler serves the read-side order and ticket listings
type OrdersHandler struct {
	orders services.OrdersServiceInterface
}

// NewOrdersHandler creates a new orders handler
func NewOrdersHandler(orders services.OrdersServiceInterface) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// ListMovements handles GET /api/movements. Filters arrive as query
// parameters: userId, eventId, status, limit, offset, sort=desc.
func (h *OrdersHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	filters, err := movementFiltersFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.orders.ListMovements(filters)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetSalesStats handles GET /api/movements/stats
func (h *OrdersHandler) GetSalesStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.orders.GetSalesStats()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetUserTickets handles GET /api/users/{id}/tickets
func (h *OrdersHandler) GetUserTickets(w http.ResponseWriter, r *http.Request) {
	userID, err := urlParamInt(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	tickets, err := h.orders.GetUserTickets(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tickets": tickets})
}

// movementFiltersFromQuery parses the listing filters, rejecting
// non-numeric ids rather than silently ignoring them
func movementFiltersFromQuery(r *http.Request) (models.MovementSearchFilters, error) {
	var filters models.MovementSearchFilters
	var err error

	if filters.UserID, err = queryInt(r, "userId"); err != nil {
		return filters, fmt.Errorf("invalid userId parameter")
	}
	if filters.EventID, err = queryInt(r, "eventId"); err != nil {
		return filters, fmt.Errorf("invalid eventId parameter")
	}
	if filters.Limit, err = queryInt(r, "limit"); err != nil {
		return filters, fmt.Errorf("invalid limit parameter")
	}
	if filters.Offset, err = queryInt(r, "offset"); err != nil {
		return filters, fmt.Errorf("invalid offset parameter")
	}
	filters.Status = models.MovementStatus(r.URL.Query().Get("status"))
	filters.SortDesc = r.URL.Query().Get("sort") == "desc"
	return filters, nil
}

// queryInt reads an optional non-negative integer query parameter
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, strconv.ErrSyntax
	}
	return value, nil
}
