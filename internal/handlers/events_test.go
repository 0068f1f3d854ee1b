package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"seat-ticketing-platform/internal/models"
)

func newEventRouter(inventory *MockInventoryService) http.Handler {
	handler := NewEventHandler(inventory)
	r := chi.NewRouter()
	r.Get("/api/events", handler.ListEvents)
	r.Post("/api/events", handler.CreateEvent)
	r.Get("/api/events/{id}", handler.GetEvent)
	r.Put("/api/events/{id}", handler.UpdateEvent)
	r.Delete("/api/events/{id}", handler.DeleteEvent)
	return r
}

func TestEventHandler_GetEvent(t *testing.T) {
	inventory := &MockInventoryService{}
	inventory.On("GetEvent", 7).Return(&models.Event{ID: 7, Name: "Summer Concert"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/events/7", nil)
	rec := httptest.NewRecorder()
	newEventRouter(inventory).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var event models.Event
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&event))
	assert.Equal(t, "Summer Concert", event.Name)
}

func TestEventHandler_GetEvent_NotFound(t *testing.T) {
	inventory := &MockInventoryService{}
	inventory.On("GetEvent", 99).Return(nil, models.ErrEventNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/events/99", nil)
	rec := httptest.NewRecorder()
	newEventRouter(inventory).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventHandler_GetEvent_InvalidID(t *testing.T) {
	inventory := &MockInventoryService{}

	req := httptest.NewRequest(http.MethodGet, "/api/events/abc", nil)
	rec := httptest.NewRecorder()
	newEventRouter(inventory).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventHandler_CreateEvent(t *testing.T) {
	inventory := &MockInventoryService{}
	created := &models.Event{ID: 8, Name: "Jazz Night", VenueID: 1, SaleStatus: models.SalePresale}
	inventory.On("CreateEvent", &models.EventCreateRequest{
		Name:       "Jazz Night",
		Date:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Time:       "20:00",
		VenueID:    1,
		SaleStatus: models.SalePresale,
	}).Return(created, nil)

	body := `{"name":"Jazz Night","date":"2026-10-01T00:00:00Z","time":"20:00","venue_id":1,"sale_status":"presale"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newEventRouter(inventory).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var event models.Event
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&event))
	assert.Equal(t, 8, event.ID)
}

func TestEventHandler_CreateEvent_InvalidInput(t *testing.T) {
	inventory := &MockInventoryService{}
	inventory.On("CreateEvent", mock.Anything).Return(nil, models.ErrInvalidInput)

	body := `{"name":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newEventRouter(inventory).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventHandler_DeleteEvent(t *testing.T) {
	inventory := &MockInventoryService{}
	inventory.On("DeleteEvent", 7).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/events/7", nil)
	rec := httptest.NewRecorder()
	newEventRouter(inventory).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	inventory.AssertExpectations(t)
}
