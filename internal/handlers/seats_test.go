package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"seat-ticketing-platform/internal/models"
)

func TestSeatHandler_UpdateSeats(t *testing.T) {
	inventory := &MockInventoryService{}
	handler := NewSeatHandler(inventory)

	inventory.On("OccupySeats", []int{10, 11}).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/seats/update", strings.NewReader(`{"selectedSeats":[10,11]}`))
	rec := httptest.NewRecorder()

	handler.UpdateSeats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]bool
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp["success"])
}

func TestSeatHandler_UpdateSeats_Conflict(t *testing.T) {
	inventory := &MockInventoryService{}
	handler := NewSeatHandler(inventory)

	inventory.On("OccupySeats", []int{10}).Return(fmt.Errorf("%w: 1 of 1 seats already taken", models.ErrSeatUnavailable))

	req := httptest.NewRequest(http.MethodPost, "/api/seats/update", strings.NewReader(`{"selectedSeats":[10]}`))
	rec := httptest.NewRecorder()

	handler.UpdateSeats(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["error"])
}

func TestSeatHandler_UpdateSeats_InvalidBody(t *testing.T) {
	inventory := &MockInventoryService{}
	handler := NewSeatHandler(inventory)

	req := httptest.NewRequest(http.MethodPost, "/api/seats/update", strings.NewReader(`{"selectedSeats":"x"}`))
	rec := httptest.NewRecorder()

	handler.UpdateSeats(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	inventory.AssertNotCalled(t, "OccupySeats", mock.Anything)
}
