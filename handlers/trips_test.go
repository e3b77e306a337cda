package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/samabhi804-sketch/trip-ai/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTrips(t *testing.T) {
	store.InitTrips()
	r := setupRouter()

	w := doJSON(t, r, http.MethodGet, "/api/trips", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summaries []store.TripSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "trip-001", summaries[0].ID)

	// list view carries no nested detail
	assert.NotContains(t, w.Body.String(), "itinerary")
}

func TestGetTrip(t *testing.T) {
	store.InitTrips()
	r := setupRouter()

	w := doJSON(t, r, http.MethodGet, "/api/trips/trip-001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var trip store.Trip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trip))
	assert.Equal(t, "Amazing Tokyo Adventure", trip.Title)
	assert.Len(t, trip.Flights, 2)

	w = doJSON(t, r, http.MethodGet, "/api/trips/trip-nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Trip not found")
}

func TestCreateTripValidation(t *testing.T) {
	store.InitTrips()
	r := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/trips", map[string]any{"dates": "sometime"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title and destination are required")
}

func TestCreateTrip(t *testing.T) {
	store.InitTrips()
	r := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/trips", map[string]any{
		"title":       "Weekend in Paris",
		"destination": "Paris, France",
		"dates":       "June 7-9, 2024",
		"travelers":   2,
		"budget":      1500,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var trip store.Trip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trip))
	assert.True(t, strings.HasPrefix(trip.ID, "trip-"))
	assert.Equal(t, "planning", trip.Status)
	assert.Equal(t, 2, trip.Travelers)

	_, ok := store.GetTrip(trip.ID)
	assert.True(t, ok)
}

func TestUpdateTrip(t *testing.T) {
	store.InitTrips()
	r := setupRouter()

	w := doJSON(t, r, http.MethodPut, "/api/trips/trip-001", map[string]any{
		"status": "completed",
		"spent":  3400,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var trip store.Trip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trip))
	assert.Equal(t, "completed", trip.Status)
	assert.Equal(t, 3400.0, trip.Spent)
	assert.Equal(t, "Amazing Tokyo Adventure", trip.Title)

	w = doJSON(t, r, http.MethodPut, "/api/trips/trip-nope", map[string]any{"status": "planning"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTrip(t *testing.T) {
	store.InitTrips()
	r := setupRouter()

	w := doJSON(t, r, http.MethodDelete, "/api/trips/trip-001", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/trips/trip-001", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTripPDFDownload(t *testing.T) {
	store.InitTrips()
	r := setupRouter()

	w := doJSON(t, r, http.MethodGet, "/api/trips/trip-001/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])

	w = doJSON(t, r, http.MethodGet, "/api/trips/trip-nope/pdf", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
