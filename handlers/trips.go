package handlers

import (
	"log"
	"net/http"

	"github.com/samabhi804-sketch/trip-ai/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateTripRequest struct {
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	Dates       string  `json:"dates"`
	Travelers   int     `json:"travelers"`
	Budget      float64 `json:"budget"`
}

func ListTripsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, store.ListTrips())
}

func GetTripHandler(c *gin.Context) {
	trip, ok := store.GetTrip(c.Param("tripId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}
	c.JSON(http.StatusOK, trip)
}

func CreateTripHandler(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Title == "" || req.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and destination are required"})
		return
	}

	travelers := req.Travelers
	if travelers <= 0 {
		travelers = 1
	}

	trip := store.CreateTrip(store.Trip{
		ID:          "trip-" + uuid.New().String(),
		Title:       req.Title,
		Destination: req.Destination,
		Dates:       req.Dates,
		Travelers:   travelers,
		Budget:      req.Budget,
		Status:      "planning",
	})

	log.Printf("✅ Trip created: %s (%s)", trip.ID, trip.Title)
	c.JSON(http.StatusCreated, trip)
}

func UpdateTripHandler(c *gin.Context) {
	var upd store.TripUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	trip, ok := store.UpdateTrip(c.Param("tripId"), upd)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}
	c.JSON(http.StatusOK, trip)
}

func DeleteTripHandler(c *gin.Context) {
	if !store.DeleteTrip(c.Param("tripId")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
