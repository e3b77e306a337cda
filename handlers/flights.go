package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/samabhi804-sketch/trip-ai/services"

	"github.com/gin-gonic/gin"
)

type FlightSearchRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate"`
	Passengers    int    `json:"passengers"`
	Class         string `json:"class"`
	MaxPrice      int    `json:"maxPrice"`
}

type SearchMeta struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Passengers    int    `json:"passengers"`
	SearchTime    string `json:"searchTime"`
	TotalResults  int    `json:"totalResults"`
}

type FlightSearchResponse struct {
	Flights    []services.FlightOffer `json:"flights"`
	SearchMeta SearchMeta             `json:"searchMeta"`
}

func SearchFlightsHandler(c *gin.Context) {
	var req FlightSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)

	if req.Origin == "" || req.Destination == "" || req.DepartureDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Origin, destination, and departure date are required",
		})
		return
	}

	if req.Passengers <= 0 {
		req.Passengers = 1
	}
	if req.Class == "" {
		req.Class = "economy" // accepted but not varied by the generator
	}

	// Emulate the upstream provider's latency
	time.Sleep(services.UpstreamDelay())

	gen := services.DefaultFlightGenerator()
	flights := gen.Generate(req.Origin, req.Destination, req.DepartureDate, req.Passengers, req.MaxPrice)

	log.Printf("✅ Flight search %s → %s: %d offers", req.Origin, req.Destination, len(flights))

	c.JSON(http.StatusOK, FlightSearchResponse{
		Flights: flights,
		SearchMeta: SearchMeta{
			Origin:        req.Origin,
			Destination:   req.Destination,
			DepartureDate: req.DepartureDate,
			ReturnDate:    req.ReturnDate,
			Passengers:    req.Passengers,
			SearchTime:    time.Now().UTC().Format(time.RFC3339),
			TotalResults:  len(flights),
		},
	})
}

// FlightDetailsHandler is a best-effort stub: nothing is persisted between
// searches, so it synthesizes a fresh LAX-NRT offer and stamps the requested
// id onto it. Two calls with the same id return different flights.
func FlightDetailsHandler(c *gin.Context) {
	flightID := c.Param("flightId")
	if flightID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Flight ID is required"})
		return
	}

	gen := services.DefaultFlightGenerator()
	flights := gen.Generate("LAX", "NRT", "2024-03-15", 1, 0)
	if len(flights) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	flight := flights[0]
	flight.ID = flightID
	c.JSON(http.StatusOK, flight)
}
