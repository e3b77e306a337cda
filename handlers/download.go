package handlers

import (
	"log"
	"net/http"

	"github.com/samabhi804-sketch/trip-ai/services"
	"github.com/samabhi804-sketch/trip-ai/store"

	"github.com/gin-gonic/gin"
)

// TripPDFHandler renders the trip as a downloadable PDF. Nothing is cached:
// the document is rebuilt from the store on every request.
func TripPDFHandler(c *gin.Context) {
	trip, ok := store.GetTrip(c.Param("tripId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	pdfBytes, err := services.GenerateTripPDF(trip)
	if err != nil {
		log.Printf("❌ PDF generation failed for %s: %v", trip.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=trip-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
