package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "TripAI API",
	})
}

func PingHandler(c *gin.Context) {
	message := os.Getenv("PING_MESSAGE")
	if message == "" {
		message = "ping"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
