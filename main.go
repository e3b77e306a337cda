package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/samabhi804-sketch/trip-ai/handlers"
	"github.com/samabhi804-sketch/trip-ai/services"
	"github.com/samabhi804-sketch/trip-ai/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

var (
	rateLimiters = make(map[string]*rate.Limiter)
	rateMutex    = &sync.RWMutex{}
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	// Initialize the in-memory trip store
	store.InitTrips()

	// Initialize flight search settings
	services.InitFlights()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	frontendURLs := os.Getenv("FRONTEND_URL")
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURLs != "" {
		for _, u := range strings.Split(frontendURLs, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(rateLimitMiddleware())

	// Routes
	api := r.Group("/api")
	{
		api.GET("/ping", handlers.PingHandler)
		api.GET("/health", handlers.HealthHandler)

		api.POST("/chat", handlers.ChatHandler)

		api.GET("/trips", handlers.ListTripsHandler)
		api.GET("/trips/:tripId", handlers.GetTripHandler)
		api.POST("/trips", handlers.CreateTripHandler)
		api.PUT("/trips/:tripId", handlers.UpdateTripHandler)
		api.DELETE("/trips/:tripId", handlers.DeleteTripHandler)
		api.GET("/trips/:tripId/pdf", handlers.TripPDFHandler)

		api.POST("/flights/search", handlers.SearchFlightsHandler)
		api.GET("/flights/:flightId", handlers.FlightDetailsHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 TripAI backend starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getRateLimiter(ip string) *rate.Limiter {
	rateMutex.RLock()
	limiter, exists := rateLimiters[ip]
	rateMutex.RUnlock()

	if !exists {
		rateMutex.Lock()
		limiter = rate.NewLimiter(rate.Limit(10), 20) // 10 req/sec, burst 20
		rateLimiters[ip] = limiter
		rateMutex.Unlock()
	}

	return limiter
}

func rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := getRateLimiter(ip)

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, slow down",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
