package store

import (
	"log"
	"sync"
	"time"
)

// ─── Models ──────────────────────────────────────────────────────────────────

type Trip struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Destination     string         `json:"destination"`
	Dates           string         `json:"dates"`
	Duration        string         `json:"duration"`
	Travelers       int            `json:"travelers"`
	Budget          float64        `json:"budget"`
	Spent           float64        `json:"spent"`
	Status          string         `json:"status"` // planning | confirmed | completed | cancelled
	BookingProgress int            `json:"bookingProgress"`
	CreatedAt       string         `json:"createdAt"`
	UpdatedAt       string         `json:"updatedAt"`
	Itinerary       []ItineraryDay `json:"itinerary"`
	Flights         []TripFlight   `json:"flights"`
	Bookings        []Booking      `json:"bookings"`
}

// TripSummary is the list view of a trip, without the nested detail.
type TripSummary struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Destination     string  `json:"destination"`
	Dates           string  `json:"dates"`
	Duration        string  `json:"duration"`
	Travelers       int     `json:"travelers"`
	Budget          float64 `json:"budget"`
	Spent           float64 `json:"spent"`
	Status          string  `json:"status"`
	BookingProgress int     `json:"bookingProgress"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

type ItineraryDay struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	ID          string  `json:"id"`
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Type        string  `json:"type"` // flight | hotel | activity | restaurant
	Duration    string  `json:"duration,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Status      string  `json:"status"`
}

type TripFlight struct {
	ID           string     `json:"id"`
	Airline      string     `json:"airline"`
	FlightNumber string     `json:"flightNumber"`
	Departure    FlightStop `json:"departure"`
	Arrival      FlightStop `json:"arrival"`
	Duration     string     `json:"duration"`
	Price        float64    `json:"price"`
	Status       string     `json:"status"` // booked | pending | cancelled
}

type FlightStop struct {
	Airport string `json:"airport"`
	City    string `json:"city"`
	Time    string `json:"time"`
	Date    string `json:"date"`
}

type Booking struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"` // hotel | activity | restaurant | transport
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
}

// TripUpdate carries the mutable fields of a PUT request; nil means
// "leave unchanged".
type TripUpdate struct {
	Title           *string         `json:"title"`
	Destination     *string         `json:"destination"`
	Dates           *string         `json:"dates"`
	Duration        *string         `json:"duration"`
	Travelers       *int            `json:"travelers"`
	Budget          *float64        `json:"budget"`
	Spent           *float64        `json:"spent"`
	Status          *string         `json:"status"`
	BookingProgress *int            `json:"bookingProgress"`
	Itinerary       *[]ItineraryDay `json:"itinerary"`
	Flights         *[]TripFlight   `json:"flights"`
	Bookings        *[]Booking      `json:"bookings"`
}

// ─── Store ────────────────────────────────────────────────────────────────────

// Trips live in process memory only; restarting the server resets them to the
// seed data. The mutex is the only synchronization the store needs.
var (
	mu    sync.RWMutex
	trips []Trip
)

// InitTrips resets the store to the seeded demo trip.
func InitTrips() {
	mu.Lock()
	defer mu.Unlock()
	trips = seedTrips()
	log.Printf("✅ Trip store initialized with %d trip(s)", len(trips))
}

func ListTrips() []TripSummary {
	mu.RLock()
	defer mu.RUnlock()

	summaries := make([]TripSummary, 0, len(trips))
	for _, t := range trips {
		summaries = append(summaries, TripSummary{
			ID:              t.ID,
			Title:           t.Title,
			Destination:     t.Destination,
			Dates:           t.Dates,
			Duration:        t.Duration,
			Travelers:       t.Travelers,
			Budget:          t.Budget,
			Spent:           t.Spent,
			Status:          t.Status,
			BookingProgress: t.BookingProgress,
			CreatedAt:       t.CreatedAt,
			UpdatedAt:       t.UpdatedAt,
		})
	}
	return summaries
}

func GetTrip(id string) (Trip, bool) {
	mu.RLock()
	defer mu.RUnlock()

	for _, t := range trips {
		if t.ID == id {
			return t, true
		}
	}
	return Trip{}, false
}

func CreateTrip(t Trip) Trip {
	now := time.Now().UTC().Format(time.RFC3339)
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = "planning"
	}
	if t.Itinerary == nil {
		t.Itinerary = []ItineraryDay{}
	}
	if t.Flights == nil {
		t.Flights = []TripFlight{}
	}
	if t.Bookings == nil {
		t.Bookings = []Booking{}
	}

	mu.Lock()
	defer mu.Unlock()
	trips = append(trips, t)
	return t
}

func UpdateTrip(id string, upd TripUpdate) (Trip, bool) {
	mu.Lock()
	defer mu.Unlock()

	for i := range trips {
		if trips[i].ID != id {
			continue
		}
		t := &trips[i]
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Destination != nil {
			t.Destination = *upd.Destination
		}
		if upd.Dates != nil {
			t.Dates = *upd.Dates
		}
		if upd.Duration != nil {
			t.Duration = *upd.Duration
		}
		if upd.Travelers != nil {
			t.Travelers = *upd.Travelers
		}
		if upd.Budget != nil {
			t.Budget = *upd.Budget
		}
		if upd.Spent != nil {
			t.Spent = *upd.Spent
		}
		if upd.Status != nil {
			t.Status = *upd.Status
		}
		if upd.BookingProgress != nil {
			t.BookingProgress = *upd.BookingProgress
		}
		if upd.Itinerary != nil {
			t.Itinerary = *upd.Itinerary
		}
		if upd.Flights != nil {
			t.Flights = *upd.Flights
		}
		if upd.Bookings != nil {
			t.Bookings = *upd.Bookings
		}
		t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		return *t, true
	}
	return Trip{}, false
}

func DeleteTrip(id string) bool {
	mu.Lock()
	defer mu.Unlock()

	for i := range trips {
		if trips[i].ID == id {
			trips = append(trips[:i], trips[i+1:]...)
			return true
		}
	}
	return false
}

// ─── Seed Data ────────────────────────────────────────────────────────────────

func seedTrips() []Trip {
	now := time.Now().UTC().Format(time.RFC3339)
	return []Trip{
		{
			ID:              "trip-001",
			Title:           "Amazing Tokyo Adventure",
			Destination:     "Tokyo, Japan",
			Dates:           "March 15-22, 2024",
			Duration:        "7 days",
			Travelers:       2,
			Budget:          3500,
			Spent:           2800,
			Status:          "confirmed",
			BookingProgress: 85,
			CreatedAt:       now,
			UpdatedAt:       now,
			Itinerary: []ItineraryDay{
				{
					Day:  1,
					Date: "March 16, 2024",
					Activities: []Activity{
						{
							ID:          "1-1",
							Time:        "3:45 PM",
							Title:       "Arrive at Tokyo Narita",
							Description: "Flight JL 012 arrival",
							Location:    "Narita International Airport",
							Type:        "flight",
							Status:      "upcoming",
						},
						{
							ID:          "1-2",
							Time:        "6:00 PM",
							Title:       "Check-in at Hotel",
							Description: "Park Hyatt Tokyo",
							Location:    "Shinjuku, Tokyo",
							Type:        "hotel",
							Status:      "booked",
						},
						{
							ID:          "1-3",
							Time:        "8:00 PM",
							Title:       "Welcome Dinner",
							Description: "Traditional kaiseki at Kikunoi",
							Location:    "Higashiyama, Kyoto",
							Type:        "restaurant",
							Duration:    "2 hours",
							Price:       120,
							Status:      "booked",
						},
					},
				},
				{
					Day:  2,
					Date: "March 17, 2024",
					Activities: []Activity{
						{
							ID:          "2-1",
							Time:        "9:00 AM",
							Title:       "Tokyo City Tour",
							Description: "Guided tour of Senso-ji Temple, Tokyo Skytree",
							Location:    "Asakusa & Sumida",
							Type:        "activity",
							Duration:    "6 hours",
							Price:       85,
							Status:      "booked",
						},
						{
							ID:          "2-2",
							Time:        "7:00 PM",
							Title:       "Shibuya Crossing Experience",
							Description: "Experience the world's busiest intersection",
							Location:    "Shibuya, Tokyo",
							Type:        "activity",
							Duration:    "2 hours",
							Status:      "upcoming",
						},
					},
				},
			},
			Flights: []TripFlight{
				{
					ID:           "flight-1",
					Airline:      "Japan Airlines",
					FlightNumber: "JL 012",
					Departure:    FlightStop{Airport: "LAX", City: "Los Angeles", Time: "11:30 AM", Date: "Mar 15"},
					Arrival:      FlightStop{Airport: "NRT", City: "Tokyo", Time: "3:45 PM", Date: "Mar 16"},
					Duration:     "11h 15m",
					Price:        850,
					Status:       "booked",
				},
				{
					ID:           "flight-2",
					Airline:      "Japan Airlines",
					FlightNumber: "JL 013",
					Departure:    FlightStop{Airport: "NRT", City: "Tokyo", Time: "6:20 PM", Date: "Mar 22"},
					Arrival:      FlightStop{Airport: "LAX", City: "Los Angeles", Time: "11:15 AM", Date: "Mar 22"},
					Duration:     "9h 55m",
					Price:        850,
					Status:       "booked",
				},
			},
			Bookings: []Booking{
				{
					ID:          "booking-1",
					Type:        "hotel",
					Title:       "Park Hyatt Tokyo",
					Description: "Deluxe Room, City View - 7 nights",
					Price:       1890,
					Status:      "confirmed",
					Date:        "March 16-22, 2024",
				},
				{
					ID:          "booking-2",
					Type:        "activity",
					Title:       "Tokyo City Tour",
					Description: "Full day guided tour",
					Price:       85,
					Status:      "confirmed",
					Date:        "March 17, 2024",
				},
			},
		},
	}
}
