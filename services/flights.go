package services

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type FlightEndpoint struct {
	Airport  string `json:"airport"`
	IATA     string `json:"iata"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Time     string `json:"time"`
	Date     string `json:"date"`
	Terminal string `json:"terminal,omitempty"`
}

type PriceBreakdown struct {
	Base  int `json:"base"`
	Taxes int `json:"taxes"`
	Fees  int `json:"fees"`
}

type FlightPrice struct {
	Total     int            `json:"total"`
	Currency  string         `json:"currency"`
	Breakdown PriceBreakdown `json:"breakdown"`
}

type FlightDeal struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Savings int    `json:"savings"`
}

type FlightOffer struct {
	ID             string         `json:"id"`
	Airline        string         `json:"airline"`
	FlightNumber   string         `json:"flightNumber"`
	Aircraft       string         `json:"aircraft"`
	Departure      FlightEndpoint `json:"departure"`
	Arrival        FlightEndpoint `json:"arrival"`
	Duration       string         `json:"duration"`
	Stops          int            `json:"stops"`
	Price          FlightPrice    `json:"price"`
	Class          string         `json:"class"`
	Amenities      []string       `json:"amenities"`
	BookingLink    string         `json:"bookingLink"`
	Provider       string         `json:"provider"`
	CarbonEmission int            `json:"carbonEmission"`
	Deals          *FlightDeal    `json:"deals,omitempty"`
}

// ─── Reference Tables ────────────────────────────────────────────────────────

var airlines = []string{
	"American Airlines", "Delta Air Lines", "United Airlines", "JetBlue Airways",
	"Southwest Airlines", "Alaska Airlines", "Spirit Airlines", "Frontier Airlines",
	"Japan Airlines", "ANA", "Emirates", "Qatar Airways", "Lufthansa", "British Airways",
	"Air France", "KLM", "Singapore Airlines", "Cathay Pacific",
}

var aircraftTypes = []string{
	"Boeing 737", "Boeing 777", "Boeing 787", "Airbus A320", "Airbus A330",
	"Airbus A350", "Airbus A380", "Boeing 747", "Embraer E175",
}

var amenityCatalog = []string{
	"WiFi", "In-flight Entertainment", "Power Outlets", "USB Ports",
	"Meal Service", "Beverages", "Extra Legroom", "Priority Boarding",
	"Carry-on Included", "Checked Bag Included",
}

var airlineCodes = map[string]string{
	"American Airlines":  "AA",
	"Delta Air Lines":    "DL",
	"United Airlines":    "UA",
	"JetBlue Airways":    "B6",
	"Southwest Airlines": "WN",
	"Alaska Airlines":    "AS",
	"Spirit Airlines":    "NK",
	"Frontier Airlines":  "F9",
	"Japan Airlines":     "JL",
	"ANA":                "NH",
	"Emirates":           "EK",
	"Qatar Airways":      "QR",
	"Lufthansa":          "LH",
	"British Airways":    "BA",
	"Air France":         "AF",
	"KLM":                "KL",
	"Singapore Airlines": "SQ",
	"Cathay Pacific":     "CX",
}

// Budget carriers discount, premium carriers surcharge.
var airlinePriceFactors = map[string]float64{
	"Spirit Airlines":    0.7,
	"Frontier Airlines":  0.75,
	"Southwest Airlines": 0.85,
	"JetBlue Airways":    0.9,
	"Alaska Airlines":    0.95,
	"American Airlines":  1.0,
	"Delta Air Lines":    1.05,
	"United Airlines":    1.0,
	"Emirates":           1.3,
	"Qatar Airways":      1.25,
	"Singapore Airlines": 1.2,
	"ANA":                1.15,
	"Japan Airlines":     1.15,
	"Lufthansa":          1.1,
	"British Airways":    1.1,
	"Air France":         1.05,
	"KLM":                1.05,
	"Cathay Pacific":     1.15,
}

// Base durations in minutes, keyed "ORG-DST". Independently specified per
// direction to reflect prevailing winds.
var routeBaseDurations = map[string]int{
	"LAX-NRT": 665, "NRT-LAX": 600, // Los Angeles - Tokyo
	"LAX-CDG": 690, "CDG-LAX": 720, // Los Angeles - Paris
	"LAX-JFK": 315, "JFK-LAX": 360, // Los Angeles - New York
	"LAX-LHR": 660, "LHR-LAX": 690, // Los Angeles - London
	"JFK-CDG": 450, "CDG-JFK": 480, // New York - Paris
	"JFK-NRT": 840, "NRT-JFK": 780, // New York - Tokyo
	"JFK-LHR": 420, "LHR-JFK": 450, // New York - London
}

var routeBasePrices = map[string]int{
	"LAX-NRT": 850, "NRT-LAX": 850,
	"LAX-CDG": 750, "CDG-LAX": 750,
	"LAX-JFK": 350, "JFK-LAX": 350,
	"LAX-LHR": 800, "LHR-LAX": 800,
	"JFK-CDG": 650, "CDG-JFK": 650,
	"JFK-NRT": 950, "NRT-JFK": 950,
	"JFK-LHR": 550, "LHR-JFK": 550,
}

var airportNames = map[string]string{
	"LAX": "Los Angeles International Airport",
	"JFK": "John F. Kennedy International Airport",
	"NRT": "Narita International Airport",
	"CDG": "Charles de Gaulle Airport",
	"LHR": "Heathrow Airport",
	"DXB": "Dubai International Airport",
	"SIN": "Singapore Changi Airport",
	"HKG": "Hong Kong International Airport",
}

var cityNames = map[string]string{
	"LAX": "Los Angeles",
	"JFK": "New York",
	"NRT": "Tokyo",
	"CDG": "Paris",
	"LHR": "London",
	"DXB": "Dubai",
	"SIN": "Singapore",
	"HKG": "Hong Kong",
}

var countryNames = map[string]string{
	"LAX": "United States",
	"JFK": "United States",
	"NRT": "Japan",
	"CDG": "France",
	"LHR": "United Kingdom",
	"DXB": "United Arab Emirates",
	"SIN": "Singapore",
	"HKG": "Hong Kong",
}

// Every lookup is total: unknown keys fall back instead of failing.

func AirlineCode(airline string) string {
	if code, ok := airlineCodes[airline]; ok {
		return code
	}
	return "XX"
}

func AirlinePriceFactor(airline string) float64 {
	if f, ok := airlinePriceFactors[airline]; ok {
		return f
	}
	return 1.0
}

func RouteBaseDuration(origin, destination string) int {
	key := strings.ToUpper(origin) + "-" + strings.ToUpper(destination)
	if d, ok := routeBaseDurations[key]; ok {
		return d
	}
	return 480 // default 8 hours
}

func RouteBasePrice(origin, destination string) int {
	key := strings.ToUpper(origin) + "-" + strings.ToUpper(destination)
	if p, ok := routeBasePrices[key]; ok {
		return p
	}
	return 500
}

func AirportName(iata string) string {
	iata = strings.ToUpper(iata)
	if name, ok := airportNames[iata]; ok {
		return name
	}
	return iata + " Airport"
}

func CityName(iata string) string {
	iata = strings.ToUpper(iata)
	if city, ok := cityNames[iata]; ok {
		return city
	}
	return iata
}

func CountryName(iata string) string {
	if country, ok := countryNames[strings.ToUpper(iata)]; ok {
		return country
	}
	return "Unknown"
}

// ─── Generator ────────────────────────────────────────────────────────────────

// FlightGenerator synthesizes flight offers from the reference tables. The
// random source and clock are injected so tests can pin both and assert exact
// output. A rand.Rand is not safe for concurrent use; handlers construct one
// generator per request.
type FlightGenerator struct {
	rng *rand.Rand
	now func() time.Time
}

func NewFlightGenerator(rng *rand.Rand, now func() time.Time) *FlightGenerator {
	return &FlightGenerator{rng: rng, now: now}
}

func DefaultFlightGenerator() *FlightGenerator {
	return &FlightGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// Generate produces 8-20 candidate offers for the route, drops those exceeding
// maxPrice (0 means no ceiling) and returns the survivors sorted by total
// price ascending. An empty result is valid: a strict budget filters out every
// candidate.
func (g *FlightGenerator) Generate(origin, destination, departureDate string, passengers, maxPrice int) []FlightOffer {
	flights := []FlightOffer{}
	numberOfFlights := g.rng.Intn(13) + 8

	for i := 0; i < numberOfFlights; i++ {
		airline := airlines[g.rng.Intn(len(airlines))]
		flightNumber := fmt.Sprintf("%s %d", AirlineCode(airline), g.rng.Intn(9000)+1000)
		aircraft := aircraftTypes[g.rng.Intn(len(aircraftTypes))]

		// Departure between 06:00 and 22:59
		departureHour := g.rng.Intn(17) + 6
		departureMinute := g.rng.Intn(60)
		departureTime := fmt.Sprintf("%02d:%02d", departureHour, departureMinute)

		// Route base duration ± 1 hour
		baseMinutes := RouteBaseDuration(origin, destination)
		totalMinutes := baseMinutes + g.rng.Intn(120) - 60
		hours := totalMinutes / 60
		minutes := totalMinutes % 60
		duration := fmt.Sprintf("%dh %dm", hours, minutes)

		// Arrival clock wraps past midnight; the date stays on the departure
		// day, matching the upstream mock's single-day simplification.
		arrivalHour := (departureHour + hours + (departureMinute+minutes)/60) % 24
		arrivalMinute := (departureMinute + minutes) % 60
		arrivalTime := fmt.Sprintf("%02d:%02d", arrivalHour, arrivalMinute)

		// P(0)=0.6, P(1)=0.32, P(2)=0.08
		stops := 0
		if g.rng.Float64() >= 0.6 {
			if g.rng.Float64() < 0.8 {
				stops = 1
			} else {
				stops = 2
			}
		}

		basePrice := RouteBasePrice(origin, destination)
		stopsPenalty := stops * 50
		timePenalty := 0
		if departureHour < 8 || departureHour > 20 { // red-eye discount
			timePenalty = -30
		}
		airlineFactor := AirlinePriceFactor(airline)
		randomVariation := g.rng.Intn(200) - 100

		totalPrice := int(math.Floor(float64(basePrice+stopsPenalty+timePenalty)*airlineFactor + float64(randomVariation)))
		totalPrice *= passengers

		if maxPrice > 0 && totalPrice > maxPrice {
			continue
		}

		taxes := int(math.Floor(float64(totalPrice) * 0.15))
		fees := g.rng.Intn(50) + 20
		base := totalPrice - taxes - fees

		// 3-7 distinct amenities, sampled without replacement
		amenityCount := g.rng.Intn(5) + 3
		flightAmenities := make([]string, 0, amenityCount)
		for _, idx := range g.rng.Perm(len(amenityCatalog))[:amenityCount] {
			flightAmenities = append(flightAmenities, amenityCatalog[idx])
		}

		var deals *FlightDeal
		if g.rng.Float64() < 0.3 {
			dealTypes := []string{"priceAlert", "lastMinute", "earlyBird"}
			dealType := dealTypes[g.rng.Intn(len(dealTypes))]
			savings := g.rng.Intn(150) + 50
			deals = &FlightDeal{
				Type:    dealType,
				Message: dealMessage(dealType, savings),
				Savings: savings,
			}
		}

		flights = append(flights, FlightOffer{
			ID:           fmt.Sprintf("flight-%d-%d", g.now().UnixMilli(), i),
			Airline:      airline,
			FlightNumber: flightNumber,
			Aircraft:     aircraft,
			Departure: FlightEndpoint{
				Airport:  AirportName(origin),
				IATA:     strings.ToUpper(origin),
				City:     CityName(origin),
				Country:  CountryName(origin),
				Time:     departureTime,
				Date:     departureDate,
				Terminal: g.maybeTerminal(),
			},
			Arrival: FlightEndpoint{
				Airport:  AirportName(destination),
				IATA:     strings.ToUpper(destination),
				City:     CityName(destination),
				Country:  CountryName(destination),
				Time:     arrivalTime,
				Date:     departureDate,
				Terminal: g.maybeTerminal(),
			},
			Duration: duration,
			Stops:    stops,
			Price: FlightPrice{
				Total:    totalPrice,
				Currency: "USD",
				Breakdown: PriceBreakdown{
					Base:  base,
					Taxes: taxes,
					Fees:  fees,
				},
			},
			Class:          "Economy",
			Amenities:      flightAmenities,
			BookingLink:    "https://skyscanner.com/booking/" + strings.ReplaceAll(flightNumber, " ", "-"),
			Provider:       "Skyscanner",
			CarbonEmission: int(math.Floor(float64(totalMinutes)*0.12 + g.rng.Float64()*50)),
			Deals:          deals,
		})
	}

	// Stable sort keeps generation order on price ties
	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Price.Total < flights[j].Price.Total
	})
	return flights
}

func (g *FlightGenerator) maybeTerminal() string {
	if g.rng.Float64() < 0.5 {
		return fmt.Sprintf("Terminal %d", g.rng.Intn(5)+1)
	}
	return ""
}

func dealMessage(dealType string, savings int) string {
	switch dealType {
	case "priceAlert":
		return fmt.Sprintf("Price dropped $%d! Book now to save.", savings)
	case "lastMinute":
		return fmt.Sprintf("Last-minute deal! Save $%d on this flight.", savings)
	case "earlyBird":
		return fmt.Sprintf("Early bird special! Save $%d by booking in advance.", savings)
	default:
		return fmt.Sprintf("Special deal! Save $%d.", savings)
	}
}

// ─── Upstream Delay ───────────────────────────────────────────────────────────

var upstreamDelayEnabled = true

// InitFlights reads flight-search settings from the environment. The search
// endpoint sleeps 0.5-2s to emulate a real provider call; set
// FLIGHT_SEARCH_DELAY=off to disable it (local dev, tests).
func InitFlights() {
	upstreamDelayEnabled = os.Getenv("FLIGHT_SEARCH_DELAY") != "off"
}

func UpstreamDelay() time.Duration {
	if !upstreamDelayEnabled {
		return 0
	}
	return time.Duration(rand.Intn(1500)+500) * time.Millisecond
}
