package services

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type ChatMessage struct {
	Sender    string `json:"sender"` // user | agent
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type TripData struct {
	Destination string `json:"destination"`
	Dates       string `json:"dates"`
	Budget      string `json:"budget"`
	Travelers   int    `json:"travelers"`
}

type ChatRequest struct {
	Message             string        `json:"message"`
	AgentType           string        `json:"agentType"` // destination | itinerary | booking
	ConversationHistory []ChatMessage `json:"conversationHistory"`
	TripData            TripData      `json:"tripData"`
}

type TripUpdates struct {
	Destination string `json:"destination,omitempty"`
	Dates       string `json:"dates,omitempty"`
	Budget      string `json:"budget,omitempty"`
}

type ChatResponse struct {
	Response           string       `json:"response"`
	AgentType          string       `json:"agentType"`
	TripUpdates        *TripUpdates `json:"tripUpdates,omitempty"`
	SuggestedNextAgent string       `json:"suggestedNextAgent,omitempty"`
	Confidence         float64      `json:"confidence"`
}

// ─── Canned Responses ────────────────────────────────────────────────────────

var destinationGreetings = []string{
	"Hello! I'm your Destination Research Agent. I specialize in finding the perfect travel destinations based on your preferences. Where would you like to explore?",
	"Welcome! I'm here to help you discover amazing destinations. Tell me what type of experience you're looking for - adventure, relaxation, culture, or something else?",
}

var destinationResponses = map[string][]string{
	"tokyo": {
		"Excellent choice! Tokyo is a fascinating blend of ultra-modern and traditional culture. You'll experience cutting-edge technology, incredible cuisine, beautiful temples, and vibrant neighborhoods like Shibuya and Harajuku.",
		"Tokyo is amazing! From the serene temples of Asakusa to the bustling streets of Shinjuku, you'll find endless discoveries. The food scene is world-class, and there's something for every interest.",
	},
	"paris": {
		"Magnifique! Paris is the city of lights, art, and romance. You'll love the iconic landmarks like the Eiffel Tower, world-class museums like the Louvre, charming neighborhoods, and incredible cafés.",
		"Paris is absolutely magical! The city offers unparalleled art, architecture, cuisine, and culture. From strolling along the Seine to exploring Montmartre, every corner tells a story.",
	},
	"newYork": {
		"The Big Apple awaits! New York City is an urban playground with world-famous attractions, Broadway shows, incredible food scenes, amazing museums, and that unique NYC energy that never sleeps.",
		"New York is the ultimate city experience! From Central Park to the Metropolitan Museum, from Broadway to Brooklyn, you'll find endless entertainment, culture, and unforgettable moments.",
	},
}

var itineraryResponses = map[string][]string{
	"tokyo": {
		"Perfect! For Tokyo, I recommend: Day 1 - Asakusa Temple & Tokyo Skytree, Day 2 - Shibuya & Harajuku exploration, Day 3 - Imperial Palace & Ginza, Day 4 - Day trip to Mount Fuji, Day 5 - Tsukiji Market & Akihabara electronics district.",
		"Great choice! Here's a fantastic Tokyo itinerary: Start with traditional Tokyo (Senso-ji Temple), experience modern Tokyo (Shibuya Crossing), enjoy cultural sites (Imperial Palace), take a Mount Fuji excursion, and explore unique neighborhoods like Akihabara.",
	},
	"paris": {
		"Wonderful! For Paris: Day 1 - Eiffel Tower & Seine River cruise, Day 2 - Louvre Museum & Tuileries Garden, Day 3 - Notre-Dame & Latin Quarter, Day 4 - Versailles day trip, Day 5 - Montmartre & Sacré-Cœur, Day 6 - Champs-Élysées shopping.",
		"Excellent! Your Paris adventure: Begin with iconic landmarks (Eiffel Tower, Arc de Triomphe), dive into art and history (Louvre, Musée d'Orsay), explore charming neighborhoods (Montmartre, Marais), and take a magical Versailles day trip.",
	},
}

var bookingFlightResponses = []string{
	"I'm searching Skyscanner for the best flight deals to your destination. I'll compare prices across multiple airlines and find options that fit your budget and schedule preferences.",
	"Let me check current flight prices and availability. I'll look for the best combinations of price, convenience, and airline reliability for your trip dates.",
}

var bookingBudgetResponses = []string{
	"Based on your budget, I can find excellent flight options. I'll prioritize value while ensuring comfortable travel times and reliable airlines.",
	"With your budget range, I'll search for the sweet spot between price and convenience. I can also suggest alternative dates if they offer better deals.",
}

var datePattern = regexp.MustCompile(`(?i)(january|february|march|april|may|june|july|august|september|october|november|december|\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`)
var budgetPattern = regexp.MustCompile(`\$?(\d{1,5})`)

// ─── Engine ───────────────────────────────────────────────────────────────────

// AgentEngine picks canned responses via keyword matching over the user
// message. The random source only varies which phrasing of a response pool is
// returned; routing is deterministic.
type AgentEngine struct {
	rng *rand.Rand
}

func NewAgentEngine(rng *rand.Rand) *AgentEngine {
	return &AgentEngine{rng: rng}
}

func DefaultAgentEngine() *AgentEngine {
	return &AgentEngine{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (e *AgentEngine) Chat(req ChatRequest) ChatResponse {
	lowerMessage := strings.ToLower(req.Message)
	updates := extractTripData(req.Message)

	resp := ChatResponse{AgentType: req.AgentType, Confidence: 0.5}

	switch req.AgentType {
	case "destination":
		e.destinationAgent(lowerMessage, len(req.ConversationHistory), &resp)
	case "itinerary":
		e.itineraryAgent(req.TripData, updates, &resp)
	case "booking":
		e.bookingAgent(lowerMessage, req.TripData, updates, &resp)
	default:
		resp.Response = "I'm here to help with your travel planning! How can I assist you today?"
	}

	if updates != (TripUpdates{}) {
		resp.TripUpdates = &updates
	}
	return resp
}

func (e *AgentEngine) destinationAgent(lowerMessage string, historyLen int, resp *ChatResponse) {
	switch {
	case containsAny(lowerMessage, "tokyo", "japan"):
		resp.Response = e.pick(destinationResponses["tokyo"])
		resp.SuggestedNextAgent = "itinerary"
		resp.Confidence = 0.9
	case containsAny(lowerMessage, "paris", "france"):
		resp.Response = e.pick(destinationResponses["paris"])
		resp.SuggestedNextAgent = "itinerary"
		resp.Confidence = 0.9
	case containsAny(lowerMessage, "new york", "nyc"):
		resp.Response = e.pick(destinationResponses["newYork"])
		resp.SuggestedNextAgent = "itinerary"
		resp.Confidence = 0.9
	case historyLen <= 1:
		resp.Response = e.pick(destinationGreetings)
		resp.Confidence = 0.7
	default:
		resp.Response = "I'd love to help you find the perfect destination! Could you tell me what type of experience you're looking for? Beach relaxation, city exploration, cultural immersion, or adventure?"
		resp.Confidence = 0.6
	}
}

func (e *AgentEngine) itineraryAgent(trip TripData, updates TripUpdates, resp *ChatResponse) {
	destination := trip.Destination
	if destination == "" {
		destination = updates.Destination
	}
	lowerDest := strings.ToLower(destination)

	switch {
	case strings.Contains(lowerDest, "tokyo"):
		resp.Response = e.pick(itineraryResponses["tokyo"])
		resp.SuggestedNextAgent = "booking"
		resp.Confidence = 0.9
	case strings.Contains(lowerDest, "paris"):
		resp.Response = e.pick(itineraryResponses["paris"])
		resp.SuggestedNextAgent = "booking"
		resp.Confidence = 0.9
	case destination != "":
		resp.Response = fmt.Sprintf("Excellent! I'm creating a detailed itinerary for your %s trip. I'll include must-see attractions, local restaurants, cultural experiences, and the best ways to get around. This comprehensive plan will maximize your time and experiences!", destination)
		resp.SuggestedNextAgent = "booking"
		resp.Confidence = 0.8
	default:
		resp.Response = "I need to know your destination first to create a personalized itinerary. Let me connect you with our Destination Research Agent to help you choose the perfect place!"
		resp.SuggestedNextAgent = "destination"
		resp.Confidence = 0.7
	}
}

func (e *AgentEngine) bookingAgent(lowerMessage string, trip TripData, updates TripUpdates, resp *ChatResponse) {
	switch {
	case trip.Destination != "" && trip.Dates != "":
		originCode := originAirportCode(lowerMessage)
		destinationCode := destinationAirportCode(trip.Destination)

		if destinationCode != "" {
			budgetNote := ""
			if trip.Budget != "" {
				budgetNote = fmt.Sprintf(" within your budget of $%s", trip.Budget)
			}
			resp.Response = fmt.Sprintf("Great! I'm searching for flights from %s to %s for your %s trip on %s. I found several options through Skyscanner - let me show you the best deals available%s. I'll prioritize flights with good value, convenient timing, and reliable airlines.",
				originCode, destinationCode, trip.Destination, trip.Dates, budgetNote)
			resp.Confidence = 0.9
		} else {
			budgetNote := ""
			if trip.Budget != "" {
				budgetNote = fmt.Sprintf(" within your $%s budget", trip.Budget)
			}
			resp.Response = e.pick(bookingFlightResponses) +
				fmt.Sprintf(" For your %s trip, I'm checking flights for %s%s.", trip.Destination, trip.Dates, budgetNote)
			resp.Confidence = 0.8
		}
	case trip.Budget != "" || updates.Budget != "":
		resp.Response = e.pick(bookingBudgetResponses)
		resp.Confidence = 0.8
	default:
		resp.Response = "I need your destination and travel dates to search for the best flight options. Once you provide these details, I can find great deals through Skyscanner and other travel partners."
		if trip.Destination != "" {
			resp.SuggestedNextAgent = "itinerary"
		} else {
			resp.SuggestedNextAgent = "destination"
		}
		resp.Confidence = 0.7
	}
}

func (e *AgentEngine) pick(responses []string) string {
	return responses[e.rng.Intn(len(responses))]
}

// ─── Trip Data Extraction ────────────────────────────────────────────────────

func extractTripData(message string) TripUpdates {
	updates := TripUpdates{}
	lowerMessage := strings.ToLower(message)

	switch {
	case containsAny(lowerMessage, "tokyo", "japan"):
		updates.Destination = "Tokyo, Japan"
	case containsAny(lowerMessage, "paris", "france"):
		updates.Destination = "Paris, France"
	case containsAny(lowerMessage, "new york", "nyc"):
		updates.Destination = "New York, USA"
	case containsAny(lowerMessage, "london", "uk"):
		updates.Destination = "London, UK"
	}

	if datePattern.MatchString(message) {
		updates.Dates = message
	}

	if m := budgetPattern.FindStringSubmatch(message); m != nil && strings.Contains(lowerMessage, "budget") {
		updates.Budget = m[1]
	}

	return updates
}

// originAirportCode guesses a departure airport mentioned in the message;
// the demo defaults to LAX when no known city appears.
func originAirportCode(lowerMessage string) string {
	switch {
	case containsAny(lowerMessage, "from new york", "from nyc", "from jfk"):
		return "JFK"
	case containsAny(lowerMessage, "from london", "from lhr"):
		return "LHR"
	case containsAny(lowerMessage, "from paris", "from cdg"):
		return "CDG"
	case containsAny(lowerMessage, "from tokyo", "from nrt"):
		return "NRT"
	default:
		return "LAX"
	}
}

func destinationAirportCode(destination string) string {
	lower := strings.ToLower(destination)
	switch {
	case strings.Contains(lower, "tokyo"):
		return "NRT"
	case strings.Contains(lower, "paris"):
		return "CDG"
	case strings.Contains(lower, "new york"):
		return "JFK"
	case strings.Contains(lower, "london"):
		return "LHR"
	default:
		return ""
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
