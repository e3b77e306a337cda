package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *AgentEngine {
	return NewAgentEngine(rand.New(rand.NewSource(1)))
}

func TestDestinationAgentRecognizesCity(t *testing.T) {
	resp := testEngine().Chat(ChatRequest{
		Message:   "I really want to visit Tokyo this spring",
		AgentType: "destination",
	})

	assert.Equal(t, "destination", resp.AgentType)
	assert.Contains(t, resp.Response, "Tokyo")
	assert.Equal(t, "itinerary", resp.SuggestedNextAgent)
	assert.Equal(t, 0.9, resp.Confidence)
	require.NotNil(t, resp.TripUpdates)
	assert.Equal(t, "Tokyo, Japan", resp.TripUpdates.Destination)
}

func TestDestinationAgentGreetsNewConversation(t *testing.T) {
	resp := testEngine().Chat(ChatRequest{
		Message:   "hi there",
		AgentType: "destination",
	})

	assert.Equal(t, 0.7, resp.Confidence)
	assert.Empty(t, resp.SuggestedNextAgent)
	assert.Nil(t, resp.TripUpdates)
}

func TestDestinationAgentAsksForPreferences(t *testing.T) {
	resp := testEngine().Chat(ChatRequest{
		Message:   "not sure yet",
		AgentType: "destination",
		ConversationHistory: []ChatMessage{
			{Sender: "agent", Content: "hello"},
			{Sender: "user", Content: "hi"},
		},
	})

	assert.Equal(t, 0.6, resp.Confidence)
	assert.Contains(t, resp.Response, "perfect destination")
}

func TestItineraryAgentNeedsDestination(t *testing.T) {
	resp := testEngine().Chat(ChatRequest{
		Message:   "plan my days",
		AgentType: "itinerary",
	})

	assert.Equal(t, "destination", resp.SuggestedNextAgent)
	assert.Equal(t, 0.7, resp.Confidence)
}

func TestItineraryAgentUsesTripDestination(t *testing.T) {
	resp := testEngine().Chat(ChatRequest{
		Message:   "what should I do each day?",
		AgentType: "itinerary",
		TripData:  TripData{Destination: "Paris, France"},
	})

	assert.Equal(t, "booking", resp.SuggestedNextAgent)
	assert.Equal(t, 0.9, resp.Confidence)
	assert.Contains(t, resp.Response, "Paris")
}

func TestItineraryAgentGenericDestination(t *testing.T) {
	resp := testEngine().Chat(ChatRequest{
		Message:   "plan it",
		AgentType: "itinerary",
		TripData:  TripData{Destination: "Lisbon, Portugal"},
	})

	assert.Equal(t, "booking", resp.SuggestedNextAgent)
	assert.Equal(t, 0.8, resp.Confidence)
	assert.Contains(t, resp.Response, "Lisbon, Portugal")
}

func TestBookingAgentSearchesFlights(t *testing.T) {
	resp := testEngine().Chat(ChatRequest{
		Message:   "book my flights from new york please",
		AgentType: "booking",
		TripData: TripData{
			Destination: "Tokyo, Japan",
			Dates:       "March 15-22, 2024",
			Budget:      "3500",
		},
	})

	assert.Equal(t, 0.9, resp.Confidence)
	assert.Contains(t, resp.Response, "JFK")
	assert.Contains(t, resp.Response, "NRT")
	assert.Contains(t, resp.Response, "$3500")
}

func TestBookingAgentDefaultsOriginToLAX(t *testing.T) {
	resp := testEngine().Chat(ChatRequest{
		Message:   "find me something cheap",
		AgentType: "booking",
		TripData: TripData{
			Destination: "Paris, France",
			Dates:       "June 2024",
		},
	})

	assert.Contains(t, resp.Response, "LAX")
	assert.Contains(t, resp.Response, "CDG")
}

func TestBookingAgentWithoutTripData(t *testing.T) {
	resp := testEngine().Chat(ChatRequest{
		Message:   "help me book",
		AgentType: "booking",
	})

	assert.Equal(t, "destination", resp.SuggestedNextAgent)
	assert.Equal(t, 0.7, resp.Confidence)
}

func TestUnknownAgentType(t *testing.T) {
	resp := testEngine().Chat(ChatRequest{
		Message:   "hello",
		AgentType: "concierge",
	})

	assert.Equal(t, 0.5, resp.Confidence)
	assert.Contains(t, resp.Response, "travel planning")
}

func TestExtractTripData(t *testing.T) {
	updates := extractTripData("My budget is $2000 for a Paris trip in march")
	assert.Equal(t, "Paris, France", updates.Destination)
	assert.Equal(t, "2000", updates.Budget)
	assert.NotEmpty(t, updates.Dates)

	updates = extractTripData("just thinking out loud")
	assert.Equal(t, TripUpdates{}, updates)
}
