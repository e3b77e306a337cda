package services

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func seededGenerator(seed int64) *FlightGenerator {
	return NewFlightGenerator(rand.New(rand.NewSource(seed)), fixedClock)
}

func TestGenerateOfferCount(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		flights := seededGenerator(seed).Generate("LAX", "JFK", "2024-03-15", 1, 0)
		assert.GreaterOrEqual(t, len(flights), 8)
		assert.LessOrEqual(t, len(flights), 20)
	}
}

func TestPriceBreakdownIdentity(t *testing.T) {
	flights := seededGenerator(1).Generate("LAX", "NRT", "2024-03-15", 2, 0)
	require.NotEmpty(t, flights)

	for _, f := range flights {
		sum := f.Price.Breakdown.Base + f.Price.Breakdown.Taxes + f.Price.Breakdown.Fees
		assert.Equal(t, f.Price.Total, sum, "offer %s breakdown must sum to total", f.ID)
		assert.Equal(t, "USD", f.Price.Currency)
	}
}

func TestOffersSortedByPrice(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		flights := seededGenerator(seed).Generate("JFK", "LHR", "2024-03-15", 1, 0)
		for i := 1; i < len(flights); i++ {
			assert.LessOrEqual(t, flights[i-1].Price.Total, flights[i].Price.Total)
		}
	}
}

func TestStopsDomain(t *testing.T) {
	flights := seededGenerator(7).Generate("LAX", "CDG", "2024-03-15", 1, 0)
	for _, f := range flights {
		assert.Contains(t, []int{0, 1, 2}, f.Stops)
	}
}

func TestAmenitiesDistinctAndBounded(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		flights := seededGenerator(seed).Generate("LAX", "JFK", "2024-03-15", 1, 0)
		for _, f := range flights {
			assert.GreaterOrEqual(t, len(f.Amenities), 3)
			assert.LessOrEqual(t, len(f.Amenities), 7)

			seen := map[string]bool{}
			for _, a := range f.Amenities {
				assert.False(t, seen[a], "duplicate amenity %q on %s", a, f.ID)
				seen[a] = true
			}
		}
	}
}

func TestMaxPriceFilter(t *testing.T) {
	flights := seededGenerator(3).Generate("LAX", "JFK", "2024-03-15", 1, 400)
	for _, f := range flights {
		assert.LessOrEqual(t, f.Price.Total, 400)
	}
}

func TestStrictBudgetYieldsEmptyResult(t *testing.T) {
	flights := seededGenerator(3).Generate("LAX", "JFK", "2024-03-15", 1, 1)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
}

func TestPassengerCountDoublesPriceUnderSameSeed(t *testing.T) {
	one := seededGenerator(99).Generate("LAX", "JFK", "2024-03-15", 1, 0)
	two := seededGenerator(99).Generate("LAX", "JFK", "2024-03-15", 2, 0)
	require.Equal(t, len(one), len(two))

	for i := range one {
		assert.Equal(t, one[i].Price.Total*2, two[i].Price.Total)
		assert.Equal(t, one[i].Airline, two[i].Airline)
		assert.Equal(t, one[i].FlightNumber, two[i].FlightNumber)
	}
}

func TestArrivalDateStaysOnDepartureDate(t *testing.T) {
	// The mock never rolls the arrival date forward, even past midnight.
	flights := seededGenerator(5).Generate("JFK", "NRT", "2024-03-15", 1, 0)
	for _, f := range flights {
		assert.Equal(t, "2024-03-15", f.Departure.Date)
		assert.Equal(t, "2024-03-15", f.Arrival.Date)
	}
}

func TestOfferShape(t *testing.T) {
	flights := seededGenerator(11).Generate("lax", "nrt", "2024-03-15", 1, 0)
	require.NotEmpty(t, flights)

	for _, f := range flights {
		assert.True(t, strings.HasPrefix(f.ID, fmt.Sprintf("flight-%d-", fixedClock().UnixMilli())), "id %q", f.ID)
		assert.Equal(t, "LAX", f.Departure.IATA)
		assert.Equal(t, "NRT", f.Arrival.IATA)
		assert.Equal(t, "Los Angeles International Airport", f.Departure.Airport)
		assert.Equal(t, "Narita International Airport", f.Arrival.Airport)
		assert.Equal(t, "Japan", f.Arrival.Country)
		assert.Equal(t, "Economy", f.Class)
		assert.Equal(t, "Skyscanner", f.Provider)
		assert.Equal(t, "https://skyscanner.com/booking/"+strings.ReplaceAll(f.FlightNumber, " ", "-"), f.BookingLink)
		assert.Regexp(t, `^[A-Z0-9]{2} [1-9]\d{3}$`, f.FlightNumber)
		assert.Regexp(t, `^\d+h \d+m$`, f.Duration)
		assert.Regexp(t, `^([01]\d|2[0-3]):[0-5]\d$`, f.Departure.Time)
		assert.Regexp(t, `^([01]\d|2[0-3]):[0-5]\d$`, f.Arrival.Time)
		assert.Positive(t, f.CarbonEmission)
		if f.Deals != nil {
			assert.Contains(t, []string{"priceAlert", "lastMinute", "earlyBird"}, f.Deals.Type)
			assert.GreaterOrEqual(t, f.Deals.Savings, 50)
			assert.LessOrEqual(t, f.Deals.Savings, 199)
			assert.Contains(t, f.Deals.Message, fmt.Sprintf("$%d", f.Deals.Savings))
		}
	}
}

func TestReferenceTableLookups(t *testing.T) {
	assert.Equal(t, 350, RouteBasePrice("LAX", "JFK"))
	assert.Equal(t, 315, RouteBaseDuration("LAX", "JFK"))
	assert.Equal(t, 360, RouteBaseDuration("JFK", "LAX"))

	// Unknown keys fall back instead of failing
	assert.Equal(t, 500, RouteBasePrice("AAA", "BBB"))
	assert.Equal(t, 480, RouteBaseDuration("AAA", "BBB"))
	assert.Equal(t, "XX", AirlineCode("Unknown Air"))
	assert.Equal(t, 1.0, AirlinePriceFactor("Unknown Air"))
	assert.Equal(t, "ZZZ Airport", AirportName("zzz"))
	assert.Equal(t, "ZZZ", CityName("zzz"))
	assert.Equal(t, "Unknown", CountryName("zzz"))

	assert.Equal(t, "JL", AirlineCode("Japan Airlines"))
	assert.Equal(t, 0.7, AirlinePriceFactor("Spirit Airlines"))
	assert.Equal(t, "Paris", CityName("CDG"))
}

func TestRosterSizes(t *testing.T) {
	assert.Len(t, airlines, 18)
	assert.Len(t, aircraftTypes, 9)
	assert.Len(t, amenityCatalog, 10)
	for _, a := range airlines {
		assert.NotEqual(t, "XX", AirlineCode(a), "roster airline %q needs a code", a)
	}
}

func TestUpstreamDelayToggle(t *testing.T) {
	t.Setenv("FLIGHT_SEARCH_DELAY", "off")
	InitFlights()
	assert.Zero(t, UpstreamDelay())

	t.Setenv("FLIGHT_SEARCH_DELAY", "")
	InitFlights()
	d := UpstreamDelay()
	assert.GreaterOrEqual(t, d, 500*time.Millisecond)
	assert.Less(t, d, 2000*time.Millisecond)

	t.Setenv("FLIGHT_SEARCH_DELAY", "off")
	InitFlights()
}
