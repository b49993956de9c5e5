package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferTotalDurationMinutes(t *testing.T) {
	offer := Offer{
		ID:       "1",
		Price:    "420.00",
		Currency: "EUR",
		Itineraries: []Itinerary{
			{Duration: Duration{Hours: 9, Minutes: 30}},
			{Duration: Duration{Hours: 10, Minutes: 15}},
		},
	}
	assert.Equal(t, 570+615, offer.TotalDurationMinutes())

	empty := Offer{ID: "2"}
	assert.Equal(t, 0, empty.TotalDurationMinutes())
}

func TestOfferBoundaryItineraries(t *testing.T) {
	offer := Offer{Itineraries: []Itinerary{
		{Duration: Duration{Hours: 1}},
		{Duration: Duration{Hours: 2}},
		{Duration: Duration{Hours: 3}},
	}}

	require.NotNil(t, offer.FirstItinerary())
	assert.Equal(t, 60, offer.FirstItinerary().Duration.TotalMinutes())
	require.NotNil(t, offer.LastItinerary())
	assert.Equal(t, 180, offer.LastItinerary().Duration.TotalMinutes())

	// Boundary accessors hand back the backing slice entries, so enrichment
	// written through them lands on the offer itself.
	offer.FirstItinerary().Transit = []TransitLeg{{LineName: "X1"}}
	assert.Len(t, offer.Itineraries[0].Transit, 1)

	var empty Offer
	assert.Nil(t, empty.FirstItinerary())
	assert.Nil(t, empty.LastItinerary())
}

func TestOfferClone(t *testing.T) {
	original := Offer{
		ID:       "1",
		Price:    "420.00",
		Currency: "EUR",
		Itineraries: []Itinerary{
			{
				Duration: Duration{Hours: 9, Minutes: 30},
				Segments: []Segment{{Departure: "BER", Arrival: "NYC"}},
			},
			{
				Duration: Duration{Hours: 10},
				Segments: []Segment{{Departure: "NYC", Arrival: "BER"}},
				Transit:  []TransitLeg{{LineName: "X1"}},
			},
		},
	}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	// Writing through the clone's itineraries must leave the original alone.
	clone.FirstItinerary().Transit = []TransitLeg{{LineName: "X80 Express"}}
	clone.Itineraries[0].Segments[0].Arrival = "LAX"
	clone.Itineraries[1].Transit[0].LineName = "changed"

	assert.Empty(t, original.Itineraries[0].Transit)
	assert.Equal(t, "NYC", original.Itineraries[0].Segments[0].Arrival)
	assert.Equal(t, "X1", original.Itineraries[1].Transit[0].LineName)
}

func TestOfferClone_NoItineraries(t *testing.T) {
	original := Offer{ID: "1", Price: "100.00", Currency: "EUR"}
	clone := original.Clone()
	assert.Equal(t, original, clone)
	assert.Nil(t, clone.Itineraries)
}

func TestOfferJSONShape(t *testing.T) {
	offer := Offer{
		ID:       "7",
		Price:    "523.40",
		Currency: "USD",
		Itineraries: []Itinerary{
			{
				Duration: Duration{Hours: 9, Minutes: 30},
				Segments: []Segment{
					{
						Departure:     "BER",
						Arrival:       "NYC",
						DepartureTime: "2026-09-10T08:15:00",
						ArrivalTime:   "2026-09-10T11:45:00",
						CarrierCode:   "LH",
						Number:        "400",
						AircraftCode:  "74H",
						Duration:      Duration{Hours: 9, Minutes: 30},
					},
				},
			},
		},
	}

	data, err := json.Marshal(offer)
	require.NoError(t, err)

	// Durations render canonically and derived ranking fields never leak.
	assert.Contains(t, string(data), `"duration":"9h 30m"`)
	assert.NotContains(t, string(data), "totalDuration")
	assert.NotContains(t, string(data), "priceFloat")
	assert.NotContains(t, string(data), "transitDetails")
}
