package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/trip-offer-aggregation-service/internal/adapter/http/response"
)

func bestOptionsBody() map[string]interface{} {
	return map[string]interface{}{
		"originCity":      "Berlin",
		"destinationCity": "New York",
		"departureDate":   "2026-09-10",
		"returnDate":      "2026-09-24",
	}
}

func TestBestOptions_InternationalFanOut(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.BestOptions(bestOptionsBody())
	require.Equal(t, http.StatusOK, resp.Code)

	results, err := resp.ParseOfferResults()
	require.NoError(t, err)

	// One search against the requested destination plus one per alternate
	// airport in the destination country.
	assert.Equal(t, 3, ts.Amadeus.OfferCalls())
	assert.Equal(t, []string{"CHI", "LAX", "NYC"}, ts.Amadeus.OfferDestinations())

	// One token acquisition covers the whole fan-out.
	assert.Equal(t, 1, ts.Amadeus.TokenCalls())

	// Every fetch returns the same two offers, so the pooled top three are
	// all copies of the cheaper one.
	require.Equal(t, 3, results.Count)
	for _, offer := range results.Offers {
		assert.Equal(t, "2", offer.ID)
		assert.Equal(t, "548.90", offer.Price)
	}
}

func TestBestOptions_EnrichesBoundaryItineraries(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.BestOptions(bestOptionsBody())
	require.Equal(t, http.StatusOK, resp.Code)

	results, err := resp.ParseOfferResults()
	require.NoError(t, err)
	require.NotEmpty(t, results.Offers)

	for _, offer := range results.Offers {
		require.Len(t, offer.Itineraries, 2)

		outbound := offer.Itineraries[0]
		require.NotEmpty(t, outbound.Transit)
		assert.Equal(t, "Airport Terminal 2", outbound.Transit[0].DepartureStop)
		assert.Equal(t, "Downtown Station", outbound.Transit[0].ArrivalStop)
		assert.Equal(t, "Bus", outbound.Transit[0].Vehicle)
		assert.Equal(t, "X80 Express", outbound.Transit[0].LineName)
		assert.Equal(t, "City Transit", outbound.Transit[0].AgencyName)

		inbound := offer.Itineraries[1]
		require.NotEmpty(t, inbound.Transit)
	}

	// Outbound: the flight lands in Chicago but the traveler wants New York,
	// so the onward leg departs when the flight arrives.
	onward, ok := ts.Gmaps.QueryBetween("Chicago airport", "New York")
	require.True(t, ok)
	assert.NotEmpty(t, onward.Get("departure_time"))
	assert.Empty(t, onward.Get("arrival_time"))
	assert.Equal(t, "transit", onward.Get("mode"))
	assert.Equal(t, "bus", onward.Get("transit_mode"))

	// Inbound: the return departs from Chicago, so the access leg from the
	// origin city must arrive before takeoff.
	access, ok := ts.Gmaps.QueryBetween("Berlin", "Chicago airport")
	require.True(t, ok)
	assert.NotEmpty(t, access.Get("arrival_time"))
	assert.Empty(t, access.Get("departure_time"))

	// Two boundary itineraries per top offer.
	assert.Equal(t, 2*len(results.Offers), ts.Gmaps.Calls())
}

func TestBestOptions_LeavesCachedOffersUnenriched(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.BestOptions(bestOptionsBody())
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, 3, ts.Amadeus.OfferCalls())

	// The plain search reuses the fan-out's cached base fetch; the entry it
	// reads must be the raw upstream offers, not the enriched top picks.
	q := offerQuery()
	q.Set("destination", "NYC")

	resp = ts.SearchOffers(q)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 3, ts.Amadeus.OfferCalls(), "search must be served from cache")

	results, err := resp.ParseOfferResults()
	require.NoError(t, err)
	require.NotEmpty(t, results.Offers)
	for _, offer := range results.Offers {
		for _, it := range offer.Itineraries {
			assert.Empty(t, it.Transit)
		}
	}
}

func TestBestOptions_FanOutDropsNonStopRestriction(t *testing.T) {
	ts := NewTestServer(t)

	body := bestOptionsBody()
	body["nonStop"] = true

	resp := ts.BestOptions(body)
	require.Equal(t, http.StatusOK, resp.Code)

	for _, q := range ts.Amadeus.OfferQueries() {
		assert.Empty(t, q.Get("nonStop"))
	}
}

func TestBestOptions_DomesticFanOut(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.BestOptions(map[string]interface{}{
		"originCity":      "Berlin",
		"destinationCity": "Munich",
		"departureDate":   "2026-09-10",
		"returnDate":      "2026-09-24",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	results, err := resp.ParseOfferResults()
	require.NoError(t, err)

	// Domestic trips fan out on the origin side only. Germany has one
	// alternate left once the origin itself and the destination are excluded.
	queries := ts.Amadeus.OfferQueries()
	require.Len(t, queries, 1)
	assert.Equal(t, "FRA", queries[0].Get("originLocationCode"))
	assert.Equal(t, "MUC", queries[0].Get("destinationLocationCode"))

	// Both boundary itineraries get a ground-transit leg anchored on the
	// origin city.
	require.NotEmpty(t, results.Offers)
	for _, offer := range results.Offers {
		require.Len(t, offer.Itineraries, 2)
		assert.NotEmpty(t, offer.Itineraries[0].Transit)
		assert.NotEmpty(t, offer.Itineraries[1].Transit)
	}
}

func TestBestOptions_PreResolvedCodesSkipLocationLookup(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.BestOptions(map[string]interface{}{
		"originCity":      "Berlin",
		"destinationCity": "New York",
		"origin":          "BER",
		"destination":     "NYC",
		"departureDate":   "2026-09-10",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 0, ts.Amadeus.LocationCalls())
	assert.Equal(t, 3, ts.Amadeus.OfferCalls())
}

func TestBestOptions_UnresolvableCity(t *testing.T) {
	ts := NewTestServer(t)

	body := bestOptionsBody()
	body["destinationCity"] = "Atlantis"

	resp := ts.BestOptions(body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	detail, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeUnresolvableCode, detail.Code)
	assert.Contains(t, detail.Message, "Atlantis")
	assert.Equal(t, 0, ts.Amadeus.OfferCalls())
}

func TestBestOptions_ValidationFailure(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.BestOptions(map[string]interface{}{
		"departureDate": "2026-09-10",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	detail, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "originCity")
	assert.Contains(t, detail.Details, "destinationCity")
}

func TestBestOptions_MalformedBody(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/trips/best-options",
		Body:   "not-an-object",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	detail, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeInvalidRequest, detail.Code)
}
