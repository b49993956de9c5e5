// Package integration provides helpers and integration tests for the trip
// offer aggregation service. The tests run the real handler, use case, and
// oracle adapters against stubbed upstream servers; only the network edge is
// faked.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trip-search/trip-offer-aggregation-service/internal/adapter/amadeus"
	"github.com/trip-search/trip-offer-aggregation-service/internal/adapter/gmaps"
	triphttp "github.com/trip-search/trip-offer-aggregation-service/internal/adapter/http"
	"github.com/trip-search/trip-offer-aggregation-service/internal/adapter/http/response"
	"github.com/trip-search/trip-offer-aggregation-service/internal/booking"
	"github.com/trip-search/trip-offer-aggregation-service/internal/cache"
	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/logger"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/timeutil"
	"github.com/trip-search/trip-offer-aggregation-service/internal/ratelimit"
	"github.com/trip-search/trip-offer-aggregation-service/internal/usecase"
	"github.com/trip-search/trip-offer-aggregation-service/test/testutil"
)

// AmadeusStub fakes the offer oracle: token, offer search, location
// resolution, and order placement on one server.
type AmadeusStub struct {
	Server *httptest.Server

	// TokenStatus overrides the token endpoint status; 0 means 200.
	TokenStatus int

	// OffersPayload is the body served for every offer search.
	OffersPayload []byte

	// OfferStatus overrides the offer search status; 0 means 200.
	OfferStatus int

	// LocationCodes maps a city keyword to the code the stub resolves it to.
	// Unknown keywords resolve to an empty result set.
	LocationCodes map[string]string

	// OrderStatus overrides the order endpoint status; 0 means 201.
	OrderStatus int

	tokenCalls    int64
	offerCalls    int64
	locationCalls int64
	orderCalls    int64

	mu           sync.Mutex
	offerQueries []url.Values
}

// NewAmadeusStub starts a stub resolving the default city keywords.
func NewAmadeusStub(t *testing.T) *AmadeusStub {
	t.Helper()

	stub := &AmadeusStub{
		OffersPayload: testutil.LoadTestJSON(t, "amadeus_offers_response.json"),
		LocationCodes: map[string]string{
			"Berlin":   "BER",
			"Munich":   "MUC",
			"New York": "NYC",
			"Chicago":  "CHI",
			"Tokyo":    "TYO",
		},
	}
	stub.Server = httptest.NewServer(http.HandlerFunc(stub.handle))
	t.Cleanup(stub.Server.Close)
	return stub
}

func (s *AmadeusStub) handle(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/v1/security/oauth2/token":
		atomic.AddInt64(&s.tokenCalls, 1)
		if s.TokenStatus != 0 && s.TokenStatus != http.StatusOK {
			w.WriteHeader(s.TokenStatus)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"access_token": "itest-token",
			"token_type":   "Bearer",
			"expires_in":   1799,
		})

	case "/v2/shopping/flight-offers":
		atomic.AddInt64(&s.offerCalls, 1)
		s.mu.Lock()
		s.offerQueries = append(s.offerQueries, r.URL.Query())
		s.mu.Unlock()

		if s.OfferStatus != 0 && s.OfferStatus != http.StatusOK {
			w.WriteHeader(s.OfferStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(s.OffersPayload)

	case "/v1/reference-data/locations":
		atomic.AddInt64(&s.locationCalls, 1)
		data := []map[string]string{}
		if code, ok := s.LocationCodes[r.URL.Query().Get("keyword")]; ok {
			data = append(data, map[string]string{"iataCode": code})
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": data})

	case "/v1/booking/flight-orders":
		atomic.AddInt64(&s.orderCalls, 1)
		if s.OrderStatus != 0 && s.OrderStatus != http.StatusCreated {
			w.WriteHeader(s.OrderStatus)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"data": map[string]interface{}{
				"id":                "ord-7291",
				"associatedRecords": []map[string]string{{"reference": "QX8MTL"}},
				"flightOffers": []map[string]interface{}{
					{"price": map[string]string{"total": "548.90", "currency": "EUR"}},
				},
				"ticketingAgreement": map[string]string{"option": "DELAY_TO_CANCEL"},
			},
		})

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// TokenCalls reports how many token acquisitions the stub served.
func (s *AmadeusStub) TokenCalls() int { return int(atomic.LoadInt64(&s.tokenCalls)) }

// OfferCalls reports how many offer searches reached the stub.
func (s *AmadeusStub) OfferCalls() int { return int(atomic.LoadInt64(&s.offerCalls)) }

// LocationCalls reports how many location lookups reached the stub.
func (s *AmadeusStub) LocationCalls() int { return int(atomic.LoadInt64(&s.locationCalls)) }

// OrderCalls reports how many order placements reached the stub.
func (s *AmadeusStub) OrderCalls() int { return int(atomic.LoadInt64(&s.orderCalls)) }

// OfferQueries returns a copy of all recorded offer search queries.
func (s *AmadeusStub) OfferQueries() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.offerQueries...)
}

// OfferDestinations lists the destination codes of all offer searches, sorted.
func (s *AmadeusStub) OfferDestinations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	codes := make([]string, 0, len(s.offerQueries))
	for _, q := range s.offerQueries {
		codes = append(codes, q.Get("destinationLocationCode"))
	}
	sort.Strings(codes)
	return codes
}

// GmapsStub fakes the directions oracle with a single bus route per query.
type GmapsStub struct {
	Server *httptest.Server

	calls int64

	mu      sync.Mutex
	queries []url.Values
}

// NewGmapsStub starts a directions stub.
func NewGmapsStub(t *testing.T) *GmapsStub {
	t.Helper()

	stub := &GmapsStub{}
	stub.Server = httptest.NewServer(http.HandlerFunc(stub.handle))
	t.Cleanup(stub.Server.Close)
	return stub
}

func (s *GmapsStub) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/maps/api/directions/json" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	atomic.AddInt64(&s.calls, 1)
	s.mu.Lock()
	s.queries = append(s.queries, r.URL.Query())
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "OK",
		"routes": []map[string]interface{}{{
			"legs": []map[string]interface{}{{
				"steps": []map[string]interface{}{{
					"travel_mode": "TRANSIT",
					"transit_details": map[string]interface{}{
						"departure_stop": map[string]string{"name": "Airport Terminal 2"},
						"arrival_stop":   map[string]string{"name": "Downtown Station"},
						"departure_time": map[string]int64{"value": 1789040000},
						"arrival_time":   map[string]int64{"value": 1789044200},
						"num_stops":      8,
						"line": map[string]interface{}{
							"name":     "X80 Express",
							"vehicle":  map[string]string{"name": "Bus"},
							"agencies": []map[string]string{{"name": "City Transit", "url": "https://citytransit.example"}},
						},
					},
				}},
			}},
		}},
	})
}

// Calls reports how many directions queries reached the stub.
func (s *GmapsStub) Calls() int { return int(atomic.LoadInt64(&s.calls)) }

// Queries returns a copy of all recorded directions queries.
func (s *GmapsStub) Queries() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.queries...)
}

// QueryBetween returns the first recorded query matching the given endpoints.
func (s *GmapsStub) QueryBetween(origin, destination string) (url.Values, bool) {
	for _, q := range s.Queries() {
		if q.Get("origin") == origin && q.Get("destination") == destination {
			return q, true
		}
	}
	return nil, false
}

// memoryBookingRepo is an in-memory booking.Repository for tests.
type memoryBookingRepo struct {
	mu       sync.Mutex
	byID     map[string]booking.Booking
	inserted []string
}

func newMemoryBookingRepo() *memoryBookingRepo {
	return &memoryBookingRepo{byID: make(map[string]booking.Booking)}
}

func (r *memoryBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[b.ID] = *b
	r.inserted = append(r.inserted, b.ID)
	return nil
}

func (r *memoryBookingRepo) GetByID(_ context.Context, id string) (*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return &b, nil
}

// ListByEmail returns the contact's bookings, latest first.
func (r *memoryBookingRepo) ListByEmail(_ context.Context, email string) ([]booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []booking.Booking
	for i := len(r.inserted) - 1; i >= 0; i-- {
		if b := r.byID[r.inserted[i]]; b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ booking.Repository = (*memoryBookingRepo)(nil)

// TestServer runs the full HTTP surface against the stubbed oracles.
type TestServer struct {
	Echo    *echo.Echo
	Amadeus *AmadeusStub
	Gmaps   *GmapsStub
	Repo    *memoryBookingRepo
}

// NewTestServer wires the real adapters, use case, booking service, and
// handler against fresh stubs. Rate limits are opened wide so tests never
// wait on a bucket.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	amadeusStub := NewAmadeusStub(t)
	gmapsStub := NewGmapsStub(t)

	log := logger.Nop()
	clock := timeutil.NewRealClock()
	offerCache := cache.NewMemoryCache(time.Minute, clock)
	limiter := ratelimit.NewOracleLimiter(ratelimit.Config{RequestsPerSecond: 1000, BurstSize: 1000})

	client := amadeusStub.Server.Client()
	tokens := amadeus.NewTokenCache(amadeus.TokenConfig{
		BaseURL:      amadeusStub.Server.URL,
		ClientID:     "itest-id",
		ClientSecret: "itest-secret",
	}, client, clock, log)

	offers := amadeus.NewClient(amadeus.ClientConfig{
		BaseURL: amadeusStub.Server.URL,
		Timeout: 5 * time.Second,
	}, client, offerCache, limiter, log)

	locations := amadeus.NewLocationsClient(amadeusStub.Server.URL, client, clock, log)

	transit := gmaps.NewDirectionsClient(gmaps.Config{
		BaseURL: gmapsStub.Server.URL,
		APIKey:  "itest-key",
		Timeout: 5 * time.Second,
	}, gmapsStub.Server.Client(), limiter, log)

	planner := usecase.NewTripPlannerUseCase(usecase.Deps{
		Tokens:    tokens,
		Offers:    offers,
		Locations: locations,
		Transit:   transit,
		Directory: domain.NewDefaultDirectory(),
		Logger:    log,
	}, nil)

	repo := newMemoryBookingRepo()
	bookings := booking.NewService(booking.Deps{
		Tokens: tokens,
		Placer: amadeus.NewOrdersClient(amadeusStub.Server.URL, client, log),
		Repo:   repo,
		Clock:  clock,
		Logger: log,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := triphttp.NewTripHandler(planner, bookings)
	triphttp.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Amadeus: amadeusStub,
		Gmaps:   gmapsStub,
		Repo:    repo,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchOffers issues a ranked offer search with the given query values.
func (ts *TestServer) SearchOffers(query url.Values) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/offers?" + query.Encode(),
	})
}

// BestOptions issues a best-options request with the given body.
func (ts *TestServer) BestOptions(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/trips/best-options",
		Body:   body,
	})
}

// ParseOfferResults parses the response body as offer results.
func (r *Response) ParseOfferResults() (*triphttp.OfferResultsDTO, error) {
	var dto triphttp.OfferResultsDTO
	if err := json.Unmarshal(r.Body, &dto); err != nil {
		return nil, fmt.Errorf("parse offer results: %w", err)
	}
	return &dto, nil
}

// ParseError parses the response body as an error detail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, fmt.Errorf("parse error detail: %w", err)
	}
	return &detail, nil
}

// ParseBooking parses the response body as a booking record.
func (r *Response) ParseBooking() (*booking.Booking, error) {
	var b booking.Booking
	if err := json.Unmarshal(r.Body, &b); err != nil {
		return nil, fmt.Errorf("parse booking: %w", err)
	}
	return &b, nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
