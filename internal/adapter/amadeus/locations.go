package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/logger"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/timeutil"
	"github.com/trip-search/trip-offer-aggregation-service/internal/obs"
)

// locationCacheTTL bounds how long a resolved city code is reused.
const locationCacheTTL = 5 * time.Minute

type locationEntry struct {
	code      string
	expiresAt time.Time
}

// LocationsClient resolves free-text city names to IATA city codes via the
// reference-data location search. Resolutions are cached per city name.
type LocationsClient struct {
	httpClient *http.Client
	baseURL    string
	clock      timeutil.Clock
	log        *logger.Logger
	metrics    *obs.Metrics

	mu      sync.RWMutex
	entries map[string]locationEntry
}

// NewLocationsClient creates a location resolver.
func NewLocationsClient(baseURL string, httpClient *http.Client, clock timeutil.Clock, log *logger.Logger) *LocationsClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LocationsClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		clock:      clock,
		log:        log,
		metrics:    obs.Nop(),
		entries:    make(map[string]locationEntry),
	}
}

// WithMetrics routes the resolver's oracle metrics to m.
func (lc *LocationsClient) WithMetrics(m *obs.Metrics) *LocationsClient {
	if m != nil {
		lc.metrics = m
	}
	return lc
}

// ResolveCityCode implements domain.LocationResolver. The first code the
// upstream returns wins; a city without results resolves to the empty string
// with no error, which callers treat as ambiguous.
func (lc *LocationsClient) ResolveCityCode(ctx context.Context, token, city string) (string, error) {
	if code, ok := lc.cached(city); ok {
		return code, nil
	}

	q := url.Values{}
	q.Set("subType", "CITY")
	q.Set("keyword", city)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lc.baseURL+locationsPath+"?"+q.Encode(), nil)
	if err != nil {
		return "", domain.NewOracleError(OracleName, "build location request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	started := time.Now()
	resp, err := lc.httpClient.Do(req)
	lc.metrics.ObserveOracleLatency(OracleName, time.Since(started).Seconds())
	if err != nil {
		lc.metrics.IncOracleFailure(OracleName)
		return "", domain.NewOracleError(OracleName, "location search for "+city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		lc.metrics.IncOracleFailure(OracleName)
		return "", domain.NewOracleError(OracleName, "location search for "+city+" returned status "+resp.Status, nil)
	}

	var envelope locationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		lc.metrics.IncOracleFailure(OracleName)
		return "", domain.NewOracleError(OracleName, "decode location response", err)
	}

	code := ""
	if len(envelope.Data) > 0 {
		code = envelope.Data[0].IataCode
	}

	lc.store(city, code)
	lc.log.Debug().Str("city", city).Str("code", code).Msg("City code resolved")
	return code, nil
}

func (lc *LocationsClient) cached(city string) (string, bool) {
	lc.mu.RLock()
	entry, ok := lc.entries[city]
	lc.mu.RUnlock()

	if !ok || lc.clock.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.code, true
}

func (lc *LocationsClient) store(city, code string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.entries[city] = locationEntry{
		code:      code,
		expiresAt: lc.clock.Now().Add(locationCacheTTL),
	}
}

var _ domain.LocationResolver = (*LocationsClient)(nil)
