// Package gmaps adapts the Google Maps Directions API to the domain
// ground-transit contract. Queries are transit-only, bus-preferring, routed
// for fewer transfers.
package gmaps

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/logger"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/timeutil"
	"github.com/trip-search/trip-offer-aggregation-service/internal/obs"
	"github.com/trip-search/trip-offer-aggregation-service/internal/ratelimit"
)

// OracleName identifies this upstream in logs, metrics, and rate limits.
const OracleName = "gmaps"

// DefaultBaseURL is the production Directions endpoint.
const DefaultBaseURL = "https://maps.googleapis.com"

const directionsPath = "/maps/api/directions/json"

// Config holds the directions client settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DefaultConfig returns production defaults; the API key must still be set.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 10 * time.Second,
	}
}

// DirectionsClient queries ground-transit routes between free-text places.
type DirectionsClient struct {
	httpClient *http.Client
	cfg        Config
	limiter    *ratelimit.OracleLimiter
	log        *logger.Logger
	metrics    *obs.Metrics
}

// NewDirectionsClient creates a directions client. Nil collaborators fall
// back to defaults.
func NewDirectionsClient(cfg Config, httpClient *http.Client, limiter *ratelimit.OracleLimiter, log *logger.Logger) *DirectionsClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if limiter == nil {
		limiter = ratelimit.NewOracleLimiterWithDefaults()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &DirectionsClient{
		httpClient: httpClient,
		cfg:        cfg,
		limiter:    limiter,
		log:        log,
		metrics:    obs.Nop(),
	}
}

// WithMetrics routes the client's oracle metrics to m.
func (dc *DirectionsClient) WithMetrics(m *obs.Metrics) *DirectionsClient {
	if m != nil {
		dc.metrics = m
	}
	return dc
}

// Directions implements domain.TransitPlanner. Every transit step across all
// returned routes contributes one leg; routes without transit steps
// contribute nothing.
func (dc *DirectionsClient) Directions(ctx context.Context, q domain.TransitQuery) ([]domain.TransitLeg, error) {
	if err := dc.limiter.Wait(ctx, OracleName); err != nil {
		return nil, domain.NewOracleError(OracleName, "rate limit wait", err)
	}

	ctx, cancel := context.WithTimeout(ctx, dc.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dc.cfg.BaseURL+directionsPath, nil)
	if err != nil {
		return nil, domain.NewOracleError(OracleName, "build directions request", err)
	}
	req.URL.RawQuery = dc.query(q).Encode()

	started := time.Now()
	resp, err := dc.httpClient.Do(req)
	dc.metrics.ObserveOracleLatency(OracleName, time.Since(started).Seconds())
	if err != nil {
		dc.metrics.IncOracleFailure(OracleName)
		return nil, domain.NewOracleError(OracleName, "directions request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		dc.metrics.IncOracleFailure(OracleName)
		return nil, domain.NewOracleError(OracleName, "directions returned status "+resp.Status, nil)
	}

	var envelope directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		dc.metrics.IncOracleFailure(OracleName)
		return nil, domain.NewOracleError(OracleName, "decode directions response", err)
	}

	legs := extractTransitLegs(envelope)
	dc.log.Debug().
		Str("origin", q.Origin).
		Str("destination", q.Destination).
		Int("legs", len(legs)).
		Msg("Directions resolved")

	return legs, nil
}

// query builds the transit-mode query. DepartAt and ArriveBy are mutually
// exclusive anchors; DepartAt wins when both are set.
func (dc *DirectionsClient) query(q domain.TransitQuery) url.Values {
	v := url.Values{}
	v.Set("origin", q.Origin)
	v.Set("destination", q.Destination)
	v.Set("mode", "transit")
	v.Set("transit_mode", "bus")
	v.Set("transit_routing_preference", "fewer_transfers")
	v.Set("units", "imperial")
	v.Set("key", dc.cfg.APIKey)

	if !q.DepartAt.IsZero() {
		v.Set("departure_time", strconv.FormatInt(q.DepartAt.Unix(), 10))
	} else if !q.ArriveBy.IsZero() {
		v.Set("arrival_time", strconv.FormatInt(q.ArriveBy.Unix(), 10))
	}
	return v
}

// extractTransitLegs flattens every transit step in every route into legs.
func extractTransitLegs(resp directionsResponse) []domain.TransitLeg {
	var legs []domain.TransitLeg

	for _, route := range resp.Routes {
		for _, routeLeg := range route.Legs {
			for _, step := range routeLeg.Steps {
				td := step.TransitDetails
				if td == nil {
					continue
				}

				leg := domain.TransitLeg{
					DepartureStop: td.DepartureStop.Name,
					ArrivalStop:   td.ArrivalStop.Name,
					NumStops:      td.NumStops,
					Vehicle:       td.Line.Vehicle.Name,
					LineName:      td.Line.Name,
				}
				if td.DepartureTime != nil {
					leg.DepartureTime = timeutil.FormatLocal(time.Unix(td.DepartureTime.Value, 0).UTC())
				}
				if td.ArrivalTime != nil {
					leg.ArrivalTime = timeutil.FormatLocal(time.Unix(td.ArrivalTime.Value, 0).UTC())
				}
				if len(td.Line.Agencies) > 0 {
					leg.AgencyName = td.Line.Agencies[0].Name
					leg.AgencyURL = td.Line.Agencies[0].URL
				}
				legs = append(legs, leg)
			}
		}
	}
	return legs
}

var _ domain.TransitPlanner = (*DirectionsClient)(nil)
