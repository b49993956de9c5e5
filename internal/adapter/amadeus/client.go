package amadeus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/trip-search/trip-offer-aggregation-service/internal/cache"
	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/logger"
	"github.com/trip-search/trip-offer-aggregation-service/internal/obs"
	"github.com/trip-search/trip-offer-aggregation-service/internal/ratelimit"
)

// ClientConfig holds the offer-search client settings.
type ClientConfig struct {
	BaseURL string

	// Timeout bounds one search round trip.
	Timeout time.Duration

	// FlushBeforeFetch drops the whole offer cache ahead of every search,
	// reducing the cache to staleness protection only. Off by default so
	// entries actually get reused within their TTL.
	FlushBeforeFetch bool
}

// DefaultClientConfig returns the sandbox defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Client searches flight offers against the upstream oracle. Results are
// cached per parameter set; searches are throttled per oracle.
type Client struct {
	httpClient *http.Client
	cfg        ClientConfig
	cache      cache.OfferCache
	limiter    *ratelimit.OracleLimiter
	log        *logger.Logger
	metrics    *obs.Metrics
}

// NewClient creates an offer-search client. Nil collaborators fall back to a
// default HTTP client, a no-op cache, default rate limits, and a silent
// logger.
func NewClient(cfg ClientConfig, httpClient *http.Client, offerCache cache.OfferCache, limiter *ratelimit.OracleLimiter, log *logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if offerCache == nil {
		offerCache = cache.NewNoOpCache()
	}
	if limiter == nil {
		limiter = ratelimit.NewOracleLimiterWithDefaults()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
		cache:      offerCache,
		limiter:    limiter,
		log:        log,
		metrics:    obs.Nop(),
	}
}

// WithMetrics routes the client's search and oracle metrics to m.
func (c *Client) WithMetrics(m *obs.Metrics) *Client {
	if m != nil {
		c.metrics = m
	}
	return c
}

// FetchOffers implements domain.OfferSearcher. Upstream failures, non-200
// statuses included, degrade to an empty offer list: one search never takes
// the aggregation down with it.
func (c *Client) FetchOffers(ctx context.Context, token string, params domain.SearchParams) ([]domain.Offer, error) {
	c.metrics.IncSearches()

	if c.cfg.FlushBeforeFetch {
		if err := c.cache.Flush(ctx); err != nil {
			c.log.Warn().Err(err).Msg("Offer cache flush failed")
		}
	}

	if offers, ok := c.cache.Get(ctx, params); ok {
		c.metrics.IncCacheHits()
		c.log.Debug().
			Str("origin", params.OriginCode).
			Str("destination", params.DestinationCode).
			Msg("Offer cache hit")
		return offers, nil
	}

	if err := c.limiter.Wait(ctx, OracleName); err != nil {
		return []domain.Offer{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+offersPath, nil)
	if err != nil {
		return nil, domain.NewOracleError(OracleName, "build offer search request", err)
	}
	req.URL.RawQuery = searchQuery(params).Encode()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", acceptHeader)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveOracleLatency(OracleName, time.Since(started).Seconds())
	if err != nil {
		c.metrics.IncOracleFailure(OracleName)
		c.log.Warn().Err(err).
			Str("origin", params.OriginCode).
			Str("destination", params.DestinationCode).
			Msg("Offer search request failed")
		return []domain.Offer{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.metrics.IncOracleFailure(OracleName)
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("origin", params.OriginCode).
			Str("destination", params.DestinationCode).
			Str("body", string(body)).
			Msg("Offer search returned non-200")
		return []domain.Offer{}, nil
	}

	var envelope offersResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.metrics.IncOracleFailure(OracleName)
		c.log.Warn().Err(err).Msg("Offer search response undecodable")
		return []domain.Offer{}, nil
	}

	offers := parseOffers(envelope, c.log)

	if err := c.cache.Set(ctx, params, offers); err != nil {
		c.log.Warn().Err(err).Msg("Offer cache write failed")
	}

	c.log.Debug().
		Str("origin", params.OriginCode).
		Str("destination", params.DestinationCode).
		Int("offers", len(offers)).
		Msg("Offer search completed")

	return offers, nil
}

// searchQuery maps the typed parameters onto the upstream query string.
// Empty optional fields are omitted.
func searchQuery(params domain.SearchParams) url.Values {
	q := url.Values{}
	q.Set("originLocationCode", params.OriginCode)
	q.Set("destinationLocationCode", params.DestinationCode)
	q.Set("departureDate", params.DepartureDate)
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	q.Set("adults", strconv.Itoa(params.Adults))
	if params.NonStop {
		q.Set("nonStop", "true")
	}
	if params.MaxResults > 0 {
		q.Set("max", strconv.Itoa(params.MaxResults))
	}
	return q
}

var _ domain.OfferSearcher = (*Client)(nil)
