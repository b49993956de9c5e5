package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/logger"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/timeutil"
)

// TokenConfig holds the OAuth2 client credentials.
type TokenConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// TokenCache acquires OAuth2 bearer tokens and reuses them until expiry.
// Concurrent callers share one in-flight acquisition; only the holder of the
// lock talks to the upstream.
type TokenCache struct {
	httpClient *http.Client
	cfg        TokenConfig
	clock      timeutil.Clock
	log        *logger.Logger

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewTokenCache creates a token cache. A nil clock defaults to system time
// and a nil httpClient to a default client.
func NewTokenCache(cfg TokenConfig, httpClient *http.Client, clock timeutil.Clock, log *logger.Logger) *TokenCache {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
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
	return &TokenCache{
		httpClient: httpClient,
		cfg:        cfg,
		clock:      clock,
		log:        log,
	}
}

// Token implements domain.TokenSource. The cached token is returned as long
// as it has not expired; otherwise a fresh one is fetched and cached.
func (tc *TokenCache) Token(ctx context.Context) (string, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if tc.token != "" && tc.clock.Now().Before(tc.expiry) {
		return tc.token, nil
	}

	if tc.cfg.ClientID == "" || tc.cfg.ClientSecret == "" {
		return "", domain.NewCredentialError("client id and secret must be configured", nil)
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", tc.cfg.ClientID)
	form.Set("client_secret", tc.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tc.cfg.BaseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", domain.NewCredentialError("build token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := tc.httpClient.Do(req)
	if err != nil {
		return "", domain.NewCredentialError("token endpoint unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewCredentialError(fmt.Sprintf("token endpoint returned status %d", resp.StatusCode), nil)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", domain.NewCredentialError("decode token response", err)
	}
	if body.AccessToken == "" {
		return "", domain.NewCredentialError("token response carried no access token", nil)
	}

	tc.token = body.AccessToken
	tc.expiry = tc.clock.Now().Add(time.Duration(body.ExpiresIn) * time.Second)

	tc.log.Debug().Int("expires_in", body.ExpiresIn).Msg("Bearer token refreshed")
	return tc.token, nil
}

// Invalidate drops the cached token so the next Token call refreshes it.
func (tc *TokenCache) Invalidate() {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.token = ""
	tc.expiry = time.Time{}
}

var _ domain.TokenSource = (*TokenCache)(nil)
