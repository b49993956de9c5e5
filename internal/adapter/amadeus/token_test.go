package amadeus

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/timeutil"
)

func tokenServer(t *testing.T, calls *atomic.Int32, token string, expiresIn int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, tokenPath, r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "id", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"` + token + `","token_type":"Bearer","expires_in":` + strconv.Itoa(expiresIn) + `}`))
	}))
}

func TestTokenCacheReusesUnexpiredToken(t *testing.T) {
	var calls atomic.Int32
	srv := tokenServer(t, &calls, "tok-1", 1799)
	defer srv.Close()

	clock := timeutil.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	tc := NewTokenCache(TokenConfig{BaseURL: srv.URL, ClientID: "id", ClientSecret: "secret"}, srv.Client(), clock, nil)

	ctx := context.Background()
	first, err := tc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", first)

	clock.AdvanceMinutes(5)
	second, err := tc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", second)
	assert.Equal(t, int32(1), calls.Load(), "an unexpired token must not trigger a second acquisition")
}

func TestTokenCacheRefreshesAfterExpiry(t *testing.T) {
	var calls atomic.Int32
	srv := tokenServer(t, &calls, "tok", 600)
	defer srv.Close()

	clock := timeutil.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	tc := NewTokenCache(TokenConfig{BaseURL: srv.URL, ClientID: "id", ClientSecret: "secret"}, srv.Client(), clock, nil)

	ctx := context.Background()
	_, err := tc.Token(ctx)
	require.NoError(t, err)

	clock.AdvanceMinutes(11)
	_, err = tc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTokenCacheInvalidate(t *testing.T) {
	var calls atomic.Int32
	srv := tokenServer(t, &calls, "tok", 1799)
	defer srv.Close()

	tc := NewTokenCache(TokenConfig{BaseURL: srv.URL, ClientID: "id", ClientSecret: "secret"}, srv.Client(), nil, nil)

	ctx := context.Background()
	_, err := tc.Token(ctx)
	require.NoError(t, err)

	tc.Invalidate()

	_, err = tc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTokenCacheMissingCredentials(t *testing.T) {
	tc := NewTokenCache(TokenConfig{BaseURL: "http://localhost:0"}, nil, nil, nil)

	_, err := tc.Token(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCredential))
}

func TestTokenCacheUpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	tc := NewTokenCache(TokenConfig{BaseURL: srv.URL, ClientID: "id", ClientSecret: "wrong"}, srv.Client(), nil, nil)

	_, err := tc.Token(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCredential))

	var credErr *domain.CredentialError
	require.True(t, errors.As(err, &credErr))
	assert.Contains(t, credErr.Reason, "401")
}
