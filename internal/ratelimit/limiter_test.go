package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLimiterReturnsSameInstance(t *testing.T) {
	p := NewOracleLimiterWithDefaults()

	a := p.GetLimiter("amadeus")
	b := p.GetLimiter("amadeus")
	assert.Same(t, a, b)

	other := p.GetLimiter("gmaps")
	assert.NotSame(t, a, other)
}

func TestSetOracleLimitOverrides(t *testing.T) {
	p := NewOracleLimiterWithDefaults()
	p.SetOracleLimit("amadeus", 1, 1)

	limiter := p.GetLimiter("amadeus")
	assert.Equal(t, float64(1), float64(limiter.Limit()))
	assert.Equal(t, 1, limiter.Burst())
}

func TestWaitWithinBurst(t *testing.T) {
	p := NewOracleLimiter(Config{RequestsPerSecond: 1, BurstSize: 3})
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Wait(ctx, "amadeus"))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond, "burst capacity must not block")
}

func TestWaitHonorsContextCancellation(t *testing.T) {
	p := NewOracleLimiter(Config{RequestsPerSecond: 0.001, BurstSize: 1})
	ctx := context.Background()

	require.NoError(t, p.Wait(ctx, "amadeus"))

	cancelCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	err := p.Wait(cancelCtx, "amadeus")
	assert.Error(t, err, "an empty bucket must respect the context deadline")
}

func TestGetLimiterConcurrent(t *testing.T) {
	p := NewOracleLimiterWithDefaults()

	var wg sync.WaitGroup
	limiters := make([]any, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			limiters[i] = p.GetLimiter("amadeus")
		}(i)
	}
	wg.Wait()

	for i := 1; i < 16; i++ {
		assert.Same(t, limiters[0], limiters[i])
	}
}
