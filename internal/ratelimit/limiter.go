// Package ratelimit throttles outbound calls per upstream oracle.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Config sets the default rate applied to oracles without an explicit limit.
type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultConfig returns limits safe for the upstream sandbox tiers.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

// OracleLimiter keeps one token bucket per named oracle. Limiters are created
// lazily on first use.
type OracleLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

// NewOracleLimiter creates a limiter registry with the given defaults.
func NewOracleLimiter(config Config) *OracleLimiter {
	return &OracleLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

// NewOracleLimiterWithDefaults creates a limiter registry with DefaultConfig.
func NewOracleLimiterWithDefaults() *OracleLimiter {
	return NewOracleLimiter(DefaultConfig())
}

// GetLimiter returns the limiter for the named oracle, creating it on demand.
func (p *OracleLimiter) GetLimiter(oracle string) *rate.Limiter {
	p.mu.RLock()
	limiter, exists := p.limiters[oracle]
	p.mu.RUnlock()

	if exists {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if limiter, exists = p.limiters[oracle]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(p.defaults.RequestsPerSecond), p.defaults.BurstSize)
	p.limiters[oracle] = limiter
	return limiter
}

// SetOracleLimit overrides the limit for one oracle.
func (p *OracleLimiter) SetOracleLimit(oracle string, rps float64, burst int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.limiters[oracle] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until the named oracle's bucket permits a request or the
// context ends.
func (p *OracleLimiter) Wait(ctx context.Context, oracle string) error {
	return p.GetLimiter(oracle).Wait(ctx)
}
