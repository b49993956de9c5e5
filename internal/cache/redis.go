package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
)

// RedisConfig holds connection settings for the Redis-backed cache.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// DefaultRedisConfig returns local-development defaults.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		DB:   0,
		TTL:  DefaultTTL,
	}
}

// RedisCache stores offer lists in Redis with a per-entry TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get implements OfferCache.Get.
func (c *RedisCache) Get(ctx context.Context, params domain.SearchParams) ([]domain.Offer, bool) {
	data, err := c.client.Get(ctx, Key(params)).Bytes()
	if err != nil {
		return nil, false
	}

	var offers []domain.Offer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, false
	}
	return offers, true
}

// Set implements OfferCache.Set.
func (c *RedisCache) Set(ctx context.Context, params domain.SearchParams, offers []domain.Offer) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, Key(params), data, c.ttl).Err()
}

// Flush implements OfferCache.Flush. Only this cache's namespace is dropped,
// so unrelated keys in a shared Redis are untouched.
func (c *RedisCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close implements OfferCache.Close.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ OfferCache = (*RedisCache)(nil)
