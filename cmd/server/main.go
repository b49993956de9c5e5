// Package main is the entry point for the trip offer aggregation service.
//
//	@title						Trip Offer Aggregation API
//	@version					1.0.0
//	@description				A trip search service that aggregates flight offers across alternate airports, ranks them, and enriches the best options with ground-transit connections.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/trip-search/trip-offer-aggregation-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/trip-search/trip-offer-aggregation-service/docs"

	"github.com/trip-search/trip-offer-aggregation-service/internal/adapter/amadeus"
	"github.com/trip-search/trip-offer-aggregation-service/internal/adapter/gmaps"
	triphttp "github.com/trip-search/trip-offer-aggregation-service/internal/adapter/http"
	"github.com/trip-search/trip-offer-aggregation-service/internal/adapter/http/middleware"
	"github.com/trip-search/trip-offer-aggregation-service/internal/booking"
	"github.com/trip-search/trip-offer-aggregation-service/internal/cache"
	"github.com/trip-search/trip-offer-aggregation-service/internal/config"
	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/logger"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/timeutil"
	"github.com/trip-search/trip-offer-aggregation-service/internal/obs"
	"github.com/trip-search/trip-offer-aggregation-service/internal/ratelimit"
	"github.com/trip-search/trip-offer-aggregation-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	log := logger.Global

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	clock := timeutil.NewRealClock()
	metrics := obs.NewDefaultMetrics()

	offerCache, err := buildOfferCache(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize offer cache")
	}
	defer offerCache.Close()

	limiter := ratelimit.NewOracleLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
	})

	// Upstream oracle clients
	httpClient := &http.Client{Timeout: cfg.Amadeus.Timeout}
	tokens := amadeus.NewTokenCache(amadeus.TokenConfig{
		BaseURL:      cfg.Amadeus.BaseURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
	}, httpClient, clock, log)

	offers := amadeus.NewClient(amadeus.ClientConfig{
		BaseURL:          cfg.Amadeus.BaseURL,
		Timeout:          cfg.Amadeus.Timeout,
		FlushBeforeFetch: cfg.Amadeus.FlushBeforeFetch,
	}, httpClient, offerCache, limiter, log).WithMetrics(metrics)

	locations := amadeus.NewLocationsClient(cfg.Amadeus.BaseURL, httpClient, clock, log).WithMetrics(metrics)

	transit := gmaps.NewDirectionsClient(gmaps.Config{
		BaseURL: cfg.GoogleMaps.BaseURL,
		APIKey:  cfg.GoogleMaps.APIKey,
		Timeout: cfg.GoogleMaps.Timeout,
	}, &http.Client{Timeout: cfg.GoogleMaps.Timeout}, limiter, log).WithMetrics(metrics)

	planner := usecase.NewTripPlannerUseCase(usecase.Deps{
		Tokens:    tokens,
		Offers:    offers,
		Locations: locations,
		Transit:   transit,
		Directory: domain.NewDefaultDirectory(),
		Logger:    log,
	}, &usecase.Config{TopK: cfg.Aggregation.TopK})

	bookings, cleanup, err := buildBookingService(cfg, tokens, clock, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize booking service")
	}
	defer cleanup()

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupWithMetrics(e, log.Logger, metrics)

	// A nil *Service must stay a nil interface so the handler's guard fires.
	var bookingSvc triphttp.BookingService
	if bookings != nil {
		bookingSvc = bookings
	}
	handler := triphttp.NewTripHandler(planner, bookingSvc)
	triphttp.RegisterRoutes(e, handler)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildOfferCache selects the cache backend from config.
func buildOfferCache(cfg *config.Config) (cache.OfferCache, error) {
	switch cfg.Cache.Backend {
	case "redis":
		return cache.NewRedisCache(cache.RedisConfig{
			Host:     cfg.Cache.RedisHost,
			Port:     cfg.Cache.RedisPort,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			TTL:      cfg.Cache.TTL,
		})
	case "none":
		return cache.NewNoOpCache(), nil
	default:
		return cache.NewMemoryCache(cfg.Cache.TTL, timeutil.NewRealClock()), nil
	}
}

// buildBookingService wires the booking store and event stream. Both are
// optional: without a Postgres DSN the booking endpoints answer 503, and
// without Kafka brokers events are simply not published.
func buildBookingService(cfg *config.Config, tokens domain.TokenSource, clock timeutil.Clock, log *logger.Logger) (*booking.Service, func(), error) {
	if cfg.Postgres.DSN == "" {
		log.Info().Msg("No Postgres DSN configured, booking endpoints disabled")
		return nil, func() {}, nil
	}

	pool, err := pgxpool.New(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("connect booking store: %w", err)
	}

	var events booking.EventPublisher
	var publisher *booking.KafkaPublisher
	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		publisher = booking.NewKafkaPublisher(booking.KafkaConfig{
			Brokers: brokers,
			Topic:   cfg.Kafka.Topic,
		})
		events = publisher
	}

	svc := booking.NewService(booking.Deps{
		Tokens: tokens,
		Placer: amadeus.NewOrdersClient(cfg.Amadeus.BaseURL, &http.Client{Timeout: cfg.Amadeus.Timeout}, log),
		Repo:   booking.NewPostgresRepository(pool),
		Events: events,
		Clock:  clock,
		Logger: log,
	})

	cleanup := func() {
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close event publisher")
			}
		}
		pool.Close()
	}
	return svc, cleanup, nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
