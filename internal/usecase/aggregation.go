package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/logger"
)

// TripPlannerUseCase defines the read-only aggregation operations exposed to
// the HTTP boundary.
type TripPlannerUseCase interface {
	// GetRankedOffers resolves the trip's locations, issues a single offer
	// search, and returns the canonical offers in stable rank order. No
	// transit enrichment is applied.
	GetRankedOffers(ctx context.Context, trip domain.TripRequest) ([]domain.Offer, error)

	// GetBestOptions classifies the trip, fans searches out across alternate
	// airports, ranks the pooled candidates, and enriches the top offers
	// with ground-transit connections on their boundary itineraries.
	GetBestOptions(ctx context.Context, trip domain.TripRequest) ([]domain.Offer, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// TopK is the number of ranked offers that get transit enrichment.
	TopK int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{TopK: DefaultTopK}
}

// Deps are the collaborators the use case consumes. All oracles are opaque;
// the use case owns no network detail beyond their contracts.
type Deps struct {
	Tokens    domain.TokenSource
	Offers    domain.OfferSearcher
	Locations domain.LocationResolver
	Transit   domain.TransitPlanner
	Directory *domain.Directory
	Logger    *logger.Logger
}

type tripPlannerUseCase struct {
	tokens    domain.TokenSource
	offers    domain.OfferSearcher
	locations domain.LocationResolver
	transit   domain.TransitPlanner
	directory *domain.Directory
	topK      int
	log       *logger.Logger
}

// NewTripPlannerUseCase creates a TripPlannerUseCase with the given
// collaborators. If config is nil, defaults are used.
func NewTripPlannerUseCase(deps Deps, config *Config) TripPlannerUseCase {
	cfg := DefaultConfig()
	if config != nil && config.TopK > 0 {
		cfg.TopK = config.TopK
	}

	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &tripPlannerUseCase{
		tokens:    deps.Tokens,
		offers:    deps.Offers,
		locations: deps.Locations,
		transit:   deps.Transit,
		directory: deps.Directory,
		topK:      cfg.TopK,
		log:       log,
	}
}

// GetRankedOffers implements TripPlannerUseCase.GetRankedOffers.
func (uc *tripPlannerUseCase) GetRankedOffers(ctx context.Context, trip domain.TripRequest) ([]domain.Offer, error) {
	trip.SetDefaults()

	token, err := uc.tokens.Token(ctx)
	if err != nil {
		return nil, domain.NewCredentialError("acquire search token", err)
	}

	if err := uc.resolveCodes(ctx, token, &trip); err != nil {
		return nil, err
	}
	if err := trip.SearchParams.Validate(); err != nil {
		return nil, err
	}

	offers := uc.fetch(ctx, token, trip.SearchParams)
	return RankTop(offers, len(offers)), nil
}

// GetBestOptions implements TripPlannerUseCase.GetBestOptions.
func (uc *tripPlannerUseCase) GetBestOptions(ctx context.Context, trip domain.TripRequest) ([]domain.Offer, error) {
	started := time.Now()
	trip.SetDefaults()

	token, err := uc.tokens.Token(ctx)
	if err != nil {
		return nil, domain.NewCredentialError("acquire search token", err)
	}

	if err := uc.resolveCodes(ctx, token, &trip); err != nil {
		return nil, err
	}
	if err := trip.SearchParams.Validate(); err != nil {
		return nil, err
	}

	// The flight search never sees the surface-transit radius, and alternate
	// searches must not inherit a non-stop restriction: a one-stop itinerary
	// into a nearby airport is exactly what the fan-out is looking for.
	base := trip.SearchParams
	base.NonStop = false

	international, err := IsInternational(uc.directory, base.OriginCode, base.DestinationCode)
	if err != nil {
		return nil, fmt.Errorf("classify trip: %w", err)
	}

	var pool []domain.Offer
	if international {
		// Destination-side fan-out; the unmodified-destination search joins
		// the pool alongside every alternate's results.
		pool = uc.fetch(ctx, token, base)
		alternates := uc.directory.CodesInCountry(base.DestinationCode)
		pool = append(pool, uc.fanOut(ctx, token, base, alternates, substituteDestination)...)
	} else {
		// Origin-side fan-out. Only the alternates feed the pool here; the
		// origin itself and the destination are both excluded from the
		// alternate set.
		alternates := excludeCode(uc.directory.CodesInCountry(base.OriginCode), base.DestinationCode)
		pool = uc.fanOut(ctx, token, base, alternates, substituteOrigin)
	}

	top := RankTop(pool, uc.topK)

	if international {
		uc.enrichInternational(ctx, top, trip.OriginCity, trip.DestinationCity)
	} else {
		uc.enrichDomestic(ctx, top, trip.OriginCity, trip.DestinationCity)
	}

	uc.log.Info().
		Bool("international", international).
		Int("pool_size", len(pool)).
		Int("top_k", len(top)).
		Dur("elapsed", time.Since(started)).
		Msg("Best options aggregated")

	return top, nil
}

// resolveCodes fills in any missing IATA codes from the trip's city names.
// Codes are always resolved before any fetch; a city the location oracle
// cannot place is ambiguous, which is fatal to the request.
func (uc *tripPlannerUseCase) resolveCodes(ctx context.Context, token string, trip *domain.TripRequest) error {
	if trip.OriginCode == "" {
		code, err := uc.locations.ResolveCityCode(ctx, token, trip.OriginCity)
		if err != nil || code == "" {
			return domain.NewAmbiguousCodeError(trip.OriginCity)
		}
		trip.OriginCode = code
	}
	if trip.DestinationCode == "" {
		code, err := uc.locations.ResolveCityCode(ctx, token, trip.DestinationCity)
		if err != nil || code == "" {
			return domain.NewAmbiguousCodeError(trip.DestinationCity)
		}
		trip.DestinationCode = code
	}
	return nil
}

// substitution selects which side of the search an alternate airport replaces.
type substitution int

const (
	substituteOrigin substitution = iota
	substituteDestination
)

// fetchResult holds the outcome of a single fan-out fetch.
type fetchResult struct {
	airport string
	offers  []domain.Offer
	err     error
}

// fanOut issues one offer search per alternate airport concurrently and
// pools the results. A failed fetch contributes zero offers and never aborts
// its siblings; each airport's contribution is independent.
func (uc *tripPlannerUseCase) fanOut(ctx context.Context, token string, base domain.SearchParams, alternates []string, sub substitution) []domain.Offer {
	if len(alternates) == 0 {
		return nil
	}

	results := make(chan fetchResult, len(alternates))
	var wg sync.WaitGroup

	for _, airport := range alternates {
		wg.Add(1)
		go func(airport string) {
			defer wg.Done()

			params := base
			if sub == substituteDestination {
				params.DestinationCode = airport
			} else {
				params.OriginCode = airport
			}

			offers, err := uc.offers.FetchOffers(ctx, token, params)
			results <- fetchResult{airport: airport, offers: offers, err: err}
		}(airport)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var pool []domain.Offer
	for r := range results {
		if r.err != nil {
			uc.log.Warn().Err(r.err).Str("airport", r.airport).Msg("Alternate-airport fetch failed")
			continue
		}
		pool = append(pool, r.offers...)
	}
	return pool
}

// fetch runs a single search, degrading a failure to zero offers.
func (uc *tripPlannerUseCase) fetch(ctx context.Context, token string, params domain.SearchParams) []domain.Offer {
	offers, err := uc.offers.FetchOffers(ctx, token, params)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("origin", params.OriginCode).
			Str("destination", params.DestinationCode).
			Msg("Offer fetch failed")
		return nil
	}
	return offers
}

func excludeCode(codes []string, exclude string) []string {
	out := codes[:0:0]
	for _, c := range codes {
		if c != exclude {
			out = append(out, c)
		}
	}
	return out
}

// Ensure tripPlannerUseCase implements TripPlannerUseCase at compile time.
var _ TripPlannerUseCase = (*tripPlannerUseCase)(nil)
