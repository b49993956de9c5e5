package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/logger"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/retry"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/timeutil"
)

// OrderPlacer places a flight order with the upstream oracle.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, token string, req Request) (PlacedOrder, error)
}

// Repository stores booking records.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)

	// ListByEmail returns the contact's bookings, latest first.
	ListByEmail(ctx context.Context, email string) ([]Booking, error)
}

// EventPublisher announces booking lifecycle events.
type EventPublisher interface {
	BookingCreated(ctx context.Context, b Booking) error
}

// Deps are the service's collaborators.
type Deps struct {
	Tokens domain.TokenSource
	Placer OrderPlacer
	Repo   Repository
	Events EventPublisher
	Clock  timeutil.Clock
	Logger *logger.Logger
}

// Service coordinates order placement, storage, and event publication.
type Service struct {
	tokens domain.TokenSource
	placer OrderPlacer
	repo   Repository
	events EventPublisher
	clock  timeutil.Clock
	retry  retry.Config
	log    *logger.Logger
}

// NewService creates a booking service. A nil clock defaults to system time;
// a nil events publisher disables publication.
func NewService(deps Deps) *Service {
	clock := deps.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		tokens: deps.Tokens,
		placer: deps.Placer,
		repo:   deps.Repo,
		events: deps.Events,
		clock:  clock,
		retry:  retry.ProviderConfig.WithRetryIf(retry.SkipPermanent),
		log:    log,
	}
}

// Book validates the request, places the order upstream with retries, stores
// the record, and publishes a creation event. Event publication is
// best-effort: a broker outage never loses a stored booking.
func (s *Service) Book(ctx context.Context, req Request) (*Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, domain.NewCredentialError("acquire booking token", err)
	}

	placed, err := retry.DoWithResult(ctx, func() (PlacedOrder, error) {
		return s.placer.PlaceOrder(ctx, token, req)
	}, s.retry)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	record := &Booking{
		ID:              uuid.NewString(),
		OrderID:         placed.OrderID,
		Reference:       placed.Reference,
		OfferID:         req.Offer.ID,
		Email:           req.Email,
		Price:           placed.Price,
		Currency:        placed.Currency,
		TicketingOption: placed.TicketingOption,
		Travelers:       req.Travelers,
		Warnings:        placed.Warnings,
		CreatedAt:       s.clock.Now().UTC(),
	}
	if record.Price == "" {
		record.Price = req.Offer.Price
		record.Currency = req.Offer.Currency
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("store booking: %w", err)
	}

	if s.events != nil {
		if err := s.events.BookingCreated(ctx, *record); err != nil {
			s.log.Warn().Err(err).Str("booking", record.ID).Msg("Booking event publication failed")
		}
	}

	s.log.Info().
		Str("booking", record.ID).
		Str("reference", record.Reference).
		Str("offer", record.OfferID).
		Msg("Booking stored")

	return record, nil
}

// Bookings lists the contact's bookings, latest first.
func (s *Service) Bookings(ctx context.Context, email string) ([]Booking, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidRequest)
	}
	return s.repo.ListByEmail(ctx, email)
}

// Booking returns one booking by its service-local id.
func (s *Service) Booking(ctx context.Context, id string) (*Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: booking id is required", domain.ErrInvalidRequest)
	}
	return s.repo.GetByID(ctx, id)
}
