package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=oracle.go -destination=mock_oracle.go -package=domain

// TokenSource supplies the bearer token for provider calls. Implementations
// cache the token process-wide and refresh it on expiry; a failed refresh is
// fatal to the current request (ErrCredential), never retried automatically.
type TokenSource interface {
	// Token returns a currently valid bearer token, refreshing if needed.
	Token(ctx context.Context) (string, error)

	// Invalidate drops the cached token so the next call refreshes.
	Invalidate()
}

// OfferSearcher issues one parameterized search against the offer oracle.
// Fetch failures are non-fatal to aggregation: a failed search contributes
// zero offers and a nil error; a non-nil error from other implementations is
// treated the same way by callers.
type OfferSearcher interface {
	FetchOffers(ctx context.Context, token string, params SearchParams) ([]Offer, error)
}

// LocationResolver resolves a free-text city name to its IATA code via the
// location oracle, using the first match.
type LocationResolver interface {
	ResolveCityCode(ctx context.Context, token, city string) (string, error)
}

// TransitQuery describes one first/last-mile directions lookup. Exactly one
// of DepartAt and ArriveBy is set, depending on which end of the journey the
// connection serves.
type TransitQuery struct {
	// Origin is a free-text place (city or "{City} airport")
	Origin string

	// Destination is a free-text place (city or "{City} airport")
	Destination string

	// DepartAt anchors the route at a departure time (airport → city)
	DepartAt time.Time

	// ArriveBy anchors the route at an arrival deadline (city → airport)
	ArriveBy time.Time
}

// TransitPlanner queries the directions oracle for a transit-only route.
// No result and oracle failure both surface as an empty slice with the error
// carrying context; enrichment logs and moves on.
type TransitPlanner interface {
	Directions(ctx context.Context, q TransitQuery) ([]TransitLeg, error)
}
