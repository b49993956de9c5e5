// Package http provides the HTTP handler layer for the trip offer API.
package http

import (
	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
)

// ToTripRequest converts a validated OfferSearchRequest to a domain.TripRequest.
// A code-only search carries no city names; enrichment never runs for it.
func (r *OfferSearchRequest) ToTripRequest() domain.TripRequest {
	return domain.TripRequest{
		SearchParams: domain.SearchParams{
			OriginCode:      r.Origin,
			DestinationCode: r.Destination,
			DepartureDate:   r.DepartureDate,
			ReturnDate:      r.ReturnDate,
			Adults:          r.Adults,
			NonStop:         r.NonStop,
			MaxResults:      r.Max,
		},
	}
}

// ToTripRequest converts a validated BestOptionsRequest to a domain.TripRequest.
// Codes left empty are resolved from the city names inside the pipeline.
func (r *BestOptionsRequest) ToTripRequest() domain.TripRequest {
	return domain.TripRequest{
		OriginCity:      r.OriginCity,
		DestinationCity: r.DestinationCity,
		SearchParams: domain.SearchParams{
			OriginCode:      r.Origin,
			DestinationCode: r.Destination,
			DepartureDate:   r.DepartureDate,
			ReturnDate:      r.ReturnDate,
			Adults:          r.Adults,
			NonStop:         r.NonStop,
			MaxResults:      r.Max,
		},
		SearchRadius: r.Radius,
	}
}
