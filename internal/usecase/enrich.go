package usecase

import (
	"context"
	"time"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/timeutil"
)

// enrichInternational attaches ground-transit connections to the boundary
// itineraries of each offer in place.
//
// First itinerary: from the last segment's arrival airport onward to the
// destination city, departing when the flight lands. Skipped when the
// arrival airport already serves the destination city. Last itinerary: from
// the origin city to the first segment's departure airport, arriving before
// the flight leaves; skipped when that airport already serves the origin
// city. Unresolvable codes and oracle failures skip that one itinerary only.
func (uc *tripPlannerUseCase) enrichInternational(ctx context.Context, offers []domain.Offer, originCity, destinationCity string) {
	for i := range offers {
		offer := &offers[i]

		if first := offer.FirstItinerary(); first != nil && len(first.Segments) > 0 {
			seg := first.Segments[len(first.Segments)-1]
			if city, at, ok := uc.transitAnchor(seg.Arrival, seg.ArrivalTime, offer.ID); ok && city != destinationCity {
				uc.attachTransit(ctx, first, domain.TransitQuery{
					Origin:      city + " airport",
					Destination: destinationCity,
					DepartAt:    at,
				}, offer.ID)
			}
		}

		if last := offer.LastItinerary(); last != nil && len(last.Segments) > 0 {
			seg := last.Segments[0]
			if city, at, ok := uc.transitAnchor(seg.Departure, seg.DepartureTime, offer.ID); ok && city != originCity {
				uc.attachTransit(ctx, last, domain.TransitQuery{
					Origin:      originCity,
					Destination: city + " airport",
					ArriveBy:    at,
				}, offer.ID)
			}
		}
	}
}

// enrichDomestic is the domestic-branch counterpart. Directionality differs
// from the international branch on purpose: the first itinerary covers the
// origin city to its departure airport (arrive before takeoff), and the last
// itinerary covers the first segment's arrival airport back to the origin
// city (depart at landing). There is no same-city skip in this branch.
func (uc *tripPlannerUseCase) enrichDomestic(ctx context.Context, offers []domain.Offer, originCity, destinationCity string) {
	for i := range offers {
		offer := &offers[i]

		if first := offer.FirstItinerary(); first != nil && len(first.Segments) > 0 {
			seg := first.Segments[0]
			if city, at, ok := uc.transitAnchor(seg.Departure, seg.DepartureTime, offer.ID); ok {
				uc.attachTransit(ctx, first, domain.TransitQuery{
					Origin:      originCity,
					Destination: city + " airport",
					ArriveBy:    at,
				}, offer.ID)
			}
		}

		if last := offer.LastItinerary(); last != nil && len(last.Segments) > 0 {
			seg := last.Segments[0]
			if city, at, ok := uc.transitAnchor(seg.Arrival, seg.ArrivalTime, offer.ID); ok {
				uc.attachTransit(ctx, last, domain.TransitQuery{
					Origin:      city + " airport",
					Destination: originCity,
					DepartAt:    at,
				}, offer.ID)
			}
		}
	}
}

// transitAnchor resolves an airport code to its city and parses the segment
// timestamp that anchors the transit query. A code the directory does not
// know, or an unparsable timestamp, is logged and disqualifies this one
// itinerary from enrichment.
func (uc *tripPlannerUseCase) transitAnchor(code, timestamp, offerID string) (string, time.Time, bool) {
	city, ok := uc.directory.CityOf(code)
	if !ok {
		uc.log.Warn().Str("airport", code).Str("offer", offerID).Msg("Airport code unknown to directory, skipping transit enrichment")
		return "", time.Time{}, false
	}
	at, err := timeutil.ParseLocal(timestamp)
	if err != nil {
		uc.log.Warn().Err(err).Str("airport", code).Str("offer", offerID).Msg("Unparsable segment time, skipping transit enrichment")
		return "", time.Time{}, false
	}
	return city, at, true
}

// attachTransit queries the directions oracle and attaches any resulting
// legs to the itinerary. Oracle failure or an empty route leaves the
// itinerary untouched.
func (uc *tripPlannerUseCase) attachTransit(ctx context.Context, it *domain.Itinerary, q domain.TransitQuery, offerID string) {
	legs, err := uc.transit.Directions(ctx, q)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("offer", offerID).
			Str("origin", q.Origin).
			Str("destination", q.Destination).
			Msg("Directions lookup failed, itinerary left unenriched")
		return
	}
	if len(legs) > 0 {
		it.Transit = legs
	}
}
