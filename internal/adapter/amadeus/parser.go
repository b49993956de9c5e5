package amadeus

import (
	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/logger"
)

// parseOffers converts raw upstream offers into canonical offers. An offer
// missing a required field is dropped and logged; its siblings are kept.
func parseOffers(resp offersResponse, log *logger.Logger) []domain.Offer {
	offers := make([]domain.Offer, 0, len(resp.Data))

	for _, raw := range resp.Data {
		offer, err := parseOffer(raw)
		if err != nil {
			log.Warn().Err(err).Str("offer", raw.ID).Msg("Dropping malformed offer")
			continue
		}
		offers = append(offers, offer)
	}
	return offers
}

func parseOffer(raw rawOffer) (domain.Offer, error) {
	if raw.ID == "" {
		return domain.Offer{}, domain.NewMalformedOfferError(raw.ID, "id")
	}
	if raw.Price.Total == "" {
		return domain.Offer{}, domain.NewMalformedOfferError(raw.ID, "price.total")
	}
	if raw.Price.Currency == "" {
		return domain.Offer{}, domain.NewMalformedOfferError(raw.ID, "price.currency")
	}
	if len(raw.Itineraries) == 0 {
		return domain.Offer{}, domain.NewMalformedOfferError(raw.ID, "itineraries")
	}

	offer := domain.Offer{
		ID:          raw.ID,
		Price:       raw.Price.Total,
		Currency:    raw.Price.Currency,
		Itineraries: make([]domain.Itinerary, 0, len(raw.Itineraries)),
	}

	for _, it := range raw.Itineraries {
		itinerary := domain.Itinerary{
			Duration: domain.ParseDuration(it.Duration),
			Segments: make([]domain.Segment, 0, len(it.Segments)),
		}
		for _, seg := range it.Segments {
			if seg.Departure.IataCode == "" || seg.Arrival.IataCode == "" {
				return domain.Offer{}, domain.NewMalformedOfferError(raw.ID, "segment endpoints")
			}
			itinerary.Segments = append(itinerary.Segments, domain.Segment{
				Departure:         seg.Departure.IataCode,
				Arrival:           seg.Arrival.IataCode,
				DepartureTime:     seg.Departure.At,
				ArrivalTime:       seg.Arrival.At,
				DepartureTerminal: seg.Departure.Terminal,
				ArrivalTerminal:   seg.Arrival.Terminal,
				CarrierCode:       seg.CarrierCode,
				Number:            seg.Number,
				AircraftCode:      seg.Aircraft.Code,
				Duration:          domain.ParseDuration(seg.Duration),
				NumberOfStops:     seg.NumberOfStops,
			})
		}
		offer.Itineraries = append(offer.Itineraries, itinerary)
	}

	return offer, nil
}
