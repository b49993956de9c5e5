// Package usecase contains the business logic for trip offer aggregation:
// trip classification, alternate-airport fan-out, ranking, and transit
// enrichment.
package usecase

import (
	"math"
	"sort"
	"strconv"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
)

// DefaultTopK is the number of offers selected for transit enrichment.
const DefaultTopK = 3

// rankedOffer pairs an offer with its precomputed sort key. The key fields
// exist only for comparison and are discarded after sorting, so they can
// never leak into the rendered result.
type rankedOffer struct {
	offer    domain.Offer
	price    float64
	duration int
}

// RankTop orders offers ascending by (price, total duration, id) and returns
// at most k of them. The id is an explicit final tie-break so the order is a
// deterministic total order even when price and duration coincide. Empty
// input yields an empty, non-nil slice. The input is not mutated.
func RankTop(offers []domain.Offer, k int) []domain.Offer {
	if k < 0 {
		k = 0
	}

	ranked := make([]rankedOffer, len(offers))
	for i, o := range offers {
		ranked[i] = rankedOffer{
			offer:    o,
			price:    priceValue(o.Price),
			duration: o.TotalDurationMinutes(),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].price != ranked[j].price {
			return ranked[i].price < ranked[j].price
		}
		if ranked[i].duration != ranked[j].duration {
			return ranked[i].duration < ranked[j].duration
		}
		return ranked[i].offer.ID < ranked[j].offer.ID
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	top := make([]domain.Offer, k)
	for i := range top {
		top[i] = ranked[i].offer
	}
	return top
}

// priceValue converts the provider's decimal price string to the numeric
// ranking key. An unparsable price sorts last rather than poisoning the
// order.
func priceValue(price string) float64 {
	v, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return math.MaxFloat64
	}
	return v
}
