package usecase

import (
	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
)

// IsInternational reports whether the trip crosses a country border,
// resolving both codes against the directory. An unresolvable code yields an
// AmbiguousCodeError, never a boolean: callers must surface "cannot
// classify" distinctly from "domestic".
func IsInternational(dir *domain.Directory, originCode, destinationCode string) (bool, error) {
	originCountry, ok := dir.CountryOf(originCode)
	if !ok {
		return false, domain.NewAmbiguousCodeError(originCode)
	}
	destinationCountry, ok := dir.CountryOf(destinationCode)
	if !ok {
		return false, domain.NewAmbiguousCodeError(destinationCode)
	}
	return originCountry != destinationCountry, nil
}
