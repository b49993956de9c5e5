package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SearchParams are the parameters of a single offer-oracle search. They are
// resolved and validated at the boundary before any fetch happens; the core
// never inspects untyped key-value maps.
type SearchParams struct {
	// OriginCode is the resolved IATA code of the departure location
	OriginCode string `json:"originLocationCode"`

	// DestinationCode is the resolved IATA code of the arrival location
	DestinationCode string `json:"destinationLocationCode"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Adults is the number of adult travelers (1-9)
	Adults int `json:"adults"`

	// NonStop restricts the search to direct flights
	NonStop bool `json:"nonStop"`

	// MaxResults caps the number of offers the oracle returns
	MaxResults int `json:"max"`
}

// TripRequest is a best-options request: a search plus the origin and
// destination cities the traveler actually cares about, which drive transit
// enrichment and the surface-transit radius.
type TripRequest struct {
	// OriginCity is the free-text origin city (e.g., "Berlin")
	OriginCity string `json:"originCity"`

	// DestinationCity is the free-text destination city (e.g., "Kyoto")
	DestinationCity string `json:"destinationCity"`

	// SearchParams carries the resolved flight-search parameters
	SearchParams

	// SearchRadius is the surface-transit radius in kilometers. It shapes
	// ground-transit reasoning only and is never forwarded to the flight
	// search.
	SearchRadius int `json:"radius"`
}

var (
	iataCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	tripDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Validate checks the search parameters. Codes must already be resolved;
// returns a wrapped ErrInvalidRequest on the first violation.
func (p *SearchParams) Validate() error {
	if p.OriginCode == "" {
		return fmt.Errorf("%w: originLocationCode is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(p.OriginCode) {
		return fmt.Errorf("%w: originLocationCode must be a 3-letter IATA code, got %q", ErrInvalidRequest, p.OriginCode)
	}
	if p.DestinationCode == "" {
		return fmt.Errorf("%w: destinationLocationCode is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(p.DestinationCode) {
		return fmt.Errorf("%w: destinationLocationCode must be a 3-letter IATA code, got %q", ErrInvalidRequest, p.DestinationCode)
	}
	if err := validateTripDate("departureDate", p.DepartureDate, true); err != nil {
		return err
	}
	if err := validateTripDate("returnDate", p.ReturnDate, false); err != nil {
		return err
	}
	if p.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if p.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidRequest)
	}
	if p.MaxResults < 0 {
		return fmt.Errorf("%w: max cannot be negative", ErrInvalidRequest)
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *SearchParams) SetDefaults() {
	if p.Adults == 0 {
		p.Adults = 1
	}
	if p.MaxResults == 0 {
		p.MaxResults = 100
	}
}

// SetDefaults applies request defaults, including the surface-transit radius.
func (t *TripRequest) SetDefaults() {
	t.SearchParams.SetDefaults()
	if t.SearchRadius == 0 {
		t.SearchRadius = 50
	}
}

func validateTripDate(field, value string, required bool) error {
	if value == "" {
		if required {
			return fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
		}
		return nil
	}
	if !tripDateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return nil
}
