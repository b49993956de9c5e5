// Package http provides the HTTP handler layer for the trip offer API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"strings"
	"time"
)

// OfferSearchRequest represents the query parameters for a ranked offer search.
// Both endpoints of the trip must already be IATA codes; city resolution is
// the best-options endpoint's job.
type OfferSearchRequest struct {
	// Origin is the IATA code of the departure airport or city (e.g., "BER")
	Origin string `query:"origin"`

	// Destination is the IATA code of the arrival airport or city (e.g., "NYC")
	Destination string `query:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `query:"departureDate"`

	// ReturnDate is the optional inbound date in YYYY-MM-DD format
	ReturnDate string `query:"returnDate"`

	// Adults is the number of adult travelers (defaults to 1)
	Adults int `query:"adults"`

	// NonStop restricts the search to direct flights
	NonStop bool `query:"nonStop"`

	// Max caps the number of offers returned by the search
	Max int `query:"max"`
}

// BestOptionsRequest represents the request body for a best-options search.
// The traveler names cities; codes are optional and resolved when absent.
type BestOptionsRequest struct {
	// OriginCity is the free-text origin city (e.g., "Berlin")
	OriginCity string `json:"originCity"`

	// DestinationCity is the free-text destination city (e.g., "New York")
	DestinationCity string `json:"destinationCity"`

	// Origin is an optional pre-resolved IATA code for the origin
	Origin string `json:"origin,omitempty"`

	// Destination is an optional pre-resolved IATA code for the destination
	Destination string `json:"destination,omitempty"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult travelers (defaults to 1)
	Adults int `json:"adults,omitempty"`

	// NonStop restricts the initial search to direct flights
	NonStop bool `json:"nonStop,omitempty"`

	// Max caps the number of offers per search
	Max int `json:"max,omitempty"`

	// Radius is the surface-transit radius in kilometers (defaults to 50)
	Radius int `json:"radius,omitempty"`
}

// Validation regex patterns.
var (
	locationCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern         = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the offer search request and returns any validation errors.
func (r *OfferSearchRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Origin = validateCode(errs, "origin", r.Origin, true)
	r.Destination = validateCode(errs, "destination", r.Destination, true)

	if r.Origin != "" && r.Destination != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}

	validateDate(errs, "departureDate", r.DepartureDate, true)
	validateDate(errs, "returnDate", r.ReturnDate, false)
	validateAdults(errs, r.Adults)

	if r.Max < 0 {
		errs.Add("max", "max must be a non-negative number")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the best-options request and returns any validation errors.
// Each side of the trip needs a city name, a code, or both.
func (r *BestOptionsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.OriginCity = strings.TrimSpace(r.OriginCity)
	r.DestinationCity = strings.TrimSpace(r.DestinationCity)

	if r.OriginCity == "" && r.Origin == "" {
		errs.Add("originCity", "originCity or origin code is required")
	}
	if r.DestinationCity == "" && r.Destination == "" {
		errs.Add("destinationCity", "destinationCity or destination code is required")
	}

	r.Origin = validateCode(errs, "origin", r.Origin, false)
	r.Destination = validateCode(errs, "destination", r.Destination, false)

	if r.Origin != "" && r.Destination != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}

	validateDate(errs, "departureDate", r.DepartureDate, true)
	validateDate(errs, "returnDate", r.ReturnDate, false)
	validateAdults(errs, r.Adults)

	if r.Max < 0 {
		errs.Add("max", "max must be a non-negative number")
	}
	if r.Radius < 0 {
		errs.Add("radius", "radius must be a non-negative number")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateCode checks an IATA location code, normalizing it to uppercase.
// Returns the normalized code, or the original value when it fails validation.
func validateCode(errs *ValidationErrors, field, value string, required bool) string {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return value
	}

	code := strings.ToUpper(strings.TrimSpace(value))
	if !locationCodePattern.MatchString(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA code")
		return value
	}
	return code
}

func validateDate(errs *ValidationErrors, field, value string, required bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}

	if _, err := time.Parse("2006-01-02", value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}

func validateAdults(errs *ValidationErrors, adults int) {
	if adults < 0 {
		errs.Add("adults", "adults must be a non-negative number")
		return
	}
	if adults > 9 {
		errs.Add("adults", "adults cannot exceed 9")
	}
}
