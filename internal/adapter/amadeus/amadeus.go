// Package amadeus adapts the Amadeus self-service APIs to the domain oracle
// contracts: OAuth2 token acquisition, flight-offer search, and city-code
// resolution.
package amadeus

import "time"

// OracleName identifies this upstream in logs, metrics, and rate limits.
const OracleName = "amadeus"

const (
	// DefaultBaseURL targets the Amadeus self-service sandbox.
	DefaultBaseURL = "https://test.api.amadeus.com"

	tokenPath     = "/v1/security/oauth2/token"
	offersPath    = "/v2/shopping/flight-offers"
	locationsPath = "/v1/reference-data/locations"

	// DefaultTimeout bounds a single offer-search round trip.
	DefaultTimeout = 30 * time.Second

	acceptHeader = "application/vnd.amadeus+json"
)
