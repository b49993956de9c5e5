// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerOfferResults represents the offer search response for swagger documentation.
// @Description Ranked flight offers with the resolved search criteria
type SwaggerOfferResults struct {
	// Criteria echoes the resolved search criteria
	Criteria SwaggerCriteria `json:"criteria"`

	// Count is the number of offers returned
	Count int `json:"count" example:"3"`

	// Offers contains the ranked offers, cheapest and fastest first
	Offers []SwaggerOffer `json:"offers"`
}

// SwaggerCriteria represents the resolved search criteria.
// @Description Resolved search criteria
type SwaggerCriteria struct {
	// Origin is the resolved origin IATA code
	Origin string `json:"origin" example:"BER"`

	// Destination is the resolved destination IATA code
	Destination string `json:"destination" example:"NYC"`

	// DepartureDate is the outbound date
	DepartureDate string `json:"departureDate" example:"2026-09-10"`

	// ReturnDate is the inbound date, when round-trip
	ReturnDate string `json:"returnDate,omitempty" example:"2026-09-24"`

	// Adults is the number of adult travelers
	Adults int `json:"adults" example:"1"`
}

// SwaggerOffer represents a single priced itinerary set.
// @Description One priced, bookable flight offer
type SwaggerOffer struct {
	// ID is the provider-assigned offer identifier
	ID string `json:"id" example:"7"`

	// Price is the total price as a decimal string
	Price string `json:"price" example:"523.40"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency" example:"EUR"`

	// Itineraries are the directional journeys in travel order
	Itineraries []SwaggerItinerary `json:"itineraries"`
}

// SwaggerItinerary represents one directional journey of an offer.
// @Description One directional journey (outbound or inbound)
type SwaggerItinerary struct {
	// Duration is the total journey duration
	Duration SwaggerDuration `json:"duration"`

	// Segments are the flight legs in travel order
	Segments []SwaggerSegment `json:"segments"`

	// Transit holds ground-transit connections attached during enrichment
	Transit []SwaggerTransitLeg `json:"transitDetails,omitempty"`
}

// SwaggerSegment represents a single flight leg.
// @Description One flight leg between two airports
type SwaggerSegment struct {
	// Departure is the IATA code of the departure airport
	Departure string `json:"departure" example:"BER"`

	// Arrival is the IATA code of the arrival airport
	Arrival string `json:"arrival" example:"JFK"`

	// DepartureTime is the local departure time
	DepartureTime string `json:"departureTime" example:"2026-09-10T08:00:00"`

	// ArrivalTime is the local arrival time
	ArrivalTime string `json:"arrivalTime" example:"2026-09-10T11:15:00"`

	// CarrierCode is the IATA airline code
	CarrierCode string `json:"carrierCode" example:"LH"`

	// Number is the flight number
	Number string `json:"number" example:"2471"`

	// Duration is the segment duration
	Duration SwaggerDuration `json:"duration"`

	// NumberOfStops is the technical stop count within the segment
	NumberOfStops int `json:"numberOfStops" example:"0"`
}

// SwaggerDuration represents a parsed duration.
// @Description Parsed duration
type SwaggerDuration struct {
	// Hours is the hour component
	Hours int `json:"hours" example:"8"`

	// Minutes is the minute component
	Minutes int `json:"minutes" example:"15"`
}

// SwaggerTransitLeg represents one ground-transit ride of a first/last-mile
// connection.
// @Description One ground-transit ride between an airport and a city
type SwaggerTransitLeg struct {
	// DepartureStop is the boarding stop or station
	DepartureStop string `json:"departureStop" example:"Port Authority Bus Terminal"`

	// ArrivalStop is the alighting stop or station
	ArrivalStop string `json:"arrivalStop" example:"JFK Terminal 4"`

	// DepartureTime is the scheduled boarding time in UTC
	DepartureTime string `json:"departureTime" example:"2026-09-10T12:10:00"`

	// ArrivalTime is the scheduled alighting time in UTC
	ArrivalTime string `json:"arrivalTime" example:"2026-09-10T13:05:00"`

	// NumStops is the number of intermediate stops
	NumStops int `json:"numStops" example:"4"`

	// Vehicle is the vehicle kind
	Vehicle string `json:"vehicle" example:"Bus"`

	// LineName is the transit line name or number
	LineName string `json:"lineName" example:"Q3"`

	// AgencyName is the operating agency
	AgencyName string `json:"agencyName" example:"MTA"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
