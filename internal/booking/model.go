// Package booking handles placing flight orders against the upstream oracle
// and keeping a durable record of them.
package booking

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
)

// Traveler is one passenger on a booking.
type Traveler struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	DateOfBirth        string `json:"dateOfBirth"`
	PassportNumber     string `json:"passportNumber"`
	PassportExpiryDate string `json:"passportExpiryDate"`
	IssuanceCountry    string `json:"issuanceCountry"`
	Nationality        string `json:"nationality"`
}

// Address is the booking contact's postal address.
type Address struct {
	Lines       []string `json:"lines"`
	PostalCode  string   `json:"postalCode"`
	City        string   `json:"city"`
	CountryCode string   `json:"countryCode"`
}

// Request is a booking request: the chosen offer plus passenger and contact
// details.
type Request struct {
	Offer     domain.Offer `json:"flightOffer"`
	Travelers []Traveler   `json:"passengers"`
	Email     string       `json:"email"`
	Address   Address      `json:"address"`
}

// Validate checks the request before any upstream call is made.
func (r *Request) Validate() error {
	if r.Offer.ID == "" {
		return fmt.Errorf("%w: flightOffer is required", domain.ErrInvalidRequest)
	}
	if len(r.Travelers) == 0 {
		return fmt.Errorf("%w: at least one passenger is required", domain.ErrInvalidRequest)
	}
	for i, tr := range r.Travelers {
		if tr.FirstName == "" || tr.LastName == "" {
			return fmt.Errorf("%w: passenger %d is missing a name", domain.ErrInvalidRequest, i+1)
		}
		if tr.DateOfBirth == "" {
			return fmt.Errorf("%w: passenger %d is missing a date of birth", domain.ErrInvalidRequest, i+1)
		}
		if tr.PassportNumber == "" {
			return fmt.Errorf("%w: passenger %d is missing a passport number", domain.ErrInvalidRequest, i+1)
		}
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: email is invalid", domain.ErrInvalidRequest)
	}
	if len(r.Address.Lines) == 0 || r.Address.City == "" || r.Address.CountryCode == "" {
		return fmt.Errorf("%w: address must carry lines, city and countryCode", domain.ErrInvalidRequest)
	}
	return nil
}

// PlacedOrder is what the order oracle returns on success.
type PlacedOrder struct {
	// OrderID is the upstream order identifier.
	OrderID string

	// Reference is the human-facing record locator.
	Reference string

	// TicketingOption mirrors the upstream ticketing agreement.
	TicketingOption string

	// Price and Currency reflect the confirmed total.
	Price    string
	Currency string

	// Warnings carries upstream advisories attached to the order.
	Warnings []Warning
}

// Warning is an upstream advisory attached to a placed order.
type Warning struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Booking is the durable record of a placed order.
type Booking struct {
	// ID is the service-local identifier.
	ID string `json:"id"`

	// OrderID and Reference come from the upstream order.
	OrderID   string `json:"orderId"`
	Reference string `json:"reference"`

	// OfferID names the offer that was booked.
	OfferID string `json:"offerId"`

	Email           string     `json:"email"`
	Price           string     `json:"price"`
	Currency        string     `json:"currency"`
	TicketingOption string     `json:"ticketingOption"`
	Travelers       []Traveler `json:"travelers"`
	Warnings        []Warning  `json:"warnings,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
