package http

import (
	"github.com/trip-search/trip-offer-aggregation-service/internal/booking"
	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
)

// OfferResultsDTO is the data transfer object for offer search responses.
type OfferResultsDTO struct {
	Criteria CriteriaDTO    `json:"criteria"`
	Count    int            `json:"count"`
	Offers   []domain.Offer `json:"offers"`
}

// CriteriaDTO echoes the resolved search criteria back to the caller.
type CriteriaDTO struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Adults        int    `json:"adults"`
	NonStop       bool   `json:"nonStop,omitempty"`
}

// BookingListDTO is the data transfer object for booking list responses.
type BookingListDTO struct {
	Email    string            `json:"email"`
	Count    int               `json:"count"`
	Bookings []booking.Booking `json:"bookings"`
}

// ToOfferResultsDTO assembles the response for a completed search. Offers is
// never nil so an empty result serializes as an empty array.
func ToOfferResultsDTO(trip domain.TripRequest, offers []domain.Offer) *OfferResultsDTO {
	if offers == nil {
		offers = []domain.Offer{}
	}

	origin := trip.OriginCode
	if origin == "" {
		origin = trip.OriginCity
	}
	destination := trip.DestinationCode
	if destination == "" {
		destination = trip.DestinationCity
	}

	return &OfferResultsDTO{
		Criteria: CriteriaDTO{
			Origin:        origin,
			Destination:   destination,
			DepartureDate: trip.DepartureDate,
			ReturnDate:    trip.ReturnDate,
			Adults:        trip.Adults,
			NonStop:       trip.NonStop,
		},
		Count:  len(offers),
		Offers: offers,
	}
}

// ToBookingListDTO assembles the response for a booking list request.
func ToBookingListDTO(email string, bookings []booking.Booking) *BookingListDTO {
	if bookings == nil {
		bookings = []booking.Booking{}
	}
	return &BookingListDTO{
		Email:    email,
		Count:    len(bookings),
		Bookings: bookings,
	}
}
