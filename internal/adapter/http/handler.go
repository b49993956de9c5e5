// Package http provides the HTTP handler layer for the trip offer API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/trip-search/trip-offer-aggregation-service/internal/adapter/http/response"
	"github.com/trip-search/trip-offer-aggregation-service/internal/booking"
	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/usecase"
)

// BookingService is the slice of the booking service the handler consumes.
type BookingService interface {
	Book(ctx context.Context, req booking.Request) (*booking.Booking, error)
	Booking(ctx context.Context, id string) (*booking.Booking, error)
	Bookings(ctx context.Context, email string) ([]booking.Booking, error)
}

// TripHandler handles HTTP requests for trip search and booking endpoints.
type TripHandler struct {
	planner  usecase.TripPlannerUseCase
	bookings BookingService
}

// NewTripHandler creates a TripHandler. The booking service may be nil when
// no booking store is configured; booking endpoints then answer 503.
func NewTripHandler(planner usecase.TripPlannerUseCase, bookings BookingService) *TripHandler {
	return &TripHandler{
		planner:  planner,
		bookings: bookings,
	}
}

// SearchOffers handles GET /api/v1/offers
//
// @Summary Search ranked flight offers
// @Description Runs a single offer search and returns the results in stable rank order (price, then total duration)
// @Tags offers
// @Produce json
// @Param origin query string true "Origin IATA code" example(BER)
// @Param destination query string true "Destination IATA code" example(NYC)
// @Param departureDate query string true "Outbound date (YYYY-MM-DD)"
// @Param returnDate query string false "Inbound date (YYYY-MM-DD)"
// @Param adults query int false "Number of adult travelers (1-9)"
// @Param nonStop query bool false "Restrict to direct flights"
// @Param max query int false "Maximum offers to return"
// @Success 200 {object} OfferResultsDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream credential failure"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /offers [get]
func (h *TripHandler) SearchOffers(c echo.Context) error {
	var req OfferSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	trip := req.ToTripRequest()
	trip.SetDefaults()

	offers, err := h.planner.GetRankedOffers(c.Request().Context(), trip)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OfferResults(c, ToOfferResultsDTO(trip, offers))
}

// BestOptions handles POST /api/v1/trips/best-options
//
// @Summary Find the best trip options
// @Description Classifies the trip, fans the search out across alternate airports, ranks the pooled offers, and enriches the top results with ground-transit connections
// @Tags trips
// @Accept json
// @Produce json
// @Param request body BestOptionsRequest true "Trip criteria"
// @Success 200 {object} OfferResultsDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 422 {object} response.ErrorDetail "Unresolvable location"
// @Failure 502 {object} response.ErrorDetail "Upstream credential failure"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /trips/best-options [post]
func (h *TripHandler) BestOptions(c echo.Context) error {
	var req BestOptionsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	trip := req.ToTripRequest()
	trip.SetDefaults()

	offers, err := h.planner.GetBestOptions(c.Request().Context(), trip)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OfferResults(c, ToOfferResultsDTO(trip, offers))
}

// CreateBooking handles POST /api/v1/bookings
//
// @Summary Book a flight offer
// @Description Places an order for the given offer with the upstream oracle and stores the booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body booking.Request true "Offer, passengers and contact details"
// @Success 201 {object} booking.Booking
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream failure"
// @Failure 503 {object} response.ErrorDetail "Booking not configured"
// @Router /bookings [post]
func (h *TripHandler) CreateBooking(c echo.Context) error {
	if h.bookings == nil {
		return response.ServiceUnavailableWithMessage(c, "Booking is not configured")
	}

	var req booking.Request
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	b, err := h.bookings.Book(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, b)
}

// ListBookings handles GET /api/v1/bookings
//
// @Summary List bookings for a contact email
// @Description Returns the stored bookings for the given email, latest first
// @Tags bookings
// @Produce json
// @Param email query string true "Contact email"
// @Success 200 {object} BookingListDTO
// @Failure 400 {object} response.ErrorDetail "Missing email"
// @Failure 503 {object} response.ErrorDetail "Booking not configured"
// @Router /bookings [get]
func (h *TripHandler) ListBookings(c echo.Context) error {
	if h.bookings == nil {
		return response.ServiceUnavailableWithMessage(c, "Booking is not configured")
	}

	email := c.QueryParam("email")
	bookings, err := h.bookings.Bookings(c.Request().Context(), email)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToBookingListDTO(email, bookings))
}

// GetBooking handles GET /api/v1/bookings/:id
//
// @Summary Fetch a single booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} booking.Booking
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Failure 503 {object} response.ErrorDetail "Booking not configured"
// @Router /bookings/{id} [get]
func (h *TripHandler) GetBooking(c echo.Context) error {
	if h.bookings == nil {
		return response.ServiceUnavailableWithMessage(c, "Booking is not configured")
	}

	b, err := h.bookings.Booking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, b)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *TripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	// A location neither given as a code nor resolvable from its city name
	if errors.Is(err, domain.ErrAmbiguousCode) {
		return response.UnresolvableLocation(c, err.Error())
	}

	// No bearer token means no upstream call could be made
	if errors.Is(err, domain.ErrCredential) {
		return response.UpstreamCredentialFailure(c)
	}

	if errors.Is(err, booking.ErrNotFound) {
		return response.NotFound(c)
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Check for invalid request (domain validation)
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// An order the oracle rejected or could not take
	if errors.Is(err, domain.ErrOracleUnavailable) {
		return response.ServiceUnavailableWithMessage(c, "The order service is currently unavailable")
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c)
}
