package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/trip-search/trip-offer-aggregation-service/internal/booking"
	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/logger"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/retry"
)

const ordersPath = "/v1/booking/flight-orders"

// OrdersClient places flight orders against the upstream oracle.
type OrdersClient struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// NewOrdersClient creates an order client.
func NewOrdersClient(baseURL string, httpClient *http.Client, log *logger.Logger) *OrdersClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OrdersClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		log:        log,
	}
}

type orderPayload struct {
	Data orderData `json:"data"`
}

type orderData struct {
	Type         string          `json:"type"`
	FlightOffers []domain.Offer  `json:"flightOffers"`
	Travelers    []orderTraveler `json:"travelers"`
	Contacts     []orderContact  `json:"contacts"`
}

type orderTraveler struct {
	ID          string          `json:"id"`
	DateOfBirth string          `json:"dateOfBirth"`
	Name        orderName       `json:"name"`
	Documents   []orderDocument `json:"documents"`
}

type orderName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type orderDocument struct {
	DocumentType    string `json:"documentType"`
	Number          string `json:"number"`
	ExpiryDate      string `json:"expiryDate,omitempty"`
	Holder          bool   `json:"holder"`
	IssuanceCountry string `json:"issuanceCountry"`
	Nationality     string `json:"nationality"`
}

type orderContact struct {
	AddresseeName orderName    `json:"addresseeName"`
	EmailAddress  string       `json:"emailAddress"`
	Purpose       string       `json:"purpose"`
	Address       orderAddress `json:"address"`
}

type orderAddress struct {
	Lines       []string `json:"lines"`
	PostalCode  string   `json:"postalCode"`
	CityName    string   `json:"cityName"`
	CountryCode string   `json:"countryCode"`
}

type orderResponse struct {
	Data struct {
		ID                string `json:"id"`
		AssociatedRecords []struct {
			Reference string `json:"reference"`
		} `json:"associatedRecords"`
		FlightOffers []struct {
			Price rawPrice `json:"price"`
		} `json:"flightOffers"`
		TicketingAgreement struct {
			Option string `json:"option"`
		} `json:"ticketingAgreement"`
	} `json:"data"`
	Warnings []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"warnings"`
}

// PlaceOrder implements booking.OrderPlacer. A 4xx rejection is permanent;
// retrying it would resubmit an order the upstream already refused.
func (oc *OrdersClient) PlaceOrder(ctx context.Context, token string, req booking.Request) (booking.PlacedOrder, error) {
	payload := buildOrderPayload(req)

	body, err := json.Marshal(payload)
	if err != nil {
		return booking.PlacedOrder{}, retry.NewPermanent(domain.NewOracleError(OracleName, "encode order payload", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, oc.baseURL+ordersPath, bytes.NewReader(body))
	if err != nil {
		return booking.PlacedOrder{}, retry.NewPermanent(domain.NewOracleError(OracleName, "build order request", err))
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", acceptHeader)
	httpReq.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := oc.httpClient.Do(httpReq)
	if err != nil {
		return booking.PlacedOrder{}, domain.NewOracleError(OracleName, "order request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		oc.log.Warn().
			Int("status", resp.StatusCode).
			Str("body", string(detail)).
			Msg("Order placement rejected")

		orderErr := domain.NewOracleError(OracleName, "order returned status "+resp.Status, nil)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return booking.PlacedOrder{}, retry.NewPermanent(orderErr)
		}
		return booking.PlacedOrder{}, orderErr
	}

	var envelope orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return booking.PlacedOrder{}, domain.NewOracleError(OracleName, "decode order response", err)
	}

	placed := booking.PlacedOrder{
		OrderID:         envelope.Data.ID,
		TicketingOption: envelope.Data.TicketingAgreement.Option,
	}
	if len(envelope.Data.AssociatedRecords) > 0 {
		placed.Reference = envelope.Data.AssociatedRecords[0].Reference
	}
	if len(envelope.Data.FlightOffers) > 0 {
		placed.Price = envelope.Data.FlightOffers[0].Price.Total
		placed.Currency = envelope.Data.FlightOffers[0].Price.Currency
	}
	for _, w := range envelope.Warnings {
		placed.Warnings = append(placed.Warnings, booking.Warning{Title: w.Title, Detail: w.Detail})
	}

	oc.log.Info().
		Str("order", placed.OrderID).
		Str("reference", placed.Reference).
		Dur("elapsed", time.Since(started)).
		Msg("Order placed")

	return placed, nil
}

func buildOrderPayload(req booking.Request) orderPayload {
	travelers := make([]orderTraveler, 0, len(req.Travelers))
	for i, tr := range req.Travelers {
		issuance := tr.IssuanceCountry
		if issuance == "" {
			issuance = "US"
		}
		nationality := tr.Nationality
		if nationality == "" {
			nationality = "US"
		}
		travelers = append(travelers, orderTraveler{
			ID:          strconv.Itoa(i + 1),
			DateOfBirth: tr.DateOfBirth,
			Name:        orderName{FirstName: tr.FirstName, LastName: tr.LastName},
			Documents: []orderDocument{{
				DocumentType:    "PASSPORT",
				Number:          tr.PassportNumber,
				ExpiryDate:      tr.PassportExpiryDate,
				Holder:          true,
				IssuanceCountry: issuance,
				Nationality:     nationality,
			}},
		})
	}

	lead := req.Travelers[0]
	return orderPayload{
		Data: orderData{
			Type:         "flight-order",
			FlightOffers: []domain.Offer{req.Offer},
			Travelers:    travelers,
			Contacts: []orderContact{{
				AddresseeName: orderName{FirstName: lead.FirstName, LastName: lead.LastName},
				EmailAddress:  req.Email,
				Purpose:       "STANDARD",
				Address: orderAddress{
					Lines:       req.Address.Lines,
					PostalCode:  req.Address.PostalCode,
					CityName:    req.Address.City,
					CountryCode: req.Address.CountryCode,
				},
			}},
		},
	}
}

var _ booking.OrderPlacer = (*OrdersClient)(nil)
