package amadeus

// tokenResponse is the OAuth2 client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	State       string `json:"state"`
}

// offersResponse is the flight-offers search envelope.
type offersResponse struct {
	Data []rawOffer `json:"data"`
}

// rawOffer is one offer exactly as the upstream returns it.
type rawOffer struct {
	ID          string         `json:"id"`
	Price       rawPrice       `json:"price"`
	Itineraries []rawItinerary `json:"itineraries"`
}

type rawPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type rawItinerary struct {
	Duration string       `json:"duration"`
	Segments []rawSegment `json:"segments"`
}

type rawSegment struct {
	Departure     rawEndpoint `json:"departure"`
	Arrival       rawEndpoint `json:"arrival"`
	CarrierCode   string      `json:"carrierCode"`
	Number        string      `json:"number"`
	Aircraft      rawAircraft `json:"aircraft"`
	Duration      string      `json:"duration"`
	NumberOfStops int         `json:"numberOfStops"`
}

type rawEndpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal"`
	At       string `json:"at"`
}

type rawAircraft struct {
	Code string `json:"code"`
}

// locationsResponse is the reference-data location search envelope.
type locationsResponse struct {
	Data []rawLocation `json:"data"`
}

type rawLocation struct {
	IataCode string `json:"iataCode"`
	Name     string `json:"name"`
}
