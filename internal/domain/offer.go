package domain

// Offer is one priced, bookable flight itinerary set returned by the offer
// oracle, normalized into the canonical shape. Price stays a decimal string
// exactly as priced by the provider; the numeric value used for ranking is
// derived at sort time and never serialized.
type Offer struct {
	// ID is the provider-assigned offer identifier, unique within a fetch batch
	ID string `json:"id"`

	// Price is the total price as a decimal string (e.g., "523.40")
	Price string `json:"price"`

	// Currency is the ISO 4217 currency code (e.g., "EUR")
	Currency string `json:"currency"`

	// Itineraries are the directional journeys of the offer, in travel order
	Itineraries []Itinerary `json:"itineraries"`
}

// Itinerary is one directional journey (outbound or inbound) consisting of
// one or more flight segments.
type Itinerary struct {
	// Duration is the parsed total duration of the itinerary
	Duration Duration `json:"duration"`

	// Segments are the individual flight legs, in travel order
	Segments []Segment `json:"segments"`

	// Transit holds ground-transit connections attached during enrichment.
	// Only the first and last itinerary of a top-ranked offer ever carry it.
	Transit []TransitLeg `json:"transitDetails,omitempty"`
}

// Segment is a single flight leg between two airports.
type Segment struct {
	// Departure is the IATA code of the departure airport
	Departure string `json:"departure"`

	// Arrival is the IATA code of the arrival airport
	Arrival string `json:"arrival"`

	// DepartureTime is the local departure time ("2006-01-02T15:04:05")
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the local arrival time ("2006-01-02T15:04:05")
	ArrivalTime string `json:"arrivalTime"`

	// DepartureTerminal is the departure terminal, when the provider knows it
	DepartureTerminal string `json:"departureTerminal,omitempty"`

	// ArrivalTerminal is the arrival terminal, when the provider knows it
	ArrivalTerminal string `json:"arrivalTerminal,omitempty"`

	// CarrierCode is the IATA airline code (e.g., "LH")
	CarrierCode string `json:"carrierCode"`

	// Number is the flight number (e.g., "2471")
	Number string `json:"number"`

	// AircraftCode is the IATA aircraft type code (e.g., "32N")
	AircraftCode string `json:"aircraftCode"`

	// Duration is the parsed segment duration
	Duration Duration `json:"duration"`

	// NumberOfStops is the technical stop count within the segment
	NumberOfStops int `json:"numberOfStops"`
}

// TransitLeg is one ground-transit ride of a first/last-mile connection
// between an airport and the journey's origin or destination city.
type TransitLeg struct {
	// DepartureStop is the name of the boarding stop or station
	DepartureStop string `json:"departureStop"`

	// ArrivalStop is the name of the alighting stop or station
	ArrivalStop string `json:"arrivalStop"`

	// DepartureTime is the scheduled boarding time in UTC, ISO 8601
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the scheduled alighting time in UTC, ISO 8601
	ArrivalTime string `json:"arrivalTime"`

	// NumStops is the number of intermediate stops on the ride
	NumStops int `json:"numStops"`

	// Vehicle is the vehicle kind (e.g., "Bus", "Train")
	Vehicle string `json:"vehicle"`

	// LineName is the transit line name or number
	LineName string `json:"lineName"`

	// AgencyName is the operating agency
	AgencyName string `json:"agencyName"`

	// AgencyURL is the agency's public URL
	AgencyURL string `json:"agencyUrl,omitempty"`
}

// TotalDurationMinutes sums the parsed durations of all itineraries.
// It is the duration component of the ranking key; it is derived on demand
// and intentionally not part of the serialized shape.
func (o *Offer) TotalDurationMinutes() int {
	total := 0
	for _, it := range o.Itineraries {
		total += it.Duration.TotalMinutes()
	}
	return total
}

// Clone returns a deep copy of the offer. The itineraries, their segments,
// and any transit legs get fresh backing arrays, so enriching the clone
// never touches the original.
func (o Offer) Clone() Offer {
	clone := o
	if o.Itineraries == nil {
		return clone
	}

	clone.Itineraries = make([]Itinerary, len(o.Itineraries))
	for i, it := range o.Itineraries {
		copied := it
		copied.Segments = append([]Segment(nil), it.Segments...)
		copied.Transit = append([]TransitLeg(nil), it.Transit...)
		clone.Itineraries[i] = copied
	}
	return clone
}

// FirstItinerary returns the journey's opening itinerary, or nil when the
// offer carries none.
func (o *Offer) FirstItinerary() *Itinerary {
	if len(o.Itineraries) == 0 {
		return nil
	}
	return &o.Itineraries[0]
}

// LastItinerary returns the journey's closing itinerary, or nil when the
// offer carries none.
func (o *Offer) LastItinerary() *Itinerary {
	if len(o.Itineraries) == 0 {
		return nil
	}
	return &o.Itineraries[len(o.Itineraries)-1]
}
