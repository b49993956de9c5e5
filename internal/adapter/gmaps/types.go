package gmaps

// directionsResponse mirrors the slice of the Directions payload this adapter
// reads; everything else in the response is ignored.
type directionsResponse struct {
	Routes []rawRoute `json:"routes"`
	Status string     `json:"status"`
}

type rawRoute struct {
	Legs []rawLeg `json:"legs"`
}

type rawLeg struct {
	Steps []rawStep `json:"steps"`
}

type rawStep struct {
	TransitDetails *rawTransitDetails `json:"transit_details"`
}

type rawTransitDetails struct {
	DepartureStop rawStop      `json:"departure_stop"`
	ArrivalStop   rawStop      `json:"arrival_stop"`
	DepartureTime *rawTimeInfo `json:"departure_time"`
	ArrivalTime   *rawTimeInfo `json:"arrival_time"`
	NumStops      int          `json:"num_stops"`
	Line          rawLine      `json:"line"`
}

type rawStop struct {
	Name string `json:"name"`
}

type rawTimeInfo struct {
	Value int64 `json:"value"`
}

type rawLine struct {
	Name     string      `json:"name"`
	Vehicle  rawVehicle  `json:"vehicle"`
	Agencies []rawAgency `json:"agencies"`
}

type rawVehicle struct {
	Name string `json:"name"`
}

type rawAgency struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
