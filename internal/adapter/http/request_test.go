package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOfferSearch() OfferSearchRequest {
	return OfferSearchRequest{
		Origin:        "BER",
		Destination:   "NYC",
		DepartureDate: "2026-09-10",
		ReturnDate:    "2026-09-24",
		Adults:        1,
	}
}

func validBestOptions() BestOptionsRequest {
	return BestOptionsRequest{
		OriginCity:      "Berlin",
		DestinationCity: "New York",
		DepartureDate:   "2026-09-10",
	}
}

func errorFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var validationErrs *ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	return validationErrs.ToMap()
}

func TestOfferSearchRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*OfferSearchRequest)
		errFields []string
	}{
		{"valid", func(*OfferSearchRequest) {}, nil},
		{"valid one-way", func(r *OfferSearchRequest) { r.ReturnDate = "" }, nil},
		{"missing origin", func(r *OfferSearchRequest) { r.Origin = "" }, []string{"origin"}},
		{"missing destination", func(r *OfferSearchRequest) { r.Destination = "" }, []string{"destination"}},
		{"origin too long", func(r *OfferSearchRequest) { r.Origin = "BERL" }, []string{"origin"}},
		{"origin with digits", func(r *OfferSearchRequest) { r.Origin = "B3R" }, []string{"origin"}},
		{"same endpoints", func(r *OfferSearchRequest) { r.Destination = "BER" }, []string{"destination"}},
		{"missing date", func(r *OfferSearchRequest) { r.DepartureDate = "" }, []string{"departureDate"}},
		{"bad date format", func(r *OfferSearchRequest) { r.DepartureDate = "10.09.2026" }, []string{"departureDate"}},
		{"impossible date", func(r *OfferSearchRequest) { r.DepartureDate = "2026-13-01" }, []string{"departureDate"}},
		{"bad return date", func(r *OfferSearchRequest) { r.ReturnDate = "2026-02-30" }, []string{"returnDate"}},
		{"negative adults", func(r *OfferSearchRequest) { r.Adults = -1 }, []string{"adults"}},
		{"too many adults", func(r *OfferSearchRequest) { r.Adults = 10 }, []string{"adults"}},
		{"negative max", func(r *OfferSearchRequest) { r.Max = -5 }, []string{"max"}},
		{
			"multiple errors",
			func(r *OfferSearchRequest) {
				r.Origin = ""
				r.Destination = ""
				r.DepartureDate = ""
			},
			[]string{"origin", "destination", "departureDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOfferSearch()
			tt.mutate(&req)

			err := req.Validate()
			if len(tt.errFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			fields := errorFields(t, err)
			for _, f := range tt.errFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestOfferSearchRequest_NormalizesCodes(t *testing.T) {
	req := OfferSearchRequest{
		Origin:        " ber ",
		Destination:   "nyc",
		DepartureDate: "2026-09-10",
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, "BER", req.Origin)
	assert.Equal(t, "NYC", req.Destination)
}

func TestOfferSearchRequest_ZeroAdultsIsValid(t *testing.T) {
	// Zero means "use the default"; the domain layer fills it in.
	req := validOfferSearch()
	req.Adults = 0

	assert.NoError(t, req.Validate())
}

func TestBestOptionsRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*BestOptionsRequest)
		errFields []string
	}{
		{"valid cities only", func(*BestOptionsRequest) {}, nil},
		{
			"valid codes only",
			func(r *BestOptionsRequest) {
				r.OriginCity = ""
				r.DestinationCity = ""
				r.Origin = "FRA"
				r.Destination = "MUC"
			},
			nil,
		},
		{
			"missing both origin forms",
			func(r *BestOptionsRequest) { r.OriginCity = "" },
			[]string{"originCity"},
		},
		{
			"whitespace city does not count",
			func(r *BestOptionsRequest) { r.DestinationCity = "   " },
			[]string{"destinationCity"},
		},
		{
			"bad origin code",
			func(r *BestOptionsRequest) { r.Origin = "FRANKFURT" },
			[]string{"origin"},
		},
		{
			"same codes",
			func(r *BestOptionsRequest) {
				r.Origin = "FRA"
				r.Destination = "FRA"
			},
			[]string{"destination"},
		},
		{
			"missing date",
			func(r *BestOptionsRequest) { r.DepartureDate = "" },
			[]string{"departureDate"},
		},
		{
			"negative radius",
			func(r *BestOptionsRequest) { r.Radius = -10 },
			[]string{"radius"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBestOptions()
			tt.mutate(&req)

			err := req.Validate()
			if len(tt.errFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			fields := errorFields(t, err)
			for _, f := range tt.errFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())

	errs.Add("origin", "origin is required")
	errs.Add("adults", "adults cannot exceed 9")

	assert.True(t, errs.HasErrors())
	assert.Equal(t, "origin is required", errs.Error())

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "adults cannot exceed 9", m["adults"])
}

func TestOfferSearchRequest_ToTripRequest(t *testing.T) {
	req := validOfferSearch()
	req.Adults = 2
	req.NonStop = true
	req.Max = 40
	require.NoError(t, req.Validate())

	trip := req.ToTripRequest()

	assert.Equal(t, "BER", trip.OriginCode)
	assert.Equal(t, "NYC", trip.DestinationCode)
	assert.Equal(t, "2026-09-10", trip.DepartureDate)
	assert.Equal(t, "2026-09-24", trip.ReturnDate)
	assert.Equal(t, 2, trip.Adults)
	assert.True(t, trip.NonStop)
	assert.Equal(t, 40, trip.MaxResults)
	assert.Empty(t, trip.OriginCity)
	assert.Empty(t, trip.DestinationCity)
}

func TestBestOptionsRequest_ToTripRequest(t *testing.T) {
	req := validBestOptions()
	req.Origin = "BER"
	req.Radius = 80
	require.NoError(t, req.Validate())

	trip := req.ToTripRequest()

	assert.Equal(t, "Berlin", trip.OriginCity)
	assert.Equal(t, "New York", trip.DestinationCity)
	assert.Equal(t, "BER", trip.OriginCode)
	assert.Empty(t, trip.DestinationCode, "unset codes are resolved downstream")
	assert.Equal(t, 80, trip.SearchRadius)
}
