package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/retry"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/timeutil"
)

type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) Token(context.Context) (string, error) { return f.token, f.err }
func (f *fakeTokens) Invalidate()                           {}

type fakePlacer struct {
	calls  int
	fail   int
	failAs error
	placed PlacedOrder
}

func (f *fakePlacer) PlaceOrder(_ context.Context, _ string, _ Request) (PlacedOrder, error) {
	f.calls++
	if f.calls <= f.fail {
		return PlacedOrder{}, f.failAs
	}
	return f.placed, nil
}

type fakeRepo struct {
	created []Booking
	err     error
}

func (f *fakeRepo) Create(_ context.Context, b *Booking) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *b)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			return &f.created[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) ListByEmail(_ context.Context, email string) ([]Booking, error) {
	var out []Booking
	for _, b := range f.created {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeEvents struct {
	events []Booking
	err    error
}

func (f *fakeEvents) BookingCreated(_ context.Context, b Booking) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, b)
	return nil
}

func validRequest() Request {
	return Request{
		Offer: domain.Offer{ID: "7", Price: "485.30", Currency: "EUR"},
		Travelers: []Traveler{{
			FirstName:      "Ada",
			LastName:       "Lovelace",
			DateOfBirth:    "1990-12-10",
			PassportNumber: "X123456",
		}},
		Email: "ada@example.com",
		Address: Address{
			Lines:       []string{"1 Analytical Way"},
			PostalCode:  "10115",
			City:        "Berlin",
			CountryCode: "DE",
		},
	}
}

func newService(placer *fakePlacer, repo *fakeRepo, events *fakeEvents) *Service {
	s := NewService(Deps{
		Tokens: &fakeTokens{token: "tok"},
		Placer: placer,
		Repo:   repo,
		Events: events,
		Clock:  timeutil.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)),
	})
	s.retry = retry.Config{MaxAttempts: 3, RetryIf: retry.SkipPermanent}
	return s
}

func TestBookStoresAndPublishes(t *testing.T) {
	placer := &fakePlacer{placed: PlacedOrder{
		OrderID:         "ord-1",
		Reference:       "KAH9IR",
		TicketingOption: "CONFIRM",
		Price:           "485.30",
		Currency:        "EUR",
	}}
	repo := &fakeRepo{}
	events := &fakeEvents{}

	b, err := newService(placer, repo, events).Book(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "ord-1", b.OrderID)
	assert.Equal(t, "KAH9IR", b.Reference)
	assert.Equal(t, "CONFIRM", b.TicketingOption)
	assert.Equal(t, "ada@example.com", b.Email)
	assert.Equal(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), b.CreatedAt)

	require.Len(t, repo.created, 1)
	require.Len(t, events.events, 1)
	assert.Equal(t, b.ID, events.events[0].ID)
}

func TestBookRetriesTransientPlacementFailure(t *testing.T) {
	placer := &fakePlacer{
		fail:   2,
		failAs: errors.New("upstream 502"),
		placed: PlacedOrder{OrderID: "ord-1"},
	}
	repo := &fakeRepo{}

	_, err := newService(placer, repo, &fakeEvents{}).Book(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, placer.calls)
	assert.Len(t, repo.created, 1)
}

func TestBookDoesNotRetryPermanentRejection(t *testing.T) {
	placer := &fakePlacer{
		fail:   1,
		failAs: retry.NewPermanent(errors.New("order rejected: 400")),
	}
	repo := &fakeRepo{}

	_, err := newService(placer, repo, &fakeEvents{}).Book(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, 1, placer.calls, "a rejected order must not be resubmitted")
	assert.Empty(t, repo.created)
}

func TestBookSurvivesEventPublicationFailure(t *testing.T) {
	placer := &fakePlacer{placed: PlacedOrder{OrderID: "ord-1"}}
	repo := &fakeRepo{}
	events := &fakeEvents{err: errors.New("broker down")}

	b, err := newService(placer, repo, events).Book(context.Background(), validRequest())
	require.NoError(t, err, "a broker outage must not fail a stored booking")
	assert.Len(t, repo.created, 1)
	assert.NotNil(t, b)
}

func TestBookCredentialFailure(t *testing.T) {
	s := NewService(Deps{
		Tokens: &fakeTokens{err: errors.New("oauth down")},
		Placer: &fakePlacer{},
		Repo:   &fakeRepo{},
	})

	_, err := s.Book(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCredential))
}

func TestBookValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing offer", func(r *Request) { r.Offer.ID = "" }},
		{"no passengers", func(r *Request) { r.Travelers = nil }},
		{"passenger without name", func(r *Request) { r.Travelers[0].LastName = "" }},
		{"passenger without passport", func(r *Request) { r.Travelers[0].PassportNumber = "" }},
		{"bad email", func(r *Request) { r.Email = "not-an-email" }},
		{"address without lines", func(r *Request) { r.Address.Lines = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := newService(&fakePlacer{}, &fakeRepo{}, &fakeEvents{}).Book(context.Background(), req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
		})
	}
}

func TestBookFallsBackToOfferPrice(t *testing.T) {
	placer := &fakePlacer{placed: PlacedOrder{OrderID: "ord-1"}}

	b, err := newService(placer, &fakeRepo{}, &fakeEvents{}).Book(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "485.30", b.Price)
	assert.Equal(t, "EUR", b.Currency)
}

func TestBookingsRequiresEmail(t *testing.T) {
	s := newService(&fakePlacer{}, &fakeRepo{}, &fakeEvents{})

	_, err := s.Bookings(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
}
