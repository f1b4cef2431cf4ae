package queries

import (
	"context"
	"time"

	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
)

type IntervalView struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// AvailabilityView lists what a calendar needs to render a venue. A nil
// NextAvailable means nothing is free within the lookahead bound.
type AvailabilityView struct {
	VenueID       string         `json:"venue_id"`
	VenueName     string         `json:"venue_name"`
	MaxGuests     int            `json:"max_guests"`
	NightlyCents  int64          `json:"nightly_cents"`
	NextAvailable *IntervalView  `json:"next_available,omitempty"`
	Blocked       []IntervalView `json:"blocked"`
}

type QuoteView struct {
	VenueID      string    `json:"venue_id"`
	DateFrom     time.Time `json:"date_from"`
	DateTo       time.Time `json:"date_to"`
	Nights       int       `json:"nights"`
	Guests       int       `json:"guests"`
	NightlyCents int64     `json:"nightly_cents"`
	TotalCents   int64     `json:"total_cents"`
}

//go:generate mockgen -destination=../../../tests/mock/queries/availability.go -package=queriesmock venue-booking/internal/usecase/queries AvailabilityQueries,VenueReader
type VenueReader interface {
	FetchVenue(ctx context.Context, id string) (*venue.Venue, error)
}

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, venueID string, excludeBookingID *string) (*AvailabilityView, error)
	QuotePrice(ctx context.Context, venueID string, from, to time.Time, guests int) (*QuoteView, error)
}

type availabilityQueriesImpl struct {
	venues  VenueReader
	factory *reservation.Factory
}

func NewAvailabilityQueries(venues VenueReader, factory *reservation.Factory) AvailabilityQueries {
	return &availabilityQueriesImpl{
		venues:  venues,
		factory: factory,
	}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, venueID string, excludeBookingID *string) (*AvailabilityView, error) {
	v, err := q.fetch(ctx, venueID)
	if err != nil {
		return nil, err
	}

	set := q.factory.ConflictsFor(v, excludeBookingID)
	view := &AvailabilityView{
		VenueID:      v.ID(),
		VenueName:    v.Name(),
		MaxGuests:    v.MaxGuests(),
		NightlyCents: v.PriceCents(),
		Blocked:      make([]IntervalView, 0, set.Len()),
	}
	for _, iv := range set.Intervals() {
		view.Blocked = append(view.Blocked, IntervalView{From: iv.From, To: iv.To})
	}
	if next, ok := q.factory.NextAvailable(set); ok {
		view.NextAvailable = &IntervalView{From: next.From, To: next.To}
	}
	return view, nil
}

func (q *availabilityQueriesImpl) QuotePrice(ctx context.Context, venueID string, from, to time.Time, guests int) (*QuoteView, error) {
	if from.IsZero() || to.IsZero() {
		return nil, errs.ErrInvalidDateRange
	}

	v, err := q.fetch(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if guests < 1 || guests > v.MaxGuests() {
		return nil, errs.Mark(reservation.ErrGuestsOutOfRange, errs.ErrValidation)
	}

	quote := reservation.NewQuote(reservation.NewMoney(v.PriceCents()), reservation.NewDateInterval(from, to), guests)
	return &QuoteView{
		VenueID:      v.ID(),
		DateFrom:     from,
		DateTo:       to,
		Nights:       quote.Nights,
		Guests:       quote.Guests,
		NightlyCents: quote.Nightly.Cents(),
		TotalCents:   quote.Total.Cents(),
	}, nil
}

func (q *availabilityQueriesImpl) fetch(ctx context.Context, venueID string) (*venue.Venue, error) {
	v, err := q.venues.FetchVenue(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVenueNotFound)
		}
		return nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}
	return v, nil
}
