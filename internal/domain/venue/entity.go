package venue

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyVenueID      = errors.New("venue id cannot be empty")
	ErrNegativePrice     = errors.New("venue price cannot be negative")
	ErrInvalidMaxGuests  = errors.New("venue max guests must be at least 1")
	ErrEmptyBookingID    = errors.New("booking id cannot be empty")
	ErrBookingNotInVenue = errors.New("booking does not belong to venue")
)

// Booking is an existing reservation as reported by the venue data source.
// DateFrom and DateTo are inclusive endpoints.
type Booking struct {
	ID       string
	DateFrom time.Time
	DateTo   time.Time
	Guests   int
}

// Venue is owned by the external data layer and treated as read-only input.
// A confirmed create or update is only reflected after the caller re-fetches.
type Venue struct {
	id         string
	name       string
	priceCents int64
	maxGuests  int
	bookings   []Booking
}

func NewVenue(id, name string, priceCents int64, maxGuests int, bookings []Booking) (*Venue, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyVenueID
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if maxGuests < 1 {
		return nil, ErrInvalidMaxGuests
	}
	for _, b := range bookings {
		if strings.TrimSpace(b.ID) == "" {
			return nil, ErrEmptyBookingID
		}
	}

	owned := make([]Booking, len(bookings))
	copy(owned, bookings)

	return &Venue{
		id:         id,
		name:       strings.TrimSpace(name),
		priceCents: priceCents,
		maxGuests:  maxGuests,
		bookings:   owned,
	}, nil
}

// FindBooking looks up one of the venue's bookings by id.
func (v *Venue) FindBooking(id string) (Booking, error) {
	for _, b := range v.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return Booking{}, ErrBookingNotInVenue
}

// Bookings returns a copy so callers cannot mutate the venue.
func (v *Venue) Bookings() []Booking {
	out := make([]Booking, len(v.bookings))
	copy(out, v.bookings)
	return out
}

func (v *Venue) ID() string        { return v.id }
func (v *Venue) Name() string      { return v.name }
func (v *Venue) PriceCents() int64 { return v.priceCents }
func (v *Venue) MaxGuests() int    { return v.maxGuests }
