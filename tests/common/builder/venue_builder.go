//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/venue"
)

type VenueBuilder struct {
	ID         string
	Name       string
	PriceCents int64
	MaxGuests  int
	Bookings   []venue.Booking
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:         "venue-1",
		Name:       "Harbour Loft",
		PriceCents: 10000,
		MaxGuests:  4,
	}
}

func (b *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(b)
	return b
}

func (b *VenueBuilder) WithPrice(cents int64) *VenueBuilder {
	b.PriceCents = cents
	return b
}

func (b *VenueBuilder) WithMaxGuests(n int) *VenueBuilder {
	b.MaxGuests = n
	return b
}

// WithStay appends a booking from checkIn at 15:00 to checkOut at 11:00 UTC.
func (b *VenueBuilder) WithStay(id string, checkIn, checkOut time.Time, guests int) *VenueBuilder {
	b.Bookings = append(b.Bookings, venue.Booking{
		ID:       id,
		DateFrom: At(checkIn, reservation.DefaultCheckInHour),
		DateTo:   At(checkOut, reservation.DefaultCheckOutHour),
		Guests:   guests,
	})
	return b
}

// WithBlockedDays books every day from the first through the last date,
// check-in to check-out, in one-night stays.
func (b *VenueBuilder) WithBlockedDays(first time.Time, days int) *VenueBuilder {
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		b.WithStay(fmt.Sprintf("blocked-%d", i), day, day.AddDate(0, 0, 1), 1)
	}
	return b
}

func (b *VenueBuilder) BuildDomain() (*venue.Venue, error) {
	return venue.NewVenue(b.ID, b.Name, b.PriceCents, b.MaxGuests, b.Bookings)
}

// MustBuild is for fixtures whose builder values are known to be valid.
func (b *VenueBuilder) MustBuild() *venue.Venue {
	v, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return v
}

// Day returns midnight UTC of the given date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// At returns day's date at hour:00 in day's location.
func At(day time.Time, hour int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, day.Location())
}
