//go:build unit

package venue_test

import (
	"testing"
	"time"

	"venue-booking/internal/domain/venue"
	"venue-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.VenueBuilder)
	errIs  error
}

func TestVenue(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		day := builder.Day(2025, time.June, 10)
		actual, err := builder.NewVenueBuilder().WithStay("B1", day, day.AddDate(0, 0, 2), 2).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "venue-1", actual.ID())
		assert.Equal(t, "Harbour Loft", actual.Name())
		assert.Equal(t, int64(10000), actual.PriceCents())
		assert.Equal(t, 4, actual.MaxGuests())
		assert.Len(t, actual.Bookings(), 1)

		b, err := actual.FindBooking("B1")
		require.NoError(t, err)
		assert.Equal(t, 2, b.Guests)

		_, err = actual.FindBooking("B2")
		assert.ErrorIs(t, err, venue.ErrBookingNotInVenue)
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty id",
				mutate: func(b *builder.VenueBuilder) { b.ID = "  " },
				errIs:  venue.ErrEmptyVenueID,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.VenueBuilder) { b.PriceCents = -1 },
				errIs:  venue.ErrNegativePrice,
			},
			{
				name:   "free venue",
				mutate: func(b *builder.VenueBuilder) { b.PriceCents = 0 },
			},
			{
				name:   "zero max guests",
				mutate: func(b *builder.VenueBuilder) { b.MaxGuests = 0 },
				errIs:  venue.ErrInvalidMaxGuests,
			},
			{
				name: "booking without id",
				mutate: func(b *builder.VenueBuilder) {
					b.Bookings = append(b.Bookings, venue.Booking{ID: ""})
				},
				errIs: venue.ErrEmptyBookingID,
			},
		})
	})

	t.Run("bookings are copied", func(t *testing.T) {
		day := builder.Day(2025, time.June, 10)
		b := builder.NewVenueBuilder().WithStay("B1", day, day.AddDate(0, 0, 1), 1)
		v, err := b.BuildDomain()
		require.NoError(t, err)

		b.Bookings[0].ID = "mutated"
		got := v.Bookings()
		got[0].Guests = 99

		again := v.Bookings()
		assert.Equal(t, "B1", again[0].ID)
		assert.Equal(t, 1, again[0].Guests)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewVenueBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
