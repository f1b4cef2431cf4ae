//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/venue"
	"venue-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var june10 = builder.Day(2025, time.June, 10)

func newCreateDraft(t *testing.T, b *builder.VenueBuilder) *reservation.Draft {
	t.Helper()
	v, err := b.BuildDomain()
	require.NoError(t, err)
	set := reservation.BuildConflictSet(v.Bookings(), nil)
	return reservation.NewDraft(reservation.VenueSpecFrom(v), set, june10, reservation.DefaultAvailabilityPolicy())
}

func newEditDraft(t *testing.T, b *builder.VenueBuilder, bookingID string) *reservation.Draft {
	t.Helper()
	v, err := b.BuildDomain()
	require.NoError(t, err)
	booking, err := v.FindBooking(bookingID)
	require.NoError(t, err)
	set := reservation.BuildConflictSet(v.Bookings(), &booking.ID)
	return reservation.NewEditDraft(reservation.VenueSpecFrom(v), set, booking, reservation.DefaultAvailabilityPolicy())
}

func TestNewDraft(t *testing.T) {
	t.Run("seeded with next available window and one guest", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder().WithStay("B1", june10, june10.AddDate(0, 0, 2), 2))

		rng, ok := d.DateRange()
		require.True(t, ok)
		assert.Equal(t, builder.At(june10.AddDate(0, 0, 2), 15), rng.From)
		assert.Equal(t, 1, d.Guests())
		assert.Equal(t, reservation.StatusIdle, d.Status())
		assert.Equal(t, reservation.ModeCreate, d.Mode())
		assert.Empty(t, d.LastError())
		assert.Nil(t, d.Confirmation())
	})

	t.Run("fully booked venue has no range", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder().
			WithStay("long", june10.AddDate(0, 0, -1), june10.AddDate(2, 0, 0), 1))

		_, ok := d.DateRange()
		assert.False(t, ok)
		assert.Equal(t, reservation.NoAvailabilityMessage, d.LastError())
	})
}

func TestDraftSelect(t *testing.T) {
	t.Run("free dates are normalized", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		from := builder.Day(2025, time.July, 1)

		repaired, err := d.SelectDates(from, from.AddDate(0, 0, 2))
		require.NoError(t, err)
		assert.False(t, repaired)

		rng, _ := d.DateRange()
		assert.Equal(t, builder.At(from, 15), rng.From)
		assert.Equal(t, 2, d.Quote().Nights)
	})

	t.Run("blocked dates are repaired forward", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder().WithStay("B1", june10, june10.AddDate(0, 0, 2), 2))

		repaired, err := d.SelectDates(june10, june10.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.True(t, repaired)

		rng, _ := d.DateRange()
		assert.Equal(t, builder.At(june10.AddDate(0, 0, 2), 15), rng.From)
		assert.False(t, d.Conflicts().RangeBlocked(rng))
	})

	t.Run("guest bounds", func(t *testing.T) {
		tests := []struct {
			name   string
			guests int
			errIs  error
		}{
			{name: "minimum", guests: 1},
			{name: "maximum", guests: 4},
			{name: "zero", guests: 0, errIs: reservation.ErrGuestsOutOfRange},
			{name: "over maximum", guests: 5, errIs: reservation.ErrGuestsOutOfRange},
			{name: "negative", guests: -1, errIs: reservation.ErrGuestsOutOfRange},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				d := newCreateDraft(t, builder.NewVenueBuilder().WithMaxGuests(4))
				err := d.SelectGuests(tt.guests)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
					assert.Equal(t, "Guests must be between 1 and 4.", d.LastError())
					assert.Equal(t, 1, d.Guests())
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.guests, d.Guests())
			})
		}
	})
}

func TestDraftLifecycle(t *testing.T) {
	t.Run("create submit confirm", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder().WithPrice(1000))
		from := builder.Day(2025, time.July, 1)
		_, err := d.SelectDates(from, from.AddDate(0, 0, 3))
		require.NoError(t, err)
		require.NoError(t, d.SelectGuests(2))

		require.NoError(t, d.OpenSummary())
		assert.Equal(t, reservation.StatusSummaryOpen, d.Status())
		assert.Equal(t, int64(6000), d.Quote().Total.Cents())

		sub, err := d.BeginSubmit()
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusSubmitting, d.Status())
		assert.Equal(t, reservation.ModeCreate, sub.Mode)
		assert.Equal(t, "venue-1", sub.VenueID)
		assert.Equal(t, 2, sub.Guests)
		assert.Equal(t, builder.At(from, 15), sub.DateFrom)

		c, err := d.Confirm(reservation.Receipt{BookingID: "new-1"})
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, d.Status())
		assert.Equal(t, "new-1", c.BookingID)
		assert.Equal(t, "Harbour Loft", c.VenueName)
		assert.Equal(t, 3, c.Nights)
		assert.Equal(t, int64(6000), c.Total.Cents())
		assert.False(t, c.Updated)
		require.NotNil(t, d.Confirmation())
		assert.Equal(t, c, *d.Confirmation())
	})

	t.Run("second submit is not allowed", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		require.NoError(t, d.OpenSummary())
		_, err := d.BeginSubmit()
		require.NoError(t, err)

		_, err = d.BeginSubmit()
		assert.ErrorIs(t, err, reservation.ErrSubmitNotAllowed)
		assert.Equal(t, reservation.StatusSubmitting, d.Status())

		_, err = d.Confirm(reservation.Receipt{BookingID: "x"})
		require.NoError(t, err)
		_, err = d.BeginSubmit()
		assert.ErrorIs(t, err, reservation.ErrSubmitNotAllowed)
	})

	t.Run("submit requires the summary to be open", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		_, err := d.BeginSubmit()
		assert.ErrorIs(t, err, reservation.ErrSubmitNotAllowed)
		assert.Equal(t, reservation.StatusIdle, d.Status())
	})

	t.Run("frozen while submitting", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		require.NoError(t, d.OpenSummary())
		_, err := d.BeginSubmit()
		require.NoError(t, err)
		before, _ := d.DateRange()

		_, err = d.SelectDates(june10.AddDate(0, 1, 0), june10.AddDate(0, 1, 2))
		assert.ErrorIs(t, err, reservation.ErrDraftFrozen)
		assert.ErrorIs(t, d.SelectGuests(2), reservation.ErrDraftFrozen)
		assert.ErrorIs(t, d.Rebase(reservation.NewConflictSet(), june10), reservation.ErrDraftFrozen)
		assert.ErrorIs(t, d.CloseSummary(), reservation.ErrInvalidTransition)
		assert.ErrorIs(t, d.OpenSummary(), reservation.ErrInvalidTransition)

		after, _ := d.DateRange()
		assert.Equal(t, before, after)
		assert.Equal(t, 1, d.Guests())
	})

	t.Run("failure then retry", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		require.NoError(t, d.OpenSummary())
		_, err := d.BeginSubmit()
		require.NoError(t, err)

		require.NoError(t, d.Fail("Venue is closed that week"))
		assert.Equal(t, reservation.StatusFailed, d.Status())
		assert.Equal(t, "Venue is closed that week", d.LastError())

		require.NoError(t, d.OpenSummary())
		assert.Empty(t, d.LastError())
		_, err = d.BeginSubmit()
		assert.NoError(t, err)
	})

	t.Run("empty failure message uses the generic one", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		require.NoError(t, d.OpenSummary())
		_, err := d.BeginSubmit()
		require.NoError(t, err)

		require.NoError(t, d.Fail("  "))
		assert.Equal(t, reservation.GenericFailureMessage, d.LastError())
	})

	t.Run("failure can be abandoned", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		require.NoError(t, d.OpenSummary())
		_, err := d.BeginSubmit()
		require.NoError(t, err)
		require.NoError(t, d.Fail(""))

		require.NoError(t, d.CloseSummary())
		assert.Equal(t, reservation.StatusIdle, d.Status())
		assert.Empty(t, d.LastError())
	})

	t.Run("confirm and fail need an outstanding submission", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		_, err := d.Confirm(reservation.Receipt{})
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
		assert.ErrorIs(t, d.Fail("x"), reservation.ErrInvalidTransition)
	})

	t.Run("reset after confirmation starts over", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		require.NoError(t, d.SelectGuests(3))
		require.NoError(t, d.OpenSummary())
		_, err := d.BeginSubmit()
		require.NoError(t, err)
		_, err = d.Confirm(reservation.Receipt{BookingID: "x"})
		require.NoError(t, err)

		require.NoError(t, d.Reset(june10))
		assert.Equal(t, reservation.StatusIdle, d.Status())
		assert.Equal(t, reservation.ModeCreate, d.Mode())
		assert.Equal(t, 1, d.Guests())
		assert.Nil(t, d.Confirmation())

		assert.ErrorIs(t, d.Reset(june10), reservation.ErrInvalidTransition)
	})
}

func TestDraftSubmitValidation(t *testing.T) {
	t.Run("zero guests is rejected locally", func(t *testing.T) {
		b := builder.NewVenueBuilder().WithStay("B1", june10, june10.AddDate(0, 0, 2), 0)
		d := newEditDraft(t, b, "B1")
		require.Equal(t, 0, d.Guests())
		require.NoError(t, d.OpenSummary())

		_, err := d.BeginSubmit()
		assert.ErrorIs(t, err, reservation.ErrGuestsOutOfRange)
		assert.Equal(t, reservation.StatusSummaryOpen, d.Status())
		assert.Equal(t, "Guests must be between 1 and 4.", d.LastError())
	})

	t.Run("no availability", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder().
			WithStay("long", june10.AddDate(0, 0, -1), june10.AddDate(2, 0, 0), 1))
		require.NoError(t, d.OpenSummary())

		_, err := d.BeginSubmit()
		assert.ErrorIs(t, err, reservation.ErrNoAvailability)
		assert.Equal(t, reservation.StatusSummaryOpen, d.Status())
	})

	t.Run("range blocked after a rebase", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		require.NoError(t, d.OpenSummary())
		rng, _ := d.DateRange()

		require.NoError(t, d.Rebase(reservation.NewConflictSet(rng), june10))
		_, err := d.BeginSubmit()
		assert.ErrorIs(t, err, reservation.ErrDatesUnavailable)
		assert.Equal(t, reservation.DatesUnavailableMessage, d.LastError())
	})
}

func TestEditDraft(t *testing.T) {
	b := builder.NewVenueBuilder().
		WithPrice(1000).
		WithStay("B1", june10, june10.AddDate(0, 0, 2), 2).
		WithStay("B2", june10.AddDate(0, 0, 4), june10.AddDate(0, 0, 6), 1)

	t.Run("pre-populated from the booking", func(t *testing.T) {
		d := newEditDraft(t, b, "B1")
		rng, ok := d.DateRange()
		require.True(t, ok)
		assert.Equal(t, builder.At(june10, 15), rng.From)
		assert.Equal(t, builder.At(june10.AddDate(0, 0, 2), 11), rng.To)
		assert.Equal(t, 2, d.Guests())
		assert.Equal(t, reservation.ModeUpdate, d.Mode())
		assert.Equal(t, "B1", d.BookingID())
		assert.Equal(t, 1, d.Conflicts().Len())
	})

	t.Run("unchanged dates resubmit without self-conflict", func(t *testing.T) {
		d := newEditDraft(t, b, "B1")
		repaired, err := d.SelectDates(june10, june10.AddDate(0, 0, 2))
		require.NoError(t, err)
		assert.False(t, repaired)
		require.NoError(t, d.OpenSummary())

		sub, err := d.BeginSubmit()
		require.NoError(t, err)
		assert.Equal(t, reservation.ModeUpdate, sub.Mode)
		assert.Equal(t, "B1", sub.BookingID)
		assert.Equal(t, builder.At(june10, 15), sub.DateFrom)
	})

	t.Run("other bookings still conflict", func(t *testing.T) {
		d := newEditDraft(t, b, "B1")
		repaired, err := d.SelectDates(june10.AddDate(0, 0, 4), june10.AddDate(0, 0, 5))
		require.NoError(t, err)
		assert.True(t, repaired)
		rng, _ := d.DateRange()
		assert.Equal(t, builder.At(june10.AddDate(0, 0, 6), 15), rng.From)
	})

	t.Run("confirmation adopts the receipt", func(t *testing.T) {
		d := newEditDraft(t, b, "B1")
		require.NoError(t, d.OpenSummary())
		_, err := d.BeginSubmit()
		require.NoError(t, err)

		from := builder.At(june10.AddDate(0, 1, 0), 15)
		to := builder.At(june10.AddDate(0, 1, 3), 11)
		c, err := d.Confirm(reservation.Receipt{BookingID: "B1", DateFrom: from, DateTo: to, Guests: 3})
		require.NoError(t, err)
		assert.True(t, c.Updated)
		assert.Equal(t, 3, c.Nights)
		assert.Equal(t, int64(9000), c.Total.Cents())
		assert.Equal(t, 3, d.Guests())
		rng, _ := d.DateRange()
		assert.Equal(t, from, rng.From)
	})
}

func TestDraftRebase(t *testing.T) {
	t.Run("idle draft whose window got booked is re-seeded", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		rng, _ := d.DateRange()

		v := builder.NewVenueBuilder().WithStay("new", june10, june10.AddDate(0, 0, 1), 1).MustBuild()
		require.NoError(t, d.Rebase(reservation.BuildConflictSet(v.Bookings(), nil), june10))

		moved, ok := d.DateRange()
		require.True(t, ok)
		assert.NotEqual(t, rng, moved)
		assert.Equal(t, builder.At(june10.AddDate(0, 0, 1), 15), moved.From)
	})

	t.Run("open summary keeps the user's choice", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		rng, _ := d.DateRange()
		require.NoError(t, d.OpenSummary())

		require.NoError(t, d.Rebase(reservation.NewConflictSet(rng), june10))
		kept, _ := d.DateRange()
		assert.Equal(t, rng, kept)
	})

	t.Run("closing the summary over a blocked range re-seeds", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		rng, _ := d.DateRange()
		require.NoError(t, d.OpenSummary())
		require.NoError(t, d.Rebase(reservation.NewConflictSet(rng), june10))

		require.NoError(t, d.CloseSummary())
		moved, ok := d.DateRange()
		require.True(t, ok)
		assert.Equal(t, builder.At(june10.AddDate(0, 0, 1), 15), moved.From)
		assert.False(t, d.Conflicts().RangeBlocked(moved))
	})

	t.Run("confirmed create moves off its own booking", func(t *testing.T) {
		d := newCreateDraft(t, builder.NewVenueBuilder())
		booked, _ := d.DateRange()
		require.NoError(t, d.OpenSummary())
		_, err := d.BeginSubmit()
		require.NoError(t, err)
		_, err = d.Confirm(reservation.Receipt{BookingID: "N1"})
		require.NoError(t, err)

		require.NoError(t, d.Rebase(reservation.NewConflictSet(booked), june10))
		assert.Equal(t, reservation.StatusConfirmed, d.Status())
		require.NotNil(t, d.Confirmation())
		assert.Equal(t, booked.From, d.Confirmation().DateFrom)

		next, ok := d.DateRange()
		require.True(t, ok)
		assert.False(t, d.Conflicts().RangeBlocked(next))

		require.NoError(t, d.CloseSummary())
		after, _ := d.DateRange()
		assert.Equal(t, next, after)
	})
}

func TestVenueSpecFrom(t *testing.T) {
	v, err := venue.NewVenue(" v-9 ", " Cabin ", 12345, 6, nil)
	require.NoError(t, err)

	spec := reservation.VenueSpecFrom(v)
	assert.Equal(t, "v-9", spec.ID)
	assert.Equal(t, "Cabin", spec.Name)
	assert.Equal(t, int64(12345), spec.Nightly.Cents())
	assert.Equal(t, 6, spec.MaxGuests)
}
