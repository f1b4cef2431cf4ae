//go:build unit

package reservation_test

import (
	"math/rand"
	"testing"
	"time"

	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/venue"
	"venue-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConflictSet(t *testing.T) {
	base := builder.Day(2025, time.June, 1)
	v := builder.NewVenueBuilder().
		WithStay("B1", base, base.AddDate(0, 0, 2), 2).
		WithStay("B2", base.AddDate(0, 0, 5), base.AddDate(0, 0, 7), 1).
		MustBuild()

	t.Run("one interval per booking", func(t *testing.T) {
		set := reservation.BuildConflictSet(v.Bookings(), nil)
		assert.Equal(t, 2, set.Len())

		want := []reservation.DateInterval{
			reservation.NewDateInterval(builder.At(base, 15), builder.At(base.AddDate(0, 0, 2), 11)),
			reservation.NewDateInterval(builder.At(base.AddDate(0, 0, 5), 15), builder.At(base.AddDate(0, 0, 7), 11)),
		}
		if diff := cmp.Diff(want, set.Intervals()); diff != "" {
			t.Errorf("intervals mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("excluded booking is left out", func(t *testing.T) {
		exclude := "B1"
		set := reservation.BuildConflictSet(v.Bookings(), &exclude)
		require.Equal(t, 1, set.Len())
		assert.False(t, set.IsBlocked(builder.At(base.AddDate(0, 0, 1), 12)))
		assert.True(t, set.IsBlocked(builder.At(base.AddDate(0, 0, 6), 12)))
	})

	t.Run("unknown exclusion keeps everything", func(t *testing.T) {
		exclude := "nope"
		set := reservation.BuildConflictSet(v.Bookings(), &exclude)
		assert.Equal(t, 2, set.Len())
	})

	t.Run("no bookings yields empty set", func(t *testing.T) {
		set := reservation.BuildConflictSet(nil, nil)
		assert.Zero(t, set.Len())
		assert.False(t, set.IsBlocked(base))
	})

	t.Run("degenerate booking still blocks its instant", func(t *testing.T) {
		instant := builder.At(base, 12)
		set := reservation.BuildConflictSet([]venue.Booking{{ID: "x", DateFrom: instant, DateTo: instant}}, nil)
		assert.True(t, set.IsBlocked(instant))
		assert.False(t, set.IsBlocked(instant.Add(time.Second)))
	})
}

func TestConflictSetRangeBlocked(t *testing.T) {
	day := builder.Day(2025, time.June, 10)
	set := reservation.NewConflictSet(
		reservation.NewDateInterval(builder.At(day, 15), builder.At(day.AddDate(0, 0, 2), 11)),
	)

	tests := []struct {
		name string
		rng  reservation.DateInterval
		want bool
	}{
		{
			name: "enclosing range blocked even though endpoints are clear",
			rng:  reservation.NewDateInterval(builder.At(day.AddDate(0, 0, -1), 15), builder.At(day.AddDate(0, 0, 4), 11)),
			want: true,
		},
		{
			name: "checkout morning before check-in afternoon is clear",
			rng:  reservation.NewDateInterval(builder.At(day.AddDate(0, 0, -1), 15), builder.At(day, 11)),
			want: false,
		},
		{
			name: "check-in afternoon after checkout morning is clear",
			rng:  reservation.NewDateInterval(builder.At(day.AddDate(0, 0, 2), 15), builder.At(day.AddDate(0, 0, 3), 11)),
			want: false,
		},
		{
			name: "start inside",
			rng:  reservation.NewDateInterval(builder.At(day.AddDate(0, 0, 1), 15), builder.At(day.AddDate(0, 0, 3), 11)),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.RangeBlocked(tt.rng))
		})
	}
}

// Every instant reported blocked lies in some interval, and every instant of
// every interval is reported blocked.
func TestConflictSetProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	origin := builder.Day(2025, time.January, 1)

	for run := 0; run < 50; run++ {
		var bookings []venue.Booking
		for i := 0; i < rnd.Intn(6); i++ {
			from := origin.Add(time.Duration(rnd.Intn(60*24)) * time.Hour)
			to := from.Add(time.Duration(rnd.Intn(96)) * time.Hour)
			bookings = append(bookings, venue.Booking{ID: string(rune('a' + i)), DateFrom: from, DateTo: to})
		}
		set := reservation.BuildConflictSet(bookings, nil)
		require.Equal(t, len(bookings), set.Len())

		for _, b := range bookings {
			assert.True(t, set.IsBlocked(b.DateFrom))
			assert.True(t, set.IsBlocked(b.DateTo))
		}

		for probe := 0; probe < 100; probe++ {
			point := origin.Add(time.Duration(rnd.Intn(70*24*60)) * time.Minute)
			inSome := false
			for _, b := range bookings {
				if !point.Before(b.DateFrom) && !point.After(b.DateTo) {
					inSome = true
					break
				}
			}
			assert.Equal(t, inSome, set.IsBlocked(point), "point %s", point)
		}
	}
}
