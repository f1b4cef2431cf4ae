//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/testutil"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var june10 = builder.Day(2025, time.June, 10)

func setup(t *testing.T) (*queriesmock.MockVenueReader, queries.AvailabilityQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	venues := queriesmock.NewMockVenueReader(ctrl)
	factory := reservation.NewFactory(clock.NewFixedClock(june10), reservation.DefaultAvailabilityPolicy(), time.UTC)
	return venues, queries.NewAvailabilityQueries(venues, factory)
}

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()
	v := builder.NewVenueBuilder().
		WithStay("B1", june10, june10.AddDate(0, 0, 2), 2).
		WithStay("B2", june10.AddDate(0, 0, 3), june10.AddDate(0, 0, 4), 1).
		MustBuild()

	t.Run("lists blocked intervals and the next window", func(t *testing.T) {
		venues, q := setup(t)
		venues.EXPECT().FetchVenue(gomock.Any(), "venue-1").Return(v, nil)

		got, err := q.GetAvailability(ctx, "venue-1", nil)
		require.NoError(t, err)

		want := &queries.AvailabilityView{
			VenueID:      "venue-1",
			VenueName:    "Harbour Loft",
			MaxGuests:    4,
			NightlyCents: 10000,
			NextAvailable: &queries.IntervalView{
				From: builder.At(june10.AddDate(0, 0, 2), 15),
				To:   builder.At(june10.AddDate(0, 0, 3), 11),
			},
			Blocked: []queries.IntervalView{
				{From: builder.At(june10, 15), To: builder.At(june10.AddDate(0, 0, 2), 11)},
				{From: builder.At(june10.AddDate(0, 0, 3), 15), To: builder.At(june10.AddDate(0, 0, 4), 11)},
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("availability mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("excluded booking frees its dates", func(t *testing.T) {
		venues, q := setup(t)
		venues.EXPECT().FetchVenue(gomock.Any(), "venue-1").Return(v, nil)

		exclude := "B1"
		got, err := q.GetAvailability(ctx, "venue-1", &exclude)
		require.NoError(t, err)
		assert.Len(t, got.Blocked, 1)
		require.NotNil(t, got.NextAvailable)
		assert.Equal(t, builder.At(june10, 15), got.NextAvailable.From)
	})

	t.Run("no window within lookahead", func(t *testing.T) {
		venues, q := setup(t)
		full := builder.NewVenueBuilder().
			WithStay("long", june10.AddDate(0, 0, -1), june10.AddDate(2, 0, 0), 1).
			MustBuild()
		venues.EXPECT().FetchVenue(gomock.Any(), "venue-1").Return(full, nil)

		got, err := q.GetAvailability(ctx, "venue-1", nil)
		require.NoError(t, err)
		assert.Nil(t, got.NextAvailable)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			marker error
		}{
			{
				name:   "not found",
				err:    infra.WrapClientErr(testutil.DiscardLogger(), infra.KindNotFound, "venue not found", nil),
				marker: errs.ErrVenueNotFound,
			},
			{
				name:   "upstream",
				err:    infra.WrapClientErr(testutil.DiscardLogger(), infra.KindUpstream, "venue api failed", errors.New("502")),
				marker: errs.ErrUpstreamUnavailable,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				venues, q := setup(t)
				venues.EXPECT().FetchVenue(gomock.Any(), "venue-1").Return(nil, tt.err)

				_, err := q.GetAvailability(ctx, "venue-1", nil)
				assert.True(t, errs.Is(err, tt.marker))
			})
		}
	})
}

func TestQuotePrice(t *testing.T) {
	ctx := context.Background()
	v := builder.NewVenueBuilder().WithPrice(1000).WithMaxGuests(4).MustBuild()
	from := builder.At(june10, 15)
	to := builder.At(june10.AddDate(0, 0, 3), 11)

	t.Run("nightly price times nights times guests", func(t *testing.T) {
		venues, q := setup(t)
		venues.EXPECT().FetchVenue(gomock.Any(), "venue-1").Return(v, nil)

		got, err := q.QuotePrice(ctx, "venue-1", from, to, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Nights)
		assert.Equal(t, 2, got.Guests)
		assert.Equal(t, int64(1000), got.NightlyCents)
		assert.Equal(t, int64(6000), got.TotalCents)
	})

	t.Run("guests over capacity", func(t *testing.T) {
		venues, q := setup(t)
		venues.EXPECT().FetchVenue(gomock.Any(), "venue-1").Return(v, nil)

		_, err := q.QuotePrice(ctx, "venue-1", from, to, 5)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("missing dates skip the fetch", func(t *testing.T) {
		_, q := setup(t)
		_, err := q.QuotePrice(ctx, "venue-1", time.Time{}, to, 1)
		assert.True(t, errs.Is(err, errs.ErrInvalidDateRange))
	})
}
