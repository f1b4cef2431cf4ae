package venueapi

import (
	"time"

	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/errs"
)

const dateOnlyLayout = "2006-01-02"

func toDomainVenue(p venuePayload) (*venue.Venue, error) {
	bookings := make([]venue.Booking, 0, len(p.Bookings))
	for _, b := range p.Bookings {
		booking, err := toDomainBooking(b)
		if err != nil {
			return nil, errs.Wrapf(err, "booking %s", b.ID)
		}
		bookings = append(bookings, booking)
	}
	return venue.NewVenue(p.ID, p.Name, reservation.MoneyFromDecimal(p.Price).Cents(), p.MaxGuests, bookings)
}

func toDomainBooking(b bookingPayload) (venue.Booking, error) {
	from, err := parseInstant(b.DateFrom)
	if err != nil {
		return venue.Booking{}, errs.Wrap(err, "dateFrom")
	}
	to, err := parseInstant(b.DateTo)
	if err != nil {
		return venue.Booking{}, errs.Wrap(err, "dateTo")
	}
	return venue.Booking{ID: b.ID, DateFrom: from, DateTo: to, Guests: b.Guests}, nil
}

func toReceipt(b bookingPayload) reservation.Receipt {
	r := reservation.Receipt{BookingID: b.ID, Guests: b.Guests}
	// Unparseable dates leave the submitted values in effect.
	if from, err := parseInstant(b.DateFrom); err == nil {
		r.DateFrom = from
	}
	if to, err := parseInstant(b.DateTo); err == nil {
		r.DateTo = to
	}
	return r
}

// parseInstant accepts RFC 3339 timestamps with or without fractional
// seconds, and bare dates.
func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse(dateOnlyLayout, s)
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
