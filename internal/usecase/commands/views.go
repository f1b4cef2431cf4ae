package commands

import (
	"time"

	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/pkg/ptr"

	"github.com/google/uuid"
)

// DraftView is a snapshot of a draft session after an operation.
type DraftView struct {
	ID           uuid.UUID         `json:"id"`
	VenueID      string            `json:"venue_id"`
	VenueName    string            `json:"venue_name"`
	Mode         string            `json:"mode"`
	BookingID    *string           `json:"booking_id,omitempty"`
	Status       string            `json:"status"`
	Available    bool              `json:"available"`
	DateFrom     *time.Time        `json:"date_from,omitempty"`
	DateTo       *time.Time        `json:"date_to,omitempty"`
	Adjusted     bool              `json:"adjusted"`
	Guests       int               `json:"guests"`
	MaxGuests    int               `json:"max_guests"`
	Nights       int               `json:"nights"`
	NightlyCents int64             `json:"nightly_cents"`
	TotalCents   int64             `json:"total_cents"`
	LastError    *string           `json:"last_error,omitempty"`
	Confirmation *ConfirmationView `json:"confirmation,omitempty"`
}

type ConfirmationView struct {
	BookingID  string    `json:"booking_id"`
	VenueID    string    `json:"venue_id"`
	VenueName  string    `json:"venue_name"`
	DateFrom   time.Time `json:"date_from"`
	DateTo     time.Time `json:"date_to"`
	Guests     int       `json:"guests"`
	Nights     int       `json:"nights"`
	TotalCents int64     `json:"total_cents"`
	Updated    bool      `json:"updated"`
}

func newDraftView(id uuid.UUID, d *reservation.Draft, adjusted bool) *DraftView {
	spec := d.Venue()
	quote := d.Quote()
	view := &DraftView{
		ID:           id,
		VenueID:      spec.ID,
		VenueName:    spec.Name,
		Mode:         d.Mode().String(),
		BookingID:    ptr.NonEmpty(d.BookingID()),
		Status:       d.Status().String(),
		Adjusted:     adjusted,
		Guests:       d.Guests(),
		MaxGuests:    spec.MaxGuests,
		NightlyCents: spec.Nightly.Cents(),
		LastError:    ptr.NonEmpty(d.LastError()),
	}

	if rng, ok := d.DateRange(); ok {
		view.Available = true
		view.DateFrom = ptr.To(rng.From)
		view.DateTo = ptr.To(rng.To)
		view.Nights = quote.Nights
		view.TotalCents = quote.Total.Cents()
	}

	if c := d.Confirmation(); c != nil {
		view.Confirmation = &ConfirmationView{
			BookingID:  c.BookingID,
			VenueID:    c.VenueID,
			VenueName:  c.VenueName,
			DateFrom:   c.DateFrom,
			DateTo:     c.DateTo,
			Guests:     c.Guests,
			Nights:     c.Nights,
			TotalCents: c.Total.Cents(),
			Updated:    c.Updated,
		}
	}
	return view
}
