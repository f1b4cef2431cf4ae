package reservation

import (
	"time"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/clock"
)

// Factory builds drafts from fetched venues, supplying "now" from the clock
// in the configured location.
type Factory struct {
	Clock    clock.Clock
	Policy   AvailabilityPolicy
	Location *time.Location
}

func NewFactory(clock clock.Clock, policy AvailabilityPolicy, loc *time.Location) *Factory {
	if loc == nil {
		loc = time.UTC
	}
	if policy.Location == nil {
		policy.Location = loc
	}
	return &Factory{
		Clock:    clock,
		Policy:   policy,
		Location: loc,
	}
}

func (f *Factory) Now() time.Time {
	return f.Clock.Now().In(f.Location)
}

func (f *Factory) CreateDraft(v *venue.Venue) *Draft {
	set := BuildConflictSet(v.Bookings(), nil)
	return NewDraft(VenueSpecFrom(v), set, f.Now(), f.Policy)
}

// EditDraft opens one of the venue's bookings for editing with its own
// interval excluded from the conflict set.
func (f *Factory) EditDraft(v *venue.Venue, bookingID string) (*Draft, error) {
	booking, err := v.FindBooking(bookingID)
	if err != nil {
		return nil, err
	}
	set := BuildConflictSet(v.Bookings(), &booking.ID)
	return NewEditDraft(VenueSpecFrom(v), set, booking, f.Policy), nil
}

// Refresh rebuilds the draft's conflict set from a re-fetched venue.
func (f *Factory) Refresh(d *Draft, v *venue.Venue) error {
	return d.Rebase(f.ConflictsFor(v, d.exclusion()), f.Now())
}

func (f *Factory) Reset(d *Draft, v *venue.Venue) error {
	if err := d.Reset(f.Now()); err != nil {
		return err
	}
	return d.Rebase(f.ConflictsFor(v, nil), f.Now())
}

func (f *Factory) ConflictsFor(v *venue.Venue, excludeID *string) ConflictSet {
	return BuildConflictSet(v.Bookings(), excludeID)
}

func (f *Factory) NextAvailable(set ConflictSet) (DateInterval, bool) {
	return FindNextAvailable(set, f.Now(), f.Policy)
}

func (d *Draft) exclusion() *string {
	if d.mode != ModeUpdate || d.bookingID == "" {
		return nil
	}
	id := d.bookingID
	return &id
}
