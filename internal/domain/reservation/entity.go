package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"venue-booking/internal/domain/venue"
)

var (
	ErrGuestsOutOfRange  = errors.New("guests out of range")
	ErrNoAvailability    = errors.New("no availability")
	ErrDatesUnavailable  = errors.New("selected dates are unavailable")
	ErrDraftFrozen       = errors.New("draft is frozen while a submission is outstanding")
	ErrInvalidTransition = errors.New("invalid draft transition")
	ErrSubmitNotAllowed  = errors.New("submission not allowed in current state")
)

const (
	GenericFailureMessage   = "Something went wrong. Please try again."
	NoAvailabilityMessage   = "No available dates were found for this venue."
	DatesUnavailableMessage = "The selected dates are no longer available."
)

// VenueSpec is the slice of a venue the draft reads. It is copied at
// construction and never written back.
type VenueSpec struct {
	ID        string
	Name      string
	Nightly   Money
	MaxGuests int
}

func VenueSpecFrom(v *venue.Venue) VenueSpec {
	return VenueSpec{
		ID:        v.ID(),
		Name:      v.Name(),
		Nightly:   NewMoney(v.PriceCents()),
		MaxGuests: v.MaxGuests(),
	}
}

// Submission is the payload for the external create or update call.
type Submission struct {
	Mode      Mode
	BookingID string
	VenueID   string
	DateFrom  time.Time
	DateTo    time.Time
	Guests    int
}

// Receipt is the success payload returned by the external booking API.
// Zero fields fall back to the submitted values.
type Receipt struct {
	BookingID string
	DateFrom  time.Time
	DateTo    time.Time
	Guests    int
}

// Confirmation is the immutable record shown after a successful submit.
type Confirmation struct {
	BookingID string
	VenueID   string
	VenueName string
	DateFrom  time.Time
	DateTo    time.Time
	Guests    int
	Nights    int
	Total     Money
	Updated   bool
}

// Draft is the mutable unit of work while creating or editing a booking.
type Draft struct {
	venue        VenueSpec
	policy       AvailabilityPolicy
	mode         Mode
	bookingID    string
	conflicts    ConflictSet
	seededAt     time.Time
	dateRange    DateInterval
	hasRange     bool
	guests       int
	status       Status
	lastError    string
	confirmation *Confirmation
}

// NewDraft starts a create-mode draft seeded with the next available window
// at or after now and a single guest.
func NewDraft(spec VenueSpec, set ConflictSet, now time.Time, policy AvailabilityPolicy) *Draft {
	d := &Draft{
		venue:     spec,
		policy:    policy,
		mode:      ModeCreate,
		conflicts: set,
		guests:    1,
		status:    StatusIdle,
	}
	d.seed(now)
	return d
}

// NewEditDraft starts an update-mode draft pre-populated from an existing
// booking. set must already exclude that booking.
func NewEditDraft(spec VenueSpec, set ConflictSet, booking venue.Booking, policy AvailabilityPolicy) *Draft {
	return &Draft{
		venue:     spec,
		policy:    policy,
		mode:      ModeUpdate,
		bookingID: booking.ID,
		conflicts: set,
		dateRange: NewDateInterval(booking.DateFrom, booking.DateTo),
		hasRange:  true,
		guests:    booking.Guests,
		status:    StatusIdle,
	}
}

func (d *Draft) seed(now time.Time) {
	d.seededAt = now
	window, ok := FindNextAvailable(d.conflicts, now, d.policy)
	d.dateRange = window
	d.hasRange = ok
	if !ok {
		d.lastError = NoAvailabilityMessage
	}
}

// SelectDates applies a user-picked range. A range intersecting the
// conflict set is repaired by probing forward from its check-in date; the
// first result reports whether that happened.
func (d *Draft) SelectDates(from, to time.Time) (bool, error) {
	if err := d.ensureEditable(); err != nil {
		return false, err
	}

	requested := NewDateInterval(from, to)
	window, ok := AdjustRange(d.conflicts, requested, d.policy)
	if !ok {
		d.lastError = NoAvailabilityMessage
		return false, ErrNoAvailability
	}

	repaired := !DateOnly(window.From).Equal(DateOnly(d.policy.local(from)))
	d.dateRange = window
	d.hasRange = true
	d.lastError = ""
	return repaired, nil
}

func (d *Draft) SelectGuests(n int) error {
	if err := d.ensureEditable(); err != nil {
		return err
	}
	if err := d.validateGuests(n); err != nil {
		return err
	}
	d.guests = n
	d.lastError = ""
	return nil
}

// OpenSummary moves to the price preview. From Failed this is a retry.
func (d *Draft) OpenSummary() error {
	switch d.status {
	case StatusSummaryOpen:
		return nil
	case StatusIdle, StatusFailed:
		d.status = StatusSummaryOpen
		d.lastError = ""
		return nil
	default:
		return ErrInvalidTransition
	}
}

// CloseSummary returns to Idle: toggling the summary off, abandoning after a
// failure, or closing a confirmation.
func (d *Draft) CloseSummary() error {
	switch d.status {
	case StatusIdle:
		return nil
	case StatusSummaryOpen, StatusFailed, StatusConfirmed:
		d.status = StatusIdle
		d.lastError = ""
		d.reseedIfBlocked()
		return nil
	default:
		return ErrInvalidTransition
	}
}

// BeginSubmit moves SummaryOpen to Submitting and returns the payload for the
// external call. Any other state yields ErrSubmitNotAllowed, which callers
// treat as a silently dropped duplicate trigger. Validation failures keep
// the draft in SummaryOpen with an inline message.
func (d *Draft) BeginSubmit() (Submission, error) {
	if d.status != StatusSummaryOpen {
		return Submission{}, ErrSubmitNotAllowed
	}
	if err := d.validateGuests(d.guests); err != nil {
		return Submission{}, err
	}
	if !d.hasRange {
		d.lastError = NoAvailabilityMessage
		return Submission{}, ErrNoAvailability
	}
	if d.conflicts.RangeBlocked(d.dateRange) {
		d.lastError = DatesUnavailableMessage
		return Submission{}, ErrDatesUnavailable
	}

	d.status = StatusSubmitting
	d.lastError = ""
	return Submission{
		Mode:      d.mode,
		BookingID: d.bookingID,
		VenueID:   d.venue.ID,
		DateFrom:  d.dateRange.From,
		DateTo:    d.dateRange.To,
		Guests:    d.guests,
	}, nil
}

// Confirm records a successful create or update.
func (d *Draft) Confirm(receipt Receipt) (Confirmation, error) {
	if d.status != StatusSubmitting {
		return Confirmation{}, ErrInvalidTransition
	}

	rng := d.dateRange
	if !receipt.DateFrom.IsZero() && !receipt.DateTo.IsZero() {
		rng = NewDateInterval(receipt.DateFrom, receipt.DateTo)
	}
	guests := d.guests
	if receipt.Guests > 0 {
		guests = receipt.Guests
	}
	bookingID := receipt.BookingID
	if bookingID == "" {
		bookingID = d.bookingID
	}

	quote := NewQuote(d.venue.Nightly, rng, guests)
	c := Confirmation{
		BookingID: bookingID,
		VenueID:   d.venue.ID,
		VenueName: d.venue.Name,
		DateFrom:  rng.From,
		DateTo:    rng.To,
		Guests:    guests,
		Nights:    quote.Nights,
		Total:     quote.Total,
		Updated:   d.mode == ModeUpdate,
	}

	if d.mode == ModeUpdate {
		d.dateRange = rng
		d.guests = guests
	}
	d.status = StatusConfirmed
	d.lastError = ""
	d.confirmation = &c
	return c, nil
}

// Fail records a failed submission. An empty message falls back to a
// generic one.
func (d *Draft) Fail(message string) error {
	if d.status != StatusSubmitting {
		return ErrInvalidTransition
	}
	message = strings.TrimSpace(message)
	if message == "" {
		message = GenericFailureMessage
	}
	d.status = StatusFailed
	d.lastError = message
	return nil
}

// Rebase swaps in a conflict set rebuilt after a refetch. An idle draft, or
// a confirmed create whose window is now taken by its own booking, is
// re-seeded from now when its range became blocked.
func (d *Draft) Rebase(set ConflictSet, now time.Time) error {
	if d.status == StatusSubmitting {
		return ErrDraftFrozen
	}
	d.conflicts = set
	reseed := d.status == StatusIdle || (d.status == StatusConfirmed && d.mode == ModeCreate)
	if reseed && (!d.hasRange || set.RangeBlocked(d.dateRange)) {
		if d.status == StatusIdle {
			d.lastError = ""
		}
		d.seed(now)
	}
	return nil
}

// reseedIfBlocked keeps an idle draft on a free window. The search restarts
// from the later of the last seed time and the current check-in.
func (d *Draft) reseedIfBlocked() {
	if d.hasRange && !d.conflicts.RangeBlocked(d.dateRange) {
		return
	}
	from := d.seededAt
	if d.hasRange && d.dateRange.From.After(from) {
		from = d.dateRange.From
	}
	if from.IsZero() {
		return
	}
	d.seed(from)
}

// Reset replaces a confirmed draft with a fresh create-mode draft for
// booking again.
func (d *Draft) Reset(now time.Time) error {
	if d.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	d.mode = ModeCreate
	d.bookingID = ""
	d.guests = 1
	d.status = StatusIdle
	d.lastError = ""
	d.confirmation = nil
	d.seed(now)
	return nil
}

func (d *Draft) Quote() Quote {
	return NewQuote(d.venue.Nightly, d.dateRange, d.guests)
}

func (d *Draft) ensureEditable() error {
	if d.status == StatusSubmitting {
		return ErrDraftFrozen
	}
	if !d.status.IsEditable() {
		return ErrInvalidTransition
	}
	return nil
}

func (d *Draft) validateGuests(n int) error {
	if n < 1 || n > d.venue.MaxGuests {
		d.lastError = fmt.Sprintf("Guests must be between 1 and %d.", d.venue.MaxGuests)
		return ErrGuestsOutOfRange
	}
	return nil
}

// DateRange reports the selected stay; the second result is false when no
// window could be proposed.
func (d *Draft) DateRange() (DateInterval, bool) { return d.dateRange, d.hasRange }

func (d *Draft) Venue() VenueSpec           { return d.venue }
func (d *Draft) Mode() Mode                 { return d.mode }
func (d *Draft) BookingID() string          { return d.bookingID }
func (d *Draft) Conflicts() ConflictSet     { return d.conflicts }
func (d *Draft) Guests() int                { return d.guests }
func (d *Draft) Status() Status             { return d.status }
func (d *Draft) LastError() string          { return d.lastError }
func (d *Draft) Policy() AvailabilityPolicy { return d.policy }

func (d *Draft) Confirmation() *Confirmation {
	if d.confirmation == nil {
		return nil
	}
	c := *d.confirmation
	return &c
}
