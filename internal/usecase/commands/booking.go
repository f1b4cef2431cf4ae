package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../../../tests/mock/commands/booking.go -package=commandsmock venue-booking/internal/usecase/commands BookingCommands
type BookingCommands interface {
	Start(ctx context.Context, venueID string) (*DraftView, error)
	StartEdit(ctx context.Context, venueID, bookingID string) (*DraftView, error)
	Get(ctx context.Context, id uuid.UUID) (*DraftView, error)
	SelectDates(ctx context.Context, id uuid.UUID, from, to time.Time) (*DraftView, error)
	SelectGuests(ctx context.Context, id uuid.UUID, guests int) (*DraftView, error)
	OpenSummary(ctx context.Context, id uuid.UUID) (*DraftView, error)
	CloseSummary(ctx context.Context, id uuid.UUID) (*DraftView, error)
	Submit(ctx context.Context, id uuid.UUID) (*DraftView, error)
	Reset(ctx context.Context, id uuid.UUID) (*DraftView, error)
	Discard(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	venues   VenueSource
	bookings BookingGateway
	factory  *reservation.Factory
	store    *SessionStore
	logger   *slog.Logger
}

func NewBookingCommands(
	venues VenueSource,
	bookings BookingGateway,
	factory *reservation.Factory,
	store *SessionStore,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		venues:   venues,
		bookings: bookings,
		factory:  factory,
		store:    store,
		logger:   logger,
	}
}

func (c *bookingCommandsImpl) Start(ctx context.Context, venueID string) (*DraftView, error) {
	v, err := c.fetchVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	s := c.store.add(v, c.factory.CreateDraft(v))
	c.logger.Info("draft started", "draft_id", s.id, "venue_id", v.ID(), "status", s.draft.Status())

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

func (c *bookingCommandsImpl) StartEdit(ctx context.Context, venueID, bookingID string) (*DraftView, error) {
	v, err := c.fetchVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	d, err := c.factory.EditDraft(v, bookingID)
	if err != nil {
		if errors.Is(err, venue.ErrBookingNotInVenue) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to open booking for edit")
	}

	s := c.store.add(v, d)
	c.logger.Info("edit draft started", "draft_id", s.id, "venue_id", v.ID(), "booking_id", bookingID)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

func (c *bookingCommandsImpl) Get(ctx context.Context, id uuid.UUID) (*DraftView, error) {
	return c.withSession(ctx, id, func(*session) error { return nil })
}

func (c *bookingCommandsImpl) SelectDates(ctx context.Context, id uuid.UUID, from, to time.Time) (*DraftView, error) {
	if from.IsZero() || to.IsZero() {
		return nil, errs.ErrInvalidDateRange
	}
	return c.mutate(ctx, id, func(s *session) error {
		adjusted, err := s.draft.SelectDates(from, to)
		if err != nil {
			return classifyDraftErr(err)
		}
		s.adjusted = adjusted
		if adjusted {
			rng, _ := s.draft.DateRange()
			c.logger.Info("selected dates repaired", "draft_id", s.id, "requested_from", from, "check_in", rng.From)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) SelectGuests(ctx context.Context, id uuid.UUID, guests int) (*DraftView, error) {
	return c.mutate(ctx, id, func(s *session) error {
		return classifyDraftErr(s.draft.SelectGuests(guests))
	})
}

func (c *bookingCommandsImpl) OpenSummary(ctx context.Context, id uuid.UUID) (*DraftView, error) {
	return c.mutate(ctx, id, func(s *session) error {
		return classifyDraftErr(s.draft.OpenSummary())
	})
}

func (c *bookingCommandsImpl) CloseSummary(ctx context.Context, id uuid.UUID) (*DraftView, error) {
	return c.mutate(ctx, id, func(s *session) error {
		return classifyDraftErr(s.draft.CloseSummary())
	})
}

// Submit sends the draft to the booking API. The call runs without holding
// the session lock; a trigger arriving while it is outstanding finds the
// draft in Submitting and is dropped without error. API failures land in the
// draft's Failed state rather than in the returned error.
func (c *bookingCommandsImpl) Submit(ctx context.Context, id uuid.UUID) (*DraftView, error) {
	s, ok := c.store.get(id)
	if !ok {
		return nil, errs.ErrDraftNotFound
	}

	s.mu.Lock()
	c.refreshIfStale(ctx, s)
	sub, err := s.draft.BeginSubmit()
	if errors.Is(err, reservation.ErrSubmitNotAllowed) {
		view := s.view()
		s.mu.Unlock()
		c.logger.Debug("duplicate submit dropped", "draft_id", id, "status", view.Status)
		return view, nil
	}
	s.adjusted = false
	if err != nil {
		view := s.view()
		s.mu.Unlock()
		return view, classifyDraftErr(err)
	}
	s.mu.Unlock()

	c.logger.Info("submitting booking", "draft_id", id, "venue_id", sub.VenueID, "mode", sub.Mode, "guests", sub.Guests)
	receipt, callErr := c.send(ctx, sub)

	s.mu.Lock()
	defer s.mu.Unlock()

	if callErr != nil {
		msg := failureMessage(callErr)
		_ = s.draft.Fail(msg)
		c.logger.Warn("booking submission failed", "draft_id", id, "venue_id", sub.VenueID, "error", callErr)
		return s.view(), nil
	}

	conf, err := s.draft.Confirm(receipt)
	if err != nil {
		return s.view(), errs.Wrap(err, "failed to confirm draft")
	}
	s.markStale()
	c.logger.Info("booking confirmed",
		"draft_id", id,
		"venue_id", conf.VenueID,
		"booking_id", conf.BookingID,
		"updated", conf.Updated,
		"total_cents", conf.Total.Cents(),
	)
	return s.view(), nil
}

func (c *bookingCommandsImpl) Reset(ctx context.Context, id uuid.UUID) (*DraftView, error) {
	return c.mutate(ctx, id, func(s *session) error {
		return classifyDraftErr(c.factory.Reset(s.draft, s.venue))
	})
}

func (c *bookingCommandsImpl) Discard(_ context.Context, id uuid.UUID) error {
	s, ok := c.store.get(id)
	if !ok {
		return errs.ErrDraftNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.Status() == reservation.StatusSubmitting {
		return errs.Mark(reservation.ErrDraftFrozen, errs.ErrDraftConflict)
	}
	c.store.remove(id)
	c.logger.Info("draft discarded", "draft_id", id)
	return nil
}

func (c *bookingCommandsImpl) withSession(ctx context.Context, id uuid.UUID, fn func(*session) error) (*DraftView, error) {
	s, ok := c.store.get(id)
	if !ok {
		return nil, errs.ErrDraftNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.refreshIfStale(ctx, s)
	err := fn(s)
	return s.view(), err
}

// mutate is withSession for operations that change the draft. The repaired
// flag only describes the SelectDates call that set it, so it is dropped
// before fn runs.
func (c *bookingCommandsImpl) mutate(ctx context.Context, id uuid.UUID, fn func(*session) error) (*DraftView, error) {
	return c.withSession(ctx, id, func(s *session) error {
		s.adjusted = false
		return fn(s)
	})
}

// refreshIfStale re-fetches the venue after a confirmed submission so the new
// booking becomes part of the conflict set. A failed fetch leaves the session
// stale for the next access. Callers hold s.mu.
func (c *bookingCommandsImpl) refreshIfStale(ctx context.Context, s *session) {
	if !s.stale || s.draft.Status() == reservation.StatusSubmitting {
		return
	}
	v, err := c.venues.FetchVenue(ctx, s.venue.ID())
	if err != nil {
		c.logger.Warn("venue refresh failed", "draft_id", s.id, "venue_id", s.venue.ID(), "error", err)
		return
	}
	if err := c.factory.Refresh(s.draft, v); err != nil {
		c.logger.Warn("draft rebase failed", "draft_id", s.id, "error", err)
		return
	}
	s.venue = v
	s.stale = false
}

func (c *bookingCommandsImpl) send(ctx context.Context, sub reservation.Submission) (receipt reservation.Receipt, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.Newf("booking gateway panicked: %v", r)
		}
	}()

	if sub.Mode == reservation.ModeUpdate {
		return c.bookings.UpdateBooking(ctx, sub)
	}
	return c.bookings.CreateBooking(ctx, sub)
}

func (c *bookingCommandsImpl) fetchVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	v, err := c.venues.FetchVenue(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVenueNotFound)
		}
		return nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}
	return v, nil
}

func failureMessage(err error) string {
	var m userMessenger
	if errors.As(err, &m) && m.UserMessage() != "" {
		return m.UserMessage()
	}
	return reservation.GenericFailureMessage
}

func classifyDraftErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, reservation.ErrGuestsOutOfRange),
		errors.Is(err, reservation.ErrNoAvailability),
		errors.Is(err, reservation.ErrDatesUnavailable):
		return errs.Mark(err, errs.ErrValidation)
	case errors.Is(err, reservation.ErrInvalidTransition),
		errors.Is(err, reservation.ErrDraftFrozen):
		return errs.Mark(err, errs.ErrDraftConflict)
	default:
		return err
	}
}
