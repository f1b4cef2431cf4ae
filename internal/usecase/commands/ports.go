package commands

import (
	"context"

	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/venue"
)

//go:generate mockgen -destination=../../../tests/mock/commands/ports.go -package=commandsmock venue-booking/internal/usecase/commands BookingGateway,VenueSource

// VenueSource reads venues, with their bookings, from the external data layer.
type VenueSource interface {
	FetchVenue(ctx context.Context, id string) (*venue.Venue, error)
}

// BookingGateway issues the external create and update calls. Both either
// return the effective booking or an error.
type BookingGateway interface {
	CreateBooking(ctx context.Context, sub reservation.Submission) (reservation.Receipt, error)
	UpdateBooking(ctx context.Context, sub reservation.Submission) (reservation.Receipt, error)
}

// userMessenger is implemented by gateway errors that carry server-provided
// text fit for display.
type userMessenger interface {
	UserMessage() string
}
