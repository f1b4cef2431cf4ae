package venueapi

import (
	"fmt"
	"strings"
)

type venueEnvelope struct {
	Data venuePayload `json:"data"`
}

type venuePayload struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Price     float64          `json:"price"`
	MaxGuests int              `json:"maxGuests"`
	Bookings  []bookingPayload `json:"bookings"`
}

type bookingPayload struct {
	ID       string `json:"id"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
}

type bookingEnvelope struct {
	Data bookingPayload `json:"data"`
}

type createBookingRequest struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
	VenueID  string `json:"venueId"`
}

type updateBookingRequest struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
}

type errorEnvelope struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	Message string `json:"message"`
}

func (e errorEnvelope) message() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		if m := strings.TrimSpace(item.Message); m != "" {
			msgs = append(msgs, m)
		}
	}
	if len(msgs) > 0 {
		return strings.Join(msgs, "; ")
	}
	return strings.TrimSpace(e.Message)
}

// APIError is a non-success response. Message is the server-provided text
// and may be empty.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("venue api responded with status %d", e.Status)
	}
	return fmt.Sprintf("venue api responded with status %d: %s", e.Status, e.Message)
}

// UserMessage is the text shown to the user when a submission fails.
func (e *APIError) UserMessage() string {
	return e.Message
}
