package request

import (
	"strings"
	"time"
)

type StartDraftRequest struct {
	VenueID   string  `json:"venueId" binding:"required"`
	BookingID *string `json:"bookingId,omitempty"`
}

// GetBookingID returns the trimmed booking id, or nil for a new booking.
func (r StartDraftRequest) GetBookingID() *string {
	if r.BookingID == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.BookingID)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type SelectDatesRequest struct {
	DateFrom time.Time `json:"dateFrom" binding:"required"`
	DateTo   time.Time `json:"dateTo" binding:"required"`
}

// Guests is a pointer so zero reaches the draft and is reported with the
// draft's own message instead of a binding error.
type SelectGuestsRequest struct {
	Guests *int `json:"guests" binding:"required"`
}

type QuoteQuery struct {
	DateFrom time.Time `form:"dateFrom" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	DateTo   time.Time `form:"dateTo" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	Guests   int       `form:"guests" binding:"required,min=1"`
}

type AvailabilityQuery struct {
	ExcludeBookingID string `form:"excludeBookingId"`
}

func (q AvailabilityQuery) GetExcludeBookingID() *string {
	trimmed := strings.TrimSpace(q.ExcludeBookingID)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
