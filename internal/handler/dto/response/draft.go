package response

import (
	"time"

	"venue-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DraftResponse struct {
	ID           uuid.UUID             `json:"id"`
	VenueID      string                `json:"venueId"`
	VenueName    string                `json:"venueName"`
	Mode         string                `json:"mode"`
	BookingID    *string               `json:"bookingId,omitempty"`
	Status       string                `json:"status"`
	Available    bool                  `json:"available"`
	DateFrom     *time.Time            `json:"dateFrom,omitempty"`
	DateTo       *time.Time            `json:"dateTo,omitempty"`
	Adjusted     bool                  `json:"adjusted"`
	Guests       int                   `json:"guests"`
	MaxGuests    int                   `json:"maxGuests"`
	Nights       int                   `json:"nights"`
	NightlyCents int64                 `json:"nightlyCents"`
	TotalCents   int64                 `json:"totalCents"`
	LastError    *string               `json:"lastError,omitempty"`
	Confirmation *ConfirmationResponse `json:"confirmation,omitempty"`
}

type ConfirmationResponse struct {
	BookingID  string    `json:"bookingId"`
	VenueID    string    `json:"venueId"`
	VenueName  string    `json:"venueName"`
	DateFrom   time.Time `json:"dateFrom"`
	DateTo     time.Time `json:"dateTo"`
	Guests     int       `json:"guests"`
	Nights     int       `json:"nights"`
	TotalCents int64     `json:"totalCents"`
	Updated    bool      `json:"updated"`
}

func FromDraftView(v *commands.DraftView) (*DraftResponse, error) {
	var resp DraftResponse
	if err := copier.CopyWithOption(&resp, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &resp, nil
}
