package response

import (
	"time"

	"venue-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type IntervalResponse struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type AvailabilityResponse struct {
	VenueID       string             `json:"venueId"`
	VenueName     string             `json:"venueName"`
	MaxGuests     int                `json:"maxGuests"`
	NightlyCents  int64              `json:"nightlyCents"`
	Available     bool               `json:"available"`
	NextAvailable *IntervalResponse  `json:"nextAvailable"`
	Blocked       []IntervalResponse `json:"blocked"`
}

type QuoteResponse struct {
	VenueID      string    `json:"venueId"`
	DateFrom     time.Time `json:"dateFrom"`
	DateTo       time.Time `json:"dateTo"`
	Nights       int       `json:"nights"`
	Guests       int       `json:"guests"`
	NightlyCents int64     `json:"nightlyCents"`
	TotalCents   int64     `json:"totalCents"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	var resp AvailabilityResponse
	if err := copier.CopyWithOption(&resp, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	resp.Available = v.NextAvailable != nil
	if resp.Blocked == nil {
		resp.Blocked = []IntervalResponse{}
	}
	return &resp, nil
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	// Identical scalar fields; copier cannot fail here.
	_ = copier.Copy(&resp, v)
	return &resp
}
