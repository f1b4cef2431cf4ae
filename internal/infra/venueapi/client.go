package venueapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/token"
)

const apiKeyHeader = "X-Noroff-API-Key"

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// Client talks to the external venue and booking REST API.
type Client struct {
	hc      *http.Client
	baseURL string
	apiKey  string
	logger  *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		hc:      &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// FetchVenue returns the venue together with its existing bookings.
func (c *Client) FetchVenue(ctx context.Context, id string) (*venue.Venue, error) {
	var env venueEnvelope
	path := "/venues/" + url.PathEscape(id) + "?_bookings=true"
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}

	v, err := toDomainVenue(env.Data)
	if err != nil {
		return nil, infra.WrapClientErr(c.logger, infra.KindDecode, "invalid venue payload", err)
	}
	return v, nil
}

func (c *Client) CreateBooking(ctx context.Context, sub reservation.Submission) (reservation.Receipt, error) {
	body := createBookingRequest{
		DateFrom: formatInstant(sub.DateFrom),
		DateTo:   formatInstant(sub.DateTo),
		Guests:   sub.Guests,
		VenueID:  sub.VenueID,
	}
	var env bookingEnvelope
	if err := c.do(ctx, http.MethodPost, "/bookings", body, &env); err != nil {
		return reservation.Receipt{}, err
	}
	return toReceipt(env.Data), nil
}

func (c *Client) UpdateBooking(ctx context.Context, sub reservation.Submission) (reservation.Receipt, error) {
	body := updateBookingRequest{
		DateFrom: formatInstant(sub.DateFrom),
		DateTo:   formatInstant(sub.DateTo),
		Guests:   sub.Guests,
	}
	var env bookingEnvelope
	path := "/bookings/" + url.PathEscape(sub.BookingID)
	if err := c.do(ctx, http.MethodPut, path, body, &env); err != nil {
		return reservation.Receipt{}, err
	}
	return toReceipt(env.Data), nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return infra.WrapClientErr(c.logger, infra.KindDecode, "failed to encode request", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return infra.WrapClientErr(c.logger, infra.KindTransport, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	if t, ok := token.AccessFrom(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return infra.WrapClientErr(c.logger, infra.KindTransport, method+" "+path+" failed", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("venue api call", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return c.classify(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return infra.WrapClientErr(c.logger, infra.KindDecode, "failed to decode response", err)
	}
	return nil
}

func (c *Client) classify(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var env errorEnvelope
	_ = json.Unmarshal(raw, &env)

	apiErr := &APIError{Status: resp.StatusCode, Message: env.message()}
	msg := method + " " + path

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapClientErr(c.logger, infra.KindNotFound, msg, apiErr)
	case resp.StatusCode >= 500:
		return infra.WrapClientErr(c.logger, infra.KindUpstream, msg, apiErr)
	default:
		return infra.WrapClientErr(c.logger, infra.KindRejected, msg, apiErr)
	}
}
