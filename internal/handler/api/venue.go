package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	queries queries.AvailabilityQueries
}

func NewVenueHandler(queries queries.AvailabilityQueries) *VenueHandler {
	return &VenueHandler{
		queries: queries,
	}
}

// @Summary Venue availability
// @Description Blocked intervals and the next free one-night window. available=false means fully booked within the lookahead
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Param excludeBookingId query string false "Booking to leave out, when editing it"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/venues/{id}/availability [get]
func (h *VenueHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	view, err := h.queries.GetAvailability(c.Request.Context(), c.Param("id"), q.GetExcludeBookingID())
	if err != nil {
		abortWithUsecaseError(c, err, nil, nil)
		return
	}

	resp, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Price preview
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Param dateFrom query string true "Check-in (RFC 3339)"
// @Param dateTo query string true "Check-out (RFC 3339)"
// @Param guests query int true "Guests"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/venues/{id}/quote [get]
func (h *VenueHandler) Quote(c *gin.Context) {
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	view, err := h.queries.QuotePrice(c.Request.Context(), c.Param("id"), q.DateFrom, q.DateTo, q.Guests)
	if err != nil {
		abortWithUsecaseError(c, err, nil, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
