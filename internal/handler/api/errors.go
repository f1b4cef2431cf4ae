package api

import (
	"net/http"

	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/ptr"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase markers to HTTP responses. detail is
// attached for validation and state errors so clients can re-render.
func abortWithUsecaseError(c *gin.Context, err error, detail any, inlineMsg *string) {
	switch {
	case errs.Is(err, errs.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
	case errs.Is(err, errs.ErrVenueNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found for this venue", nil)
	case errs.Is(err, errs.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
	case errs.Is(err, errs.ErrValidation):
		msg := ptr.Coalesce(inlineMsg, "")
		if msg == "" {
			msg = "Validation failed"
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msg, detail)
	case errs.Is(err, errs.ErrDraftConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Draft cannot do that in its current state", detail)
	case errs.Is(err, errs.ErrUpstreamUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Venue service unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
