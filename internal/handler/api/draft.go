package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DraftHandler struct {
	commands commands.BookingCommands
}

func NewDraftHandler(commands commands.BookingCommands) *DraftHandler {
	return &DraftHandler{
		commands: commands,
	}
}

// @Summary Start draft
// @Description Start a reservation draft for a venue, or an edit draft when bookingId is given
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body reqdto.StartDraftRequest true "Draft request"
// @Success 201 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/drafts [post]
func (h *DraftHandler) Start(c *gin.Context) {
	var req reqdto.StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ctx := c.Request.Context()
	var (
		view *commands.DraftView
		err  error
	)
	if bookingID := req.GetBookingID(); bookingID != nil {
		view, err = h.commands.StartEdit(ctx, req.VenueID, *bookingID)
	} else {
		view, err = h.commands.Start(ctx, req.VenueID)
	}
	if err != nil {
		abortWithUsecaseError(c, err, nil, nil)
		return
	}

	c.Header("Location", "/api/drafts/"+view.ID.String())
	h.render(c, http.StatusCreated, view)
}

// @Summary Get draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /api/drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	h.apply(c, h.commands.Get)
}

// @Summary Select dates
// @Description Blocked ranges are moved forward to the next free window of the same length
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.SelectDatesRequest true "Dates"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/drafts/{id}/dates [put]
func (h *DraftHandler) SelectDates(c *gin.Context) {
	var req reqdto.SelectDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	h.apply(c, func(ctx context.Context, id uuid.UUID) (*commands.DraftView, error) {
		return h.commands.SelectDates(ctx, id, req.DateFrom, req.DateTo)
	})
}

// @Summary Select guests
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.SelectGuestsRequest true "Guests"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/drafts/{id}/guests [put]
func (h *DraftHandler) SelectGuests(c *gin.Context) {
	var req reqdto.SelectGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	h.apply(c, func(ctx context.Context, id uuid.UUID) (*commands.DraftView, error) {
		return h.commands.SelectGuests(ctx, id, *req.Guests)
	})
}

// @Summary Open summary
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Router /api/drafts/{id}/summary [post]
func (h *DraftHandler) OpenSummary(c *gin.Context) {
	h.apply(c, h.commands.OpenSummary)
}

// @Summary Close summary
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Router /api/drafts/{id}/summary [delete]
func (h *DraftHandler) CloseSummary(c *gin.Context) {
	h.apply(c, h.commands.CloseSummary)
}

// @Summary Submit draft
// @Description Creates or updates the booking. Failures are reported in the draft status, not as HTTP errors
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 422 {object} httperr.Response
// @Router /api/drafts/{id}/submit [post]
func (h *DraftHandler) Submit(c *gin.Context) {
	h.apply(c, h.commands.Submit)
}

// @Summary Book again
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 409 {object} httperr.Response
// @Router /api/drafts/{id}/reset [post]
func (h *DraftHandler) Reset(c *gin.Context) {
	h.apply(c, h.commands.Reset)
}

// @Summary Discard draft
// @Tags drafts
// @Param id path string true "Draft ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/drafts/{id} [delete]
func (h *DraftHandler) Discard(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}
	if err := h.commands.Discard(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, nil, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) apply(c *gin.Context, op func(context.Context, uuid.UUID) (*commands.DraftView, error)) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	view, err := op(c.Request.Context(), id)
	if err != nil {
		var detail any
		var inline *string
		if view != nil {
			inline = view.LastError
			if resp, mapErr := resdto.FromDraftView(view); mapErr == nil {
				detail = resp
			}
		}
		abortWithUsecaseError(c, err, detail, inline)
		return
	}

	h.render(c, http.StatusOK, view)
}

func (h *DraftHandler) render(c *gin.Context, status int, view *commands.DraftView) {
	resp, err := resdto.FromDraftView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resp)
}

func (h *DraftHandler) draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("invalid draft id"), "Invalid draft ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
