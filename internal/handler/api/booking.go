package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"gearshare/internal/domain/booking"
	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/httperr"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmd commands.BookingCommands, qry queries.BookingQueries) *BookingHandler {
	return &BookingHandler{commands: cmd, queries: qry}
}

// @Summary Create a booking
// @Description The booking starts in WAITING until the item owner
// decides on it. Owners cannot book their own items.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param request body reqdto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), caller, req.ItemID, req.Start, req.End)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		case errors.Is(err, commands.ErrOwnItemBooking):
			// Surfaces as not-found so owners learn nothing extra.
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		case errors.Is(err, commands.ErrItemNotAvailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available for booking")
		case errors.Is(err, commands.ErrInvalidBookingDates):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking dates")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Approve or reject a booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param id path string true "Booking ID"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "approved parameter must be true or false")
		return
	}

	view, err := h.commands.Decide(c.Request.Context(), caller, bookingID, approved, booking.AccessOwner)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, commands.ErrBookingAccessDenied):
			// Same shape as a missing booking.
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, commands.ErrAlreadyDecided):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking is already approved")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get a booking
// @Description Visible only to the booker and the item owner.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), caller, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	h.list(c, h.queries.ListForBooker)
}

// @Summary List bookings of own items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	h.list(c, h.queries.ListForOwner)
}

func (h *BookingHandler) list(
	c *gin.Context,
	fetch func(ctx context.Context, subjectID uuid.UUID, state booking.State, p queries.Page) ([]*queries.BookingView, error),
) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	rawState := c.DefaultQuery("state", string(booking.StateAll))
	state, err := booking.ParseState(rawState)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown state: "+rawState)
		return
	}

	page, ok := parsePage(c)
	if !ok {
		return
	}

	views, err := fetch(c.Request.Context(), caller, state, page)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
