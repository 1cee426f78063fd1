package http

import (
	"github.com/gin-gonic/gin"

	"schedula/pkg/response"
)

// @Summary Create a booking
// @Description Creates a booking after checking for time-slot conflicts
// @Tags Booking
// @Accept json
// @Produce json
// @Param booking body createReq true "Booking"
// @Success 201 {object} bookingResp
// @Failure 400 {object} response.Resp "Invalid request body"
// @Failure 409 {object} response.Resp "Time slot conflict"
// @Router /api/v1/bookings [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, errInvalidBody)
		return
	}

	b, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "booking http: create failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newBookingResp(b))
}

// @Summary List bookings
// @Description Lists bookings in a time range, newest range first
// @Tags Booking
// @Produce json
// @Param month query string false "Calendar month (YYYY-MM)"
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp "Invalid range"
// @Router /api/v1/bookings [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "booking http: list failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(bookings))
}

// @Summary Get one booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} bookingResp
// @Failure 404 {object} response.Resp "Booking not found"
// @Router /api/v1/bookings/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	b, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "booking http: detail failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(b))
}

// @Summary Update a booking
// @Description Updates a booking, re-checking conflicts against other bookings
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param booking body updateReq true "Booking"
// @Success 200 {object} bookingResp
// @Failure 404 {object} response.Resp "Booking not found"
// @Failure 409 {object} response.Resp "Time slot conflict"
// @Router /api/v1/bookings/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, errInvalidBody)
		return
	}

	b, err := h.uc.Update(ctx, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "booking http: update failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(b))
}

// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp "Booking not found"
// @Router /api/v1/bookings/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "booking http: delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary Search bookings
// @Description Full-text search over title, description, category and client name
// @Tags Booking
// @Produce json
// @Param q query string true "Search terms"
// @Param startDate query string false "Range start (RFC3339)"
// @Param endDate query string false "Range end (RFC3339)"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp "Empty query"
// @Router /api/v1/bookings/search [get]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := h.uc.Search(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "booking http: search failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(bookings))
}
