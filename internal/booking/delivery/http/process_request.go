package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"schedula/internal/booking"
)

var (
	errInvalidBody  = errors.New("invalid request body")
	errInvalidMonth = errors.New("month must be formatted as YYYY-MM")
	errInvalidRange = errors.New("from/to must be RFC3339 timestamps")
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "booking http: bad create body: %v", err)
		return createReq{}, errInvalidBody
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "booking http: bad update body: %v", err)
		return updateReq{}, errInvalidBody
	}
	return req, nil
}

// processListReq reads either ?month=YYYY-MM (whole calendar month) or an
// explicit ?from/?to RFC3339 pair. With neither, the range is unbounded.
func (h *handler) processListReq(c *gin.Context) (booking.ListInput, error) {
	if month := c.Query("month"); month != "" {
		start, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			return booking.ListInput{}, errInvalidMonth
		}
		return booking.ListInput{
			From: start,
			To:   start.AddDate(0, 1, 0).Add(-time.Second),
		}, nil
	}

	input := booking.ListInput{
		From: time.Time{},
		To:   time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return booking.ListInput{}, errInvalidRange
		}
		input.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return booking.ListInput{}, errInvalidRange
		}
		input.To = t
	}
	return input, nil
}

func (h *handler) processSearchReq(c *gin.Context) (booking.SearchInput, error) {
	input := booking.SearchInput{Query: c.Query("q")}

	if from := c.Query("startDate"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return booking.SearchInput{}, errInvalidRange
		}
		input.From = &t
	}
	if to := c.Query("endDate"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return booking.SearchInput{}, errInvalidRange
		}
		input.To = &t
	}
	return input, nil
}
