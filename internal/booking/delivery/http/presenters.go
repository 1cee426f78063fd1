package http

import (
	"time"

	"schedula/internal/booking"
)

type createReq struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
}

func (req createReq) toInput() booking.CreateInput {
	return booking.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	}
}

type updateReq struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
}

func (req updateReq) toInput(id string) booking.UpdateInput {
	return booking.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	}
}

type bookingResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	ClientName  string    `json:"clientName,omitempty"`
	ClientEmail string    `json:"clientEmail,omitempty"`
	Status      string    `json:"status"`
}

func newBookingResp(b booking.Booking) bookingResp {
	return bookingResp{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Category:    b.Category,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		Status:      b.Status,
	}
}

type listResp struct {
	Bookings []bookingResp `json:"bookings"`
	Total    int           `json:"total"`
}

func newListResp(bookings []booking.Booking) listResp {
	out := make([]bookingResp, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, newBookingResp(b))
	}
	return listResp{Bookings: out, Total: len(out)}
}
