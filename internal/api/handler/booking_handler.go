package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"roombook/backend/internal/dto"
	"roombook/backend/internal/service"
	"roombook/backend/pkg/response"
)

// BookingHandler booking module HTTP handlers.
type BookingHandler struct {
	bookingSvc service.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// ListBookings returns every booking of the week.
// GET /api/v1/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	list, err := h.bookingSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, list)
}

// CreateBooking submits a booking.
// POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, booking)
}

// DeleteBooking removes the caller's own booking.
// DELETE /api/v1/bookings/:id
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "booking id required")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.bookingSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleBookingError maps booking business errors to responses.
func (h *BookingHandler) handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		response.NotFound(c, 12001, "booking not found")
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, 12002, "you can only delete your own bookings")
	case errors.Is(err, service.ErrUnknownDay):
		response.BadRequest(c, 12003, "day is not in the booking week")
	case errors.Is(err, service.ErrUnknownSlot):
		response.BadRequest(c, 12004, "time is not a valid slot boundary")
	case errors.Is(err, service.ErrInvalidInterval):
		response.BadRequest(c, 12005, "end time must come after start time")
	case errors.Is(err, service.ErrBookingConflict):
		response.Conflict(c, 12006, "room is already booked for that time")
	default:
		response.InternalError(c)
	}
}
