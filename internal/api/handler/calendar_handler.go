package handler

import (
	"github.com/gin-gonic/gin"

	"roombook/backend/internal/dto"
	"roombook/backend/internal/schedule"
	"roombook/backend/internal/service"
	"roombook/backend/pkg/response"
)

// CalendarHandler calendar module HTTP handlers.
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// GetCalendar returns the positioned weekly view for the caller.
// GET /api/v1/calendar?width=1280&active=<booking id>
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	var req dto.CalendarViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	sess := schedule.Session{UserID: userID, Name: GetUserName(c)}

	view, err := h.calendarSvc.View(c.Request.Context(), &req, sess)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, view)
}

// PreviewCalendar lays out a posted raw booking feed without persisting
// anything. Malformed records are dropped, never an error.
// POST /api/v1/calendar/preview
func (h *CalendarHandler) PreviewCalendar(c *gin.Context) {
	var req dto.CalendarPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	sess := schedule.Session{UserID: userID, Name: GetUserName(c)}

	response.OK(c, h.calendarSvc.Preview(&req, sess))
}
