package dto

import "roombook/backend/internal/schedule"

// ── calendar module DTOs ──

// CalendarViewRequest query parameters of the calendar view.
// Width is the client viewport width; it selects grid vs list mode and, in
// grid mode, the canvas the blocks are positioned against. Active is the
// id of the last-clicked booking, if any.
type CalendarViewRequest struct {
	Width  float64 `form:"width"  binding:"omitempty,gt=0"`
	Active string  `form:"active"`
}

// CalendarPreviewRequest a raw booking feed to lay out statelessly.
// The feed tolerates both wire shapes (bare array, wrapped object) and
// both owner-reference forms.
type CalendarPreviewRequest struct {
	Width    float64       `json:"width"    binding:"omitempty,gt=0"`
	Bookings schedule.Feed `json:"bookings" binding:"required"`
}

// BlockResponse one positioned booking block in grid mode.
type BlockResponse struct {
	Booking    BookingResponse `json:"booking"`
	Top        float64         `json:"top"`
	Height     float64         `json:"height"`
	Left       float64         `json:"left"`
	Width      float64         `json:"width"`
	Owned      bool            `json:"owned"`
	ShowDelete bool            `json:"show_delete"`
}

// ListItemResponse one booking entry in list mode.
type ListItemResponse struct {
	Booking    BookingResponse `json:"booking"`
	Owned      bool            `json:"owned"`
	ShowDelete bool            `json:"show_delete"`
}

// CalendarViewResponse the rendered week in whichever mode applies.
// The slot and day catalogs ride along so the client can draw the frame
// without a second request.
type CalendarViewResponse struct {
	Mode   string             `json:"mode"` // "grid" | "list"
	Slots  []string           `json:"slots"`
	Days   []schedule.Day     `json:"days"`
	Blocks []BlockResponse    `json:"blocks,omitempty"`
	Items  []ListItemResponse `json:"items,omitempty"`
}
