package dto

// ── booking module DTOs ──

// CreateBookingRequest booking submission from the form.
// Room is accepted but overridden with the configured room; day and the
// two boundaries are validated against the calendar catalogs in the
// service layer.
type CreateBookingRequest struct {
	Professor  string `json:"professor"  binding:"required,min=2,max=100"`
	Department string `json:"department" binding:"required,min=2,max=100"`
	School     string `json:"school"     binding:"required,min=2,max=100"`
	Room       string `json:"room"       binding:"omitempty,max=50"`
	Day        string `json:"day"        binding:"required"`
	StartTime  string `json:"startTime"  binding:"required"`
	EndTime    string `json:"endTime"    binding:"required"`
}

// BookingResponse one booking on the wire.
// Field names match what the calendar client consumes.
type BookingResponse struct {
	ID         string `json:"_id"`
	UserID     string `json:"userId"`
	Professor  string `json:"professor"`
	Department string `json:"department"`
	School     string `json:"school"`
	Room       string `json:"room"`
	Day        string `json:"day"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	CreatedAt  string `json:"created_at"`
}

// BookingListResponse the wrapped list form.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}
