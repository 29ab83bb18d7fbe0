package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"roombook/backend/config"
	"roombook/backend/internal/dto"
	"roombook/backend/internal/model"
	"roombook/backend/internal/repository"
	"roombook/backend/internal/schedule"
)

// ── test helpers ──

func testCalendarConfig() *config.Config {
	return &config.Config{
		Calendar: config.CalendarConfig{
			Room:             "Room 101",
			RowHeight:        60,
			TimeColWidth:     90,
			TotalWidth:       1140,
			MobileBreakpoint: 768,
		},
	}
}

func setupTestBookingService() (BookingService, *mockBookingRepo) {
	bookingRepo := newMockBookingRepo()
	repo := &repository.Repository{
		User:    newMockUserRepo(),
		Booking: bookingRepo,
	}
	svc := NewBookingService(testCalendarConfig(), repo, schedule.DefaultIndex(), zap.NewNop())
	return svc, bookingRepo
}

func validCreateRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		Professor:  "Dr. Rao",
		Department: "CSE",
		School:     "SOE",
		Day:        "Tuesday",
		StartTime:  "09:00",
		EndTime:    "10:40",
	}
}

// ── create tests ──

func TestCreateBooking_Success(t *testing.T) {
	svc, repo := setupTestBookingService()

	result, err := svc.Create(context.Background(), validCreateRequest(), "user-1")
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if result.ID == "" {
		t.Error("expected a generated booking id")
	}
	if result.UserID != "user-1" {
		t.Errorf("expected UserID=user-1, got %s", result.UserID)
	}
	if result.Room != "Room 101" {
		t.Errorf("expected configured room, got %s", result.Room)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("expected 1 stored booking, got %d", len(repo.bookings))
	}
}

func TestCreateBooking_RoomOverridden(t *testing.T) {
	svc, _ := setupTestBookingService()

	req := validCreateRequest()
	req.Room = "Broom Closet"

	result, err := svc.Create(context.Background(), req, "user-1")
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if result.Room != "Room 101" {
		t.Errorf("client-sent room must be overridden, got %s", result.Room)
	}
}

func TestCreateBooking_UnknownDay(t *testing.T) {
	svc, _ := setupTestBookingService()

	req := validCreateRequest()
	req.Day = "Funday"

	_, err := svc.Create(context.Background(), req, "user-1")
	if !errors.Is(err, ErrUnknownDay) {
		t.Errorf("expected ErrUnknownDay, got: %v", err)
	}
}

func TestCreateBooking_UnknownSlot(t *testing.T) {
	svc, _ := setupTestBookingService()

	req := validCreateRequest()
	req.StartTime = "09:30" // not a catalog boundary

	_, err := svc.Create(context.Background(), req, "user-1")
	if !errors.Is(err, ErrUnknownSlot) {
		t.Errorf("expected ErrUnknownSlot, got: %v", err)
	}
}

func TestCreateBooking_InvertedInterval(t *testing.T) {
	svc, _ := setupTestBookingService()

	// the gesture layer emits inverted proposals verbatim; creation is
	// where they get rejected
	req := validCreateRequest()
	req.StartTime = "10:40"
	req.EndTime = "09:00"

	_, err := svc.Create(context.Background(), req, "user-1")
	if !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got: %v", err)
	}
}

func TestCreateBooking_ZeroLengthInterval(t *testing.T) {
	svc, _ := setupTestBookingService()

	req := validCreateRequest()
	req.EndTime = req.StartTime

	_, err := svc.Create(context.Background(), req, "user-1")
	if !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got: %v", err)
	}
}

func TestCreateBooking_Conflict(t *testing.T) {
	svc, _ := setupTestBookingService()

	if _, err := svc.Create(context.Background(), validCreateRequest(), "user-1"); err != nil {
		t.Fatalf("first Create should succeed: %v", err)
	}

	// 09:50–11:30 overlaps the stored 09:00–10:40
	req := validCreateRequest()
	req.StartTime = "09:50"
	req.EndTime = "11:30"

	_, err := svc.Create(context.Background(), req, "user-2")
	if !errors.Is(err, ErrBookingConflict) {
		t.Errorf("expected ErrBookingConflict, got: %v", err)
	}
}

func TestCreateBooking_AdjacentIntervalsAllowed(t *testing.T) {
	svc, _ := setupTestBookingService()

	if _, err := svc.Create(context.Background(), validCreateRequest(), "user-1"); err != nil {
		t.Fatalf("first Create should succeed: %v", err)
	}

	// 10:40–11:30 touches the stored 09:00–10:40 but does not overlap
	req := validCreateRequest()
	req.StartTime = "10:40"
	req.EndTime = "11:30"

	if _, err := svc.Create(context.Background(), req, "user-2"); err != nil {
		t.Errorf("adjacent booking should be allowed, got: %v", err)
	}
}

func TestCreateBooking_SameTimeOtherDayAllowed(t *testing.T) {
	svc, _ := setupTestBookingService()

	if _, err := svc.Create(context.Background(), validCreateRequest(), "user-1"); err != nil {
		t.Fatalf("first Create should succeed: %v", err)
	}

	req := validCreateRequest()
	req.Day = "Wednesday"

	if _, err := svc.Create(context.Background(), req, "user-2"); err != nil {
		t.Errorf("same interval on another day should be allowed, got: %v", err)
	}
}

// ── list tests ──

func TestListBookings_WrappedShape(t *testing.T) {
	svc, _ := setupTestBookingService()

	if _, err := svc.Create(context.Background(), validCreateRequest(), "user-1"); err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(result.Bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(result.Bookings))
	}
	if result.Bookings[0].Day != "Tuesday" {
		t.Errorf("expected Day=Tuesday, got %s", result.Bookings[0].Day)
	}
}

func TestListBookings_Empty(t *testing.T) {
	svc, _ := setupTestBookingService()

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(result.Bookings) != 0 {
		t.Errorf("expected empty list, got %d", len(result.Bookings))
	}
}

// ── delete tests ──

func TestDeleteBooking_Owner(t *testing.T) {
	svc, repo := setupTestBookingService()

	created, err := svc.Create(context.Background(), validCreateRequest(), "user-1")
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, "user-1"); err != nil {
		t.Fatalf("owner Delete should succeed: %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Errorf("expected booking removed, %d remain", len(repo.bookings))
	}
}

func TestDeleteBooking_NotOwner(t *testing.T) {
	svc, _ := setupTestBookingService()

	created, err := svc.Create(context.Background(), validCreateRequest(), "user-1")
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	err = svc.Delete(context.Background(), created.ID, "user-2")
	if !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got: %v", err)
	}
}

func TestDeleteBooking_NotFound(t *testing.T) {
	svc, _ := setupTestBookingService()

	err := svc.Delete(context.Background(), "missing-id", "user-1")
	if !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got: %v", err)
	}
}

func TestCreateBooking_StaleRecordSkippedInConflictCheck(t *testing.T) {
	svc, repo := setupTestBookingService()

	// a stored record referencing a boundary no longer in the catalog
	// must not block new bookings
	repo.bookings["stale"] = &model.Booking{
		BookingID: "stale",
		UserID:    "user-9",
		Room:      "Room 101",
		Day:       "Tuesday",
		StartTime: "07:00",
		EndTime:   "07:45",
	}

	if _, err := svc.Create(context.Background(), validCreateRequest(), "user-1"); err != nil {
		t.Errorf("stale record should be ignored, got: %v", err)
	}
}
