package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"roombook/backend/internal/model"
	"roombook/backend/internal/repository"
	"roombook/backend/internal/schedule"
)

// ── test helpers ──

func setupTestExportService() (ExportService, *mockBookingRepo) {
	bookingRepo := newMockBookingRepo()
	repo := &repository.Repository{
		User:    newMockUserRepo(),
		Booking: bookingRepo,
	}
	svc := NewExportService(testCalendarConfig(), repo, schedule.DefaultIndex(), zap.NewNop())
	return svc, bookingRepo
}

func seedBooking(repo *mockBookingRepo, id, day, start, end string) {
	repo.bookings[id] = &model.Booking{
		BookingID:  id,
		UserID:     "user-1",
		Professor:  "Dr. Rao",
		Department: "CSE",
		School:     "SOE",
		Room:       "Room 101",
		Day:        day,
		StartTime:  start,
		EndTime:    end,
	}
}

// ── schedule export tests ──

func TestExportSchedule_GridContents(t *testing.T) {
	svc, repo := setupTestExportService()
	seedBooking(repo, "b1", "Monday", "08:00", "09:50")

	buf, filename, err := svc.ExportSchedule(context.Background())
	if err != nil {
		t.Fatalf("ExportSchedule should succeed: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("expected .xlsx filename, got %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open generated workbook: %v", err)
	}
	defer f.Close()

	const sheet = "Weekly Schedule"

	room, _ := f.GetCellValue(sheet, "A1")
	if room != "Room 101" {
		t.Errorf("expected room header, got %q", room)
	}

	monday, _ := f.GetCellValue(sheet, "B1")
	if monday != "Monday (12 Jan 2026)" {
		t.Errorf("unexpected day header: %q", monday)
	}

	firstInterval, _ := f.GetCellValue(sheet, "A2")
	if firstInterval != "08:00 – 09:00" {
		t.Errorf("unexpected interval label: %q", firstInterval)
	}

	// a two-interval booking fills both covered rows
	for _, cell := range []string{"B2", "B3"} {
		v, _ := f.GetCellValue(sheet, cell)
		if v != "Dr. Rao (CSE)" {
			t.Errorf("cell %s: expected booking text, got %q", cell, v)
		}
	}
	empty, _ := f.GetCellValue(sheet, "B4")
	if empty != "" {
		t.Errorf("cell B4 should be empty, got %q", empty)
	}
}

func TestExportSchedule_NoBookings(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportSchedule(context.Background())
	if !errors.Is(err, ErrExportNoBookings) {
		t.Errorf("expected ErrExportNoBookings, got: %v", err)
	}
}

func TestExportSchedule_CorruptRecordsDropped(t *testing.T) {
	svc, repo := setupTestExportService()
	seedBooking(repo, "bad-day", "Caturday", "08:00", "09:00")
	seedBooking(repo, "bad-slot", "Monday", "08:15", "09:00")

	// only corrupt records stored — the export sees an empty set
	_, _, err := svc.ExportSchedule(context.Background())
	if !errors.Is(err, ErrExportNoBookings) {
		t.Errorf("expected ErrExportNoBookings, got: %v", err)
	}
}

// ── ICS export tests ──

func TestExportICS_ContainsEvents(t *testing.T) {
	svc, repo := setupTestExportService()
	seedBooking(repo, "b1", "Tuesday", "09:00", "10:40")

	buf, filename, err := svc.ExportICS(context.Background())
	if err != nil {
		t.Fatalf("ExportICS should succeed: %v", err)
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("expected .ics filename, got %s", filename)
	}

	out := buf.String()
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Error("output is not an iCalendar document")
	}
	if !strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("expected at least one VEVENT")
	}
	if !strings.Contains(out, "LOCATION:Room 101") {
		t.Error("expected the room as event location")
	}
	// Tuesday of the booking week is 13 Jan 2026; 09:00 local
	if !strings.Contains(out, "DTSTART;TZID=") && !strings.Contains(out, "DTSTART:") {
		t.Error("expected a DTSTART property")
	}
}

func TestExportICS_NoBookings(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportICS(context.Background())
	if !errors.Is(err, ErrExportNoBookings) {
		t.Errorf("expected ErrExportNoBookings, got: %v", err)
	}
}
