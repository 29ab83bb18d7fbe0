package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"roombook/backend/config"
	"roombook/backend/internal/model"
	"roombook/backend/internal/repository"
	"roombook/backend/internal/schedule"
)

// ── export module business errors ──

var (
	ErrExportNoBookings   = errors.New("no bookings to export")
	ErrExportGenerateFail = errors.New("generate export file failed")
)

const dayDateLayout = "2 Jan 2006" // matches the day catalog, e.g. "12 Jan 2026"

// ExportService export business logic.
//
// Two formats: the weekly grid as an Excel workbook, and the booking set
// as an iCalendar feed. Both return a buffer plus a suggested filename;
// the handler sets the HTTP headers and streams it out.
type ExportService interface {
	ExportSchedule(ctx context.Context) (*bytes.Buffer, string, error)
	ExportICS(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg    *config.Config
	repo   *repository.Repository
	index  *schedule.Index
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(cfg *config.Config, repo *repository.Repository, index *schedule.Index, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, repo: repo, index: index, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportSchedule — weekly grid as Excel
// ═══════════════════════════════════════════════════════════
//
// Sheet layout mirrors the calendar grid:
//   - column A: bookable intervals ("08:00 – 09:00"), one row per interval
//   - row 1: day names with their dates
//   - cell: "professor (department)"; a booking spanning several intervals
//     fills each covered row

func (s *exportService) ExportSchedule(ctx context.Context) (*bytes.Buffer, string, error) {
	bookings, err := s.listValid(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(bookings) == 0 {
		return nil, "", ErrExportNoBookings
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Weekly Schedule"
	f.SetSheetName("Sheet1", sheet)

	slots := s.index.Slots()
	days := s.index.Days()

	// headers
	if err := f.SetCellValue(sheet, "A1", s.cfg.Calendar.Room); err != nil {
		return nil, "", ErrExportGenerateFail
	}
	for i, d := range days {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		label := d.Name
		if d.Date != "" {
			label = fmt.Sprintf("%s (%s)", d.Name, d.Date)
		}
		f.SetCellValue(sheet, cell, label)
	}
	for i := 0; i+1 < len(slots); i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetCellValue(sheet, cell, fmt.Sprintf("%s – %s", slots[i], slots[i+1]))
	}

	// bookings
	for _, b := range bookings {
		start := s.index.SlotPosition(b.StartTime)
		end := s.index.SlotPosition(b.EndTime)
		col := s.index.DayPosition(b.Day) + 2
		text := fmt.Sprintf("%s (%s)", b.Professor, b.Department)

		for p := start; p < end; p++ {
			cell, _ := excelize.CoordinatesToCellName(col, p+2)
			f.SetCellValue(sheet, cell, text)
		}
	}

	f.SetColWidth(sheet, "A", "A", 18)
	lastCol, _ := excelize.ColumnNumberToName(len(days) + 1)
	f.SetColWidth(sheet, "B", lastCol, 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("weekly-schedule-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportICS — booking set as an iCalendar feed
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportICS(ctx context.Context) (*bytes.Buffer, string, error) {
	bookings, err := s.listValid(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(bookings) == 0 {
		return nil, "", ErrExportNoBookings
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//roombook//Conference Room Booking//EN")

	now := time.Now()
	for _, b := range bookings {
		startAt, endAt, err := s.resolveTimes(b)
		if err != nil {
			// day entries without dates cannot be placed on a real calendar
			s.logger.Warn("skip booking in ICS export", zap.String("id", b.BookingID), zap.Error(err))
			continue
		}

		ev := cal.AddEvent(b.BookingID)
		ev.SetCreatedTime(now)
		ev.SetDtStampTime(now)
		ev.SetStartAt(startAt)
		ev.SetEndAt(endAt)
		ev.SetSummary(fmt.Sprintf("%s — %s", b.Professor, b.Room))
		ev.SetLocation(b.Room)
		ev.SetDescription(fmt.Sprintf("%s, %s", b.Department, b.School))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("bookings-%s.ics", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// ── helpers ──

// listValid fetches the room's bookings and drops records whose day or
// boundaries are no longer in the catalogs, same policy as rendering.
func (s *exportService) listValid(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.repo.Booking.List(ctx, s.cfg.Calendar.Room)
	if err != nil {
		s.logger.Error("list bookings failed", zap.Error(err))
		return nil, err
	}

	valid := bookings[:0]
	for _, b := range bookings {
		start := s.index.SlotPosition(b.StartTime)
		end := s.index.SlotPosition(b.EndTime)
		if start < 0 || end <= start || s.index.DayPosition(b.Day) < 0 {
			continue
		}
		valid = append(valid, b)
	}
	return valid, nil
}

// resolveTimes combines a booking's day date and boundary labels into
// concrete timestamps.
func (s *exportService) resolveTimes(b model.Booking) (time.Time, time.Time, error) {
	day, ok := s.index.DayByName(b.Day)
	if !ok || day.Date == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("day %q has no calendar date", b.Day)
	}

	date, err := time.ParseInLocation(dayDateLayout, day.Date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse day date %q: %w", day.Date, err)
	}

	startAt, err := atClock(date, b.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endAt, err := atClock(date, b.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startAt, endAt, nil
}

func atClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse clock %q: %w", clock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
