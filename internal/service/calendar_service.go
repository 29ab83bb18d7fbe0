package service

import (
	"context"

	"go.uber.org/zap"

	"roombook/backend/config"
	"roombook/backend/internal/dto"
	"roombook/backend/internal/model"
	"roombook/backend/internal/repository"
	"roombook/backend/internal/schedule"
)

// CalendarService drives the layout engine: the stored week rendered for a
// viewer, and a stateless preview of an arbitrary feed.
type CalendarService interface {
	View(ctx context.Context, req *dto.CalendarViewRequest, sess schedule.Session) (*dto.CalendarViewResponse, error)
	Preview(req *dto.CalendarPreviewRequest, sess schedule.Session) *dto.CalendarViewResponse
}

type calendarService struct {
	cfg    *config.Config
	repo   *repository.Repository
	engine *schedule.Engine
	logger *zap.Logger
}

// NewCalendarService creates a CalendarService.
func NewCalendarService(cfg *config.Config, repo *repository.Repository, index *schedule.Index, logger *zap.Logger) CalendarService {
	return &calendarService{
		cfg:    cfg,
		repo:   repo,
		engine: schedule.NewEngine(index),
		logger: logger,
	}
}

// ────────────────────── View ──────────────────────

func (s *calendarService) View(ctx context.Context, req *dto.CalendarViewRequest, sess schedule.Session) (*dto.CalendarViewResponse, error) {
	bookings, err := s.repo.Booking.List(ctx, s.cfg.Calendar.Room)
	if err != nil {
		s.logger.Error("list bookings failed", zap.Error(err))
		return nil, err
	}

	feed := make(schedule.Feed, 0, len(bookings))
	for i := range bookings {
		feed = append(feed, toScheduleBooking(&bookings[i]))
	}

	return s.render(feed, sess, req.Width, req.Active), nil
}

// ────────────────────── Preview ──────────────────────

// Preview lays out a caller-supplied feed without touching storage.
// Corrupt records are dropped by the engine; a preview never fails.
func (s *calendarService) Preview(req *dto.CalendarPreviewRequest, sess schedule.Session) *dto.CalendarViewResponse {
	return s.render(req.Bookings, sess, req.Width, "")
}

// ── helpers ──

func (s *calendarService) render(feed schedule.Feed, sess schedule.Session, width float64, activeID string) *dto.CalendarViewResponse {
	cal := s.cfg.Calendar

	totalWidth := width
	if totalWidth <= 0 {
		totalWidth = cal.TotalWidth
	}

	index := s.engine.Index()
	resp := &dto.CalendarViewResponse{
		Slots: index.Slots(),
		Days:  index.Days(),
	}

	mode := schedule.ModeForWidth(totalWidth, cal.MobileBreakpoint)
	resp.Mode = mode.String()

	if mode == schedule.ModeList {
		view := s.engine.List(feed, sess)
		resp.Items = make([]dto.ListItemResponse, 0, len(view.Items))
		for _, it := range view.Items {
			resp.Items = append(resp.Items, dto.ListItemResponse{
				Booking:    fromScheduleBooking(it.Booking),
				Owned:      it.Owned,
				ShowDelete: it.ShowDelete,
			})
		}
		return resp
	}

	metrics := schedule.Metrics{
		RowHeight:    cal.RowHeight,
		TimeColWidth: cal.TimeColWidth,
		TotalWidth:   totalWidth,
	}

	view := s.engine.Grid(feed, sess, metrics, activeID)
	resp.Blocks = make([]dto.BlockResponse, 0, len(view.Blocks))
	for _, b := range view.Blocks {
		resp.Blocks = append(resp.Blocks, dto.BlockResponse{
			Booking:    fromScheduleBooking(b.Booking),
			Top:        b.Top,
			Height:     b.Height,
			Left:       b.Left,
			Width:      b.Width,
			Owned:      b.Owned,
			ShowDelete: b.ShowDelete,
		})
	}
	return resp
}

func toScheduleBooking(b *model.Booking) schedule.Booking {
	return schedule.Booking{
		ID:         b.BookingID,
		Owner:      schedule.UserRef(b.UserID),
		Professor:  b.Professor,
		Department: b.Department,
		School:     b.School,
		Room:       b.Room,
		Day:        b.Day,
		Start:      b.StartTime,
		End:        b.EndTime,
	}
}

func fromScheduleBooking(b schedule.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:         b.ID,
		UserID:     string(b.Owner),
		Professor:  b.Professor,
		Department: b.Department,
		School:     b.School,
		Room:       b.Room,
		Day:        b.Day,
		StartTime:  b.Start,
		EndTime:    b.End,
	}
}
