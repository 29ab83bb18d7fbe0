package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"roombook/backend/config"
	"roombook/backend/internal/dto"
	"roombook/backend/internal/model"
	"roombook/backend/internal/repository"
	"roombook/backend/internal/schedule"
)

// ── booking module business errors ──

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotOwner        = errors.New("booking belongs to another user")
	ErrUnknownDay      = errors.New("day is not in the booking week")
	ErrUnknownSlot     = errors.New("time is not a valid slot boundary")
	ErrInvalidInterval = errors.New("end time must come after start time")
	ErrBookingConflict = errors.New("room is already booked for that time")
)

// BookingService booking business logic.
//
// Create is where gesture proposals finally get validated: the selection
// state machine emits intervals verbatim, including inverted ones, and
// this is the layer that rejects them.
type BookingService interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest, callerID string) (*dto.BookingResponse, error)
	List(ctx context.Context) (*dto.BookingListResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type bookingService struct {
	cfg    *config.Config
	repo   *repository.Repository
	index  *schedule.Index
	logger *zap.Logger
}

// NewBookingService creates a BookingService.
func NewBookingService(cfg *config.Config, repo *repository.Repository, index *schedule.Index, logger *zap.Logger) BookingService {
	return &bookingService{cfg: cfg, repo: repo, index: index, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest, callerID string) (*dto.BookingResponse, error) {
	if s.index.DayPosition(req.Day) < 0 {
		return nil, ErrUnknownDay
	}

	start := s.index.SlotPosition(req.StartTime)
	end := s.index.SlotPosition(req.EndTime)
	if start < 0 || end < 0 {
		return nil, ErrUnknownSlot
	}
	if end <= start {
		return nil, ErrInvalidInterval
	}

	room := s.cfg.Calendar.Room

	// overlap check against the same room and day, half-open intervals
	existing, err := s.repo.Booking.ListByDay(ctx, room, req.Day)
	if err != nil {
		s.logger.Error("list bookings for conflict check failed", zap.Error(err))
		return nil, err
	}
	for _, b := range existing {
		bStart := s.index.SlotPosition(b.StartTime)
		bEnd := s.index.SlotPosition(b.EndTime)
		if bStart < 0 || bEnd < 0 {
			continue // stale record referencing a removed boundary
		}
		if start < bEnd && bStart < end {
			return nil, ErrBookingConflict
		}
	}

	booking := &model.Booking{
		UserID:     callerID,
		Professor:  req.Professor,
		Department: req.Department,
		School:     req.School,
		Room:       room,
		Day:        req.Day,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	booking.CreatedBy = &callerID
	booking.UpdatedBy = &callerID

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.logger.Error("create booking failed", zap.Error(err))
		return nil, err
	}

	return toBookingResponse(booking), nil
}

// ────────────────────── List ──────────────────────

func (s *bookingService) List(ctx context.Context) (*dto.BookingListResponse, error) {
	bookings, err := s.repo.Booking.List(ctx, s.cfg.Calendar.Room)
	if err != nil {
		s.logger.Error("list bookings failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *toBookingResponse(&bookings[i]))
	}

	return &dto.BookingListResponse{Bookings: result}, nil
}

// ────────────────────── Delete ──────────────────────

func (s *bookingService) Delete(ctx context.Context, id string, callerID string) error {
	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("lookup booking failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if booking.UserID != callerID {
		return ErrNotOwner
	}

	if err := s.repo.Booking.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("delete booking failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

func toBookingResponse(b *model.Booking) *dto.BookingResponse {
	return &dto.BookingResponse{
		ID:         b.BookingID,
		UserID:     b.UserID,
		Professor:  b.Professor,
		Department: b.Department,
		School:     b.School,
		Room:       b.Room,
		Day:        b.Day,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		CreatedAt:  b.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
