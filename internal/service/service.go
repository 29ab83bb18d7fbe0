package service

import (
	"go.uber.org/zap"

	"roombook/backend/config"
	"roombook/backend/internal/repository"
	"roombook/backend/internal/schedule"
	"roombook/backend/pkg/jwt"
	"roombook/backend/pkg/redis"
)

// Service aggregates all business-logic interfaces.
type Service struct {
	Auth     AuthService
	Booking  BookingService
	Calendar CalendarService
	Export   ExportService
}

// NewService creates the service aggregate. The calendar coordinate index
// is built once here and shared: the catalogs are immutable for the
// process lifetime.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	index := schedule.DefaultIndex()

	return &Service{
		Auth:     NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Booking:  NewBookingService(cfg, repo, index, logger),
		Calendar: NewCalendarService(cfg, repo, index, logger),
		Export:   NewExportService(cfg, repo, index, logger),
	}
}
