package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roombook/backend/config"
	"roombook/backend/internal/api/handler"
	"roombook/backend/internal/api/middleware"
	"roombook/backend/pkg/jwt"
	"roombook/backend/pkg/redis"
)

// Setup builds the Gin engine and wires the routes.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (public); credential endpoints rate-limited
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Signup)
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// authenticated routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			bookings := authorized.Group("/bookings")
			{
				bookings.GET("", h.Booking.ListBookings)
				bookings.POST("", h.Booking.CreateBooking)
				bookings.DELETE("/:id", h.Booking.DeleteBooking)
			}

			calendar := authorized.Group("/calendar")
			{
				calendar.GET("", h.Calendar.GetCalendar)
				calendar.POST("/preview", h.Calendar.PreviewCalendar)
			}

			export := authorized.Group("/export")
			{
				export.GET("/schedule", h.Export.ExportSchedule)
				export.GET("/calendar.ics", h.Export.ExportICS)
			}
		}
	}

	return r
}
