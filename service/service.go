package service

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/yusufakin/eticaret/internal/audit"
	"github.com/yusufakin/eticaret/internal/email"
	"github.com/yusufakin/eticaret/internal/handlers"
	"github.com/yusufakin/eticaret/internal/reminder"
	"github.com/yusufakin/eticaret/storage"
)

type Service struct {
	storage      *storage.Storage
	config       *Config
	adminHandler *handlers.AdminHandler
}

func New(store *storage.Storage, config *Config, auditSvc *audit.Service, composer *reminder.Composer, renderer *email.Renderer) *Service {
	return &Service{
		storage:      store,
		config:       config,
		adminHandler: handlers.NewAdminHandler(store.Queries, auditSvc, composer, renderer),
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.handleHealth)

	admin := e.Group("/admin")
	admin.Use(middleware.BasicAuth(func(username, password string, c echo.Context) (bool, error) {
		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.config.Admin.Username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.config.Admin.Password)) == 1
		return userOK && passOK, nil
	}))
	admin.GET("/emails/reminder/preview/:id", s.adminHandler.HandleReminderPreview)
	admin.GET("/audit/events", s.adminHandler.HandleAuditEvents)
}

func (s *Service) handleHealth(c echo.Context) error {
	if err := s.storage.DB().PingContext(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
