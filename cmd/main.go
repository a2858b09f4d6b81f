package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/yusufakin/eticaret/internal/audit"
	"github.com/yusufakin/eticaret/internal/email"
	"github.com/yusufakin/eticaret/internal/jobs"
	"github.com/yusufakin/eticaret/internal/reminder"
	"github.com/yusufakin/eticaret/service"
	"github.com/yusufakin/eticaret/storage"
)

func main() {
	// slog is configured in slog.go via init()

	config, err := service.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := storage.New(config.DBPath)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auditSvc := audit.NewService(store.Queries)
	composer := reminder.NewComposer(store.Queries, config.Reminder.CartURL)
	renderer := email.NewRenderer(email.DefaultStyles(), email.FileLogo{Path: config.Reminder.LogoPath})

	mailer := email.NewMailer(email.SMTPConfig{
		Host:     config.SMTP.Host,
		Port:     config.SMTP.Port,
		Login:    config.SMTP.Login,
		Password: config.SMTP.Key,
		From:     config.SMTP.From,
	})
	mailer.Start()
	defer mailer.Stop()

	gate := reminder.NewDedupGate(auditSvc)
	job := reminder.NewJob(store.Queries, auditSvc, gate, composer, renderer, mailer)

	scheduler := jobs.NewReminderScheduler(job, jobs.DefaultRunHours)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			slog.Info("request handled",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start),
				"ip", c.RealIP(),
			)

			return err
		}
	})

	svc := service.New(store, config, auditSvc, composer, renderer)
	svc.RegisterRoutes(e)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf(":%s", config.Port)
		slog.Info("cart reminder service starting",
			"port", config.Port,
			"environment", config.Environment,
			"database", config.DBPath,
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("service failed", "error", err)
		os.Exit(1)
	}
}
