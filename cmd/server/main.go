package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Freeeeeet/eduschedule/internal/app"
	"github.com/Freeeeeet/eduschedule/internal/config"
	"github.com/Freeeeeet/eduschedule/internal/controller"
	"github.com/Freeeeeet/eduschedule/internal/repository"
	"github.com/Freeeeeet/eduschedule/internal/schedule"
	"github.com/Freeeeeet/eduschedule/internal/service"
	"github.com/Freeeeeet/eduschedule/internal/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting eduschedule server",
		zap.String("environment", cfg.Environment),
		zap.String("addr", cfg.Addr),
	)

	// Источник случайной доступности слотов студенческой сетки
	seed := time.Now().UnixNano()
	if cfg.RandomSeed != "" {
		parsed, err := strconv.ParseInt(cfg.RandomSeed, 10, 64)
		if err != nil {
			log.Fatalf("Invalid RANDOM_SEED: %v", err)
		}
		seed = parsed
	}
	availability := schedule.NewRandomSource(seed)

	// Хранилища демонстрационных данных
	teacherRepo := repository.NewTeacherRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Сессии и сервисы
	sessions := session.NewManager()
	userService := service.NewUserService(sessions, logger)
	bookingService := service.NewBookingService(teacherRepo, availability, logger)
	teacherService := service.NewTeacherService(teacherRepo, appointmentRepo, logger)
	scheduleService := service.NewScheduleService(logger)

	ctrl := controller.NewController(
		userService,
		bookingService,
		teacherService,
		scheduleService,
		sessions,
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	ctrl.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		err := e.Start(cfg.Addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			// Не удалось слушать порт: останавливаемся, не дожидаясь сигнала
			logger.Error("Failed to start HTTP server", zap.Error(err))
			stop()
		}
	}()

	logger.Info("Server started", zap.String("addr", cfg.Addr))

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down server", zap.Error(err))
	}
}
