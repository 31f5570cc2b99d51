package main

import (
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/renewal-service/internal/api/http"
	"github.com/spec-kit/renewal-service/internal/api/http/handlers"
	"github.com/spec-kit/renewal-service/internal/auth"
	"github.com/spec-kit/renewal-service/internal/config"
	"github.com/spec-kit/renewal-service/internal/events"
	"github.com/spec-kit/renewal-service/internal/observability"
	"github.com/spec-kit/renewal-service/internal/repository"
	"github.com/spec-kit/renewal-service/internal/seed"
	"github.com/spec-kit/renewal-service/internal/service"
	"github.com/spec-kit/renewal-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	seedValue := cfg.Seed.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	dataset := seed.Generate(rand.New(rand.NewSource(seedValue)))
	logger.Info("dataset generated",
		zap.Int64("seed", seedValue),
		zap.Int("staff", len(dataset.Staff)),
		zap.Int("merchants", len(dataset.Merchants)))

	staffRepo := repository.NewStaffRepository(dataset.Staff)
	merchantRepo := repository.NewMerchantRepository(dataset.Merchants)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		StaffRepo:    staffRepo,
		MerchantRepo: merchantRepo,
	})
	dashboardService := service.NewDashboardService(service.DashboardDependencies{
		MerchantRepo: merchantRepo,
		StaffRepo:    staffRepo,
	})
	taskService := service.NewTaskService(service.TaskDependencies{
		MerchantRepo: merchantRepo,
		Dispatcher:   dispatcher,
	})
	intakeService := service.NewIntakeService(service.IntakeDependencies{
		MerchantRepo: merchantRepo,
		StaffRepo:    staffRepo,
		Dispatcher:   dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), staffRepo, merchantRepo)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, staffRepo, merchantRepo),
		Auth:           handlers.NewAuthHandler(authService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService, intakeService),
		Tasks:          handlers.NewTasksHandler(taskService),
		Portal:         handlers.NewPortalHandler(staffRepo),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
