package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/imtti/institute-api/internal/config"
	"github.com/imtti/institute-api/internal/database"
	"github.com/imtti/institute-api/internal/handler"
	"github.com/imtti/institute-api/internal/middleware"
	"github.com/imtti/institute-api/internal/repository"
	"github.com/imtti/institute-api/internal/router"
	"github.com/imtti/institute-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	store := openStore(cfg, logger)

	centerRepo := repository.NewCenterRepository(store.DB())
	studentRepo := repository.NewStudentRepository(store.DB())
	applicationRepo := repository.NewApplicationRepository(store.DB())
	markRepo := repository.NewMarkRepository(store.DB())
	adminRepo := repository.NewAdminRepository(store.DB())

	centerService := service.NewCenterService(centerRepo, logger)
	studentService := service.NewStudentService(studentRepo, logger)
	applicationService := service.NewApplicationService(applicationRepo, logger)
	markService := service.NewMarkService(markRepo, logger)
	adminService := service.NewAdminService(adminRepo, logger)
	authService := service.NewAuthService(adminRepo, centerRepo, studentRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		Store:              store,
		CenterHandler:      handler.NewCenterHandler(centerService, logger),
		StudentHandler:     handler.NewStudentHandler(studentService, logger),
		ApplicationHandler: handler.NewApplicationHandler(applicationService, logger),
		MarkHandler:        handler.NewMarkHandler(markService, logger),
		AdminHandler:       handler.NewAdminHandler(adminService, logger),
		AuthHandler:        handler.NewAuthHandler(authService, logger),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// openStore connects to postgres and ensures the schema. Connection or
// migration failures never stop the process: the service keeps running in
// its degraded mode and data endpoints answer 503.
func openStore(cfg config.Config, logger zerolog.Logger) *database.Store {
	if !cfg.HasDatabaseCredentials() {
		logger.Warn().Msg("database credentials missing, running without a database")
		return database.NewUnavailableStore()
	}

	db, err := database.ConnectPostgres(cfg.DatabaseDSN())
	if err != nil {
		logger.Error().Err(err).Msg("database connection failed, running without a database")
		return database.NewUnavailableStore()
	}

	if err := database.EnsureSchema(db); err != nil {
		logger.Error().Err(err).Msg("schema setup failed, continuing with existing schema")
	} else {
		logger.Info().Msg("schema ensured and admin seeded")
	}

	logger.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("database connected")
	return database.NewStore(db)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
