package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/golibhub/golib-api/internal/config"
	"github.com/golibhub/golib-api/internal/database"
	"github.com/golibhub/golib-api/internal/handler"
	"github.com/golibhub/golib-api/internal/middleware"
	"github.com/golibhub/golib-api/internal/persistence"
	"github.com/golibhub/golib-api/internal/router"
	"github.com/golibhub/golib-api/internal/service"
	"github.com/golibhub/golib-api/internal/store"
	cloud "github.com/golibhub/golib-api/pkg/cloudinary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	snapshots, err := persistence.New(db, cfg.DefaultSeatCount, logger)
	if err != nil {
		log.Fatalf("failed to prepare snapshot store: %v", err)
	}

	domain := store.New(snapshots.Load(), snapshots, logger)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	var uploader handler.FileUploader
	if cfg.CloudinaryCloudName != "" {
		photoService, err := cloud.New(cloud.Config{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
			Folder:    cfg.CloudinaryUploadFolder,
		}, logger)
		if err != nil {
			log.Fatalf("failed to create cloudinary client: %v", err)
		}
		uploader = photoService
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	dashboardService := service.NewDashboardService(domain, redisClient, cfg.DashboardCacheTTL, logger)

	sessionHandler := handler.NewSessionHandler(domain, cfg.JWTSecret, validate, logger)
	studentHandler := handler.NewStudentHandler(domain, dashboardService, uploader, validate, logger)
	seatHandler := handler.NewSeatHandler(domain, validate, logger)
	shiftHandler := handler.NewShiftHandler(domain, validate, logger)
	paymentHandler := handler.NewPaymentHandler(domain, dashboardService, validate, logger)
	attendanceHandler := handler.NewAttendanceHandler(domain, validate, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		SessionHandler:    sessionHandler,
		StudentHandler:    studentHandler,
		SeatHandler:       seatHandler,
		ShiftHandler:      shiftHandler,
		PaymentHandler:    paymentHandler,
		AttendanceHandler: attendanceHandler,
		DashboardHandler:  dashboardHandler,
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
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
