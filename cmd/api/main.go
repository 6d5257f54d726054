package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"recordsapi/internal/config"
	"recordsapi/internal/database"
	"recordsapi/internal/database/migration"
	handlers "recordsapi/internal/http/handler"
	"recordsapi/internal/http/middleware"
	"recordsapi/internal/otel"
	"recordsapi/internal/repository/postgres"
	"recordsapi/internal/service"
	"recordsapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	boot := cfg.Bootstrap
	if err := migration.SeedSuperAdmin(ctx, db, time.UTC, boot.AdminEmail, boot.AdminPassword, boot.AdminFirstName, boot.AdminLastName); err != nil {
		log.Fatalf("failed to seed bootstrap administrator: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Repositories
	adminRepo := postgres.NewAdministratorPostgres(db)
	studentRepo := postgres.NewStudentPostgres(db)
	tokenRepo := postgres.NewTokenPostgres(db)
	fileRepo := postgres.NewFilePostgres(db)
	recordRepo := postgres.NewRecordPostgres(db)
	paymentRepo := postgres.NewPaymentPostgres(db)
	regFileRepo := postgres.NewRegistrarFilePostgres(db)
	logRepo := postgres.NewUserLogPostgres(db)
	dashRepo := postgres.NewDashboardPostgres(db)

	// Services
	txRunner := service.NewTxRunner(db)
	versions := service.NewFileVersionManager(objStore, fileRepo, recordRepo)

	svc := handlers.Services{
		Auth:           service.NewAuthService(tokenRepo, adminRepo, studentRepo, logRepo),
		Students:       service.NewStudentService(txRunner, versions, studentRepo, logRepo),
		Administrators: service.NewAdministratorService(adminRepo, recordRepo, logRepo),
		Payments:       service.NewPaymentService(txRunner, versions, paymentRepo, studentRepo, logRepo),
		RegistrarFiles: service.NewRegistrarFileService(txRunner, versions, regFileRepo, studentRepo, logRepo),
		Cors:           service.NewCorService(txRunner, versions, studentRepo, logRepo),
		Permits:        service.NewPermitService(txRunner, versions, studentRepo, logRepo),
		Downloads:      service.NewDownloadService(objStore, fileRepo, studentRepo),
		UserLogs:       service.NewUserLogService(logRepo),
		Dashboard:      service.NewDashboardService(dashRepo),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.MaxUploadMB * 1024 * 1024,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	// Prometheus request counting plus the /metrics scrape endpoint
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svc)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
