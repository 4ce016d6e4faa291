package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "hostelhub-backend/internal/api/http"
	"hostelhub-backend/internal/config"
	"hostelhub-backend/internal/logger"
	"hostelhub-backend/internal/repository/postgres"
	"hostelhub-backend/internal/security"
	"hostelhub-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting HostelHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)
	authMiddleware := api.NewAuthMiddleware(tokenManager)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	levySvc := service.NewLevyService(
		store.LevyPaymentRepository,
		store.UserRepository,
		store.PaymentReportRepository,
		emailSvc,
	)
	roomSvc := service.NewRoomService(store.RoomRepository, store.PropertyRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	auditSvc := service.NewAuditService(store.AdminActionRepository)

	// Initialize HTTP handlers
	handlers := api.Handlers{
		Auth:         api.NewAuthHandler(authSvc),
		Levy:         api.NewLevyHandler(levySvc),
		Room:         api.NewRoomHandler(roomSvc),
		Notification: api.NewNotificationHandler(noteSvc),
		Audit:        api.NewAuditHandler(auditSvc),
	}
	router := api.NewRouter(handlers, authMiddleware)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
