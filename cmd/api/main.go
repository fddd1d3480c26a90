package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careertrack-backend/config"
	_ "careertrack-backend/docs" // Important for Swagger
	v1 "careertrack-backend/internal/delivery/http/v1"
	"careertrack-backend/internal/repository/postgres"
	"careertrack-backend/internal/usecase"
	"careertrack-backend/pkg/auth"
	"careertrack-backend/pkg/database"
	"careertrack-backend/pkg/email"
	"careertrack-backend/pkg/logger"
	"careertrack-backend/pkg/redis"
	"careertrack-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           CareerTrack Backend API
// @version         1.0
// @description     Backend for the job-application coaching dashboard.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting careertrack backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Resume Storage
	resumeStore, err := storage.NewResumeStore(context.Background(), storage.Config{
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		UploadTTL:       time.Duration(cfg.UploadURLTTLMins) * time.Minute,
	})
	if err != nil {
		logger.Log.Error("Failed to configure resume storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - session confirmations disabled")
	}

	// 7. Setup Repositories
	clientRepo := postgres.NewClientRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	sessionRepo := postgres.NewSessionRepository(dbPool)
	feedbackRepo := postgres.NewFeedbackRepository(dbPool)

	// 8. Setup UseCases
	validate := validator.New()
	clientUC := usecase.NewClientUsecase(clientRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, clientRepo, validate)
	onboardingUC := usecase.NewOnboardingUsecase(clientUC, applicationUC, validate)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, clientRepo, resumeStore, validate)
	sessionUC := usecase.NewSessionUsecase(sessionRepo, clientRepo, emailService, validate)
	feedbackUC := usecase.NewFeedbackUsecase(feedbackRepo, clientRepo)

	// 9. Setup Auth Provider (Clerk JWKS)
	jwksURL := cfg.ClerkIssuerURL + "/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ClientUC:      clientUC,
		ApplicationUC: applicationUC,
		OnboardingUC:  onboardingUC,
		ResumeUC:      resumeUC,
		SessionUC:     sessionUC,
		FeedbackUC:    feedbackUC,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
