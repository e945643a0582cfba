package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	"portfolio-backend/internal/delivery/http/middleware"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// @title           Portfolio API
// @version         1.0
// @description     Backend for portfolio site
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.GinMode)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Document Store (optional; the API degrades without it)
	var store domain.DocumentStore
	if cfg.DatabaseURLSet() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		s, closeStore, err := repository.OpenDocumentStore(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		cancel()
		if err != nil {
			logger.Log.Warn("Document store unavailable, serving fallback data", "error", err)
		} else {
			store = s
			defer closeStore()
			logger.Log.Info("Document store connected", "database", s.Name())
		}
	}

	// 4. Setup Redis for rate limiting (optional)
	redisClient, err := redis.NewClient(context.Background(), redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	})
	if err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting in memory", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}
	contactLimiter := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		cfg.RateLimitContactThreshold,
		time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
		redisClient,
	))

	// 5. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not configured - contact notifications disabled")
	}

	// 6. Setup UseCases
	validate := validator.New()
	projectUC := usecase.NewProjectUsecase(store, validate)
	contactUC := usecase.NewContactUsecase(store, emailService)
	healthUC := usecase.NewHealthUsecase(store, domain.StoreEnv{
		URLSet:  cfg.DatabaseURLSet(),
		NameSet: cfg.DatabaseNameSet(),
	})

	// 7. Seed sample projects before serving traffic
	if store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := projectUC.EnsureSeeded(ctx); err != nil {
			logger.Log.Warn("Initial seeding failed, will retry on first listing", "error", err)
		}
		cancel()
	}

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProjectUC:      projectUC,
		ContactUC:      contactUC,
		HealthUC:       healthUC,
		ContactLimiter: contactLimiter,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
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
