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

	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/config"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/handler"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/middleware"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/pkg/logger"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const version = "1.0.0"

func main() {
	// Load .env before config so env overrides apply
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Initialize services
	storageSvc, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		slog.Error("failed to initialize storage service", "error", err)
		os.Exit(1)
	}

	if err := storageSvc.EnsureBucket(context.Background()); err != nil {
		slog.Error("failed to ensure storage bucket", "error", err)
		os.Exit(1)
	}

	openaiSvc := service.NewOpenAIService(&cfg.OpenAI)
	assistantSvc := service.NewAssistantService(openaiSvc)

	// Initialize stores
	userStore := service.NewUserStore()
	if err := userStore.Seed(context.Background(), cfg.Users); err != nil {
		slog.Error("failed to seed users", "error", err)
		os.Exit(1)
	}
	companyStore := service.NewCompanyStore(&cfg.Store)
	documentStore := service.NewDocumentStore(&cfg.Store)
	handler.SeedSampleCompany(companyStore)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(&cfg.Auth, userStore)
	companyHandler := handler.NewCompanyHandler(companyStore)
	documentHandler := handler.NewDocumentHandler(storageSvc, assistantSvc, documentStore)
	aiHandler := handler.NewAIHandler(assistantSvc)
	csvHandler := handler.NewCSVHandler(companyStore)
	dashboardHandler := handler.NewDashboardHandler(companyStore, documentStore)
	webhookHandler := handler.NewWebhookHandler(documentStore)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(corsMiddleware())
	router.Use(rateLimitMiddleware(&cfg.RateLimit))

	// Health check endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
		})
	})
	router.GET("/health/storage", func(c *gin.Context) {
		if err := storageSvc.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "storage": "connected"})
	})

	// Public routes
	api := router.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/webhooks/ai-analysis", webhookHandler.HandleAIAnalysis)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)

		protected.POST("/companies", companyHandler.Create)
		protected.GET("/companies", companyHandler.List)
		protected.GET("/companies/:id", companyHandler.Get)
		protected.DELETE("/companies/:id", companyHandler.Delete)

		protected.POST("/documents/upload", documentHandler.Upload)
		protected.GET("/documents", documentHandler.List)
		protected.GET("/documents/:id", documentHandler.Get)
		protected.DELETE("/documents/:id", documentHandler.Delete)

		protected.POST("/ai/chat", aiHandler.Chat)
		protected.POST("/ai/analyze-contract", aiHandler.AnalyzeContract)
		protected.POST("/ai/generate-contract", aiHandler.GenerateContract)
		protected.POST("/ai/assess-risk", aiHandler.AssessRisk)
		protected.POST("/ai/research", aiHandler.Research)

		protected.POST("/import/csv", csvHandler.Import)
		protected.GET("/export/csv", csvHandler.Export)

		protected.GET("/dashboard/overview", dashboardHandler.Overview)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// rateLimitMiddleware picks Redis-backed counters when a Redis URL is
// configured, in-process counters otherwise
func rateLimitMiddleware(cfg *config.RateLimitConfig) gin.HandlerFunc {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("invalid redis URL, falling back to in-memory rate limiting", "error", err)
			return middleware.RateLimit(cfg.RequestsPerMinute, time.Minute)
		}
		slog.Info("rate limiting backed by redis")
		return middleware.RateLimitRedis(redis.NewClient(opts), cfg.RequestsPerMinute, time.Minute)
	}
	return middleware.RateLimit(cfg.RequestsPerMinute, time.Minute)
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
