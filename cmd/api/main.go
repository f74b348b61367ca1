package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"studyaid/internal/adapter"
	"studyaid/internal/adapter/generation"
	"studyaid/internal/cache"
	"studyaid/internal/config"
	"studyaid/internal/database"
	"studyaid/internal/domain"
	"studyaid/internal/handler"
	"studyaid/internal/logger"
	"studyaid/internal/middleware"
	"studyaid/internal/prompt"
	"studyaid/internal/repository"
	"studyaid/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("request_id", middleware.GetRequestID(c)),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Load the prompt catalog; it is static for the process lifetime
	catalog, err := prompt.NewCatalog(cfg.Prompts.File)
	if err != nil {
		appLogger.Fatal("Failed to load prompt catalog", zap.Error(err))
	}
	appLogger.Info("Prompt catalog loaded",
		zap.String("file", cfg.Prompts.File),
		zap.Strings("types", catalog.Types()))

	// Initialize the generation gateway
	generator, err := generation.NewLLMGenerator(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM generator", zap.Error(err))
	}
	appLogger.Info("LLM generator initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))

	// Connect to the history database and apply migrations
	if err := database.RunMigrations(cfg.DB.Path, "database/migrations"); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}
	db, err := database.NewSQLXSQLiteDB(cfg.DB.Path)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	appLogger.Info("Database initialized", zap.String("path", cfg.DB.Path))

	historyRepository := repository.NewSQLXHistoryRepository(db)

	// Redis is optional; without it results are simply not cached
	var resultCache domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		resultCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Result cache initialized", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Warn("Redis not configured, result caching disabled")
	}

	// Initialize services
	studyService := service.NewStudyService(catalog, generator, resultCache, cfg)
	historyService := service.NewHistoryService(historyRepository)

	// Initialize handlers
	studyHandler := handler.NewStudyHandler(studyService)
	historyHandler := handler.NewHistoryHandler(historyService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API group
	apiGroup := app.Group("/api")
	apiGroup.Post("/generate", studyHandler.Generate)
	apiGroup.Get("/labels", studyHandler.Labels)
	apiGroup.Get("/history", historyHandler.List)
	apiGroup.Post("/save", historyHandler.Save)
	apiGroup.Delete("/history/:id", historyHandler.Delete)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		appLogger.Error("Failed to close database", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
