package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pocketsmart/internal/api"
	"pocketsmart/internal/api/handlers"
	"pocketsmart/internal/service"
	"pocketsmart/internal/store"
	"pocketsmart/pkg/auth"
	"pocketsmart/pkg/config"
	"pocketsmart/pkg/logger"

	"go.uber.org/zap"
)

// @title PocketSmart API
// @version 2.0
// @description Personal-budgeting service with AI-generated financial commentary.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting PocketSmart service")

	// Session-scoped state; nothing survives a restart
	sessionStore := store.NewMemoryStore()

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	authService, err := service.NewAuthService(&cfg.Demo, jwtManager, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize auth service", zap.Error(err))
	}

	llmService, err := service.NewLLMService(&cfg.LLM, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM gateway", zap.Error(err))
	}
	defer llmService.Close()

	analysisService := service.NewAnalysisService(llmService, appLogger)
	recService := service.NewRecommendationService(llmService, appLogger)
	forecastService := service.NewForecastService(llmService, appLogger)

	authHandler := handlers.NewAuthHandler(authService, appLogger)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, appLogger)
	profileHandler := handlers.NewProfileHandler(sessionStore, appLogger)
	expenseHandler := handlers.NewExpenseHandler(sessionStore, appLogger)
	insightHandler := handlers.NewInsightHandler(sessionStore, analysisService, recService, forecastService, appLogger)

	app := api.SetupRouter(
		authHandler,
		analysisHandler,
		profileHandler,
		expenseHandler,
		insightHandler,
		llmService,
		jwtManager,
		appLogger,
	)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
