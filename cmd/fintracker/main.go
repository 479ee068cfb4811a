package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fintracker/internal/api"
	"fintracker/internal/api/handlers"
	"fintracker/internal/repository"
	"fintracker/internal/service"
	"fintracker/pkg/auth"
	"fintracker/pkg/config"
	"fintracker/pkg/logger"
	"fintracker/pkg/postgres"

	"go.uber.org/zap"
)

// @title FinTracker API
// @version 1.0
// @description Personal finance tracking service: transactions, budgets, savings goals, subscriptions and aggregated reports
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@fintracker.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting FinTracker service")

	// Apply database migrations
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)
	subRepo := repository.NewSubscriptionRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	txService := service.NewTransactionService(txRepo, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, txRepo, appLogger)
	goalService := service.NewGoalService(goalRepo, appLogger)
	subService := service.NewSubscriptionService(subRepo, appLogger)
	reportService := service.NewReportService(txRepo, budgetRepo, goalRepo, subRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, appLogger)
	budgetHandler := handlers.NewBudgetHandler(budgetService, appLogger)
	goalHandler := handlers.NewGoalHandler(goalService, appLogger)
	subHandler := handlers.NewSubscriptionHandler(subService, appLogger)
	reportHandler := handlers.NewReportHandler(reportService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, txHandler, budgetHandler, goalHandler, subHandler, reportHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
