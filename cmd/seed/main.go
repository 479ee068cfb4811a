package main

import (
	"context"
	"errors"
	"log"
	"time"

	"fintracker/internal/models"
	"fintracker/internal/repository"
	"fintracker/pkg/auth"
	"fintracker/pkg/config"
	"fintracker/pkg/logger"
	"fintracker/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@fintracker.dev"
	demoPassword = "demo1234"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Apply database migrations
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)
	subRepo := repository.NewSubscriptionRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	user, err := ensureDemoUser(ctx, userRepo)
	if err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}
	appLogger.Info("Demo user ready",
		zap.String("email", demoEmail),
		zap.String("user_id", user.ID.String()),
	)

	existing, err := txRepo.ListByUserID(ctx, user.ID, "")
	if err != nil {
		appLogger.Fatal("Failed to check existing transactions", zap.Error(err))
	}
	if len(existing) > 0 {
		appLogger.Info("Demo data already present, skipping seed",
			zap.Int("transactions", len(existing)),
		)
		return
	}

	if err := txRepo.CreateBatch(ctx, demoTransactions(user.ID)); err != nil {
		appLogger.Fatal("Failed to seed transactions", zap.Error(err))
	}
	for _, b := range demoBudgets(user.ID) {
		if err := budgetRepo.Create(ctx, b); err != nil {
			appLogger.Fatal("Failed to seed budget", zap.Error(err))
		}
	}
	for _, g := range demoGoals(user.ID) {
		if err := goalRepo.Create(ctx, g); err != nil {
			appLogger.Fatal("Failed to seed goal", zap.Error(err))
		}
	}
	for _, s := range demoSubscriptions(user.ID) {
		if err := subRepo.Create(ctx, s); err != nil {
			appLogger.Fatal("Failed to seed subscription", zap.Error(err))
		}
	}

	appLogger.Info("Database seeding completed successfully!")
}

func ensureDemoUser(ctx context.Context, userRepo *repository.UserRepository) (*models.User, error) {
	user, err := userRepo.GetByEmail(ctx, demoEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	user = &models.User{
		ID:       uuid.New(),
		Username: demoUsername,
		Email:    demoEmail,
		Password: hash,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func demoTransactions(userID uuid.UUID) []*models.Transaction {
	now := time.Now()
	tx := func(typ models.TransactionType, category string, amount float64, daysAgo int, description string) *models.Transaction {
		return &models.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        typ,
			Category:    category,
			Amount:      amount,
			Date:        now.AddDate(0, 0, -daysAgo),
			Description: description,
		}
	}

	return []*models.Transaction{
		tx(models.TypeIncome, "Work", 1200, 1, "Freelance Project"),
		tx(models.TypeExpense, "Food", 150, 2, "Grocery Shopping"),
		tx(models.TypeExpense, "Entertainment", 15, 3, "Netflix Subscription"),
		tx(models.TypeExpense, "Health", 50, 4, "Gym Membership"),
		tx(models.TypeIncome, "Investment", 45, 5, "Stock Dividend"),
	}
}

func demoBudgets(userID uuid.UUID) []*models.Budget {
	return []*models.Budget{
		{ID: uuid.New(), UserID: userID, Category: "Food", Limit: 400},
		{ID: uuid.New(), UserID: userID, Category: "Entertainment", Limit: 100},
		{ID: uuid.New(), UserID: userID, Category: "Health", Limit: 120},
	}
}

func demoGoals(userID uuid.UUID) []*models.Goal {
	return []*models.Goal{
		{
			ID:       uuid.New(),
			UserID:   userID,
			Name:     "Emergency Fund",
			Target:   5000,
			Current:  1250,
			Deadline: time.Now().AddDate(0, 6, 0),
			Icon:     "shield",
		},
		{
			ID:       uuid.New(),
			UserID:   userID,
			Name:     "Vacation",
			Target:   2000,
			Current:  400,
			Deadline: time.Now().AddDate(0, 3, 0),
			Icon:     "plane",
		},
	}
}

func demoSubscriptions(userID uuid.UUID) []*models.Subscription {
	netflixURL := "https://netflix.com"
	return []*models.Subscription{
		{ID: uuid.New(), UserID: userID, Name: "Netflix", Amount: 15, DueDay: 3, URL: &netflixURL},
		{ID: uuid.New(), UserID: userID, Name: "Gym", Amount: 50, DueDay: 15},
	}
}
