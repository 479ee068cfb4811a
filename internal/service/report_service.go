package service

import (
	"context"
	"time"

	"fintracker/internal/dto"
	"fintracker/internal/models"
	"fintracker/internal/repository"
	"fintracker/internal/summary"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ReportService assembles the dashboard summary. It reads one snapshot of
// the user's four collections per request and feeds it through the pure
// aggregation functions; nothing derived is ever stored.
type ReportService struct {
	txRepo     *repository.TransactionRepository
	budgetRepo *repository.BudgetRepository
	goalRepo   *repository.GoalRepository
	subRepo    *repository.SubscriptionRepository
	logger     *zap.Logger
}

func NewReportService(
	txRepo *repository.TransactionRepository,
	budgetRepo *repository.BudgetRepository,
	goalRepo *repository.GoalRepository,
	subRepo *repository.SubscriptionRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		txRepo:     txRepo,
		budgetRepo: budgetRepo,
		goalRepo:   goalRepo,
		subRepo:    subRepo,
		logger:     logger,
	}
}

func (s *ReportService) Summary(ctx context.Context, userID uuid.UUID) (*dto.SummaryResponse, error) {
	var (
		txns    []*models.Transaction
		budgets []*models.Budget
		goals   []*models.Goal
		subs    []*models.Subscription
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = s.txRepo.ListByUserID(gctx, userID, "")
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.budgetRepo.ListByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.goalRepo.ListByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		subs, err = s.subRepo.ListByUserID(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now()
	snapshot := deref(txns)
	expenseTotals := summary.CategoryTotals(snapshot, models.TypeExpense)

	budgetResp := make([]dto.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		budgetResp = append(budgetResp, *toBudgetResponse(b, summary.CalcBudgetStatus(*b, expenseTotals)))
	}

	goalResp := make([]dto.GoalResponse, 0, len(goals))
	for _, goal := range goals {
		goalResp = append(goalResp, *toGoalResponse(goal, now))
	}

	subResp := make([]dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		subResp = append(subResp, *toSubscriptionResponse(sub, now))
	}

	return &dto.SummaryResponse{
		Totals:             summary.CalcTotals(snapshot),
		ExpensesByCategory: expenseTotals,
		IncomeByCategory:   summary.CategoryTotals(snapshot, models.TypeIncome),
		MonthlyTrend:       summary.MonthlyTotals(snapshot),
		Budgets:            budgetResp,
		Goals:              goalResp,
		Subscriptions:      subResp,
		Insights:           summary.Insights(snapshot),
	}, nil
}
