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
)

type BudgetService struct {
	budgetRepo *repository.BudgetRepository
	txRepo     *repository.TransactionRepository
	logger     *zap.Logger
}

func NewBudgetService(budgetRepo *repository.BudgetRepository, txRepo *repository.TransactionRepository, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		budgetRepo: budgetRepo,
		txRepo:     txRepo,
		logger:     logger,
	}
}

func (s *BudgetService) Create(ctx context.Context, userID uuid.UUID, req *dto.BudgetRequest) (*dto.BudgetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &models.Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  req.Category,
		Limit:     req.Limit,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.budgetRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	// A fresh budget has no consumption state of its own; status is derived
	// on the next list call against the live transaction snapshot.
	return toBudgetResponse(b, summary.CalcBudgetStatus(*b, nil)), nil
}

// List returns each budget with its consumption evaluated against the user's
// current expense snapshot.
func (s *BudgetService) List(ctx context.Context, userID uuid.UUID) ([]*dto.BudgetResponse, error) {
	budgets, err := s.budgetRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	txns, err := s.txRepo.ListByUserID(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	spent := summary.CategoryTotals(deref(txns), models.TypeExpense)

	resp := make([]*dto.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		resp = append(resp, toBudgetResponse(b, summary.CalcBudgetStatus(*b, spent)))
	}
	return resp, nil
}

func (s *BudgetService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.BudgetRequest) (*dto.BudgetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b := &models.Budget{
		ID:       id,
		UserID:   userID,
		Category: req.Category,
		Limit:    req.Limit,
	}

	affected, err := s.budgetRepo.Update(ctx, b)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	txns, err := s.txRepo.ListByUserID(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	spent := summary.CategoryTotals(deref(txns), models.TypeExpense)

	return toBudgetResponse(b, summary.CalcBudgetStatus(*b, spent)), nil
}

func (s *BudgetService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.budgetRepo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func toBudgetResponse(b *models.Budget, status summary.BudgetStatus) *dto.BudgetResponse {
	return &dto.BudgetResponse{
		ID:         b.ID.String(),
		Category:   b.Category,
		Limit:      b.Limit,
		Spent:      status.Spent,
		Remaining:  status.Remaining,
		Percentage: status.Percentage,
		Status:     string(status.Status),
	}
}

func deref(txns []*models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txns))
	for _, tx := range txns {
		out = append(out, *tx)
	}
	return out
}
