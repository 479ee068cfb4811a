package service

import (
	"context"
	"time"

	"fintracker/internal/dto"
	"fintracker/internal/models"
	"fintracker/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
}

func NewTransactionService(txRepo *repository.TransactionRepository, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo: txRepo,
		logger: logger,
	}
}

func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest) (*dto.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        models.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.ParsedDate(),
		Description: req.Description,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return toTransactionResponse(tx), nil
}

func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, search string) ([]*dto.TransactionResponse, error) {
	txns, err := s.txRepo.ListByUserID(ctx, userID, search)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.TransactionResponse, 0, len(txns))
	for _, tx := range txns {
		resp = append(resp, toTransactionResponse(tx))
	}
	return resp, nil
}

func (s *TransactionService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.TransactionRequest) (*dto.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		ID:          id,
		UserID:      userID,
		Type:        models.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.ParsedDate(),
		Description: req.Description,
		Notes:       req.Notes,
	}

	affected, err := s.txRepo.Update(ctx, tx)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	updated, err := s.txRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(updated), nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.txRepo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func toTransactionResponse(tx *models.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Amount:      tx.Amount,
		Date:        tx.Date.Format("2006-01-02"),
		Description: tx.Description,
		Notes:       tx.Notes,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
