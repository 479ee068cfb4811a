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

type SubscriptionService struct {
	subRepo *repository.SubscriptionRepository
	logger  *zap.Logger
}

func NewSubscriptionService(subRepo *repository.SubscriptionRepository, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{
		subRepo: subRepo,
		logger:  logger,
	}
}

func (s *SubscriptionService) Create(ctx context.Context, userID uuid.UUID, req *dto.SubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	sub := &models.Subscription{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Amount:    req.Amount,
		DueDay:    req.DueDay,
		URL:       req.URL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	return toSubscriptionResponse(sub, now), nil
}

func (s *SubscriptionService) List(ctx context.Context, userID uuid.UUID) ([]*dto.SubscriptionResponse, error) {
	subs, err := s.subRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resp := make([]*dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		resp = append(resp, toSubscriptionResponse(sub, now))
	}
	return resp, nil
}

func (s *SubscriptionService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.SubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub := &models.Subscription{
		ID:     id,
		UserID: userID,
		Name:   req.Name,
		Amount: req.Amount,
		DueDay: req.DueDay,
		URL:    req.URL,
	}

	affected, err := s.subRepo.Update(ctx, sub)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return toSubscriptionResponse(sub, time.Now()), nil
}

func (s *SubscriptionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.subRepo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func toSubscriptionResponse(sub *models.Subscription, now time.Time) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
		ID:     sub.ID.String(),
		Name:   sub.Name,
		Amount: sub.Amount,
		DueDay: sub.DueDay,
		URL:    sub.URL,
		DueIn:  summary.DueInDays(sub.DueDay, now),
	}
}
