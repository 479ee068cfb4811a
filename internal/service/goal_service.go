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

type GoalService struct {
	goalRepo *repository.GoalRepository
	logger   *zap.Logger
}

func NewGoalService(goalRepo *repository.GoalRepository, logger *zap.Logger) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
		logger:   logger,
	}
}

func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, req *dto.GoalRequest) (*dto.GoalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	g := &models.Goal{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Target:    req.Target,
		Current:   req.Current,
		Deadline:  req.ParsedDeadline(),
		Icon:      req.Icon,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.goalRepo.Create(ctx, g); err != nil {
		return nil, err
	}

	return toGoalResponse(g, time.Now()), nil
}

func (s *GoalService) List(ctx context.Context, userID uuid.UUID) ([]*dto.GoalResponse, error) {
	goals, err := s.goalRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resp := make([]*dto.GoalResponse, 0, len(goals))
	for _, g := range goals {
		resp = append(resp, toGoalResponse(g, now))
	}
	return resp, nil
}

func (s *GoalService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.GoalRequest) (*dto.GoalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g := &models.Goal{
		ID:       id,
		UserID:   userID,
		Name:     req.Name,
		Target:   req.Target,
		Current:  req.Current,
		Deadline: req.ParsedDeadline(),
		Icon:     req.Icon,
	}

	affected, err := s.goalRepo.Update(ctx, g)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return toGoalResponse(g, time.Now()), nil
}

// AddFunds adds an amount to the goal's running total, clamped so current
// never exceeds target.
func (s *GoalService) AddFunds(ctx context.Context, userID, id uuid.UUID, req *dto.AddFundsRequest) (*dto.GoalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g, err := s.goalRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, ErrNotFound
	}

	g.Current = summary.ApplyContribution(g.Current, g.Target, req.Amount)

	if _, err := s.goalRepo.Update(ctx, g); err != nil {
		return nil, err
	}

	return toGoalResponse(g, time.Now()), nil
}

func (s *GoalService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.goalRepo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func toGoalResponse(g *models.Goal, now time.Time) *dto.GoalResponse {
	progress := summary.CalcGoalProgress(*g, now)
	return &dto.GoalResponse{
		ID:         g.ID.String(),
		Name:       g.Name,
		Target:     g.Target,
		Current:    g.Current,
		Deadline:   g.Deadline.Format("2006-01-02"),
		Icon:       g.Icon,
		Percentage: progress.Percentage,
		DaysLeft:   progress.DaysLeft,
		Overdue:    progress.Overdue,
		Completed:  progress.Completed,
	}
}
