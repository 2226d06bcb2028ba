package service

import (
	"context"

	"routine-tracker/internal/model"
	"routine-tracker/internal/repository"
)

// GoalService manages per-user target percentages.
type GoalService struct {
	goalRepo *repository.GoalRepository
}

func NewGoalService(goalRepo *repository.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

func (s *GoalService) Set(ctx context.Context, userID, goalType string, target float64) (*model.Goal, error) {
	goal := model.Goal{
		UserID:           userID,
		GoalType:         model.Window(goalType),
		TargetPercentage: target,
	}
	if err := goal.Validate(); err != nil {
		return nil, err
	}
	if err := s.goalRepo.Upsert(ctx, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) List(ctx context.Context, userID string) ([]model.Goal, error) {
	return s.goalRepo.ListByUser(ctx, userID)
}
