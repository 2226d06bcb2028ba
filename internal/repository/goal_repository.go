package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"routine-tracker/internal/model"
)

// GoalRepository stores per-user target percentages.
type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Upsert writes the goal for (user, window), overwriting an existing target.
func (r *GoalRepository) Upsert(ctx context.Context, goal *model.Goal) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "goal_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"target_percentage", "updated_at"}),
	}).Create(goal).Error; err != nil {
		return fmt.Errorf("upsert goal: %w", err)
	}
	return nil
}

func (r *GoalRepository) FindByUserAndType(ctx context.Context, userID string, goalType model.Window) (*model.Goal, error) {
	var goal model.Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND goal_type = ?", userID, goalType).
		First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFoundError("goal", fmt.Sprintf("%s/%s", userID, goalType))
		}
		return nil, fmt.Errorf("find goal: %w", err)
	}
	return &goal, nil
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID string) ([]model.Goal, error) {
	var goals []model.Goal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("goal_type ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}
