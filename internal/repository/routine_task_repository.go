package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"routine-tracker/internal/model"
)

// RoutineTaskRepository handles CRUD for routine task templates.
type RoutineTaskRepository struct {
	db *gorm.DB
}

func NewRoutineTaskRepository(db *gorm.DB) *RoutineTaskRepository {
	return &RoutineTaskRepository{db: db}
}

func (r *RoutineTaskRepository) Create(ctx context.Context, task *model.RoutineTask) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create routine task: %w", err)
	}
	return nil
}

func (r *RoutineTaskRepository) FindByID(ctx context.Context, id string) (*model.RoutineTask, error) {
	var task model.RoutineTask
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFoundError("routine task", id)
		}
		return nil, fmt.Errorf("find routine task: %w", err)
	}
	return &task, nil
}

func (r *RoutineTaskRepository) ListByUser(ctx context.Context, userID string) ([]model.RoutineTask, error) {
	var tasks []model.RoutineTask
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list routine tasks: %w", err)
	}
	return tasks, nil
}

// Updates applies a partial field map to one template.
func (r *RoutineTaskRepository) Updates(ctx context.Context, task *model.RoutineTask, fields map[string]interface{}) error {
	if err := r.db.WithContext(ctx).Model(task).Updates(fields).Error; err != nil {
		return fmt.Errorf("update routine task: %w", err)
	}
	return nil
}

// Delete removes a template together with all its daily logs. The cascade
// runs in one transaction so a failed log sweep never strands the template.
func (r *RoutineTaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("routine_task_id = ?", id).Delete(&model.DailyLog{}).Error; err != nil {
			return fmt.Errorf("delete task logs: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&model.RoutineTask{})
		if res.Error != nil {
			return fmt.Errorf("delete routine task: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return model.NewNotFoundError("routine task", id)
		}
		return nil
	})
}
