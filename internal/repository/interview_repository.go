package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"routine-tracker/internal/model"
)

// InterviewRepository handles CRUD for interview tracking entries.
type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

func (r *InterviewRepository) Create(ctx context.Context, interview *model.Interview) error {
	if err := r.db.WithContext(ctx).Create(interview).Error; err != nil {
		return fmt.Errorf("create interview: %w", err)
	}
	return nil
}

func (r *InterviewRepository) FindByID(ctx context.Context, id string) (*model.Interview, error) {
	var interview model.Interview
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFoundError("interview", id)
		}
		return nil, fmt.Errorf("find interview: %w", err)
	}
	return &interview, nil
}

// ListByUser returns a user's interviews, optionally narrowed by status
// and/or priority. Empty filter values mean "any".
func (r *InterviewRepository) ListByUser(ctx context.Context, userID string, status model.InterviewStatus, priority model.Priority) ([]model.Interview, error) {
	db := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if priority != "" {
		db = db.Where("priority = ?", priority)
	}

	var interviews []model.Interview
	if err := db.Order("date_applied DESC, created_at DESC").Find(&interviews).Error; err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	return interviews, nil
}

func (r *InterviewRepository) Updates(ctx context.Context, interview *model.Interview, fields map[string]interface{}) error {
	if err := r.db.WithContext(ctx).Model(interview).Updates(fields).Error; err != nil {
		return fmt.Errorf("update interview: %w", err)
	}
	return nil
}

func (r *InterviewRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Interview{})
	if res.Error != nil {
		return fmt.Errorf("delete interview: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.NewNotFoundError("interview", id)
	}
	return nil
}
