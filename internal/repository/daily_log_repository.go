package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"routine-tracker/internal/model"
)

// DailyLogRepository handles daily log instances.
type DailyLogRepository struct {
	db *gorm.DB
}

func NewDailyLogRepository(db *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{db: db}
}

func (r *DailyLogRepository) Create(ctx context.Context, log *model.DailyLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("create daily log: %w", err)
	}
	return nil
}

// CreateIfAbsent inserts a log unless one already exists for its
// (routine_task_id, date) pair. A lost race against a concurrent insert is
// reported as created=false, never as an error.
func (r *DailyLogRepository) CreateIfAbsent(ctx context.Context, log *model.DailyLog) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "routine_task_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(log)
	if res.Error != nil {
		return false, fmt.Errorf("create daily log: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *DailyLogRepository) FindByID(ctx context.Context, id string) (*model.DailyLog, error) {
	var log model.DailyLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFoundError("daily log", id)
		}
		return nil, fmt.Errorf("find daily log: %w", err)
	}
	return &log, nil
}

func (r *DailyLogRepository) ListByUser(ctx context.Context, userID string) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("date DESC, created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	return logs, nil
}

func (r *DailyLogRepository) ListByTask(ctx context.Context, taskID string) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	if err := r.db.WithContext(ctx).Where("routine_task_id = ?", taskID).
		Order("date DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	return logs, nil
}

// ListByUserAndDate returns one day's logs with the owning template joined
// in, so the consumer gets name, category and current planned minutes.
func (r *DailyLogRepository) ListByUserAndDate(ctx context.Context, userID, date string) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	if err := r.db.WithContext(ctx).Preload("RoutineTask").
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	return logs, nil
}

// ListByUserBetween returns all logs in [start, end] with templates joined,
// for window aggregation.
func (r *DailyLogRepository) ListByUserBetween(ctx context.Context, userID, start, end string) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	if err := r.db.WithContext(ctx).Preload("RoutineTask").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	return logs, nil
}

// CountForDay returns total and done log counts for one user day.
func (r *DailyLogRepository) CountForDay(ctx context.Context, userID, date string) (total, done int64, err error) {
	db := r.db.WithContext(ctx).Model(&model.DailyLog{})
	if err := db.Where("user_id = ? AND date = ?", userID, date).Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("count daily logs: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&model.DailyLog{}).
		Where("user_id = ? AND date = ? AND status = ?", userID, date, model.StatusDone).
		Count(&done).Error; err != nil {
		return 0, 0, fmt.Errorf("count done logs: %w", err)
	}
	return total, done, nil
}

// Updates applies a partial field map to one log.
func (r *DailyLogRepository) Updates(ctx context.Context, log *model.DailyLog, fields map[string]interface{}) error {
	if err := r.db.WithContext(ctx).Model(log).Updates(fields).Error; err != nil {
		return fmt.Errorf("update daily log: %w", err)
	}
	return nil
}

func (r *DailyLogRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DailyLog{})
	if res.Error != nil {
		return fmt.Errorf("delete daily log: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.NewNotFoundError("daily log", id)
	}
	return nil
}
