package service

import (
	"context"
	"time"

	"routine-tracker/internal/model"
	"routine-tracker/internal/repository"
)

// GeneratorService materializes routine templates into dated daily logs.
//
// GenerateLogs is idempotent: callers invoke it unconditionally on every
// "today" page load, and only the first call for a (task, date) pair
// actually inserts a row. Concurrent calls are resolved by the unique
// (routine_task_id, date) index; a lost insert race counts as "already
// generated", not as a failure.
type GeneratorService struct {
	taskRepo *repository.RoutineTaskRepository
	logRepo  *repository.DailyLogRepository
}

func NewGeneratorService(taskRepo *repository.RoutineTaskRepository, logRepo *repository.DailyLogRepository) *GeneratorService {
	return &GeneratorService{taskRepo: taskRepo, logRepo: logRepo}
}

// GenerateLogs creates the missing logs for every template active on the
// given date's weekday and returns only the rows created by this call.
// A user with no templates active that day gets an empty result.
func (s *GeneratorService) GenerateLogs(ctx context.Context, userID, date string) ([]model.DailyLog, error) {
	day, err := model.ParseDate(date)
	if err != nil {
		return nil, err
	}
	weekday := day.Weekday().String()

	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	created := []model.DailyLog{}
	for _, task := range tasks {
		if !task.ActiveOn(weekday) {
			continue
		}

		log := model.DailyLog{
			RoutineTaskID:  task.ID,
			UserID:         userID,
			Date:           date,
			Status:         model.StatusPending,
			ActualMinutes:  0,
			PlannedMinutes: task.PlannedMinutes,
		}
		inserted, err := s.logRepo.CreateIfAbsent(ctx, &log)
		if err != nil {
			return nil, err
		}
		if inserted {
			created = append(created, log)
		}
	}

	return created, nil
}

// GenerateToday is GenerateLogs for the current date.
func (s *GeneratorService) GenerateToday(ctx context.Context, userID string, now time.Time) ([]model.DailyLog, error) {
	return s.GenerateLogs(ctx, userID, now.Format(model.DateLayout))
}
