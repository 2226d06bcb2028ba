package service

import (
	"context"

	"routine-tracker/internal/model"
	"routine-tracker/internal/repository"
)

// LogInput creates a log directly, outside the generator. Normal operation
// goes through generation; this path exists for administrative correction.
type LogInput struct {
	RoutineTaskID string  `json:"routine_task_id"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	ActualMinutes int     `json:"actual_minutes"`
	Notes         *string `json:"notes"`
}

// LogUpdateInput is a partial log edit; nil fields stay untouched.
type LogUpdateInput struct {
	Status        *string `json:"status"`
	ActualMinutes *int    `json:"actual_minutes"`
	Notes         *string `json:"notes"`
}

// LogService wraps daily log reads and writes.
type LogService struct {
	logRepo  *repository.DailyLogRepository
	taskRepo *repository.RoutineTaskRepository
}

func NewLogService(logRepo *repository.DailyLogRepository, taskRepo *repository.RoutineTaskRepository) *LogService {
	return &LogService{logRepo: logRepo, taskRepo: taskRepo}
}

func (s *LogService) Get(ctx context.Context, id string) (*model.DailyLog, error) {
	return s.logRepo.FindByID(ctx, id)
}

func (s *LogService) ListByUser(ctx context.Context, userID string) ([]model.DailyLog, error) {
	return s.logRepo.ListByUser(ctx, userID)
}

func (s *LogService) ListByTask(ctx context.Context, taskID string) ([]model.DailyLog, error) {
	return s.logRepo.ListByTask(ctx, taskID)
}

// Task returns the owning template, for ownership checks on task-scoped
// queries.
func (s *LogService) Task(ctx context.Context, taskID string) (*model.RoutineTask, error) {
	return s.taskRepo.FindByID(ctx, taskID)
}

// ListForDate returns a user's logs for one date with templates joined.
func (s *LogService) ListForDate(ctx context.Context, userID, date string) ([]model.DailyLog, error) {
	if _, err := model.ParseDate(date); err != nil {
		return nil, err
	}
	return s.logRepo.ListByUserAndDate(ctx, userID, date)
}

// Create inserts a log manually. The owning template must exist and the
// planned minutes are snapshotted from it, same as generated rows.
func (s *LogService) Create(ctx context.Context, userID string, input LogInput) (*model.DailyLog, error) {
	task, err := s.taskRepo.FindByID(ctx, input.RoutineTaskID)
	if err != nil {
		return nil, err
	}

	status := model.Status(input.Status)
	if input.Status == "" {
		status = model.StatusPending
	}
	log := model.DailyLog{
		RoutineTaskID:  task.ID,
		UserID:         userID,
		Date:           input.Date,
		Status:         status,
		ActualMinutes:  input.ActualMinutes,
		PlannedMinutes: task.PlannedMinutes,
		Notes:          input.Notes,
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}

	inserted, err := s.logRepo.CreateIfAbsent(ctx, &log)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, model.NewValidationError("a log already exists for task %s on %s", task.ID, input.Date)
	}
	return &log, nil
}

// Update applies a partial edit to one log. All supplied fields are
// validated before any write, so a rejected update changes nothing.
func (s *LogService) Update(ctx context.Context, id string, input LogUpdateInput) (*model.DailyLog, error) {
	log, err := s.logRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Status != nil {
		status := model.Status(*input.Status)
		if !status.Valid() {
			return nil, model.NewValidationError("invalid status %q", *input.Status)
		}
		fields["status"] = status
	}
	if input.ActualMinutes != nil {
		if *input.ActualMinutes < 0 {
			return nil, model.NewValidationError("actual_minutes must be non-negative")
		}
		fields["actual_minutes"] = *input.ActualMinutes
	}
	if input.Notes != nil {
		fields["notes"] = input.Notes
	}
	if len(fields) == 0 {
		return log, nil
	}

	if err := s.logRepo.Updates(ctx, log, fields); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *LogService) Delete(ctx context.Context, id string) error {
	return s.logRepo.Delete(ctx, id)
}
