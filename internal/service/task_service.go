package service

import (
	"context"

	"gorm.io/datatypes"

	"routine-tracker/internal/model"
	"routine-tracker/internal/repository"
)

// TaskInput carries the fields of a routine task template. Pointer fields
// in updates mean "leave unchanged".
type TaskInput struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	PlannedMinutes int      `json:"planned_minutes"`
	ActiveDays     []string `json:"active_days"`
}

// TaskUpdateInput is a partial template edit.
type TaskUpdateInput struct {
	Name           *string   `json:"name"`
	Category       *string   `json:"category"`
	PlannedMinutes *int      `json:"planned_minutes"`
	ActiveDays     *[]string `json:"active_days"`
}

// TaskService wraps routine template business logic.
type TaskService struct {
	taskRepo *repository.RoutineTaskRepository
}

func NewTaskService(taskRepo *repository.RoutineTaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) Create(ctx context.Context, userID string, input TaskInput) (*model.RoutineTask, error) {
	task := model.RoutineTask{
		UserID:         userID,
		Name:           input.Name,
		Category:       model.Category(input.Category),
		PlannedMinutes: input.PlannedMinutes,
		ActiveDays:     datatypes.JSONSlice[string](input.ActiveDays),
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.RoutineTask, error) {
	return s.taskRepo.FindByID(ctx, id)
}

func (s *TaskService) ListByUser(ctx context.Context, userID string) ([]model.RoutineTask, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

// ListForDay returns the user's templates active on the named weekday.
func (s *TaskService) ListForDay(ctx context.Context, userID, dayName string) ([]model.RoutineTask, error) {
	if !model.ValidWeekday(dayName) {
		return nil, model.NewValidationError("invalid day name %q", dayName)
	}
	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	active := []model.RoutineTask{}
	for _, task := range tasks {
		if task.ActiveOn(dayName) {
			active = append(active, task)
		}
	}
	return active, nil
}

// Update applies a partial edit. The whole input is validated against the
// merged result before anything is written, so a bad field never lands a
// half-applied edit. Existing logs keep their snapshotted planned minutes.
func (s *TaskService) Update(ctx context.Context, id string, input TaskUpdateInput) (*model.RoutineTask, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *task
	fields := map[string]interface{}{}
	if input.Name != nil {
		merged.Name = *input.Name
		fields["name"] = *input.Name
	}
	if input.Category != nil {
		merged.Category = model.Category(*input.Category)
		fields["category"] = *input.Category
	}
	if input.PlannedMinutes != nil {
		merged.PlannedMinutes = *input.PlannedMinutes
		fields["planned_minutes"] = *input.PlannedMinutes
	}
	if input.ActiveDays != nil {
		merged.ActiveDays = datatypes.JSONSlice[string](*input.ActiveDays)
		fields["active_days"] = merged.ActiveDays
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return task, nil
	}

	if err := s.taskRepo.Updates(ctx, task, fields); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the template and cascades to all its logs.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}
