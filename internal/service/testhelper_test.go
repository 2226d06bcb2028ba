package service

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"routine-tracker/internal/model"
	"routine-tracker/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func mustCreateTask(t *testing.T, svc *TaskService, userID string, input TaskInput) *model.RoutineTask {
	t.Helper()
	task, err := svc.Create(context.Background(), userID, input)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func mustCreateLog(t *testing.T, repo *repository.DailyLogRepository, userID, taskID, date string, status model.Status) *model.DailyLog {
	t.Helper()
	log := &model.DailyLog{
		RoutineTaskID: taskID,
		UserID:        userID,
		Date:          date,
		Status:        status,
	}
	if err := repo.Create(context.Background(), log); err != nil {
		t.Fatalf("create log: %v", err)
	}
	return log
}
