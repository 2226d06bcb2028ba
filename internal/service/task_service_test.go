package service

import (
	"context"
	"errors"
	"testing"

	"routine-tracker/internal/model"
	"routine-tracker/internal/repository"
)

func newTaskFixture(t *testing.T) (*TaskService, *repository.DailyLogRepository) {
	t.Helper()
	db := newTestDB(t)
	return NewTaskService(repository.NewRoutineTaskRepository(db)), repository.NewDailyLogRepository(db)
}

func expectValidation(t *testing.T, err error) {
	t.Helper()
	var validation *model.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateTask_Validation(t *testing.T) {
	svc, _ := newTaskFixture(t)

	cases := []struct {
		name  string
		input TaskInput
	}{
		{"empty name", TaskInput{Category: "Learning", PlannedMinutes: 30, ActiveDays: []string{"Monday"}}},
		{"bad category", TaskInput{Name: "Read", Category: "Chores", PlannedMinutes: 30, ActiveDays: []string{"Monday"}}},
		{"negative minutes", TaskInput{Name: "Read", Category: "Learning", PlannedMinutes: -1, ActiveDays: []string{"Monday"}}},
		{"empty days", TaskInput{Name: "Read", Category: "Learning", PlannedMinutes: 30, ActiveDays: []string{}}},
		{"bad day name", TaskInput{Name: "Read", Category: "Learning", PlannedMinutes: 30, ActiveDays: []string{"monday"}}},
		{"duplicate day", TaskInput{Name: "Read", Category: "Learning", PlannedMinutes: 30, ActiveDays: []string{"Monday", "Monday"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "u1", tc.input)
			expectValidation(t, err)
		})
	}
}

func TestCreateTask_AssignsID(t *testing.T) {
	svc, _ := newTaskFixture(t)

	task := mustCreateTask(t, svc, "u1", TaskInput{
		Name: "Read", Category: "Learning", PlannedMinutes: 30, ActiveDays: []string{"Monday"},
	})
	if task.ID == "" {
		t.Fatal("expected generated id")
	}
	if task.Category != model.CategoryLearning {
		t.Errorf("category = %q", task.Category)
	}
}

func TestListForDay(t *testing.T) {
	svc, _ := newTaskFixture(t)

	mustCreateTask(t, svc, "u1", TaskInput{
		Name: "Read", Category: "Learning", PlannedMinutes: 30, ActiveDays: []string{"Monday", "Friday"},
	})
	mustCreateTask(t, svc, "u1", TaskInput{
		Name: "Run", Category: "Fitness", PlannedMinutes: 45, ActiveDays: []string{"Tuesday"},
	})

	active, err := svc.ListForDay(context.Background(), "u1", "Monday")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Read" {
		t.Fatalf("unexpected result: %+v", active)
	}

	_, err = svc.ListForDay(context.Background(), "u1", "Mondy")
	expectValidation(t, err)
}

func TestUpdateTask_Partial(t *testing.T) {
	svc, _ := newTaskFixture(t)

	task := mustCreateTask(t, svc, "u1", TaskInput{
		Name: "Read", Category: "Learning", PlannedMinutes: 30, ActiveDays: []string{"Monday"},
	})

	minutes := 60
	updated, err := svc.Update(context.Background(), task.ID, TaskUpdateInput{PlannedMinutes: &minutes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PlannedMinutes != 60 {
		t.Errorf("planned = %d, want 60", updated.PlannedMinutes)
	}
	if updated.Name != "Read" || updated.Category != model.CategoryLearning {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	reread, err := svc.Get(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reread.PlannedMinutes != 60 || len(reread.ActiveDays) != 1 {
		t.Errorf("persisted row mismatch: %+v", reread)
	}
}

func TestUpdateTask_RejectedEditChangesNothing(t *testing.T) {
	svc, _ := newTaskFixture(t)

	task := mustCreateTask(t, svc, "u1", TaskInput{
		Name: "Read", Category: "Learning", PlannedMinutes: 30, ActiveDays: []string{"Monday"},
	})

	minutes := 60
	badDays := []string{"Monday", "Funday"}
	_, err := svc.Update(context.Background(), task.ID, TaskUpdateInput{
		PlannedMinutes: &minutes,
		ActiveDays:     &badDays,
	})
	expectValidation(t, err)

	reread, _ := svc.Get(context.Background(), task.ID)
	if reread.PlannedMinutes != 30 {
		t.Errorf("rejected update was partially applied: %d", reread.PlannedMinutes)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	svc, _ := newTaskFixture(t)

	name := "x"
	_, err := svc.Update(context.Background(), "no-such-id", TaskUpdateInput{Name: &name})
	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestDeleteTask_CascadesToLogs(t *testing.T) {
	svc, logRepo := newTaskFixture(t)

	task := mustCreateTask(t, svc, "u1", TaskInput{
		Name: "Read", Category: "Learning", PlannedMinutes: 30, ActiveDays: []string{"Monday"},
	})
	mustCreateLog(t, logRepo, "u1", task.ID, monday, model.StatusDone)
	mustCreateLog(t, logRepo, "u1", task.ID, tuesday, model.StatusPending)

	if err := svc.Delete(context.Background(), task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Get(context.Background(), task.ID); err == nil {
		t.Error("task still present after delete")
	}
	logs, err := logRepo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected logs removed with template, found %d", len(logs))
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	svc, _ := newTaskFixture(t)

	err := svc.Delete(context.Background(), "no-such-id")
	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
