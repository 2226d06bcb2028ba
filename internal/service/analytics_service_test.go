package service

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"routine-tracker/internal/model"
	"routine-tracker/internal/repository"
)

type analyticsFixture struct {
	db        *gorm.DB
	logRepo   *repository.DailyLogRepository
	goalRepo  *repository.GoalRepository
	taskSvc   *TaskService
	analytics *AnalyticsService
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	t.Helper()
	db := newTestDB(t)
	logRepo := repository.NewDailyLogRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	return &analyticsFixture{
		db:        db,
		logRepo:   logRepo,
		goalRepo:  goalRepo,
		taskSvc:   NewTaskService(repository.NewRoutineTaskRepository(db)),
		analytics: NewAnalyticsService(logRepo, goalRepo, 80),
	}
}

func TestComputeAnalytics_EmptyWindow(t *testing.T) {
	f := newAnalyticsFixture(t)
	asOf := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	snap, err := f.analytics.ComputeAnalytics(context.Background(), "u1", model.WindowWeekly, asOf)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if snap.TotalTasks != 0 || snap.CompletedTasks != 0 {
		t.Errorf("expected zero counts, got %d/%d", snap.CompletedTasks, snap.TotalTasks)
	}
	if snap.CompletionRate != 0 {
		t.Errorf("completion rate = %v, want 0", snap.CompletionRate)
	}
	if snap.GapToGoal != 0 {
		t.Errorf("gap to goal = %d, want 0", snap.GapToGoal)
	}
	if len(snap.DailyTrend) != 7 {
		t.Fatalf("trend length = %d, want 7", len(snap.DailyTrend))
	}
	for _, point := range snap.DailyTrend {
		if point.Total != 0 || point.Completed != 0 || point.CompletionRate != 0 {
			t.Errorf("expected zero trend point, got %+v", point)
		}
	}
	if len(snap.CategoryBreakdown) != 0 {
		t.Errorf("expected empty category breakdown")
	}
}

func TestComputeAnalytics_MixedStatuses(t *testing.T) {
	f := newAnalyticsFixture(t)
	asOf := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	learning := mustCreateTask(t, f.taskSvc, "u1", TaskInput{
		Name: "Read", Category: "Learning", PlannedMinutes: 30, ActiveDays: model.WeekdayNames,
	})
	fitness := mustCreateTask(t, f.taskSvc, "u1", TaskInput{
		Name: "Run", Category: "Fitness", PlannedMinutes: 45, ActiveDays: model.WeekdayNames,
	})

	logSvc := NewLogService(f.logRepo, repository.NewRoutineTaskRepository(f.db))
	statuses := []string{"done", "done", "partial", "missed", "skipped", "pending"}
	for i, status := range statuses {
		task := learning
		if i%2 == 1 {
			task = fitness
		}
		_, err := logSvc.Create(context.Background(), "u1", LogInput{
			RoutineTaskID: task.ID,
			Date:          dateOffset(asOf, -i),
			Status:        status,
			ActualMinutes: 20,
		})
		if err != nil {
			t.Fatalf("create log: %v", err)
		}
	}

	snap, err := f.analytics.ComputeAnalytics(context.Background(), "u1", model.WindowWeekly, asOf)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if snap.TotalTasks != 6 || snap.CompletedTasks != 2 {
		t.Fatalf("counts = %d/%d, want 2/6", snap.CompletedTasks, snap.TotalTasks)
	}
	if snap.PartialTasks != 1 || snap.MissedTasks != 1 || snap.SkippedTasks != 1 || snap.PendingTasks != 1 {
		t.Errorf("per-status counts wrong: %+v", snap)
	}
	if snap.CompletionRate < 0 || snap.CompletionRate > 100 {
		t.Errorf("completion rate out of bounds: %v", snap.CompletionRate)
	}
	if snap.CompletionRate != 33.33 {
		t.Errorf("completion rate = %v, want 33.33", snap.CompletionRate)
	}

	if snap.TimeAnalysis.TotalActualMinutes != 120 {
		t.Errorf("actual minutes = %d, want 120", snap.TimeAnalysis.TotalActualMinutes)
	}
	// Logs alternate between the 30- and 45-minute templates.
	if snap.TimeAnalysis.TotalPlannedMinutes != 3*30+3*45 {
		t.Errorf("planned minutes = %d, want %d", snap.TimeAnalysis.TotalPlannedMinutes, 3*30+3*45)
	}

	categoryTotal := 0
	for _, stats := range snap.CategoryBreakdown {
		categoryTotal += stats.Total
		if stats.CompletionRate < 0 || stats.CompletionRate > 100 {
			t.Errorf("category rate out of bounds: %v", stats.CompletionRate)
		}
	}
	if categoryTotal != snap.TotalTasks {
		t.Errorf("category totals sum to %d, want %d", categoryTotal, snap.TotalTasks)
	}

	if len(snap.DailyTrend) != 7 {
		t.Fatalf("trend length = %d, want 7", len(snap.DailyTrend))
	}
	for i := 1; i < len(snap.DailyTrend); i++ {
		if snap.DailyTrend[i-1].Date >= snap.DailyTrend[i].Date {
			t.Errorf("trend not chronological: %s then %s", snap.DailyTrend[i-1].Date, snap.DailyTrend[i].Date)
		}
	}
	trendTotal := 0
	for _, point := range snap.DailyTrend {
		trendTotal += point.Total
	}
	if trendTotal != snap.TotalTasks {
		t.Errorf("trend totals sum to %d, want %d", trendTotal, snap.TotalTasks)
	}
}

func TestComputeAnalytics_GapToGoal(t *testing.T) {
	f := newAnalyticsFixture(t)
	asOf := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	task := mustCreateTask(t, f.taskSvc, "u1", TaskInput{
		Name: "Read", Category: "Learning", PlannedMinutes: 30, ActiveDays: model.WeekdayNames,
	})

	// 10 logs, 6 done: gap to an 80% target is ceil(8) - 6 = 2.
	for i := 0; i < 10; i++ {
		status := model.StatusMissed
		if i < 6 {
			status = model.StatusDone
		}
		mustCreateLog(t, f.logRepo, "u1", task.ID, dateOffset(asOf, -i), status)
	}

	snap, err := f.analytics.ComputeAnalytics(context.Background(), "u1", model.WindowMonthly, asOf)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if snap.TotalTasks != 10 || snap.CompletedTasks != 6 {
		t.Fatalf("counts = %d/%d, want 6/10", snap.CompletedTasks, snap.TotalTasks)
	}
	if snap.TargetPercentage != 80 {
		t.Errorf("target = %v, want default 80", snap.TargetPercentage)
	}
	if snap.GapToGoal != 2 {
		t.Errorf("gap to goal = %d, want 2", snap.GapToGoal)
	}
	if len(snap.DailyTrend) != 30 {
		t.Errorf("trend length = %d, want 30", len(snap.DailyTrend))
	}
}

func TestComputeAnalytics_GoalOverridesDefault(t *testing.T) {
	f := newAnalyticsFixture(t)
	asOf := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	goalSvc := NewGoalService(f.goalRepo)
	if _, err := goalSvc.Set(context.Background(), "u1", "weekly", 50); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	// Upsert overwrites the previous target.
	if _, err := goalSvc.Set(context.Background(), "u1", "weekly", 60); err != nil {
		t.Fatalf("update goal: %v", err)
	}

	task := mustCreateTask(t, f.taskSvc, "u1", TaskInput{
		Name: "Read", Category: "Learning", PlannedMinutes: 30, ActiveDays: model.WeekdayNames,
	})
	mustCreateLog(t, f.logRepo, "u1", task.ID, dateOffset(asOf, -1), model.StatusMissed)

	snap, err := f.analytics.ComputeAnalytics(context.Background(), "u1", model.WindowWeekly, asOf)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if snap.TargetPercentage != 60 {
		t.Errorf("target = %v, want 60", snap.TargetPercentage)
	}
	// ceil(0.6 * 1) - 0 = 1.
	if snap.GapToGoal != 1 {
		t.Errorf("gap to goal = %d, want 1", snap.GapToGoal)
	}

	// The monthly window still sees the default.
	monthly, err := f.analytics.ComputeAnalytics(context.Background(), "u1", model.WindowMonthly, asOf)
	if err != nil {
		t.Fatalf("compute monthly: %v", err)
	}
	if monthly.TargetPercentage != 80 {
		t.Errorf("monthly target = %v, want default 80", monthly.TargetPercentage)
	}
}

func TestComputeAnalytics_ScopedToUser(t *testing.T) {
	f := newAnalyticsFixture(t)
	asOf := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	mine := mustCreateTask(t, f.taskSvc, "u1", TaskInput{
		Name: "Read", Category: "Learning", PlannedMinutes: 30, ActiveDays: model.WeekdayNames,
	})
	theirs := mustCreateTask(t, f.taskSvc, "u2", TaskInput{
		Name: "Run", Category: "Fitness", PlannedMinutes: 45, ActiveDays: model.WeekdayNames,
	})
	mustCreateLog(t, f.logRepo, "u1", mine.ID, dateOffset(asOf, -1), model.StatusDone)
	mustCreateLog(t, f.logRepo, "u2", theirs.ID, dateOffset(asOf, -1), model.StatusDone)

	snap, err := f.analytics.ComputeAnalytics(context.Background(), "u1", model.WindowWeekly, asOf)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if snap.TotalTasks != 1 {
		t.Errorf("total = %d, want 1 (other user's logs leaked in)", snap.TotalTasks)
	}
}
