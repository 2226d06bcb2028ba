package service

import (
	"context"
	"errors"
	"math"
	"time"

	"routine-tracker/internal/model"
	"routine-tracker/internal/repository"
)

// AnalyticsService aggregates daily logs over a rolling window. Every call
// recomputes from scratch; the windows are small and nothing is cached.
type AnalyticsService struct {
	logRepo       *repository.DailyLogRepository
	goalRepo      *repository.GoalRepository
	defaultTarget float64
}

func NewAnalyticsService(logRepo *repository.DailyLogRepository, goalRepo *repository.GoalRepository, defaultTarget float64) *AnalyticsService {
	if defaultTarget <= 0 || defaultTarget > 100 {
		defaultTarget = 80
	}
	return &AnalyticsService{logRepo: logRepo, goalRepo: goalRepo, defaultTarget: defaultTarget}
}

// ComputeAnalytics builds the snapshot for the window ending at asOf.
// A weekly window spans asOf and the 6 days before it; monthly, 29.
func (s *AnalyticsService) ComputeAnalytics(ctx context.Context, userID string, window model.Window, asOf time.Time) (*model.AnalyticsSnapshot, error) {
	if !window.Valid() {
		return nil, model.NewValidationError("invalid window %q", window)
	}

	end := asOf
	start := asOf.AddDate(0, 0, -(window.Days() - 1))
	startStr := start.Format(model.DateLayout)
	endStr := end.Format(model.DateLayout)

	logs, err := s.logRepo.ListByUserBetween(ctx, userID, startStr, endStr)
	if err != nil {
		return nil, err
	}

	snapshot := &model.AnalyticsSnapshot{
		Period:            window,
		DateRange:         model.DateRange{Start: startStr, End: endStr},
		CategoryBreakdown: make(map[model.Category]model.CategoryStats),
	}

	byDay := make(map[string]*model.TrendPoint)
	for _, log := range logs {
		snapshot.TotalTasks++
		switch log.Status {
		case model.StatusDone:
			snapshot.CompletedTasks++
		case model.StatusPartial:
			snapshot.PartialTasks++
		case model.StatusMissed:
			snapshot.MissedTasks++
		case model.StatusSkipped:
			snapshot.SkippedTasks++
		default:
			snapshot.PendingTasks++
		}

		snapshot.TimeAnalysis.TotalPlannedMinutes += log.PlannedMinutes
		snapshot.TimeAnalysis.TotalActualMinutes += log.ActualMinutes

		if log.RoutineTask != nil {
			stats := snapshot.CategoryBreakdown[log.RoutineTask.Category]
			stats.Total++
			if log.Status == model.StatusDone {
				stats.Completed++
			}
			snapshot.CategoryBreakdown[log.RoutineTask.Category] = stats
		}

		point, ok := byDay[log.Date]
		if !ok {
			point = &model.TrendPoint{Date: log.Date}
			byDay[log.Date] = point
		}
		point.Total++
		if log.Status == model.StatusDone {
			point.Completed++
		}
	}

	snapshot.CompletionRate = rate(snapshot.CompletedTasks, snapshot.TotalTasks)
	for category, stats := range snapshot.CategoryBreakdown {
		stats.CompletionRate = rate(stats.Completed, stats.Total)
		snapshot.CategoryBreakdown[category] = stats
	}

	ta := &snapshot.TimeAnalysis
	ta.TotalPlannedHours = round2(float64(ta.TotalPlannedMinutes) / 60)
	ta.TotalActualHours = round2(float64(ta.TotalActualMinutes) / 60)
	if ta.TotalPlannedMinutes > 0 {
		ta.Efficiency = round2(float64(ta.TotalActualMinutes) / float64(ta.TotalPlannedMinutes) * 100)
	}

	// One trend entry per calendar day, zero rows included, so consumers
	// can draw a complete grid without filling gaps themselves.
	snapshot.DailyTrend = make([]model.TrendPoint, 0, window.Days())
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(model.DateLayout)
		if point, ok := byDay[date]; ok {
			point.CompletionRate = rate(point.Completed, point.Total)
			snapshot.DailyTrend = append(snapshot.DailyTrend, *point)
		} else {
			snapshot.DailyTrend = append(snapshot.DailyTrend, model.TrendPoint{Date: date})
		}
	}

	target, err := s.targetFor(ctx, userID, window)
	if err != nil {
		return nil, err
	}
	snapshot.TargetPercentage = target
	snapshot.GapToGoal = gapToGoal(snapshot.TotalTasks, snapshot.CompletedTasks, target)

	return snapshot, nil
}

// targetFor reads the user's goal for the window, falling back to the
// configured default when none is set.
func (s *AnalyticsService) targetFor(ctx context.Context, userID string, window model.Window) (float64, error) {
	goal, err := s.goalRepo.FindByUserAndType(ctx, userID, window)
	if err != nil {
		var notFound *model.NotFoundError
		if errors.As(err, &notFound) {
			return s.defaultTarget, nil
		}
		return 0, err
	}
	return goal.TargetPercentage, nil
}

// gapToGoal is the number of further done outcomes needed, with the total
// held fixed, to reach the target rate. Zero when already at or above it.
func gapToGoal(total, completed int, target float64) int {
	if total == 0 {
		return 0
	}
	needed := int(math.Ceil(target / 100 * float64(total)))
	if gap := needed - completed; gap > 0 {
		return gap
	}
	return 0
}

func rate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(completed) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
