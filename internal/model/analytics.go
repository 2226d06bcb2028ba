package model

// Derived reporting shapes. Nothing here is persisted; every value is
// recomputed from DailyLog rows on each call.

// DateRange bounds an analytics window, inclusive on both ends.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimeAnalysis sums planned and actual effort across a window.
type TimeAnalysis struct {
	TotalPlannedMinutes int     `json:"total_planned_minutes"`
	TotalActualMinutes  int     `json:"total_actual_minutes"`
	TotalPlannedHours   float64 `json:"total_planned_hours"`
	TotalActualHours    float64 `json:"total_actual_hours"`
	Efficiency          float64 `json:"efficiency"`
}

// CategoryStats is the completed/total/rate triple for one category.
type CategoryStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

// TrendPoint is one calendar day in the daily trend. Days without logs
// appear as zero rows so consumers can render a gap-free grid.
type TrendPoint struct {
	Date           string  `json:"date"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

// AnalyticsSnapshot is the full report for one user and window.
type AnalyticsSnapshot struct {
	Period            Window                     `json:"period"`
	DateRange         DateRange                  `json:"date_range"`
	TotalTasks        int                        `json:"total_tasks"`
	CompletedTasks    int                        `json:"completed_tasks"`
	PartialTasks      int                        `json:"partial_tasks"`
	MissedTasks       int                        `json:"missed_tasks"`
	SkippedTasks      int                        `json:"skipped_tasks"`
	PendingTasks      int                        `json:"pending_tasks"`
	CompletionRate    float64                    `json:"completion_rate"`
	TargetPercentage  float64                    `json:"target_percentage"`
	GapToGoal         int                        `json:"gap_to_goal"`
	TimeAnalysis      TimeAnalysis               `json:"time_analysis"`
	CategoryBreakdown map[Category]CategoryStats `json:"category_breakdown"`
	DailyTrend        []TrendPoint               `json:"daily_trend"`
}

// StreakState reports the consecutive-day run ending at "today".
type StreakState struct {
	CurrentStreak     int     `json:"current_streak"`
	LastCompletedDate *string `json:"last_completed_date"`
}
