package service

import (
	"context"
	"time"

	"routine-tracker/internal/model"
	"routine-tracker/internal/repository"
)

// StreakRule decides when a day counts toward the streak.
type StreakRule string

const (
	// StreakRuleAny: at least one done log that day. The default.
	StreakRuleAny StreakRule = "any"
	// StreakRuleAll: every log that day is done.
	StreakRuleAll StreakRule = "all"
)

func (r StreakRule) Valid() bool {
	return r == StreakRuleAny || r == StreakRuleAll
}

func (r StreakRule) qualifies(total, done int64) bool {
	if total == 0 {
		return false
	}
	if r == StreakRuleAll {
		return done == total
	}
	return done > 0
}

// StreakService computes the consecutive-day run ending at "today".
type StreakService struct {
	logRepo *repository.DailyLogRepository
	rule    StreakRule
}

func NewStreakService(logRepo *repository.DailyLogRepository, rule StreakRule) *StreakService {
	if !rule.Valid() {
		rule = StreakRuleAny
	}
	return &StreakService{logRepo: logRepo, rule: rule}
}

// ComputeStreak walks backward from asOf, one day at a time, counting
// qualifying days and stopping at the first miss. The current day gets
// special treatment: a day still in progress (empty or not yet qualifying)
// does not break the run, it just does not count yet.
func (s *StreakService) ComputeStreak(ctx context.Context, userID string, asOf time.Time) (*model.StreakState, error) {
	day := asOf
	streak := 0
	var lastCompleted *string

	total, done, err := s.logRepo.CountForDay(ctx, userID, day.Format(model.DateLayout))
	if err != nil {
		return nil, err
	}
	if s.rule.qualifies(total, done) {
		streak++
		date := day.Format(model.DateLayout)
		lastCompleted = &date
	}
	day = day.AddDate(0, 0, -1)

	for {
		date := day.Format(model.DateLayout)
		total, done, err := s.logRepo.CountForDay(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		if !s.rule.qualifies(total, done) {
			break
		}
		streak++
		if lastCompleted == nil {
			lastCompleted = &date
		}
		day = day.AddDate(0, 0, -1)
	}

	return &model.StreakState{CurrentStreak: streak, LastCompletedDate: lastCompleted}, nil
}
