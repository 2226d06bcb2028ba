package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the recorded outcome of a daily log. Any status may move to
// any other; there is no forward-only state machine.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusPartial Status = "partial"
	StatusMissed  Status = "missed"
	StatusSkipped Status = "skipped"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDone, StatusPartial, StatusMissed, StatusSkipped:
		return true
	}
	return false
}

// DateLayout is the storage format for calendar dates. ISO dates kept as
// text sort and range-compare correctly in SQLite without timezone drift.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, NewValidationError("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// DailyLog is one dated instance of a routine task. At most one row exists
// per (routine_task_id, date); the unique index backs the generator's
// idempotency. PlannedMinutes is snapshotted at generation time so template
// edits never rewrite history.
type DailyLog struct {
	ID             string       `gorm:"primaryKey;size:36" json:"id"`
	RoutineTaskID  string       `gorm:"size:36;index:idx_task_date,unique" json:"routine_task_id"`
	UserID         string       `gorm:"size:36;index:idx_user_date" json:"user_id"`
	Date           string       `gorm:"size:10;index:idx_task_date,unique;index:idx_user_date" json:"date"`
	Status         Status       `gorm:"size:10" json:"status"`
	ActualMinutes  int          `json:"actual_minutes"`
	PlannedMinutes int          `json:"planned_minutes"`
	Notes          *string      `json:"notes"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	RoutineTask    *RoutineTask `gorm:"foreignKey:RoutineTaskID;constraint:OnDelete:CASCADE" json:"routine_task,omitempty"`
}

func (l *DailyLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// Validate checks a directly created log (the generator builds its rows itself).
func (l *DailyLog) Validate() error {
	if l.UserID == "" {
		return NewValidationError("user_id is required")
	}
	if l.RoutineTaskID == "" {
		return NewValidationError("routine_task_id is required")
	}
	if _, err := ParseDate(l.Date); err != nil {
		return err
	}
	if !l.Status.Valid() {
		return NewValidationError("invalid status %q", l.Status)
	}
	if l.ActualMinutes < 0 {
		return NewValidationError("actual_minutes must be non-negative")
	}
	return nil
}
