package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Window selects the rolling analytics range.
type Window string

const (
	WindowWeekly  Window = "weekly"
	WindowMonthly Window = "monthly"
)

func (w Window) Valid() bool {
	return w == WindowWeekly || w == WindowMonthly
}

// Days returns the window length including the current day.
func (w Window) Days() int {
	if w == WindowMonthly {
		return 30
	}
	return 7
}

// Goal holds a user's target completion percentage for one window.
type Goal struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	UserID           string    `gorm:"size:36;index:idx_user_goal,unique" json:"user_id"`
	GoalType         Window    `gorm:"size:10;index:idx_user_goal,unique" json:"goal_type"`
	TargetPercentage float64   `json:"target_percentage"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

func (g *Goal) Validate() error {
	if g.UserID == "" {
		return NewValidationError("user_id is required")
	}
	if !g.GoalType.Valid() {
		return NewValidationError("invalid goal_type %q", g.GoalType)
	}
	if g.TargetPercentage <= 0 || g.TargetPercentage > 100 {
		return NewValidationError("target_percentage must be in (0, 100]")
	}
	return nil
}
