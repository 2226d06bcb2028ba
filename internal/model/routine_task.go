package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category classifies a routine task.
type Category string

const (
	CategoryLearning Category = "Learning"
	CategoryFitness  Category = "Fitness"
	CategoryRest     Category = "Rest"
	CategoryOther    Category = "Other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryLearning, CategoryFitness, CategoryRest, CategoryOther:
		return true
	}
	return false
}

// WeekdayNames lists the accepted active_days values, Monday first.
var WeekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func ValidWeekday(name string) bool {
	for _, day := range WeekdayNames {
		if day == name {
			return true
		}
	}
	return false
}

// RoutineTask is a recurring task template. It carries no dates itself;
// the generator materializes it into DailyLog rows on its active weekdays.
type RoutineTask struct {
	ID             string                      `gorm:"primaryKey;size:36" json:"id"`
	UserID         string                      `gorm:"index;size:36" json:"user_id"`
	Name           string                      `json:"name"`
	Category       Category                    `gorm:"size:16" json:"category"`
	PlannedMinutes int                         `json:"planned_minutes"`
	ActiveDays     datatypes.JSONSlice[string] `json:"active_days"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

func (t *RoutineTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Validate checks template fields ahead of any write.
func (t *RoutineTask) Validate() error {
	if t.UserID == "" {
		return NewValidationError("user_id is required")
	}
	if t.Name == "" {
		return NewValidationError("name is required")
	}
	if !t.Category.Valid() {
		return NewValidationError("invalid category %q", t.Category)
	}
	if t.PlannedMinutes < 0 {
		return NewValidationError("planned_minutes must be non-negative")
	}
	if len(t.ActiveDays) == 0 {
		return NewValidationError("active_days must contain at least one weekday")
	}
	seen := make(map[string]bool, len(t.ActiveDays))
	for _, day := range t.ActiveDays {
		if !ValidWeekday(day) {
			return NewValidationError("invalid weekday %q", day)
		}
		if seen[day] {
			return NewValidationError("duplicate weekday %q", day)
		}
		seen[day] = true
	}
	return nil
}

// ActiveOn reports whether the template applies on the given weekday name.
func (t *RoutineTask) ActiveOn(weekday string) bool {
	for _, day := range t.ActiveDays {
		if day == weekday {
			return true
		}
	}
	return false
}
