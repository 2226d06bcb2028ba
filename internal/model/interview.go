package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterviewStatus tracks an application through the hiring pipeline.
type InterviewStatus string

const (
	InterviewApplied   InterviewStatus = "applied"
	InterviewReplied   InterviewStatus = "replied"
	InterviewScheduled InterviewStatus = "interview_scheduled"
	InterviewDone      InterviewStatus = "interview_done"
	InterviewOffer     InterviewStatus = "offer"
	InterviewRejected  InterviewStatus = "rejected"
)

func (s InterviewStatus) Valid() bool {
	switch s {
	case InterviewApplied, InterviewReplied, InterviewScheduled,
		InterviewDone, InterviewOffer, InterviewRejected:
		return true
	}
	return false
}

// Priority ranks how much an application matters to the user.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Interview is a job-application tracking entry.
type Interview struct {
	ID              string          `gorm:"primaryKey;size:36" json:"id"`
	UserID          string          `gorm:"index;size:36" json:"user_id"`
	CompanyName     string          `json:"company_name"`
	Role            string          `json:"role"`
	DateApplied     string          `gorm:"size:10" json:"date_applied"`
	Status          InterviewStatus `gorm:"size:24" json:"status"`
	Priority        Priority        `gorm:"size:8" json:"priority"`
	InterviewRounds int             `json:"interview_rounds"`
	FollowUpDate    *string         `gorm:"size:10" json:"follow_up_date"`
	Notes           *string         `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (i *Interview) Validate() error {
	if i.UserID == "" {
		return NewValidationError("user_id is required")
	}
	if i.CompanyName == "" {
		return NewValidationError("company_name is required")
	}
	if !i.Status.Valid() {
		return NewValidationError("invalid status %q", i.Status)
	}
	if !i.Priority.Valid() {
		return NewValidationError("invalid priority %q", i.Priority)
	}
	if i.InterviewRounds < 0 {
		return NewValidationError("interview_rounds must be non-negative")
	}
	if i.DateApplied != "" {
		if _, err := ParseDate(i.DateApplied); err != nil {
			return err
		}
	}
	if i.FollowUpDate != nil && *i.FollowUpDate != "" {
		if _, err := ParseDate(*i.FollowUpDate); err != nil {
			return err
		}
	}
	return nil
}
