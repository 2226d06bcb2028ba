package service

import (
	"context"

	"routine-tracker/internal/model"
	"routine-tracker/internal/repository"
)

// InterviewInput carries the fields of an interview entry.
type InterviewInput struct {
	CompanyName     string  `json:"company_name"`
	Role            string  `json:"role"`
	DateApplied     string  `json:"date_applied"`
	Status          string  `json:"status"`
	Priority        string  `json:"priority"`
	InterviewRounds int     `json:"interview_rounds"`
	FollowUpDate    *string `json:"follow_up_date"`
	Notes           *string `json:"notes"`
}

// InterviewUpdateInput is a partial edit; nil fields stay untouched.
type InterviewUpdateInput struct {
	CompanyName     *string `json:"company_name"`
	Role            *string `json:"role"`
	DateApplied     *string `json:"date_applied"`
	Status          *string `json:"status"`
	Priority        *string `json:"priority"`
	InterviewRounds *int    `json:"interview_rounds"`
	FollowUpDate    *string `json:"follow_up_date"`
	Notes           *string `json:"notes"`
}

// InterviewService wraps the job-application tracker.
type InterviewService struct {
	repo *repository.InterviewRepository
}

func NewInterviewService(repo *repository.InterviewRepository) *InterviewService {
	return &InterviewService{repo: repo}
}

func (s *InterviewService) Create(ctx context.Context, userID string, input InterviewInput) (*model.Interview, error) {
	status := model.InterviewStatus(input.Status)
	if input.Status == "" {
		status = model.InterviewApplied
	}
	priority := model.Priority(input.Priority)
	if input.Priority == "" {
		priority = model.PriorityMedium
	}

	interview := model.Interview{
		UserID:          userID,
		CompanyName:     input.CompanyName,
		Role:            input.Role,
		DateApplied:     input.DateApplied,
		Status:          status,
		Priority:        priority,
		InterviewRounds: input.InterviewRounds,
		FollowUpDate:    input.FollowUpDate,
		Notes:           input.Notes,
	}
	if err := interview.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &interview); err != nil {
		return nil, err
	}
	return &interview, nil
}

func (s *InterviewService) Get(ctx context.Context, id string) (*model.Interview, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByUser filters by status and/or priority when supplied.
func (s *InterviewService) ListByUser(ctx context.Context, userID, status, priority string) ([]model.Interview, error) {
	if status != "" && !model.InterviewStatus(status).Valid() {
		return nil, model.NewValidationError("invalid status %q", status)
	}
	if priority != "" && !model.Priority(priority).Valid() {
		return nil, model.NewValidationError("invalid priority %q", priority)
	}
	return s.repo.ListByUser(ctx, userID, model.InterviewStatus(status), model.Priority(priority))
}

func (s *InterviewService) Update(ctx context.Context, id string, input InterviewUpdateInput) (*model.Interview, error) {
	interview, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *interview
	fields := map[string]interface{}{}
	if input.CompanyName != nil {
		merged.CompanyName = *input.CompanyName
		fields["company_name"] = *input.CompanyName
	}
	if input.Role != nil {
		merged.Role = *input.Role
		fields["role"] = *input.Role
	}
	if input.DateApplied != nil {
		merged.DateApplied = *input.DateApplied
		fields["date_applied"] = *input.DateApplied
	}
	if input.Status != nil {
		merged.Status = model.InterviewStatus(*input.Status)
		fields["status"] = *input.Status
	}
	if input.Priority != nil {
		merged.Priority = model.Priority(*input.Priority)
		fields["priority"] = *input.Priority
	}
	if input.InterviewRounds != nil {
		merged.InterviewRounds = *input.InterviewRounds
		fields["interview_rounds"] = *input.InterviewRounds
	}
	if input.FollowUpDate != nil {
		merged.FollowUpDate = input.FollowUpDate
		fields["follow_up_date"] = input.FollowUpDate
	}
	if input.Notes != nil {
		merged.Notes = input.Notes
		fields["notes"] = input.Notes
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return interview, nil
	}

	if err := s.repo.Updates(ctx, interview, fields); err != nil {
		return nil, err
	}
	return interview, nil
}

func (s *InterviewService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
