package service

import (
	"context"

	"routine-tracker/internal/model"
	"routine-tracker/internal/repository"
)

// UserService fronts the user store. The backend never mints identities;
// it upserts the opaque id handed over by the identity provider.
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Upsert(ctx context.Context, id, email string) (*model.User, error) {
	if id == "" {
		return nil, model.NewValidationError("id is required")
	}
	if email == "" {
		return nil, model.NewValidationError("email is required")
	}
	return s.userRepo.Upsert(ctx, id, email)
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
