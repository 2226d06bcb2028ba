package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"routine-tracker/internal/model"
	"routine-tracker/internal/repository"
)

func newUserFixture(t *testing.T) (*UserService, *repository.UserRepository) {
	t.Helper()
	repo := repository.NewUserRepository(newTestDB(t))
	return NewUserService(repo), repo
}

func TestUpsertUser_ConcurrentFirstSignIn(t *testing.T) {
	svc, _ := newUserFixture(t)

	// Several clients racing the same first sign-in must all succeed and
	// leave exactly one row.
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Upsert(context.Background(), "u1", "u1@example.com")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent upsert: %v", err)
		}
	}

	user, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Email != "u1@example.com" {
		t.Errorf("email = %q", user.Email)
	}
}

func TestUpsertUser_KeepsEmailCurrent(t *testing.T) {
	svc, _ := newUserFixture(t)

	if _, err := svc.Upsert(context.Background(), "u1", "old@example.com"); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if _, err := svc.Upsert(context.Background(), "u1", "new@example.com"); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	user, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Email != "new@example.com" {
		t.Errorf("email = %q, want new@example.com", user.Email)
	}
}

func TestUpsertUser_Validation(t *testing.T) {
	svc, _ := newUserFixture(t)

	if _, err := svc.Upsert(context.Background(), "", "u1@example.com"); err == nil {
		t.Error("expected error for empty id")
	}
	if _, err := svc.Upsert(context.Background(), "u1", ""); err == nil {
		t.Error("expected error for empty email")
	}
}

func TestGetUser_NotFound(t *testing.T) {
	svc, _ := newUserFixture(t)

	_, err := svc.Get(context.Background(), "missing")
	var notFound *model.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
