package services

import (
	"context"
	"errors"
	"testing"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/pkg/apperrors"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "hashed", Role: role}
	id, err := repo.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	user.ID = id
	return user
}

func TestUpdateUserPartial(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user := seedUser(t, userRepo, "jane@example.com", models.RoleStudent)

	role := models.RoleInstructor
	updated, err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{Role: &role})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Role != models.RoleInstructor {
		t.Errorf("role = %q, want instructor", updated.Role)
	}
	if updated.Email != "jane@example.com" {
		t.Errorf("email changed on partial update: %q", updated.Email)
	}

	// The stored password is untouched by this path.
	stored := userRepo.users[user.ID]
	if stored.Password != "hashed" {
		t.Errorf("password changed by admin update: %q", stored.Password)
	}
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user := seedUser(t, userRepo, "jane@example.com", models.RoleStudent)

	bogus := models.Role("owner")
	_, err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{Role: &bogus})
	if !errors.Is(err, apperrors.ErrInvalidRole) {
		t.Fatalf("unknown role err = %v, want ErrInvalidRole", err)
	}
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	seedUser(t, userRepo, "taken@example.com", models.RoleStudent)
	user := seedUser(t, userRepo, "jane@example.com", models.RoleStudent)

	email := "taken@example.com"
	_, err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{Email: &email})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("duplicate email err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestDeleteUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user := seedUser(t, userRepo, "jane@example.com", models.RoleStudent)

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), user.ID); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("second Delete err = %v, want ErrUserNotFound", err)
	}
}

func TestGetAllUsers(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	seedUser(t, userRepo, "a@example.com", models.RoleStudent)
	seedUser(t, userRepo, "b@example.com", models.RoleInstructor)

	users, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("got %d users, want 2", len(users))
	}
}
