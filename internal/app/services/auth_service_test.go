package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
}

func newTestAuthService(userRepo *fakeUserRepo) AuthService {
	return NewAuthService(userRepo, newTestJWTService(), zerolog.Nop())
}

func TestRegisterIssuesValidToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "secret-password",
		Role:     models.RoleStudent,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if resp.Token == "" {
		t.Fatal("expected a token in the registration response")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("token type = %q, want Bearer", resp.TokenType)
	}
	if resp.User.Role != models.RoleStudent {
		t.Errorf("user role = %q, want student", resp.User.Role)
	}

	claims, err := newTestJWTService().ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Errorf("token user ID = %d, want %d", claims.UserID, resp.User.ID)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("token email = %q, want jane@example.com", claims.Email)
	}
	if claims.Role != models.RoleStudent {
		t.Errorf("token role = %q, want student", claims.Role)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "secret-password",
		Role:     models.RoleInstructor,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored := userRepo.users[resp.User.ID]
	if stored.Password == "secret-password" {
		t.Fatal("password stored in plaintext")
	}
	if !auth.CheckPassword(stored.Password, "secret-password") {
		t.Fatal("stored hash does not verify against the original password")
	}
}

func TestRegisterRejectsAdminRoles(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	for _, role := range []models.Role{models.RoleAdmin, models.RoleSuperAdmin, models.Role("owner")} {
		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Email:    "eve@example.com",
			Password: "secret-password",
			Role:     role,
		})
		if !errors.Is(err, apperrors.ErrInvalidRole) {
			t.Errorf("Register with role %q: err = %v, want ErrInvalidRole", role, err)
		}
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	req := &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "secret-password",
		Role:     models.RoleStudent,
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("second Register err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "secret-password",
		Role:     models.RoleStudent,
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token from login")
	}
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "secret-password",
		Role:     models.RoleStudent,
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, errWrongPass := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "not-the-password",
	})
	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})

	if !errors.Is(errWrongPass, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", errWrongPass)
	}
	if !errors.Is(errUnknown, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", errUnknown)
	}
}

func TestGetProfileStripsPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(userRepo)

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "secret-password",
		Role:     models.RoleInstructor,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	profile, err := svc.GetProfile(context.Background(), reg.User.ID)
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if profile.Email != "jane@example.com" || profile.Role != models.RoleInstructor {
		t.Errorf("profile = %+v, want jane@example.com/instructor", profile)
	}

	_, err = svc.GetProfile(context.Background(), 9999)
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("GetProfile for missing user err = %v, want ErrUserNotFound", err)
	}
}
