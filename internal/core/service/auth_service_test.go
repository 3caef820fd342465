package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/niini/minishop/internal/core/domain"
	"github.com/niini/minishop/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("u%d", r.nextID)
	r.nextID++
	r.users[copy.Username] = copy
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for username, u := range r.users {
		if u.ID == id {
			delete(r.users, username)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubRoleRepo struct{}

func (stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	switch name {
	case domain.RoleUser:
		return &domain.Role{ID: 1, Name: name}, nil
	case domain.RoleModerator:
		return &domain.Role{ID: 2, Name: name}, nil
	case domain.RoleAdmin:
		return &domain.Role{ID: 3, Name: name}, nil
	default:
		return nil, domain.ErrRoleNotSeeded
	}
}

func newAuthService(repo *stubUserRepo) *AuthService {
	tokens := NewJWTTokenService("secret", time.Hour)
	return NewAuthService(repo, stubRoleRepo{}, tokens, zerolog.Nop())
}

func TestAuthService_SignUp_DefaultRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pass123",
	})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}

	stored := repo.users["alice"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(stored.Roles) != 1 || stored.Roles[0].Name != domain.RoleUser {
		t.Fatalf("expected default role {USER}, got %+v", stored.Roles)
	}
}

func TestAuthService_SignUp_ResolvesRoleTokens(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "pass123",
		Roles:    []string{"Admin", "mod"},
	})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}

	stored := repo.users["bob"]
	if len(stored.Roles) != 2 {
		t.Fatalf("expected 2 roles, got %+v", stored.Roles)
	}
	if !stored.HasRole(domain.RoleAdmin) || !stored.HasRole(domain.RoleModerator) {
		t.Fatalf("role tokens not resolved: %+v", stored.Roles)
	}
}

func TestAuthService_SignUp_UnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "pass123",
		Roles:    []string{"superuser"},
	})
	if !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("no user should be persisted on role failure")
	}
}

func TestAuthService_SignUp_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	first := ports.SignUpInput{Username: "dave", Email: "dave@example.com", Password: "pass123"}
	if err := svc.SignUp(context.Background(), first); err != nil {
		t.Fatalf("first SignUp failed: %v", err)
	}
	before := cloneUser(repo.users["dave"])

	second := ports.SignUpInput{Username: "dave", Email: "other@example.com", Password: "pass456"}
	if err := svc.SignUp(context.Background(), second); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	after := repo.users["dave"]
	if after.Email != before.Email || after.PasswordHash != before.PasswordHash {
		t.Fatalf("first registration's data changed on duplicate attempt")
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if err := svc.SignUp(context.Background(), ports.SignUpInput{Username: "erin", Email: "erin@example.com", Password: "pass123"}); err != nil {
		t.Fatalf("first SignUp failed: %v", err)
	}
	err := svc.SignUp(context.Background(), ports.SignUpInput{Username: "frank", Email: "erin@example.com", Password: "pass123"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_SignIn_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password",
		Roles:    []string{"mod"},
	}); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	result, err := svc.SignIn(context.Background(), "testuser", "password")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.Username != "testuser" || result.Email != "test@example.com" {
		t.Fatalf("unexpected user summary: %+v", result)
	}
	if len(result.Roles) != 1 || result.Roles[0] != domain.RoleModerator {
		t.Fatalf("role list does not match stored roles: %v", result.Roles)
	}

	tokens := NewJWTTokenService("secret", time.Hour)
	subject, err := tokens.Subject(result.Token)
	if err != nil || subject != "testuser" {
		t.Fatalf("token subject mismatch: %q, %v", subject, err)
	}
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_ = svc.SignUp(context.Background(), ports.SignUpInput{Username: "grace", Email: "grace@example.com", Password: "goodpass"})
	if _, err := svc.SignIn(context.Background(), "grace", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SignIn_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	// Unknown user fails with the same error as a bad password.
	if _, err := svc.SignIn(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
