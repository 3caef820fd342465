package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/niini/minishop/internal/core/domain"
	"github.com/niini/minishop/internal/core/ports"
)

type stubAuthService struct {
	signInFn func(ctx context.Context, username, password string) (*ports.SignInResult, error)
	signUpFn func(ctx context.Context, input ports.SignUpInput) error
}

func (s *stubAuthService) SignIn(ctx context.Context, username, password string) (*ports.SignInResult, error) {
	return s.signInFn(ctx, username, password)
}

func (s *stubAuthService) SignUp(ctx context.Context, input ports.SignUpInput) error {
	return s.signUpFn(ctx, input)
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	svc := &stubAuthService{
		signInFn: func(_ context.Context, username, password string) (*ports.SignInResult, error) {
			if username != "testuser" || password != "password" {
				t.Fatalf("credentials not forwarded: %s/%s", username, password)
			}
			return &ports.SignInResult{
				Token:    "test-jwt-token",
				ID:       "u1",
				Username: "testuser",
				Email:    "test@example.com",
				Roles:    []string{domain.RoleUser},
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/signin", `{"username":"testuser","password":"password"}`)
	if err := h.SignIn(c); err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp signInResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "test-jwt-token" || resp.Username != "testuser" || resp.Email != "test@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Roles) != 1 || resp.Roles[0] != domain.RoleUser {
		t.Fatalf("unexpected roles: %v", resp.Roles)
	}
}

func TestAuthHandler_SignIn_BadCredentials(t *testing.T) {
	svc := &stubAuthService{
		signInFn: func(context.Context, string, string) (*ports.SignInResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/signin", `{"username":"x","password":"y"}`)
	err := h.SignIn(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	var got ports.SignUpInput
	svc := &stubAuthService{
		signUpFn: func(_ context.Context, input ports.SignUpInput) error {
			got = input
			return nil
		},
	}
	h := NewAuthHandler(svc)

	body := `{"username":"newuser","email":"newuser@example.com","password":"password","roles":["user"]}`
	c, rec := newAuthContext(t, http.MethodPost, "/auth/signup", body)
	if err := h.SignUp(c); err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User registered successfully!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if got.Username != "newuser" || got.Email != "newuser@example.com" || len(got.Roles) != 1 {
		t.Fatalf("input not forwarded: %+v", got)
	}
}

func TestAuthHandler_SignUp_ValidationReportsAllViolations(t *testing.T) {
	svc := &stubAuthService{
		signUpFn: func(context.Context, ports.SignUpInput) error {
			t.Fatalf("service should not be called on invalid input")
			return nil
		},
	}
	h := NewAuthHandler(svc)

	// Short username AND bad email AND short password: all three reported.
	body := `{"username":"ab","email":"not-an-email","password":"123"}`
	c, _ := newAuthContext(t, http.MethodPost, "/auth/signup", body)

	err := h.SignUp(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	msg, _ := he.Message.(string)
	for _, want := range []string{"username", "email", "password"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("violation for %q missing in %q", want, msg)
		}
	}
}

func TestAuthHandler_SignUp_Duplicate(t *testing.T) {
	svc := &stubAuthService{
		signUpFn: func(context.Context, ports.SignUpInput) error {
			return domain.ErrUsernameTaken
		},
	}
	h := NewAuthHandler(svc)

	body := `{"username":"existinguser","email":"new@example.com","password":"password"}`
	c, _ := newAuthContext(t, http.MethodPost, "/auth/signup", body)

	if err := h.SignUp(c); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken to propagate, got %v", err)
	}
}
