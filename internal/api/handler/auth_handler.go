package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/niini/minishop/internal/core/domain"
	"github.com/niini/minishop/internal/core/ports"
	"github.com/niini/minishop/internal/metrics"
)

// AuthHandler handles sign-up and sign-in requests.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signInResponse struct {
	Token    string   `json:"token"`
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

type signUpRequest struct {
	Username  string   `json:"username"  validate:"required,min=3,max=20"`
	Email     string   `json:"email"     validate:"required,email,max=50"`
	Password  string   `json:"password"  validate:"required,min=6,max=40"`
	Roles     []string `json:"roles,omitempty"`
	FirstName string   `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName  string   `json:"last_name,omitempty"  validate:"omitempty,max=50"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// SignIn authenticates a user and returns a JWT token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  signInResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.SignInsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, signInResponse{
		Token:    result.Token,
		ID:       result.ID,
		Username: result.Username,
		Email:    result.Email,
		Roles:    result.Roles,
	})
}

// SignUp registers a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SignUpsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Roles:     req.Roles,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrEmailTaken) {
			metrics.SignUpsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.SignUpsTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	metrics.SignUpsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User registered successfully!"})
}
