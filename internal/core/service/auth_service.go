package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/niini/minishop/internal/core/domain"
	"github.com/niini/minishop/internal/core/ports"
)

// AuthService implements the registration and sign-in flows.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, roles: roles, tokens: tokens, logger: logger}
}

// SignIn verifies the credentials against the user store and issues a token.
// Unknown usernames and hash mismatches both return ErrInvalidCredentials so
// the response cannot be used to enumerate accounts.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*ports.SignInResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("sign in: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("sign in: issue token: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("user signed in")

	return &ports.SignInResult{
		Token:    token,
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.RoleNames(),
	}, nil
}

// SignUp registers a new account. Uniqueness is pre-checked here for friendly
// errors, but the store's unique indexes remain the authoritative guard
// against concurrent registrations.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) error {
	taken, err := s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	if taken {
		return domain.ErrUsernameTaken
	}

	inUse, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	if inUse {
		return domain.ErrEmailTaken
	}

	roles, err := s.resolveRoles(ctx, input.Roles)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("sign up: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		// Duplicate-key from a concurrent registration surfaces here.
		if err == domain.ErrUsernameTaken || err == domain.ErrEmailTaken {
			return err
		}
		return fmt.Errorf("sign up: %w", err)
	}

	s.logger.Info().Str("username", input.Username).Strs("roles", roleNames(roles)).Msg("user registered")
	return nil
}

// resolveRoles maps the requested role tokens to seeded roles, defaulting to
// USER when none are requested.
func (s *AuthService) resolveRoles(ctx context.Context, tokens []string) ([]domain.Role, error) {
	if len(tokens) == 0 {
		tokens = []string{"user"}
	}

	seen := make(map[string]struct{}, len(tokens))
	roles := make([]domain.Role, 0, len(tokens))
	for _, t := range tokens {
		name, ok := domain.ResolveRoleName(t)
		if !ok {
			return nil, domain.ErrUnknownRole
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		role, err := s.roles.FindByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve role %q: %w", name, err)
		}
		roles = append(roles, *role)
	}
	return roles, nil
}

func roleNames(roles []domain.Role) []string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names
}
