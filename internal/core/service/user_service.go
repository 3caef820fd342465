package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/niini/minishop/internal/core/domain"
	"github.com/niini/minishop/internal/core/ports"
)

// IdentityEvictor removes a cached identity, typically after a user is
// deleted, so the authorization gate stops honouring stale tokens early.
type IdentityEvictor interface {
	Evict(ctx context.Context, username string)
}

// UserService implements profile lookup and administrative deletion.
type UserService struct {
	users   ports.UserRepository
	evictor IdentityEvictor
	logger  zerolog.Logger
}

func NewUserService(users ports.UserRepository, evictor IdentityEvictor, logger zerolog.Logger) *UserService {
	return &UserService{users: users, evictor: evictor, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if s.evictor != nil {
		s.evictor.Evict(ctx, user.Username)
	}

	s.logger.Info().Str("user_id", id).Str("username", user.Username).Msg("user deleted")
	return nil
}
