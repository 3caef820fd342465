package ports

import (
	"context"

	"github.com/niini/minishop/internal/core/domain"
)

// UserService exposes the profile operations behind the authorization gate.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
