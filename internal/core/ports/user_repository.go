package ports

import (
	"context"

	"github.com/niini/minishop/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts. The store
// enforces username and email uniqueness; Create returns
// domain.ErrUsernameTaken or domain.ErrEmailTaken when a unique constraint is
// violated, which makes the store the authoritative guard against concurrent
// registrations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id string) error
}
