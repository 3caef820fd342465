package ports

import (
	"context"

	"github.com/niini/minishop/internal/core/domain"
)

// RoleRepository reads the seeded role reference data. The role set is closed
// ({USER, MODERATOR, ADMIN}); FindByName returns domain.ErrRoleNotSeeded when
// the store is missing one of the seeded entries.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
}
