package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/niini/minishop/internal/core/domain"
)

const rolesCollection = "roles"

// RoleRepository reads the seeded role reference data. The role set is closed
// and immutable after seeding.
type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(rolesCollection)}
}

// Seed upserts the fixed role enumeration. Safe to run on every startup.
func (r *RoleRepository) Seed(ctx context.Context) error {
	seed := []domain.Role{
		{ID: 1, Name: domain.RoleUser},
		{ID: 2, Name: domain.RoleModerator},
		{ID: 3, Name: domain.RoleAdmin},
	}

	for _, role := range seed {
		_, err := r.coll.UpdateOne(ctx,
			bson.M{"id": role.ID},
			bson.M{"$set": bson.M{"id": role.ID, "name": role.Name}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
	}
	return nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var role mongoRole
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&role); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoleNotSeeded
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{ID: role.ID, Name: role.Name}, nil
}
