package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/niini/minishop/internal/core/domain"
	"github.com/niini/minishop/internal/core/ports"
)

const identityTTL = 5 * time.Minute

// IdentityCache resolves token subjects to full user records, caching the
// result in Redis so the authorization gate does not hit the user store on
// every request. Cache failures are non-fatal; the store stays authoritative.
// Key format: identity:<username>
type IdentityCache struct {
	client *redis.Client
	users  ports.UserRepository
	log    zerolog.Logger
}

func NewIdentityCache(client *redis.Client, users ports.UserRepository, log zerolog.Logger) *IdentityCache {
	return &IdentityCache{client: client, users: users, log: log}
}

// Resolve returns the user for a validated token subject, from cache when
// possible.
func (c *IdentityCache) Resolve(ctx context.Context, username string) (*domain.User, error) {
	if cached, err := c.client.Get(ctx, c.key(username)).Bytes(); err == nil {
		var user domain.User
		if err := json.Unmarshal(cached, &user); err == nil {
			return &user, nil
		}
		// Corrupt entry: drop it and fall through to the store.
		c.client.Del(ctx, c.key(username))
	}

	user, err := c.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		if err := c.client.Set(ctx, c.key(username), payload, identityTTL).Err(); err != nil {
			c.log.Warn().Err(err).Str("username", username).Msg("failed to cache identity")
		}
	}
	return user, nil
}

// Evict removes a cached identity, e.g. after the user is deleted.
func (c *IdentityCache) Evict(ctx context.Context, username string) {
	if err := c.client.Del(ctx, c.key(username)).Err(); err != nil {
		c.log.Warn().Err(err).Str("username", username).Msg("failed to evict identity")
	}
}

func (c *IdentityCache) key(username string) string {
	return fmt.Sprintf("identity:%s", username)
}
