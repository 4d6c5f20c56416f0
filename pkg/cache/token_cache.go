package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const tokenCacheKeyPrefix = "token"

// CachedToken is the bearer token a workspace presents to the backend.
// Stored as a Redis hash so the issue time travels with it.
type CachedToken struct {
	WorkspaceID uuid.UUID
	Token       string
	IssuedAt    time.Time
}

// TokenCache persists workspace tokens so they survive process restarts and
// are shared across BFF instances behind a load balancer.
// Key format: "token:{workspaceID}"
type TokenCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewTokenCache creates a TokenCache whose entries expire after ttl.
func NewTokenCache(r *RedisClient, ttl time.Duration) *TokenCache {
	return &TokenCache{client: r, ttl: ttl}
}

// Get returns redis.Nil when the workspace is logged out or its token expired.
func (c *TokenCache) Get(ctx context.Context, workspaceID uuid.UUID) (*CachedToken, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(workspaceID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 || vals["token"] == "" {
		return nil, redis.Nil
	}

	issuedAt, err := time.Parse(time.RFC3339Nano, vals["issued_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse issued_at: %w", err)
	}
	return &CachedToken{WorkspaceID: workspaceID, Token: vals["token"], IssuedAt: issuedAt}, nil
}

// Set writes the token hash and its TTL in one pipeline.
func (c *TokenCache) Set(ctx context.Context, t *CachedToken) error {
	key := c.key(t.WorkspaceID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"token", t.Token,
		"issued_at", t.IssuedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes the workspace token.
func (c *TokenCache) Delete(ctx context.Context, workspaceID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(workspaceID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// For binds the cache to one workspace as an auth.SessionTokens.
func (c *TokenCache) For(workspaceID uuid.UUID) *WorkspaceTokens {
	return &WorkspaceTokens{cache: c, id: workspaceID}
}

func (c *TokenCache) key(workspaceID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", tokenCacheKeyPrefix, workspaceID)
}

// WorkspaceTokens reads the token from Redis on every call.
type WorkspaceTokens struct {
	cache *TokenCache
	id    uuid.UUID
}

// Token reports false on cache miss or Redis failure; the caller then treats
// the workspace as logged out.
func (w *WorkspaceTokens) Token(ctx context.Context) (string, bool) {
	t, err := w.cache.Get(ctx, w.id)
	if err != nil {
		return "", false
	}
	return t.Token, true
}

func (w *WorkspaceTokens) Login(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("cache: empty token")
	}
	return w.cache.Set(ctx, &CachedToken{WorkspaceID: w.id, Token: token, IssuedAt: time.Now()})
}

func (w *WorkspaceTokens) Logout(ctx context.Context) error {
	return w.cache.Delete(ctx, w.id)
}
