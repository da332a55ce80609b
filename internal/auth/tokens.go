package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrTokenInvalid indicates a missing, expired or revoked bearer token.
var ErrTokenInvalid = errors.New("auth: invalid or expired token")

// TokenStore issues and resolves opaque bearer tokens backed by Redis.
type TokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenStore constructs a TokenStore.
func NewTokenStore(client *redis.Client, ttl time.Duration) *TokenStore {
	return &TokenStore{client: client, ttl: ttl}
}

// TTL returns the configured token lifetime.
func (ts *TokenStore) TTL() time.Duration {
	return ts.ttl
}

func (ts *TokenStore) key(token string) string {
	return "auth:token:" + token
}

// Issue mints a new bearer token for the given identity.
func (ts *TokenStore) Issue(ctx context.Context, claims Claims) (string, error) {
	token := uuid.NewString()
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	if err := ts.client.Set(ctx, ts.key(token), payload, ts.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the identity attached to a token.
func (ts *TokenStore) Resolve(ctx context.Context, token string) (Claims, error) {
	if token == "" {
		return Claims{}, ErrTokenInvalid
	}
	payload, err := ts.client.Get(ctx, ts.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Claims{}, ErrTokenInvalid
	}
	if err != nil {
		return Claims{}, err
	}
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}

// Revoke deletes a token.
func (ts *TokenStore) Revoke(ctx context.Context, token string) error {
	err := ts.client.Del(ctx, ts.key(token)).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
